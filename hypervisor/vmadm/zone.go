package vmadm

import (
	"encoding/json"
	"fmt"

	"github.com/projecteru2/smartvm/hypervisor"
)

// ZoneBrand is the brand of every OS-virtualized zone built here.
const ZoneBrand = "joyent"

// ZoneFields are the keys a zone descriptor must carry.
var ZoneFields = []string{
	"dataset_uuid",
	"alias",
	"hostname",
	"max_physical_memory",
	"quota",
	"nics",
}

// GenZoneJSON builds the vmadm JSON payload for an OS-virtualized zone.
// All ZoneFields must be present; values are passed through unchecked and
// keys outside ZoneFields are dropped.
//
//	{"alias":"myname","brand":"joyent","dataset_uuid":"9eac5c0c-...",
//	 "hostname":"www.domain.com","max_physical_memory":2048,
//	 "nics":[{"nic_tag":"admin","ip":"192.168.0.1",...}],"quota":10}
func GenZoneJSON(fields map[string]any) ([]byte, error) {
	zone := make(map[string]any, len(ZoneFields)+1)
	for _, key := range ZoneFields {
		v, ok := fields[key]
		if !ok {
			return nil, hypervisor.ErrMissingZoneFields
		}
		zone[key] = v
	}
	zone["brand"] = ZoneBrand
	out, err := json.Marshal(zone)
	if err != nil {
		return nil, fmt.Errorf("encode zone: %w", err)
	}
	return out, nil
}

package vmadm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/projecteru2/smartvm/hypervisor"
)

func validZone() map[string]any {
	return map[string]any{
		"dataset_uuid":        "9eac5c0c-a941-11e2-a7dc-57a6b041988f",
		"alias":               "myname",
		"hostname":            "www.domain.com",
		"max_physical_memory": 2048,
		"quota":               10,
		"nics": []map[string]any{{
			"nic_tag": "admin",
			"ip":      "192.168.0.1",
			"netmask": "255.255.255.0",
			"gateway": "192.168.0.254",
		}},
	}
}

func TestGenZoneJSON(t *testing.T) {
	out, err := GenZoneJSON(validZone())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 7 {
		t.Errorf("expected 7 keys, got %d: %v", len(got), got)
	}
	if got["brand"] != "joyent" {
		t.Errorf("expected brand joyent, got %v", got["brand"])
	}
	if got["alias"] != "myname" || got["max_physical_memory"] != float64(2048) {
		t.Errorf("values not passed through: %v", got)
	}
	nics, isList := got["nics"].([]any)
	if !isList || len(nics) != 1 {
		t.Errorf("expected one nic, got %v", got["nics"])
	}
}

func TestGenZoneJSON_DropsExtraKeys(t *testing.T) {
	fields := validZone()
	fields["ram"] = 512
	fields["brand"] = "kvm"
	out, err := GenZoneJSON(fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, has := got["ram"]; has {
		t.Error("unexpected extra key ram")
	}
	if got["brand"] != "joyent" {
		t.Errorf("brand must stay joyent, got %v", got["brand"])
	}
}

func TestGenZoneJSON_MissingField(t *testing.T) {
	for _, key := range ZoneFields {
		fields := validZone()
		delete(fields, key)
		out, err := GenZoneJSON(fields)
		if !errors.Is(err, hypervisor.ErrMissingZoneFields) {
			t.Errorf("without %s: expected ErrMissingZoneFields, got %v", key, err)
		}
		if !errors.Is(err, hypervisor.ErrInvalidArgument) {
			t.Errorf("without %s: expected invalid argument kind", key)
		}
		if out != nil {
			t.Errorf("without %s: expected no output, got %s", key, out)
		}
	}
}

func TestGenZoneJSON_NilValueCountsAsPresent(t *testing.T) {
	fields := validZone()
	fields["quota"] = nil
	if _, err := GenZoneJSON(fields); err != nil {
		t.Errorf("presence check only, got %v", err)
	}
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/projecteru2/smartvm/hypervisor/vmadm"
)

var zoneCmd = newZoneCmd()

func newZoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone [flags]",
		Short: "Print the vmadm JSON payload for an OS-virtualized zone (nothing is created)",
		Args:  cobra.NoArgs,
		RunE:  runZone,
	}
	cmd.Flags().StringP("file", "f", "", "YAML file with zone fields; flags override it")
	cmd.Flags().String("dataset-uuid", "", "image dataset UUID")
	cmd.Flags().String("alias", "", "zone alias")
	cmd.Flags().String("hostname", "", "zone hostname")
	cmd.Flags().String("memory", "", "max physical memory, e.g. 2g (stored in MiB)")
	cmd.Flags().String("quota", "", "disk quota, e.g. 10g (stored in GiB)")
	cmd.Flags().StringArray("nic", nil, "NIC as key=value pairs, e.g. nic_tag=admin,ip=10.0.0.2,netmask=255.255.255.0,gateway=10.0.0.1")
	return cmd
}

func runZone(cmd *cobra.Command, _ []string) error {
	fields := map[string]any{}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		loaded, err := loadZoneFile(path)
		if err != nil {
			return err
		}
		fields = loaded
	}
	if err := zoneFieldsFromFlags(cmd, fields); err != nil {
		return err
	}
	out, err := vmadm.GenZoneJSON(fields)
	if err != nil {
		return fmt.Errorf("zone: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func loadZoneFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read zone file: %w", err)
	}
	fields := map[string]any{}
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse zone file %s: %w", path, err)
	}
	return fields, nil
}

// zoneFieldsFromFlags overlays explicitly set flags onto fields.
func zoneFieldsFromFlags(cmd *cobra.Command, fields map[string]any) error {
	for flag, key := range map[string]string{
		"dataset-uuid": "dataset_uuid",
		"alias":        "alias",
		"hostname":     "hostname",
	} {
		if cmd.Flags().Changed(flag) {
			fields[key], _ = cmd.Flags().GetString(flag)
		}
	}
	if cmd.Flags().Changed("memory") {
		s, _ := cmd.Flags().GetString("memory")
		mib, err := sizeIn(s, units.MiB)
		if err != nil {
			return fmt.Errorf("invalid --memory %q: %w", s, err)
		}
		fields["max_physical_memory"] = mib
	}
	if cmd.Flags().Changed("quota") {
		s, _ := cmd.Flags().GetString("quota")
		gib, err := sizeIn(s, units.GiB)
		if err != nil {
			return fmt.Errorf("invalid --quota %q: %w", s, err)
		}
		fields["quota"] = gib
	}
	if cmd.Flags().Changed("nic") {
		specs, _ := cmd.Flags().GetStringArray("nic")
		nics := make([]map[string]any, 0, len(specs))
		for _, spec := range specs {
			nic, err := parseNIC(spec)
			if err != nil {
				return err
			}
			nics = append(nics, nic)
		}
		fields["nics"] = nics
	}
	return nil
}

// sizeIn parses a human size ("2g", "512m", "2048") and returns it in unit.
// Bare numbers are taken as already being in unit.
func sizeIn(s string, unit int64) (int64, error) {
	s = strings.TrimSpace(s)
	if s != "" && strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		s += unitSuffix(unit)
	}
	b, err := units.RAMInBytes(s)
	if err != nil {
		return 0, err
	}
	if b <= 0 || b%unit != 0 {
		return 0, fmt.Errorf("must be a positive multiple of %s", units.BytesSize(float64(unit)))
	}
	return b / unit, nil
}

func unitSuffix(unit int64) string {
	if unit == units.GiB {
		return "g"
	}
	return "m"
}

func parseNIC(spec string) (map[string]any, error) {
	nic := map[string]any{}
	for pair := range strings.SplitSeq(spec, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || k == "" {
			return nil, fmt.Errorf("invalid --nic %q: expected key=value pairs", spec)
		}
		nic[k] = v
	}
	return nic, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecteru2/smartvm/host"
	"github.com/projecteru2/smartvm/hypervisor/vmadm"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether the vmadm capability is available on this host",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	binary, err := vmadm.Available(ctx, conf, vmadm.DefaultFacts(conf), host.NewLocator(conf.VmadmBinary))
	if err != nil {
		return err
	}
	fmt.Printf("%s: available (%s)\n", vmadm.Name, binary)
	return nil
}

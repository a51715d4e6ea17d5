package cmd

import (
	"github.com/spf13/cobra"
)

var rebootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reboot VM [VM...]",
		Short: "Reboot running VM(s)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runReboot,
	}
	cmd.Flags().Duration("wait", 0, "keep checking this long for the VM to show up as running")
	return cmd
}()

func runReboot(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	wait, _ := cmd.Flags().GetDuration("wait")
	hyper, err := initHypervisor(ctx)
	if err != nil {
		return err
	}
	return batchVMCmd(ctx, "reboot", "rebooted", hyper.Reboot, hyper.ListActive, wait, args)
}

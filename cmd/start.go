package cmd

import (
	"github.com/spf13/cobra"
)

var startCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start VM [VM...]",
		Short: "Start stopped VM(s)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStart,
	}
	cmd.Flags().Duration("wait", 0, "keep checking this long for the VM to show up as running")
	return cmd
}()

func runStart(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	wait, _ := cmd.Flags().GetDuration("wait")
	hyper, err := initHypervisor(ctx)
	if err != nil {
		return err
	}
	return batchVMCmd(ctx, "start", "started", hyper.Start, hyper.ListActive, wait, args)
}

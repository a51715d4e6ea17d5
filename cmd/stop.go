package cmd

import (
	"github.com/spf13/cobra"
)

var stopCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stop VM [VM...]",
		Aliases: []string{"shutdown"},
		Short:   "Send a soft shutdown to running VM(s)",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runStop,
	}
	cmd.Flags().Duration("wait", 0, "keep checking this long for the VM to show up as stopped")
	return cmd
}()

func runStop(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	wait, _ := cmd.Flags().GetDuration("wait")
	hyper, err := initHypervisor(ctx)
	if err != nil {
		return err
	}
	return batchVMCmd(ctx, "stop", "stopped", hyper.Shutdown, hyper.ListInactive, wait, args)
}

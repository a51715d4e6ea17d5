package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecteru2/smartvm/types"
)

var listCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List VM UUIDs, optionally filtered by state",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
	cmd.Flags().String("state", "all", "filter by state: all, running, stopped")
	return cmd
}()

func runList(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	state, _ := cmd.Flags().GetString("state")

	hyper, err := initHypervisor(ctx)
	if err != nil {
		return err
	}

	var list func(context.Context) ([]string, error)
	switch types.VMState(state) {
	case "all", "":
		list = hyper.List
	case types.VMStateRunning:
		list = hyper.ListActive
	case types.VMStateStopped:
		list = hyper.ListInactive
	default:
		return fmt.Errorf("invalid --state %q (expected all|running|stopped)", state)
	}

	ids, err := list(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

package vmadm

import (
	"context"

	"github.com/projecteru2/smartvm/hypervisor"
)

// Start boots a stopped VM. Returns true once the VM shows up as running.
func (v *Vmadm) Start(ctx context.Context, uuid string) (bool, error) {
	return v.apply(ctx, uuid, transition{
		subcommand: "start",
		blockedBy:  v.ListActive,
		blockErr:   hypervisor.ErrAlreadyRunning,
		target:     v.ListActive,
	})
}

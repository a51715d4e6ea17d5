package vmadm

import (
	"context"

	"github.com/projecteru2/smartvm/hypervisor"
)

// Shutdown sends a soft shutdown to a VM via "vmadm stop".
// Returns true once the VM shows up as stopped.
func (v *Vmadm) Shutdown(ctx context.Context, uuid string) (bool, error) {
	return v.apply(ctx, uuid, transition{
		subcommand: "stop",
		blockedBy:  v.ListInactive,
		blockErr:   hypervisor.ErrAlreadyStopped,
		target:     v.ListInactive,
	})
}

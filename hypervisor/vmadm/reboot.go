package vmadm

import (
	"context"

	"github.com/projecteru2/smartvm/hypervisor"
)

// Reboot restarts a running VM. Returns true if the VM is running afterwards.
func (v *Vmadm) Reboot(ctx context.Context, uuid string) (bool, error) {
	return v.apply(ctx, uuid, transition{
		subcommand: "reboot",
		blockedBy:  v.ListInactive,
		blockErr:   hypervisor.ErrVMStopped,
		target:     v.ListActive,
	})
}

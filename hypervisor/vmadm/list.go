package vmadm

import (
	"context"

	"github.com/projecteru2/smartvm/types"
)

// List returns the UUIDs of all VMs on the host.
func (v *Vmadm) List(ctx context.Context) ([]string, error) {
	out, err := v.run(ctx, "list")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ListActive returns the UUIDs of running VMs.
func (v *Vmadm) ListActive(ctx context.Context) ([]string, error) {
	return v.lookup(ctx, types.VMStateRunning)
}

// ListInactive returns the UUIDs of stopped VMs.
func (v *Vmadm) ListInactive(ctx context.Context) ([]string, error) {
	return v.lookup(ctx, types.VMStateStopped)
}

func (v *Vmadm) lookup(ctx context.Context, state types.VMState) ([]string, error) {
	out, err := v.run(ctx, "lookup", state.Filter())
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

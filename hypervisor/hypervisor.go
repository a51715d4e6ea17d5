package hypervisor

import (
	"context"
)

// Hypervisor manages VM lifecycle on the local host. Implemented by each backend.
//
// Lifecycle operations return true when the VM was observed in the target
// state after the command succeeded. false with a nil error means the
// command was accepted but the state did not converge; the caller decides
// whether to retry or escalate.
type Hypervisor interface {
	Type() string

	List(context.Context) ([]string, error)
	ListActive(context.Context) ([]string, error)
	ListInactive(context.Context) ([]string, error)

	Start(ctx context.Context, uuid string) (bool, error)
	Shutdown(ctx context.Context, uuid string) (bool, error)
	Reboot(ctx context.Context, uuid string) (bool, error)
}

package vmadm

import (
	"context"

	"github.com/projecteru2/core/log"

	"github.com/projecteru2/smartvm/hypervisor"
	"github.com/projecteru2/smartvm/lock"
)

// transition describes one state-changing vmadm subcommand.
type transition struct {
	subcommand string
	// blockedBy lists VMs for which the subcommand must not be issued.
	blockedBy func(context.Context) ([]string, error)
	blockErr  error
	// target lists VMs already in the desired state.
	target func(context.Context) ([]string, error)
}

// apply checks the precondition, runs the subcommand, then re-queries the
// target list. The exit code only means vmadm accepted the command; list
// membership decides whether the VM got there.
func (v *Vmadm) apply(ctx context.Context, uuid string, t transition) (bool, error) {
	if uuid == "" {
		return false, hypervisor.ErrMissingUUID
	}
	converged := false
	err := lock.WithLock(ctx, v.locker, func() error {
		blocked, err := inList(ctx, t.blockedBy, uuid)
		if err != nil {
			return err
		}
		if blocked {
			return t.blockErr
		}
		if _, err := v.run(ctx, t.subcommand, quote(uuid)); err != nil {
			return err
		}
		converged, err = inList(ctx, t.target, uuid)
		return err
	})
	if err != nil {
		return false, err
	}
	if !converged {
		log.WithFunc("vmadm."+t.subcommand).Debugf(ctx, "VM %s accepted %s but did not converge", uuid, t.subcommand)
	}
	return converged, nil
}

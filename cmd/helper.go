package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/projecteru2/core/log"

	"github.com/projecteru2/smartvm/hypervisor"
	"github.com/projecteru2/smartvm/hypervisor/vmadm"
	"github.com/projecteru2/smartvm/utils"
)

const waitInterval = time.Second

var errNotConverged = errors.New("command accepted but VM did not reach the expected state")

// initHypervisor initializes the vmadm backend for this host.
func initHypervisor(ctx context.Context) (hypervisor.Hypervisor, error) {
	v, err := vmadm.New(ctx, conf, vmadm.Options{})
	if err != nil {
		return nil, fmt.Errorf("init hypervisor: %w", err)
	}
	return v, nil
}

type lifecycleFunc func(context.Context, string) (bool, error)

// batchVMCmd runs a lifecycle operation on each ref in order and reports
// per-ID results. All refs are attempted; failures are joined.
//
// A VM that accepted the command but is not yet in target is polled for up to
// wait before it is reported as not converged.
func batchVMCmd(ctx context.Context, name, pastTense string, fn lifecycleFunc, target func(context.Context) ([]string, error), wait time.Duration, refs []string) error {
	logger := log.WithFunc("cmd." + name)
	var errs []error
	for _, id := range refs {
		converged, err := fn(ctx, id)
		if err == nil && !converged && wait > 0 {
			converged, err = waitConverged(ctx, target, id, wait)
		}
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("VM %s: %w", id, err))
		case !converged:
			errs = append(errs, fmt.Errorf("VM %s: %w", id, errNotConverged))
		default:
			logger.Infof(ctx, "%s: %s", pastTense, id)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// waitConverged polls target until id shows up or wait elapses. Each list
// call shares the wait deadline, so a hung vmadm can't outlive it.
// Running out of time is not an error; the caller reports it.
func waitConverged(ctx context.Context, target func(context.Context) ([]string, error), id string, wait time.Duration) (bool, error) {
	waitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	err := utils.WaitFor(waitCtx, wait, waitInterval, func() (bool, error) {
		ids, err := target(waitCtx)
		if err != nil {
			return false, err
		}
		return slices.Contains(ids, id), nil
	})
	if errors.Is(err, utils.ErrTimeout) {
		return false, nil
	}
	if err != nil && ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
		return false, nil
	}
	return err == nil, err
}

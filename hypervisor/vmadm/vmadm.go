package vmadm

import (
	"context"
	"fmt"

	"github.com/projecteru2/smartvm/config"
	"github.com/projecteru2/smartvm/host"
	"github.com/projecteru2/smartvm/hypervisor"
	"github.com/projecteru2/smartvm/lock"
	"github.com/projecteru2/smartvm/lock/flock"
	"github.com/projecteru2/smartvm/runner"
)

// Name is the capability name the backend registers under.
const Name = "virt"

// compile-time interface check.
var _ hypervisor.Hypervisor = (*Vmadm)(nil)

// Vmadm implements hypervisor.Hypervisor on top of the SmartOS vmadm CLI.
type Vmadm struct {
	binary string
	runner runner.Runner
	locker lock.Locker
}

// Options carries the collaborators of a Vmadm backend.
// Nil fields are filled from config by New.
type Options struct {
	Runner  runner.Runner
	Facts   host.Facts
	Locator *host.Locator
	Locker  lock.Locker
}

// New creates a Vmadm backend. It returns an error wrapping
// hypervisor.ErrUnavailable when the host is not a match for the capability.
func New(ctx context.Context, conf *config.Config, opts Options) (*Vmadm, error) {
	if conf == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if opts.Facts == nil {
		opts.Facts = DefaultFacts(conf)
	}
	if opts.Locator == nil {
		opts.Locator = host.NewLocator(conf.VmadmBinary)
	}
	binary, err := Available(ctx, conf, opts.Facts, opts.Locator)
	if err != nil {
		return nil, err
	}
	if opts.Runner == nil {
		opts.Runner = runner.NewShell(conf.Shell, conf.CommandTimeout())
	}
	if opts.Locker == nil {
		opts.Locker = defaultLocker(conf)
	}
	return &Vmadm{binary: binary, runner: opts.Runner, locker: opts.Locker}, nil
}

// Available reports whether the capability applies to this host: the host OS
// must equal conf.Platform and the vmadm binary must be on $PATH.
// Returns the resolved binary path.
func Available(ctx context.Context, conf *config.Config, facts host.Facts, locator *host.Locator) (string, error) {
	osName, err := facts.OS(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: detect host os: %w", hypervisor.ErrUnavailable, err)
	}
	if osName != conf.Platform {
		return "", fmt.Errorf("%w: host os %q is not %q", hypervisor.ErrUnavailable, osName, conf.Platform)
	}
	binary, ok := locator.Locate()
	if !ok {
		return "", fmt.Errorf("%w: %s not found in PATH", hypervisor.ErrUnavailable, locator.Name())
	}
	return binary, nil
}

func (v *Vmadm) Type() string { return Name }

// Binary returns the vmadm path substituted into every command line.
func (v *Vmadm) Binary() string { return v.binary }

// DefaultFacts returns static facts when conf.HostOS overrides detection,
// otherwise the running host's facts.
func DefaultFacts(conf *config.Config) host.Facts {
	if conf.HostOS != "" {
		return host.Static{"os": conf.HostOS}
	}
	return host.Detect()
}

func defaultLocker(conf *config.Config) lock.Locker {
	if conf.LockFile == "" {
		return lock.Nop{}
	}
	return flock.New(conf.LockFile)
}

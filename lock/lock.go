package lock

import "context"

// Locker serializes vmadm lifecycle operations (precheck, command and
// post-check) so two callers can't interleave on the same host.
type Locker interface {
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

// WithLock runs fn while holding l. The lock is released even when fn fails.
func WithLock(ctx context.Context, l Locker, fn func() error) error {
	if err := l.Lock(ctx); err != nil {
		return err
	}
	defer l.Unlock(ctx) //nolint:errcheck
	return fn()
}

// Nop leaves operations uncoordinated; the default when no lock_file is set.
type Nop struct{}

func (Nop) Lock(context.Context) error   { return nil }
func (Nop) Unlock(context.Context) error { return nil }

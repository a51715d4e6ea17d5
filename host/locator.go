package host

import (
	"os/exec"
	"sync"
)

// Locator resolves an executable on $PATH once and remembers the answer,
// including a negative one, for its whole lifetime.
type Locator struct {
	name   string
	locate func() (string, error)
}

// NewLocator creates a Locator for the executable name.
func NewLocator(name string) *Locator {
	return newLocator(name, exec.LookPath)
}

func newLocator(name string, lookPath func(string) (string, error)) *Locator {
	return &Locator{
		name: name,
		locate: sync.OnceValues(func() (string, error) {
			return lookPath(name)
		}),
	}
}

// Name returns the executable name being located.
func (l *Locator) Name() string { return l.name }

// Locate returns the resolved path and whether the executable was found.
func (l *Locator) Locate() (string, bool) {
	path, err := l.locate()
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}

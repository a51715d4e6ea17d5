package host

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
)

const releaseFile = "/etc/release"

// Facts exposes host properties used to decide whether a capability applies.
type Facts interface {
	OS(context.Context) (string, error)
}

// Static is a fixed fact map, e.g. {"os": "SmartOS"}.
type Static map[string]string

// OS returns the "os" fact.
func (s Static) OS(_ context.Context) (string, error) {
	v, ok := s["os"]
	if !ok {
		return "", fmt.Errorf("fact %q not set", "os")
	}
	return v, nil
}

// System detects facts from the running host.
type System struct {
	goos        string
	releaseFile string
}

// Detect returns facts for the running host.
func Detect() *System {
	return &System{goos: runtime.GOOS, releaseFile: releaseFile}
}

// OS names the host operating system the way config matches it:
// "SmartOS" or "Solaris" on illumos-family hosts (from /etc/release),
// otherwise the capitalized GOOS.
func (s *System) OS(_ context.Context) (string, error) {
	switch s.goos {
	case "illumos", "solaris":
		first, err := firstLine(s.releaseFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", s.releaseFile, err)
		}
		if strings.Contains(first, "SmartOS") {
			return "SmartOS", nil
		}
		return "Solaris", nil
	default:
		if s.goos == "" {
			return "", fmt.Errorf("unknown GOOS")
		}
		return strings.ToUpper(s.goos[:1]) + s.goos[1:], nil
	}
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	return "", sc.Err()
}

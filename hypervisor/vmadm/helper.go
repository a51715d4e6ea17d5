package vmadm

import (
	"context"
	"slices"
	"strings"

	"github.com/projecteru2/core/log"
)

// run executes "<vmadm> args..." and fails on any non-zero exit.
func (v *Vmadm) run(ctx context.Context, args ...string) (string, error) {
	cmdline := v.binary + " " + strings.Join(args, " ")
	res, err := v.runner.Run(ctx, cmdline)
	if err != nil {
		return "", err
	}
	if err := checkExit(res.ExitCode); err != nil {
		if res.Stderr != "" {
			log.WithFunc("vmadm.run").Debugf(ctx, "%s: exit %d: %s", cmdline, res.ExitCode, strings.TrimSpace(res.Stderr))
		}
		return "", err
	}
	return res.Stdout, nil
}

// splitLines returns one entry per non-blank line, in order.
func splitLines(out string) []string {
	ids := []string{}
	for line := range strings.SplitSeq(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	}
	return ids
}

// quote leaves plain identifiers untouched and single-quotes anything the
// shell could interpret.
func quote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !isSafe(r)
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("-_.:/@%+=,", r):
		return true
	}
	return false
}

// inList queries a list and reports whether uuid is a member.
func inList(ctx context.Context, list func(context.Context) ([]string, error), uuid string) (bool, error) {
	ids, err := list(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, uuid), nil
}

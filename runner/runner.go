package runner

import "context"

// Result is the outcome of one command line.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a shell command line and captures its output.
// A non-zero exit is reported through Result.ExitCode, not as an error;
// an error means the command could not be run at all.
type Runner interface {
	Run(ctx context.Context, cmdline string) (*Result, error)
}

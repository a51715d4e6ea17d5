package vmadm

import (
	"context"
	"fmt"
	"sync"

	"github.com/projecteru2/smartvm/lock"
	"github.com/projecteru2/smartvm/runner"
)

const testBinary = "/usr/sbin/vmadm"

// fakeRunner replays scripted results per command line. The last result
// for a command line repeats once its queue is drained.
type fakeRunner struct {
	mu      sync.Mutex
	results map[string][]*runner.Result
	calls   []string
	err     error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: map[string][]*runner.Result{}}
}

func (f *fakeRunner) on(args string, results ...*runner.Result) *fakeRunner {
	f.results[testBinary+" "+args] = results
	return f
}

func (f *fakeRunner) Run(_ context.Context, cmdline string) (*runner.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmdline)
	if f.err != nil {
		return nil, f.err
	}
	q := f.results[cmdline]
	if len(q) == 0 {
		return nil, fmt.Errorf("unexpected command %q", cmdline)
	}
	res := q[0]
	if len(q) > 1 {
		f.results[cmdline] = q[1:]
	}
	return res, nil
}

func (f *fakeRunner) called(args string) int {
	n := 0
	for _, c := range f.calls {
		if c == testBinary+" "+args {
			n++
		}
	}
	return n
}

func success(stdout string) *runner.Result { return &runner.Result{Stdout: stdout} }

func failure(code int) *runner.Result {
	return &runner.Result{ExitCode: code, Stderr: "vmadm failed"}
}

func newTestVmadm(r runner.Runner) *Vmadm {
	return &Vmadm{binary: testBinary, runner: r, locker: lock.Nop{}}
}

package vmadm

import (
	"errors"
	"testing"

	"github.com/projecteru2/smartvm/hypervisor"
)

func TestExitStatus_Table(t *testing.T) {
	want := map[int]string{
		0: "Successful completion.",
		1: "An error occurred.",
		2: "Usage error.",
	}
	for code, msg := range want {
		got, err := ExitStatus(code)
		if err != nil {
			t.Fatalf("code %d: unexpected error: %v", code, err)
		}
		if got != msg {
			t.Errorf("code %d: expected %q, got %q", code, msg, got)
		}
	}
}

func TestExitStatus_Undefined(t *testing.T) {
	for _, code := range []int{-1, 3, 127, 255} {
		if _, err := ExitStatus(code); !errors.Is(err, hypervisor.ErrUndefinedStatus) {
			t.Errorf("code %d: expected ErrUndefinedStatus, got %v", code, err)
		}
	}
}

func TestCheckExit(t *testing.T) {
	if err := checkExit(0); err != nil {
		t.Errorf("exit 0 must not fail, got %v", err)
	}
	err := checkExit(1)
	var ee *hypervisor.ExitError
	if !errors.As(err, &ee) || ee.Code != 1 || ee.Message != "An error occurred." {
		t.Errorf("expected ExitError{1}, got %v", err)
	}
	if err := checkExit(9); !errors.Is(err, hypervisor.ErrUndefinedStatus) {
		t.Errorf("expected ErrUndefinedStatus, got %v", err)
	}
}

// --- helpers ---

func TestSplitLines(t *testing.T) {
	got := splitLines("a\r\nb\n\n  c  \n")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("expected [a b c], got %q", got)
	}
}

func TestQuote(t *testing.T) {
	cases := map[string]string{
		"9eac5c0c-a941-11e2-a7dc-57a6b041988f": "9eac5c0c-a941-11e2-a7dc-57a6b041988f",
		"two words":                            "'two words'",
		"it's":                                 `'it'\''s'`,
		"$(id)":                                "'$(id)'",
		"":                                     "''",
	}
	for in, want := range cases {
		if got := quote(in); got != want {
			t.Errorf("quote(%q): expected %q, got %q", in, want, got)
		}
	}
}

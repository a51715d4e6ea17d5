package vmadm

import "github.com/projecteru2/smartvm/hypervisor"

// exitStatus translates vmadm exit codes. Any other code is undefined.
var exitStatus = map[int]string{
	0: "Successful completion.",
	1: "An error occurred.",
	2: "Usage error.",
}

// ExitStatus returns the message for a vmadm exit code.
func ExitStatus(code int) (string, error) {
	msg, ok := exitStatus[code]
	if !ok {
		return "", hypervisor.UndefinedStatus(code)
	}
	return msg, nil
}

// checkExit turns a non-zero exit code into an error.
func checkExit(code int) error {
	msg, err := ExitStatus(code)
	if err != nil {
		return err
	}
	if code == 0 {
		return nil
	}
	return &hypervisor.ExitError{Code: code, Message: msg}
}

package types

// VMState is the lifecycle state vmadm reports for a VM.
// smartvm never stores it; membership in a lookup result is the state.
type VMState string

const (
	VMStateRunning VMState = "running"
	VMStateStopped VMState = "stopped"
)

// Filter returns the vmadm lookup filter selecting VMs in this state.
func (s VMState) Filter() string { return "state=" + string(s) }

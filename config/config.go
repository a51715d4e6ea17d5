package config

import (
	"fmt"
	"strings"
	"time"

	coretypes "github.com/projecteru2/core/types"
)

const (
	defaultVmadmBinary    = "vmadm"
	defaultPlatform       = "SmartOS"
	defaultShell          = "/bin/sh"
	defaultCommandTimeout = 60
)

// Config holds global smartvm configuration.
type Config struct {
	// VmadmBinary is the name (or path) of the hypervisor CLI looked up on $PATH.
	// Env: SMARTVM_VMADM_BINARY. Default: "vmadm".
	VmadmBinary string `json:"vmadm_binary" mapstructure:"vmadm_binary"`
	// Platform is the host OS name the capability requires. Compared with
	// exact equality against the detected (or overridden) host OS.
	// Default: "SmartOS".
	Platform string `json:"platform" mapstructure:"platform"`
	// HostOS overrides host OS detection. Empty means detect.
	// Env: SMARTVM_HOST_OS.
	HostOS string `json:"host_os" mapstructure:"host_os"`
	// Shell runs every vmadm command line via "<shell> -c".
	// Default: /bin/sh.
	Shell string `json:"shell" mapstructure:"shell"`
	// CommandTimeoutSeconds bounds a single vmadm invocation. Zero disables it.
	// Default: 60.
	CommandTimeoutSeconds int `json:"command_timeout_seconds" mapstructure:"command_timeout_seconds"`
	// LockFile, when set, serializes lifecycle operations across processes
	// with an exclusive flock on this path. Empty means no locking.
	LockFile string `json:"lock_file" mapstructure:"lock_file"`
	// Log configuration, uses eru core's ServerLogConfig.
	Log *coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		VmadmBinary:           defaultVmadmBinary,
		Platform:              defaultPlatform,
		Shell:                 defaultShell,
		CommandTimeoutSeconds: defaultCommandTimeout,
		Log: &coretypes.ServerLogConfig{
			Level: "info",
		},
	}
}

// Validate fills empty fields with defaults and rejects values that can't work.
func (c *Config) Validate() error {
	c.VmadmBinary = strings.TrimSpace(c.VmadmBinary)
	if c.VmadmBinary == "" {
		return fmt.Errorf("vmadm_binary is required")
	}
	if c.Platform == "" {
		c.Platform = defaultPlatform
	}
	if c.Shell == "" {
		c.Shell = defaultShell
	}
	if c.CommandTimeoutSeconds < 0 {
		return fmt.Errorf("command_timeout_seconds must not be negative, got %d", c.CommandTimeoutSeconds)
	}
	if c.Log == nil {
		c.Log = &coretypes.ServerLogConfig{Level: "info"}
	}
	return nil
}

// CommandTimeout returns the per-command timeout, zero when disabled.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

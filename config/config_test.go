package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.VmadmBinary != "vmadm" {
		t.Errorf("expected vmadm, got %q", c.VmadmBinary)
	}
	if c.Platform != "SmartOS" {
		t.Errorf("expected SmartOS, got %q", c.Platform)
	}
	if c.LockFile != "" {
		t.Errorf("expected locking disabled by default, got %q", c.LockFile)
	}
	if c.Log == nil || c.Log.Level != "info" {
		t.Errorf("expected info log level, got %+v", c.Log)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate_FillsDefaults(t *testing.T) {
	c := &Config{VmadmBinary: "  /usr/sbin/vmadm "}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.VmadmBinary != "/usr/sbin/vmadm" {
		t.Errorf("expected trimmed binary, got %q", c.VmadmBinary)
	}
	if c.Platform != "SmartOS" || c.Shell != "/bin/sh" {
		t.Errorf("expected defaults, got platform=%q shell=%q", c.Platform, c.Shell)
	}
	if c.Log == nil {
		t.Error("expected log config to be filled")
	}
}

func TestValidate_EmptyBinary(t *testing.T) {
	c := DefaultConfig()
	c.VmadmBinary = " "
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	c := DefaultConfig()
	c.CommandTimeoutSeconds = -1
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestCommandTimeout(t *testing.T) {
	c := DefaultConfig()
	if c.CommandTimeout() != 60*time.Second {
		t.Errorf("expected 60s, got %s", c.CommandTimeout())
	}
	c.CommandTimeoutSeconds = 0
	if c.CommandTimeout() != 0 {
		t.Errorf("expected 0, got %s", c.CommandTimeout())
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	coretypes "github.com/projecteru2/core/types"
)

const (
	defaultWaitIntervalSeconds = 5
	defaultWaitTimeoutSeconds  = 60
)

// Config holds global vboxctl configuration.
type Config struct {
	// VBoxManageBinary is the path or name of the VirtualBox management tool.
	// Env: VBOXCTL_VBOXMANAGE_BINARY. Default: "VBoxManage".
	VBoxManageBinary string `json:"vboxmanage_binary" mapstructure:"vboxmanage_binary"`
	// SSHBinary is the path or name of the remote shell client.
	// Default: "ssh".
	SSHBinary string `json:"ssh_binary" mapstructure:"ssh_binary"`
	// Username is the remote account used by run, log and script.
	// Env: VBOXCTL_USERNAME. Default: $USER.
	Username string `json:"username" mapstructure:"username"`
	// WaitIntervalSeconds is the default poll cadence of wait.
	WaitIntervalSeconds int `json:"wait_interval_seconds" mapstructure:"wait_interval_seconds"`
	// WaitTimeoutSeconds is the default deadline of wait.
	WaitTimeoutSeconds int `json:"wait_timeout_seconds" mapstructure:"wait_timeout_seconds"`
	// Output is the default result format: json, yaml or table.
	Output string `json:"output" mapstructure:"output"`
	// Log configuration, uses eru core's ServerLogConfig.
	Log coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		VBoxManageBinary:    "VBoxManage",
		SSHBinary:           "ssh",
		Username:            os.Getenv("USER"),
		WaitIntervalSeconds: defaultWaitIntervalSeconds,
		WaitTimeoutSeconds:  defaultWaitTimeoutSeconds,
		Output:              "json",
		Log: coretypes.ServerLogConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the backend cannot run with.
func (c *Config) Validate() error {
	if c.VBoxManageBinary == "" {
		return fmt.Errorf("vboxmanage_binary is required")
	}
	if c.SSHBinary == "" {
		return fmt.Errorf("ssh_binary is required")
	}
	if c.WaitIntervalSeconds < 0 {
		return fmt.Errorf("wait_interval_seconds must not be negative: %d", c.WaitIntervalSeconds)
	}
	if c.WaitTimeoutSeconds < 0 {
		return fmt.Errorf("wait_timeout_seconds must not be negative: %d", c.WaitTimeoutSeconds)
	}
	return nil
}

// WaitInterval returns the default wait poll interval, falling back to 5s.
func (c *Config) WaitInterval() time.Duration {
	if c.WaitIntervalSeconds <= 0 {
		return defaultWaitIntervalSeconds * time.Second
	}
	return time.Duration(c.WaitIntervalSeconds) * time.Second
}

// WaitTimeout returns the default wait deadline, falling back to 60s.
func (c *Config) WaitTimeout() time.Duration {
	if c.WaitTimeoutSeconds <= 0 {
		return defaultWaitTimeoutSeconds * time.Second
	}
	return time.Duration(c.WaitTimeoutSeconds) * time.Second
}

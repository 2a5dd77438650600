package vbox

import (
	"context"
	"fmt"

	"github.com/projecteru2/vboxctl/config"
	"github.com/projecteru2/vboxctl/hypervisor"
	"github.com/projecteru2/vboxctl/utils"
)

const typ = "virtualbox"

// compile-time interface check.
var _ hypervisor.Hypervisor = (*VirtualBox)(nil)

// runner executes an external program and returns its stdout.
type runner func(ctx context.Context, name string, args ...string) string

// VirtualBox implements hypervisor.Hypervisor on top of the VBoxManage CLI
// and an ssh client. It keeps no state between calls.
type VirtualBox struct {
	hypervisor.Unimplemented

	conf *config.Config
	exec runner
}

// New creates a VirtualBox backend.
func New(conf *config.Config) (*VirtualBox, error) {
	if conf == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return newWithRunner(conf, utils.Output), nil
}

func newWithRunner(conf *config.Config, exec runner) *VirtualBox {
	return &VirtualBox{conf: conf, exec: exec}
}

func (vb *VirtualBox) Type() string { return typ }

// manage runs VBoxManage with args.
func (vb *VirtualBox) manage(ctx context.Context, args ...string) string {
	return vb.exec(ctx, vb.conf.VBoxManageBinary, args...)
}

// remote runs the ssh client against user@host, appending command if set.
func (vb *VirtualBox) remote(ctx context.Context, user, host, command string) string {
	args := []string{user + "@" + host}
	if command != "" {
		args = append(args, command)
	}
	return vb.exec(ctx, vb.conf.SSHBinary, args...)
}

// checkArgs fails with ErrInvalidArgument when any of values is empty.
func checkArgs(msg string, values ...string) error {
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("%w: %s", hypervisor.ErrInvalidArgument, msg)
		}
	}
	return nil
}

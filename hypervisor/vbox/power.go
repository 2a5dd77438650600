package vbox

import (
	"context"
	"fmt"

	"github.com/projecteru2/vboxctl/hypervisor"
	"github.com/projecteru2/vboxctl/types"
)

const errNoName = "VM name must be provided"

// Start boots a powered-off or saved VM.
func (vb *VirtualBox) Start(ctx context.Context, name string) (string, error) {
	return vb.control(ctx, name, "startvm", name)
}

// Stop powers a VM off without a guest shutdown.
func (vb *VirtualBox) Stop(ctx context.Context, name string) (string, error) {
	return vb.control(ctx, name, "controlvm", name, "poweroff")
}

// Suspend saves the VM state to disk and stops it.
func (vb *VirtualBox) Suspend(ctx context.Context, name string) (string, error) {
	return vb.control(ctx, name, "controlvm", name, "savestate")
}

// Resume restarts a VM from its saved state.
func (vb *VirtualBox) Resume(ctx context.Context, name string) (string, error) {
	return vb.control(ctx, name, "startvm", name)
}

// Reboot hard-resets a running VM.
func (vb *VirtualBox) Reboot(ctx context.Context, name string) (string, error) {
	return vb.control(ctx, name, "controlvm", name, "reset")
}

// Destroy unregisters a VM and deletes its files.
func (vb *VirtualBox) Destroy(ctx context.Context, name string) (string, error) {
	return vb.control(ctx, name, "unregistervm", name, "--delete")
}

// Rename changes the registered name of a VM.
func (vb *VirtualBox) Rename(ctx context.Context, name, destination string) (string, error) {
	if err := checkArgs("both current and new VM names must be provided", name, destination); err != nil {
		return "", err
	}
	return vb.manage(ctx, "modifyvm", name, "--name", destination), nil
}

// Create is not offered by this backend yet.
func (vb *VirtualBox) Create(_ context.Context, _ *types.VMConfig) error {
	return fmt.Errorf("%w: create is not yet supported", hypervisor.ErrNotImplemented)
}

func (vb *VirtualBox) control(ctx context.Context, name string, args ...string) (string, error) {
	if err := checkArgs(errNoName, name); err != nil {
		return "", err
	}
	return vb.manage(ctx, args...), nil
}

package vbox

import (
	"context"
	"fmt"
	"io"

	"github.com/projecteru2/vboxctl/hypervisor"
)

// Console is not offered: VirtualBox consoles are reached through its GUI or VRDE.
func (vb *VirtualBox) Console(_ context.Context, _ string) (io.ReadWriteCloser, error) {
	return nil, fmt.Errorf("%w: console", hypervisor.ErrUnsupported)
}

func (vb *VirtualBox) GetServerMetadata(_ context.Context, _ string) (map[string]string, error) {
	return nil, hypervisor.ErrNotImplemented
}

func (vb *VirtualBox) SetServerMetadata(_ context.Context, _ string, _ map[string]string) error {
	return fmt.Errorf("%w: set server metadata is not yet supported", hypervisor.ErrNotImplemented)
}

func (vb *VirtualBox) DeleteServerMetadata(_ context.Context, _ string, _ []string) error {
	return fmt.Errorf("%w: delete server metadata is not yet supported", hypervisor.ErrNotImplemented)
}

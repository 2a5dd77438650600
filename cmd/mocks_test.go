package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/projecteru2/vboxctl/config"
	"github.com/projecteru2/vboxctl/hypervisor"
	"github.com/projecteru2/vboxctl/types"
)

// fakeHypervisor records calls and answers with canned values.
type fakeHypervisor struct {
	hypervisor.Unimplemented

	calls  []string
	raw    string
	vms    []*types.VMSummary
	info   types.VMInfo
	state  string
	script string
}

func (f *fakeHypervisor) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeHypervisor) Type() string { return "fake" }

func (f *fakeHypervisor) lifecycle(op, name string) (string, error) {
	f.record("%s %s", op, name)
	return f.raw, nil
}

func (f *fakeHypervisor) Start(_ context.Context, name string) (string, error) {
	return f.lifecycle("start", name)
}
func (f *fakeHypervisor) Stop(_ context.Context, name string) (string, error) {
	return f.lifecycle("stop", name)
}
func (f *fakeHypervisor) Suspend(_ context.Context, name string) (string, error) {
	return f.lifecycle("suspend", name)
}
func (f *fakeHypervisor) Resume(_ context.Context, name string) (string, error) {
	return f.lifecycle("resume", name)
}
func (f *fakeHypervisor) Reboot(_ context.Context, name string) (string, error) {
	return f.lifecycle("reboot", name)
}
func (f *fakeHypervisor) Destroy(_ context.Context, name string) (string, error) {
	return f.lifecycle("destroy", name)
}
func (f *fakeHypervisor) Rename(_ context.Context, name, destination string) (string, error) {
	return f.lifecycle("rename", name+" "+destination)
}
func (f *fakeHypervisor) Create(_ context.Context, conf *types.VMConfig) error {
	f.record("create %s", conf.Name)
	return fmt.Errorf("%w: create is not yet supported", hypervisor.ErrNotImplemented)
}

func (f *fakeHypervisor) List(context.Context) ([]*types.VMSummary, error) {
	f.record("list")
	return f.vms, nil
}
func (f *fakeHypervisor) Info(_ context.Context, name string) (types.VMInfo, error) {
	f.record("info %s", name)
	return f.info, nil
}
func (f *fakeHypervisor) Status(_ context.Context, name string) (string, error) {
	f.record("status %s", name)
	return f.state, nil
}
func (f *fakeHypervisor) Wait(_ context.Context, name, state string, interval, timeout time.Duration) (*types.WaitOutcome, error) {
	f.record("wait %s %s %s %s", name, state, interval, timeout)
	status := types.WaitTimeout
	if state == f.state {
		status = types.WaitReached
	}
	return &types.WaitOutcome{VM: name, State: state, Status: status}, nil
}

func (f *fakeHypervisor) SSH(_ context.Context, vm, username, command string) (string, error) {
	f.record("ssh %s@%s %s", username, vm, command)
	return f.raw, nil
}
func (f *fakeHypervisor) Run(_ context.Context, vm, command string) (string, error) {
	f.record("run %s %s", vm, command)
	return f.raw, nil
}
func (f *fakeHypervisor) Script(_ context.Context, vm, script string) (string, error) {
	f.record("script %s", vm)
	f.script = script
	return f.raw, nil
}
func (f *fakeHypervisor) Log(_ context.Context, vm string) (string, error) {
	f.record("log %s", vm)
	return f.raw, nil
}

func (f *fakeHypervisor) GetServerMetadata(context.Context, string) (map[string]string, error) {
	return nil, hypervisor.ErrNotImplemented
}
func (f *fakeHypervisor) SetServerMetadata(context.Context, string, map[string]string) error {
	return hypervisor.ErrNotImplemented
}
func (f *fakeHypervisor) DeleteServerMetadata(context.Context, string, []string) error {
	return hypervisor.ErrNotImplemented
}
func (f *fakeHypervisor) Console(context.Context, string) (io.ReadWriteCloser, error) {
	return nil, hypervisor.ErrUnsupported
}

// execute runs the root command with args against f and returns stdout.
func execute(t *testing.T, f *fakeHypervisor, stdin string, args ...string) (string, error) {
	t.Helper()
	orig := newHypervisor
	newHypervisor = func(*config.Config) (hypervisor.Hypervisor, error) { return f, nil }
	t.Cleanup(func() { newHypervisor = orig })

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

// resetFlags restores every flag of cmd and its children to its default so
// values from one test do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

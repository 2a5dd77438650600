package vbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/projecteru2/vboxctl/hypervisor"
)

const (
	// remoteInfoCommand is run inside the guest to locate its log file.
	remoteInfoCommand = "VBoxManage showvminfo --machinereadable"
	noLogFile         = "No log file found"
)

// SSH runs command as username on vm. An empty command leaves the argument
// vector at just the target, so the client opens a login session.
func (vb *VirtualBox) SSH(ctx context.Context, vm, username, command string) (string, error) {
	if err := checkArgs("both VM address and username must be provided", vm, username); err != nil {
		return "", err
	}
	return vb.remote(ctx, username, vm, command), nil
}

// Run executes command on vm as the configured user.
func (vb *VirtualBox) Run(ctx context.Context, vm, command string) (string, error) {
	if err := checkArgs("both VM and command must be provided", vm, command); err != nil {
		return "", err
	}
	if vb.conf.Username == "" {
		return "", fmt.Errorf("%w: no remote username configured", hypervisor.ErrInvalidArgument)
	}
	return vb.remote(ctx, vb.conf.Username, vm, command), nil
}

// Log locates the VM log file through the guest's detail output and returns
// its content.
func (vb *VirtualBox) Log(ctx context.Context, vm string) (string, error) {
	if err := checkArgs(errNoName, vm); err != nil {
		return "", err
	}
	out, err := vb.Run(ctx, vm, remoteInfoCommand)
	if err != nil {
		return "", err
	}
	path := parseLogfile(out)
	if path == "" {
		return noLogFile, nil
	}
	return vb.Run(ctx, vm, "cat "+shellQuote(path))
}

// Script runs every non-blank line of script on vm in order and returns the
// concatenated output. A failing line does not stop the ones after it.
func (vb *VirtualBox) Script(ctx context.Context, vm, script string) (string, error) {
	if err := checkArgs("both VM and script must be provided", vm, script); err != nil {
		return "", err
	}
	var sb strings.Builder
	for line := range strings.SplitSeq(script, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, err := vb.Run(ctx, vm, line)
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

func parseLogfile(out string) string {
	for line := range strings.Lines(out) {
		if !strings.Contains(line, "Logfile") {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if path := strings.Trim(strings.TrimSpace(value), `"`); path != "" {
			return path
		}
	}
	return ""
}

// shellQuote wraps s in single quotes for the remote shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

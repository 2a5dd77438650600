package vbox

import (
	"context"
	"regexp"
	"strings"

	"github.com/projecteru2/vboxctl/types"
)

const stateUnknown = "Unknown"

// infoLine matches a machine-readable `key=value` pair; either side may be
// double-quoted. The key ends at the first '='.
var infoLine = regexp.MustCompile(`^"?(.+?)"?="?(.*?)"?$`)

// Info returns the machine-readable VM details as a key/value map.
func (vb *VirtualBox) Info(ctx context.Context, name string) (types.VMInfo, error) {
	if err := checkArgs(errNoName, name); err != nil {
		return nil, err
	}
	return parseInfo(vb.manage(ctx, "showvminfo", name, "--machinereadable")), nil
}

// Status returns the human-readable state from `showvminfo`, or "Unknown".
func (vb *VirtualBox) Status(ctx context.Context, name string) (string, error) {
	if err := checkArgs(errNoName, name); err != nil {
		return "", err
	}
	return parseState(vb.manage(ctx, "showvminfo", name)), nil
}

func parseInfo(out string) types.VMInfo {
	info := types.VMInfo{}
	for line := range strings.Lines(out) {
		m := infoLine.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m == nil {
			continue
		}
		info[m[1]] = m[2]
	}
	return info
}

func parseState(out string) string {
	for line := range strings.Lines(out) {
		if !strings.Contains(line, "State:") {
			continue
		}
		_, state, _ := strings.Cut(line, ":")
		return strings.TrimSpace(state)
	}
	return stateUnknown
}

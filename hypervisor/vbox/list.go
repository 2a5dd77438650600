package vbox

import (
	"context"
	"regexp"
	"strings"

	"github.com/projecteru2/vboxctl/types"
)

// listLine matches `"<name>" {<uuid>}` as printed by `VBoxManage list vms`.
var listLine = regexp.MustCompile(`^"(.+)" \{(.+)\}$`)

// List returns every registered VM in the order VBoxManage prints them.
func (vb *VirtualBox) List(ctx context.Context) ([]*types.VMSummary, error) {
	return parseList(vb.manage(ctx, "list", "vms")), nil
}

func parseList(out string) []*types.VMSummary {
	vms := []*types.VMSummary{}
	for line := range strings.Lines(out) {
		m := listLine.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m == nil {
			continue
		}
		vms = append(vms, &types.VMSummary{Name: m[1], UUID: m[2]})
	}
	return vms
}

package vbox

import (
	"context"
	"strings"
	"testing"

	"github.com/projecteru2/vboxctl/config"
)

// call records one external invocation.
type call struct {
	name string
	args []string
}

func (c call) String() string { return c.name + " " + strings.Join(c.args, " ") }

// fakeRunner stands in for the process runner. respond, when set, produces
// the stdout for each call; otherwise every call prints nothing.
type fakeRunner struct {
	calls   []call
	respond func(name string, args []string) string
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) string {
	f.calls = append(f.calls, call{name: name, args: args})
	if f.respond == nil {
		return ""
	}
	return f.respond(name, args)
}

// replyWith returns a runner that prints out for every call.
func replyWith(out string) *fakeRunner {
	return &fakeRunner{respond: func(string, []string) string { return out }}
}

func testConfig() *config.Config {
	conf := config.DefaultConfig()
	conf.Username = "vagrant"
	return conf
}

func newTestVirtualBox(t *testing.T, f *fakeRunner) *VirtualBox {
	t.Helper()
	return newWithRunner(testConfig(), f.run)
}

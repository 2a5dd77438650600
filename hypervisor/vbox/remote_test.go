package vbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecteru2/vboxctl/hypervisor"
)

func TestSSH(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"with command", "uptime", "ssh alice@10.0.0.5 uptime"},
		{"without command", "", "ssh alice@10.0.0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := replyWith("ok\n")
			vb := newTestVirtualBox(t, f)

			out, err := vb.SSH(t.Context(), "10.0.0.5", "alice", tt.command)
			require.NoError(t, err)
			assert.Equal(t, "ok\n", out)
			require.Len(t, f.calls, 1)
			assert.Equal(t, tt.want, strings.TrimSpace(f.calls[0].String()))
		})
	}
}

func TestSSH_MissingArgs(t *testing.T) {
	f := &fakeRunner{}
	vb := newTestVirtualBox(t, f)

	_, err := vb.SSH(t.Context(), "", "alice", "")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	_, err = vb.SSH(t.Context(), "10.0.0.5", "", "")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	assert.Empty(t, f.calls)
}

func TestRun(t *testing.T) {
	f := replyWith("hello\n")
	vb := newTestVirtualBox(t, f)

	out, err := vb.Run(t.Context(), "web", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
	require.Len(t, f.calls, 1)
	assert.Equal(t, "ssh", f.calls[0].name)
	assert.Equal(t, []string{"vagrant@web", "echo hello"}, f.calls[0].args)
}

func TestRun_MissingArgs(t *testing.T) {
	f := &fakeRunner{}
	vb := newTestVirtualBox(t, f)

	_, err := vb.Run(t.Context(), "web", "")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	_, err = vb.Run(t.Context(), "", "ls")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	assert.Empty(t, f.calls)
}

func TestRun_NoConfiguredUser(t *testing.T) {
	f := &fakeRunner{}
	vb := newTestVirtualBox(t, f)
	vb.conf.Username = ""

	_, err := vb.Run(t.Context(), "web", "ls")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	assert.Empty(t, f.calls)
}

func TestLog(t *testing.T) {
	f := &fakeRunner{}
	f.respond = func(_ string, args []string) string {
		if args[1] == remoteInfoCommand {
			return "name=\"web\"\nLogfile=\"/var/log/x.log\"\n"
		}
		return "00:00:00.000 VirtualBox VM starting\n"
	}
	vb := newTestVirtualBox(t, f)

	out, err := vb.Log(t.Context(), "web")
	require.NoError(t, err)
	assert.Equal(t, "00:00:00.000 VirtualBox VM starting\n", out)

	require.Len(t, f.calls, 2)
	assert.Equal(t, []string{"vagrant@web", "VBoxManage showvminfo --machinereadable"}, f.calls[0].args)
	assert.Equal(t, []string{"vagrant@web", "cat '/var/log/x.log'"}, f.calls[1].args)
}

func TestLog_NotFound(t *testing.T) {
	f := replyWith("name=\"web\"\nmemory=1024\n")
	vb := newTestVirtualBox(t, f)

	out, err := vb.Log(t.Context(), "web")
	require.NoError(t, err)
	assert.Equal(t, "No log file found", out)
	assert.Len(t, f.calls, 1)
}

func TestLog_MissingVM(t *testing.T) {
	f := &fakeRunner{}
	_, err := newTestVirtualBox(t, f).Log(t.Context(), "")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	assert.Empty(t, f.calls)
}

func TestParseLogfile(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"quoted", `Logfile="/var/log/x.log"`, "/var/log/x.log"},
		{"unquoted with spaces", "Logfile = /home/me/VirtualBox VMs/web/Logs/VBox.log\n", "/home/me/VirtualBox VMs/web/Logs/VBox.log"},
		{"line without separator skipped", "Logfile\nLogfile=\"/a.log\"\n", "/a.log"},
		{"absent", "name=web\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogfile(tt.out))
		})
	}
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'/a b/c.log'`, shellQuote("/a b/c.log"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestScript(t *testing.T) {
	f := &fakeRunner{}
	f.respond = func(_ string, args []string) string {
		return strings.TrimPrefix(args[1], "echo ") + "\n"
	}
	vb := newTestVirtualBox(t, f)

	out, err := vb.Script(t.Context(), "web", "echo a\n\necho b")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
	require.Len(t, f.calls, 2)
	assert.Equal(t, "echo a", f.calls[0].args[1])
	assert.Equal(t, "echo b", f.calls[1].args[1])
}

func TestScript_FailingLineDoesNotStop(t *testing.T) {
	f := &fakeRunner{}
	f.respond = func(_ string, args []string) string {
		if args[1] == "false" {
			return ""
		}
		return args[1] + "\n"
	}
	vb := newTestVirtualBox(t, f)

	out, err := vb.Script(t.Context(), "web", "one\nfalse\n   \nthree\n")
	require.NoError(t, err)
	assert.Equal(t, "one\nthree\n", out)
	assert.Len(t, f.calls, 3)
}

func TestScript_MissingArgs(t *testing.T) {
	f := &fakeRunner{}
	vb := newTestVirtualBox(t, f)

	_, err := vb.Script(t.Context(), "web", "")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	_, err = vb.Script(t.Context(), "", "ls")
	assert.ErrorIs(t, err, hypervisor.ErrInvalidArgument)
	assert.Empty(t, f.calls)
}

package hypervisor

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/projecteru2/vboxctl/types"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("operation not supported")
	ErrNotImplemented  = errors.New("not implemented")
)

// Lifecycle changes the runtime or registration state of a single VM.
// Every method returns the management tool's output verbatim.
type Lifecycle interface {
	Start(ctx context.Context, name string) (string, error)
	Stop(ctx context.Context, name string) (string, error)
	Suspend(ctx context.Context, name string) (string, error)
	Resume(ctx context.Context, name string) (string, error)
	Reboot(ctx context.Context, name string) (string, error)
	Rename(ctx context.Context, name, destination string) (string, error)
	Destroy(ctx context.Context, name string) (string, error)
	Create(ctx context.Context, conf *types.VMConfig) error
}

// Inspector reads VM state.
type Inspector interface {
	List(context.Context) ([]*types.VMSummary, error)
	Info(ctx context.Context, name string) (types.VMInfo, error)
	Status(ctx context.Context, name string) (string, error)
	// Wait polls Status every interval until it equals state or timeout
	// elapses. Zero interval or timeout selects the backend default.
	Wait(ctx context.Context, name, state string, interval, timeout time.Duration) (*types.WaitOutcome, error)
}

// Remote executes commands inside a guest over a remote shell.
type Remote interface {
	SSH(ctx context.Context, vm, username, command string) (string, error)
	Run(ctx context.Context, vm, command string) (string, error)
	Script(ctx context.Context, vm, script string) (string, error)
	Log(ctx context.Context, vm string) (string, error)
}

type Metadata interface {
	GetServerMetadata(ctx context.Context, name string) (map[string]string, error)
	SetServerMetadata(ctx context.Context, name string, metadata map[string]string) error
	DeleteServerMetadata(ctx context.Context, name string, keys []string) error
}

type KeyManager interface {
	Keys(context.Context) ([]*types.Key, error)
	KeyUpload(ctx context.Context, key *types.Key) error
	KeyDelete(ctx context.Context, name string) error
}

type Catalog interface {
	Images(context.Context) ([]*types.Image, error)
	Image(ctx context.Context, name string) (*types.Image, error)
	Flavors(context.Context) ([]*types.Flavor, error)
	Flavor(ctx context.Context, name string) (*types.Flavor, error)
}

type PublicIPs interface {
	AttachPublicIP(ctx context.Context, name, ip string) error
	DetachPublicIP(ctx context.Context, name, ip string) error
	DeletePublicIP(ctx context.Context, ip string) error
	ListPublicIPs(ctx context.Context, available bool) ([]string, error)
	CreatePublicIP(context.Context) (string, error)
	FindAvailablePublicIP(context.Context) (string, error)
	GetPublicIP(ctx context.Context, name string) (string, error)
}

type SecGroups interface {
	ListSecGroups(ctx context.Context, name string) ([]*types.SecGroup, error)
	ListSecGroupRules(ctx context.Context, name string) ([]*types.SecGroupRule, error)
	UploadSecGroup(ctx context.Context, name string) error
	AddSecGroup(ctx context.Context, name, description string) error
	AddSecGroupRule(ctx context.Context, rule *types.SecGroupRule) error
	RemoveSecGroup(ctx context.Context, name string) error
	AddRulesToSecGroup(ctx context.Context, name string, rules []*types.SecGroupRule) error
	RemoveRulesFromSecGroup(ctx context.Context, name string, rules []*types.SecGroupRule) error
}

// Hypervisor is the full compute-provider capability set. Backends that do
// not offer a capability return ErrNotImplemented or ErrUnsupported.
type Hypervisor interface {
	Type() string

	Lifecycle
	Inspector
	Remote
	Metadata
	KeyManager
	Catalog
	PublicIPs
	SecGroups

	Console(ctx context.Context, vm string) (io.ReadWriteCloser, error)
}

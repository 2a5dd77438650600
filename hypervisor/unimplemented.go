package hypervisor

import (
	"context"

	"github.com/projecteru2/vboxctl/types"
)

// Unimplemented answers every key, catalog, public IP and security group
// call with ErrNotImplemented. Embed it in backends that manage none of them.
type Unimplemented struct{}

func (Unimplemented) Keys(context.Context) ([]*types.Key, error) { return nil, ErrNotImplemented }
func (Unimplemented) KeyUpload(context.Context, *types.Key) error { return ErrNotImplemented }
func (Unimplemented) KeyDelete(context.Context, string) error { return ErrNotImplemented }
func (Unimplemented) Images(context.Context) ([]*types.Image, error) { return nil, ErrNotImplemented }
func (Unimplemented) Image(context.Context, string) (*types.Image, error) { return nil, ErrNotImplemented }
func (Unimplemented) Flavors(context.Context) ([]*types.Flavor, error) { return nil, ErrNotImplemented }
func (Unimplemented) Flavor(context.Context, string) (*types.Flavor, error) { return nil, ErrNotImplemented }

func (Unimplemented) AttachPublicIP(context.Context, string, string) error { return ErrNotImplemented }
func (Unimplemented) DetachPublicIP(context.Context, string, string) error { return ErrNotImplemented }
func (Unimplemented) DeletePublicIP(context.Context, string) error { return ErrNotImplemented }
func (Unimplemented) ListPublicIPs(context.Context, bool) ([]string, error) {
	return nil, ErrNotImplemented
}
func (Unimplemented) CreatePublicIP(context.Context) (string, error) { return "", ErrNotImplemented }
func (Unimplemented) FindAvailablePublicIP(context.Context) (string, error) { return "", ErrNotImplemented }
func (Unimplemented) GetPublicIP(context.Context, string) (string, error) { return "", ErrNotImplemented }

func (Unimplemented) ListSecGroups(context.Context, string) ([]*types.SecGroup, error) {
	return nil, ErrNotImplemented
}
func (Unimplemented) ListSecGroupRules(context.Context, string) ([]*types.SecGroupRule, error) {
	return nil, ErrNotImplemented
}
func (Unimplemented) UploadSecGroup(context.Context, string) error { return ErrNotImplemented }
func (Unimplemented) AddSecGroup(context.Context, string, string) error { return ErrNotImplemented }
func (Unimplemented) AddSecGroupRule(context.Context, *types.SecGroupRule) error { return ErrNotImplemented }
func (Unimplemented) RemoveSecGroup(context.Context, string) error { return ErrNotImplemented }
func (Unimplemented) AddRulesToSecGroup(context.Context, string, []*types.SecGroupRule) error {
	return ErrNotImplemented
}
func (Unimplemented) RemoveRulesFromSecGroup(context.Context, string, []*types.SecGroupRule) error {
	return ErrNotImplemented
}

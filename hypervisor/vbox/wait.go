package vbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	units "github.com/docker/go-units"
	"github.com/projecteru2/core/log"

	"github.com/projecteru2/vboxctl/hypervisor"
	"github.com/projecteru2/vboxctl/types"
	"github.com/projecteru2/vboxctl/utils"
)

// Wait polls Status at a fixed interval until it reports state or timeout
// elapses. The first poll happens immediately. Zero interval or timeout
// selects the configured default.
func (vb *VirtualBox) Wait(ctx context.Context, name, state string, interval, timeout time.Duration) (*types.WaitOutcome, error) {
	if err := checkArgs("both VM and state must be provided", name, state); err != nil {
		return nil, err
	}
	if interval < 0 || timeout < 0 {
		return nil, fmt.Errorf("%w: interval and timeout must be positive", hypervisor.ErrInvalidArgument)
	}
	if interval == 0 {
		interval = vb.conf.WaitInterval()
	}
	if timeout == 0 {
		timeout = vb.conf.WaitTimeout()
	}

	logger := log.WithFunc("vbox.Wait")
	outcome := &types.WaitOutcome{VM: name, State: state, Status: types.WaitReached}
	start := time.Now()
	polls := 0

	err := utils.WaitFor(ctx, timeout, interval, func() (bool, error) {
		polls++
		current, err := vb.Status(ctx, name)
		if err != nil {
			return false, err
		}
		logger.Debugf(ctx, "poll %d: VM %s is %q, want %q", polls, name, current, state)
		return current == state, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, utils.ErrTimeout):
		outcome.Status = types.WaitTimeout
	default:
		return nil, fmt.Errorf("wait for VM %s: %w", name, err)
	}

	logger.Infof(ctx, "VM %s %s %q after %s (%d polls)", name, outcome.Status, state, units.HumanDuration(time.Since(start)), polls)
	return outcome, nil
}

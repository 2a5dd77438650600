package utils

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/projecteru2/core/log"
)

// Output runs name with args, waits for it to exit and returns what it wrote
// to stdout. A failed start or a non-zero exit is logged, not returned: the
// caller always gets the captured stdout, which may be empty.
func Output(ctx context.Context, name string, args ...string) string {
	logger := log.WithFunc("utils.Output")
	logger.Debugf(ctx, "exec: %s %s", name, strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		logger.Warnf(ctx, "%s %s: %v: %s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String()
}

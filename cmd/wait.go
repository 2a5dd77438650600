package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var waitCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait [flags] VM STATE",
		Short: "Wait until a VM reports a state",
		Long: "Poll the VM state at a fixed interval until it equals STATE or the timeout elapses.\n" +
			"STATE is compared with the full text printed by `status`.",
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: runWait,
	}
	cmd.Flags().Var(new(seconds), "interval", "poll interval, in seconds or as a duration like 500ms (default from wait_interval_seconds, 5)")
	cmd.Flags().Var(new(seconds), "timeout", "give up after this long, in seconds or as a duration like 2m (default from wait_timeout_seconds, 60)")
	return cmd
}()

func runWait(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	interval := time.Duration(*cmd.Flags().Lookup("interval").Value.(*seconds))
	timeout := time.Duration(*cmd.Flags().Lookup("timeout").Value.(*seconds))

	outcome, err := hyper.Wait(commandContext(cmd), args[0], args[1], interval, timeout)
	if err != nil {
		return fmt.Errorf("wait: %w", err)
	}
	return printResult(cmd, outcome)
}

// seconds is a duration flag that also takes a bare number of seconds.
type seconds time.Duration

func (s *seconds) String() string { return time.Duration(*s).String() }

func (s *seconds) Set(v string) error {
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		*s = seconds(n * float64(time.Second))
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%q is neither seconds nor a duration", v)
	}
	*s = seconds(d)
	return nil
}

func (s *seconds) Type() string { return "seconds" }

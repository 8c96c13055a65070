package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/querylab/queryjob/internal/config"
	"github.com/querylab/queryjob/internal/jobs"
	"github.com/querylab/queryjob/pkg/log"
)

// ErrWaitTimedOut is returned when the job did not complete within the
// requested timeout.
var ErrWaitTimedOut = errors.New("timed out waiting for job to complete")

type WaitOptions struct {
	GlobalOptions

	Timeout      time.Duration
	PollInterval time.Duration
}

func DefaultWaitOptions() *WaitOptions {
	return &WaitOptions{
		GlobalOptions: DefaultGlobalOptions(),
		PollInterval:  jobs.DefaultPollInterval,
	}
}

func NewCmdWait() *cobra.Command {
	o := DefaultWaitOptions()
	cmd := &cobra.Command{
		Use:   "wait JOB_ID",
		Short: "Block until a job reaches terminal state or the timeout expires.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *WaitOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Give up after this long. Zero means wait forever.")
	fs.DurationVar(&o.PollInterval, "poll-interval", o.PollInterval, "Interval between status polls. Defaults to QUERYJOB_POLL_INTERVAL.")
}

func (o *WaitOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	// The environment seeds the poll interval unless the flag was given.
	if !cmd.Flags().Changed("poll-interval") {
		cfg, err := config.NewDefault()
		if err != nil {
			return err
		}
		o.PollInterval = cfg.Service.PollInterval
	}
	return nil
}

func (o *WaitOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if o.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive")
	}
	return nil
}

func (o *WaitOptions) Run(ctx context.Context, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger := log.FromLevel(cfg.Service.LogLevel)
	defer func() { _ = logger.Sync() }()

	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	waitOpts := jobs.WaitOptions{PollInterval: o.PollInterval}
	if o.Timeout > 0 {
		timeout := o.Timeout
		waitOpts.Timeout = &timeout
	}

	handle := jobs.NewHandle(c, args[0])
	logger.Info("waiting for job",
		zap.String("job_id", handle.ID()),
		zap.Duration("poll_interval", o.PollInterval),
		zap.Duration("timeout", o.Timeout))

	completed, err := handle.Wait(ctx, waitOpts)
	if err != nil {
		return fmt.Errorf("waiting for job %s: %w", args[0], err)
	}
	if !completed {
		return ErrWaitTimedOut
	}

	report, err := buildReport(ctx, handle, true)
	if err != nil {
		return err
	}
	printStatusTable(report)
	return nil
}

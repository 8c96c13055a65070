package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	"github.com/querylab/queryjob/internal/jobs"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type StatusOptions struct {
	GlobalOptions

	Output string
}

func DefaultStatusOptions() *StatusOptions {
	return &StatusOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdStatus() *cobra.Command {
	o := DefaultStatusOptions()
	cmd := &cobra.Command{
		Use:   "status JOB_ID",
		Short: "Display the current state of a job.",
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

func (o *StatusOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *StatusOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

func (o *StatusOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	handle := jobs.NewHandle(c, args[0])
	complete, err := handle.IsComplete(ctx)
	if err != nil {
		return fmt.Errorf("reading job %s: %w", args[0], err)
	}

	report, err := buildReport(ctx, handle, complete)
	if err != nil {
		return err
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Println(string(marshalled))
	case yamlFormat:
		marshalled, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Print(string(marshalled))
	default:
		printStatusTable(report)
	}
	return nil
}

// jobReport is the CLI-facing rendering of a handle's cached state.
type jobReport struct {
	ID         string             `json:"id"`
	Complete   bool               `json:"complete"`
	Failed     bool               `json:"failed"`
	FatalError *jobs.ErrorDetail  `json:"fatalError,omitempty"`
	Errors     []jobs.ErrorDetail `json:"errors,omitempty"`
}

func buildReport(ctx context.Context, handle *jobs.Handle, complete bool) (*jobReport, error) {
	failed, err := handle.Failed(ctx)
	if err != nil {
		return nil, err
	}
	fatalError, err := handle.FatalError(ctx)
	if err != nil {
		return nil, err
	}
	jobErrors, err := handle.Errors(ctx)
	if err != nil {
		return nil, err
	}
	return &jobReport{
		ID:         handle.ID(),
		Complete:   complete,
		Failed:     failed,
		FatalError: fatalError,
		Errors:     jobErrors,
	}, nil
}

func printStatusTable(report *jobReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tCOMPLETE\tFAILED\tERRORS")
	fmt.Fprintf(w, "%s\t%t\t%t\t%d\n", report.ID, report.Complete, report.Failed, len(report.Errors))
	if report.FatalError != nil {
		fmt.Fprintf(w, "\nfatal error: %s\n", report.FatalError)
	}
	for _, detail := range report.Errors {
		fmt.Fprintf(w, "error: %s\n", detail)
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/querylab/queryjob/internal/client"
)

func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the client configuration file.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.AddCommand(newCmdConfigSetServer())
	return cmd
}

type ConfigSetServerOptions struct {
	GlobalOptions
}

func DefaultConfigSetServerOptions() *ConfigSetServerOptions {
	return &ConfigSetServerOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func newCmdConfigSetServer() *cobra.Command {
	o := DefaultConfigSetServerOptions()
	cmd := &cobra.Command{
		Use:   "set-server SERVER_URL",
		Short: "Persist the query service URL to the client config file.",
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

func (o *ConfigSetServerOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	config := client.NewDefault()
	config.Service.Server = args[0]
	return config.Validate()
}

func (o *ConfigSetServerOptions) Run(ctx context.Context, args []string) error {
	if err := client.WriteConfig(o.ConfigFilePath, args[0]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", o.ConfigFilePath)
	return nil
}

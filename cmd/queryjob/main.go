package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/querylab/queryjob/internal/cli"
)

func main() {
	command := NewQueryJobCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewQueryJobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queryjob [flags] [options]",
		Short: "queryjob tracks asynchronous jobs on the query service.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdConfig())
	cmd.AddCommand(cli.NewCmdStatus())
	cmd.AddCommand(cli.NewCmdWait())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}

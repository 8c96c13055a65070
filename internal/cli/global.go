package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/querylab/queryjob/internal/client"
	"github.com/querylab/queryjob/internal/config"
)

type GlobalOptions struct {
	ServerUrl      string
	ConfigFilePath string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ServerUrl:      "",
		ConfigFilePath: client.DefaultConfigPath(),
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of the query service")
	fs.StringVarP(&o.ConfigFilePath, "config", "c", o.ConfigFilePath, "Path to the client config file")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Client builds the API client from the server-url flag when given,
// otherwise from the config file.
func (o *GlobalOptions) Client() (*client.Client, error) {
	if o.ServerUrl != "" {
		config := client.NewDefault()
		config.Service.Server = o.ServerUrl
		return client.NewFromConfig(config)
	}
	if _, err := os.Stat(o.ConfigFilePath); err == nil {
		return client.NewFromConfigFile(o.ConfigFilePath)
	}
	// No flag and no config file: fall back to the environment.
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	clientConfig := client.NewDefault()
	clientConfig.Service.Server = cfg.Service.Server
	return client.NewFromConfig(clientConfig)
}

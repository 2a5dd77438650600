package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/projecteru2/vboxctl/config"
	"github.com/projecteru2/vboxctl/output"
)

var (
	cfgFile string
	envFile string
	conf    *config.Config
)

var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vboxctl",
		Short:        "vboxctl - VirtualBox VM control",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(commandContext(cmd))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file path")
	flags.StringVar(&envFile, "env-file", "", "dotenv file exported before reading VBOXCTL_* variables")
	flags.String("vboxmanage", "", "VBoxManage binary path")
	flags.String("ssh", "", "ssh client binary path")
	flags.StringP("user", "u", "", "remote username for run, log and script")
	flags.StringP("output", "o", "", "output format: json, yaml or table")
	flags.String("log-level", "", "log level")

	bindFlags(flags, map[string]string{
		"vboxmanage_binary": "vboxmanage",
		"ssh_binary":        "ssh",
		"username":          "user",
		"output":            "output",
		"log.level":         "log-level",
	})

	viper.SetEnvPrefix("VBOXCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(
		listCmd,
		startCmd,
		stopCmd,
		suspendCmd,
		resumeCmd,
		rebootCmd,
		renameCmd,
		destroyCmd,
		infoCmd,
		statusCmd,
		waitCmd,
		sshCmd,
		runCmd,
		logCmd,
		scriptCmd,
		consoleCmd,
		createCmd,
		imagesCmd,
		flavorsCmd,
		keysCmd,
		versionCmd,
	)

	return cmd
}()

// bindFlags binds config keys to persistent flags.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func initConfig(ctx context.Context) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	conf = config.DefaultConfig()
	// Register every key so AutomaticEnv can resolve it during Unmarshal.
	viper.SetDefault("vboxmanage_binary", conf.VBoxManageBinary)
	viper.SetDefault("ssh_binary", conf.SSHBinary)
	viper.SetDefault("username", conf.Username)
	viper.SetDefault("wait_interval_seconds", conf.WaitIntervalSeconds)
	viper.SetDefault("wait_timeout_seconds", conf.WaitTimeoutSeconds)
	viper.SetDefault("output", conf.Output)
	viper.SetDefault("log.level", conf.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	if err := viper.Unmarshal(conf); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := output.ValidateFormat(conf.Output); err != nil {
		return err
	}

	return log.SetupLog(ctx, &conf.Log, "")
}

// Execute is the main entry point called from main.go.
func Execute() error {
	ctx, cancel := newCommandContext()
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}

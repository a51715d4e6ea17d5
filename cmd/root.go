package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/projecteru2/smartvm/config"
)

var (
	cfgFile string
	conf    *config.Config
)

var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smartvm",
		Short:         "smartvm - vmadm VM lifecycle for SmartOS hosts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(commandContext(cmd))
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	cmd.PersistentFlags().String("vmadm", "vmadm", "vmadm binary name or path")
	cmd.PersistentFlags().String("host-os", "", "override detected host OS")
	cmd.PersistentFlags().String("lock-file", "", "serialize lifecycle operations with this flock file")
	cmd.PersistentFlags().String("log-level", "info", "log level")

	_ = viper.BindPFlag("vmadm_binary", cmd.PersistentFlags().Lookup("vmadm"))
	_ = viper.BindPFlag("host_os", cmd.PersistentFlags().Lookup("host-os"))
	_ = viper.BindPFlag("lock_file", cmd.PersistentFlags().Lookup("lock-file"))
	_ = viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))

	viper.SetEnvPrefix("SMARTVM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(
		listCmd,
		startCmd,
		stopCmd,
		rebootCmd,
		checkCmd,
		zoneCmd,
		versionCmd,
	)

	return cmd
}()

func initConfig(ctx context.Context) error {
	conf = config.DefaultConfig()
	registerDefaults(conf)

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

	return log.SetupLog(ctx, conf.Log, "")
}

// registerDefaults makes every config key known to viper. AutomaticEnv and
// Unmarshal only see keys viper already knows, so without this the
// SMARTVM_* variables of unbound keys are ignored.
func registerDefaults(d *config.Config) {
	viper.SetDefault("vmadm_binary", d.VmadmBinary)
	viper.SetDefault("platform", d.Platform)
	viper.SetDefault("host_os", d.HostOS)
	viper.SetDefault("shell", d.Shell)
	viper.SetDefault("command_timeout_seconds", d.CommandTimeoutSeconds)
	viper.SetDefault("lock_file", d.LockFile)
	viper.SetDefault("log.level", d.Log.Level)
}

// Execute is the main entry point called from main.go.
func Execute() error {
	ctx, cancel := newCommandContext()
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}

// newCommandContext is canceled on SIGINT/SIGTERM so an in-flight vmadm
// invocation is killed with the CLI.
func newCommandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

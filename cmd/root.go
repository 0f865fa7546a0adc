// -- cmd/root.go --
package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/observability"
)

var (
	cfgFile string
	appCfg  config.Config
	// runID tags every log line of one invocation so reports and logs
	// can be correlated after the fact.
	runID string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "pagemark",
	Short:   "Pagemark answers geometry queries against rendered-page annotation snapshots.",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Runs before any command: config first, then logging.
		cfg, err := config.Load(viper.GetViper(), cfgFile)
		if err != nil {
			observability.InitializeLogger(config.LoggerConfig{
				Level: "info", Format: "console", ServiceName: "pagemark",
			})
			return err
		}
		appCfg = cfg

		observability.InitializeLogger(cfg.Logger)

		runID = uuid.NewString()
		observability.GetLogger().Debug("Starting pagemark",
			zap.String("version", Version),
			zap.String("run_id", runID))
		return nil
	},
}

// Execute adds all child commands to the root command and runs it under
// the given context.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

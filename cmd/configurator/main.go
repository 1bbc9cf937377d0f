package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"frame-configurator/internal/config"
	"frame-configurator/internal/logger"
)

var (
	// Global flags
	configPath string
	logPath    string
	debugLog   bool

	cfg config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "configurator",
	Short: "Parametric window-frame configurator",
	Long: `configurator shows a window-frame assembly and lets you change its height, width,
zone colours and modular subdivision.

Run without a subcommand to open the interactive viewer. Press ESC in the viewer for the
command terminal ("cmd help" lists the commands).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New(logPath, debugLog)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			// Defaults are still usable.
			log.Warn("config not loaded, using defaults", zap.String("path", configPath), zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", logger.LogFilePath, "log file (empty for memory only)")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "debug logging")

	rootCmd.AddCommand(viewCmd, inspectCmd, exportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

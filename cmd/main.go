package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"monastery-guide/internal/config"
	"monastery-guide/internal/logging"
)

var (
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monastery-guide",
	Short: "Monasteries 360 guide: site server, catalog API and AI assistant",
	Long: `monastery-guide serves the Monasteries of Sikkim site together with its
JSON API: the monastery and festival catalog, AI insights per monastery, image
search, booking quotes and the chat assistant.

Run "serve" for a local HTTP server or "lambda" behind API Gateway.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		l, err := logging.New(loaded.Logging)
		if err != nil {
			return err
		}
		cfg, logger = loaded, l
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd, lambdaCmd, askCmd, insightCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/logger"
)

const (
	app       = "relevance"
	envPrefix = "RELEVANCE"
)

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "relevance scores resumes against job descriptions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().Bool("log-json", false, "json format for logging")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("log-json", rootCmd.PersistentFlags().Lookup("log-json")); err != nil {
		log.Fatalf("binding log-json flag: %v", err)
	}
}

func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("log-json"), viper.GetBool("debug"))
}

func bindFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

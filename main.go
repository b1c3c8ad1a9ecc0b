package main

import (
	"fmt"
	"os"

	"github.com/monobilisim/check-rabbitmq-queues/common"
	"github.com/monobilisim/check-rabbitmq-queues/queueHealth"
	"github.com/spf13/cobra"
)

var Version = "devel"

var RootCmd = &cobra.Command{
	Use:     "check_rabbitmq_queues",
	Short:   "Check RabbitMQ queue lengths against configured thresholds",
	Version: Version,
	Run:     queueHealth.Main,
	// Stdout carries exactly one status line per run, so cobra must not
	// print errors or usage on its own.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	common.InitZerolog()
	queueHealth.Version = Version

	RootCmd.Flags().StringP("config", "c", common.DefaultConfigPath, "Path to config")
	RootCmd.Flags().Bool("detail", false, "Render a per-queue report to stderr")
	RootCmd.Flags().Duration("timeout", 0, "Override the management API request timeout")

	if err := RootCmd.Execute(); err != nil {
		fmt.Printf("WARNING - unhandled Exception: %v\n", err)
		os.Exit(common.ExitWarning)
	}
}

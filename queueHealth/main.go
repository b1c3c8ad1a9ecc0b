package queueHealth

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/monobilisim/check-rabbitmq-queues/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set from main at build time.
var Version = "devel"

// Main is the cobra run function for the probe. It never returns; the
// process exits with the code the run produced.
func Main(cmd *cobra.Command, args []string) {
	var exiter common.Exiter = common.OSExiter{}
	exiter.Exit(Run(cmd))
}

// Run performs one probe invocation and returns the exit code. Any failure
// not already downgraded to a per-queue WARNING by the checker is caught
// here and reported as a WARNING-level outcome, so the monitoring
// supervisor never sees a bare crash.
func Run(cmd *cobra.Command) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("WARNING - unhandled Exception: %v\n", r)
			if common.DebugEnabled() {
				os.Stderr.Write(debug.Stack())
			}
			code = common.ExitWarning
		}
	}()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = common.DefaultConfigPath
	}

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		if errors.Is(err, common.ErrConfigMissing) {
			fmt.Fprintf(os.Stderr, "Configuration file %s does not exist.\n", configPath)
			return common.ExitConfigMissing
		}
		return reportUnhandled(err)
	}

	if timeout, err := cmd.Flags().GetDuration("timeout"); err == nil && timeout > 0 {
		cfg.Timeout = timeout
	}

	client, err := NewClient(cfg)
	if err != nil {
		return reportUnhandled(err)
	}

	stats := Check(client, cfg.Vhost, cfg.Queues)

	if detail, _ := cmd.Flags().GetBool("detail"); detail {
		fmt.Fprintln(os.Stderr, RenderDetail(cfg, stats))
	}

	switch {
	case len(stats.Critical) > 0:
		fmt.Printf("CRITICAL - %s.\n", FormatStatus(stats.Critical, stats.Lengths))
		return common.ExitCritical
	case len(stats.Warning) > 0:
		fmt.Printf("WARNING - %s.\n", FormatStatus(stats.Warning, stats.Lengths))
		return common.ExitWarning
	default:
		fmt.Println("OK - all lengths fine.")
		return common.ExitOK
	}
}

func reportUnhandled(err error) int {
	fmt.Printf("WARNING - unhandled Exception: %v\n", err)
	if common.DebugEnabled() {
		log.Debug().Err(err).Msg("Unhandled failure")
		os.Stderr.Write(debug.Stack())
	}
	return common.ExitWarning
}

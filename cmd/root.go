package cmd

import (
	"fmt"
	"os"

	"marstack/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the marstack entry point; start, bootstrap and routes hang off it.
var RootCmd = &cobra.Command{
	Use:   "marstack",
	Short: "MarstACK local cloud endpoint",
	Long: `MarstACK answers the cloud calls of Marstek solar batteries locally, so the
batteries keep working when the vendor service is unreachable. Point the vendor
domain at this server with a DNS override.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the selected subcommand. A failure is reported on the console
// before the process exits with status 1, since no configured logger exists yet.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("marstack command failed", zap.String("command", commandName()), zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}

func commandName() string {
	if cmd, _, err := RootCmd.Find(os.Args[1:]); err == nil && cmd != nil {
		return cmd.Name()
	}
	return RootCmd.Name()
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"marstack/core/bootstrap"
	"marstack/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bootstrapOptionsFile string
	bootstrapRunAs       string
)

// bootstrapCmd projects the add-on options into the environment and execs the server.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Apply add-on options and hand over to the server",
	Long: `Reads the add-on options file (falling back to existing environment variables,
then defaults), exports LOG_LEVEL, APP_TIMEZONE, TZ and FORWARDED_ALLOW_IPS, and
replaces this process with "marstack start", optionally through su-exec.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBootstrap()
	},
}

func init() {
	bootstrapCmd.Flags().StringVar(&bootstrapOptionsFile, "options", "", "options file (default $"+bootstrap.OptionsFileEnv+" or "+bootstrap.DefaultOptionsFile+")")
	bootstrapCmd.Flags().StringVar(&bootstrapRunAs, "run-as", "", "user:group to drop privileges to via su-exec")
	RootCmd.AddCommand(bootstrapCmd)
}

func runBootstrap() {
	logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logg = logg.Named("startup")

	path := bootstrap.OptionsPath(bootstrapOptionsFile, os.Getenv)
	doc, err := bootstrap.ReadOptions(path)
	switch {
	case errors.Is(err, bootstrap.ErrOptionsNotFound):
		logg.Warn("Options file not found. Using environment variables or defaults.", zap.String("path", path))
	case err != nil:
		logg.Error("Failed to read options file", zap.Error(err))
	default:
		logg.Info("Read options", zap.String("path", path))
	}

	opts := bootstrap.Resolve(doc, os.LookupEnv)
	if err := opts.Apply(os.Setenv); err != nil {
		logg.Fatal("Failed to export options", zap.Error(err))
	}

	logg.Info("Starting application",
		zap.String("log_level", opts.LogLevel),
		zap.String("timezone", opts.Timezone))

	self, err := os.Executable()
	if err != nil {
		logg.Fatal("Failed to resolve executable", zap.Error(err))
	}

	argv := bootstrap.Command(self, bootstrapRunAs, startCmd.Name())
	err = bootstrap.Replace(argv, os.Environ())
	if err == nil {
		return
	}
	if errors.Is(err, bootstrap.ErrExecUnsupported) {
		logg.Info("Process replacement unavailable, starting server in-process")
		_ = logg.Sync()
		if err := runStart(); err != nil {
			logg.Fatal("Server failed", zap.Error(err))
		}
		return
	}
	logg.Error("Failed to execute command", zap.Strings("argv", argv), zap.Error(err))
	_ = logg.Sync()
	os.Exit(1)
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/either/internal/article"
	"github.com/ib-77/either/internal/config"
	"github.com/ib-77/either/pkg/either"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errFailedInputs = errors.New("some inputs failed")

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "either <value>...",
		Short:        "Run values through the convert/process pipeline",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.InitConfiguration(cmd, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(config.GetLogLevel())
			defer logger.Sync()

			undo := zap.ReplaceGlobals(logger)
			defer undo()

			pipeline := article.New(logger,
				article.WithMultiplier(config.GetMultiplier()),
				article.WithFailFast(config.GetFailFast()))

			raws := make([]any, 0, len(args))
			for _, a := range args {
				raws = append(raws, a)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			failed := 0
			for _, res := range pipeline.RunAll(ctx, raws) {
				if res.IsLeft() {
					failed++
				}
				line := either.Fold(res,
					func(err error) string { return "error: " + err.Error() },
					func(out string) string { return "ok: " + out })
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFailedInputs, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file")
	config.AddFlags(cmd)

	return cmd
}

func setupLogger(logLevel string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(logLevel)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		return zap.NewNop()
	}

	return plain
}

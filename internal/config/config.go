package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix = "EITHER"

	logLevel   = "log-level"
	failFast   = "fail-fast"
	multiplier = "multiplier"

	defaultLogLevel   = "info"
	defaultFailFast   = false
	defaultMultiplier = 2
)

var v *viper.Viper

// AddFlags registers the settings every command shares.
func AddFlags(cmd *cobra.Command) {
	cmd.Flags().String(logLevel, defaultLogLevel, "log level")
	cmd.Flags().Bool(failFast, defaultFailFast, "skip the remaining inputs after the first failure")
	cmd.Flags().Int(multiplier, defaultMultiplier, "multiplier applied to every parsed value")
}

// InitConfiguration layers flags over EITHER_* environment variables over the
// optional config file.
func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			zap.S().Errorw("cannot read config file", "config file", configFile, "error", err)
			return fmt.Errorf("fail to read config file %q: %w", configFile, err)
		}
		zap.S().Debugf("using config file: %v", v.ConfigFileUsed())
	}

	return bindFlags(cmd, v)
}

// Bind each cobra flag to its viper key and EITHER_<NAME> environment variable
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		// Environment variables can't have dashes in them
		envVar := fmt.Sprintf("%s_%s", prefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")))
		if err = v.BindEnv(f.Name, envVar); err != nil {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})
	return err
}

func GetLogLevel() string {
	if v == nil {
		return defaultLogLevel
	}
	return v.GetString(logLevel)
}

func GetFailFast() bool {
	if v == nil {
		return defaultFailFast
	}
	return v.GetBool(failFast)
}

func GetMultiplier() int {
	if v == nil || !v.IsSet(multiplier) {
		return defaultMultiplier
	}
	return v.GetInt(multiplier)
}

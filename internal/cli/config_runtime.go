package cli

import (
	"reflect"
	"strings"

	"github.com/fdkevin0/prettyprint"
	"github.com/fdkevin0/prettyprint/internal/configsource"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type runtimeConfig struct {
	App        *prettyprint.Config
	InputFile  string
	Debug      bool
	ConfigFile string
}

type runtimeConfigValues struct {
	prettyprint.Config `mapstructure:",squash"`
	Debug              bool `mapstructure:"debug"`
}

func buildRuntimeConfig(cmd *cobra.Command, args []string) (*runtimeConfig, error) {
	if len(args) != 1 {
		return nil, prettyprint.NewUsageError(usage)
	}

	v, err := configsource.NewViperForCommand(cmd, flagConfigFile)
	if err != nil {
		return nil, prettyprint.NewConfigError("failed to load configuration", err)
	}

	values := runtimeConfigValues{
		Config: *prettyprint.NewDefaultConfig(),
	}
	if err := v.Unmarshal(&values, viper.DecodeHook(trimStringHook())); err != nil {
		return nil, prettyprint.NewConfigError("failed to decode configuration", err)
	}

	values.InputFormat = prettyprint.InputFormat(strings.ToLower(string(values.InputFormat)))

	cfg := &runtimeConfig{
		App:        &values.Config,
		InputFile:  args[0],
		Debug:      values.Debug,
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := validateRuntimeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateRuntimeConfig(cfg *runtimeConfig) error {
	if strings.TrimSpace(cfg.InputFile) == "" {
		return prettyprint.NewUsageError("file name must not be empty")
	}
	if cfg.App.SelectCSS != "" && cfg.App.SelectXPath != "" {
		return prettyprint.NewConfigError("select_css and select_xpath are mutually exclusive", nil)
	}
	return cfg.App.Validate()
}

// trimStringHook trims surrounding whitespace from decoded strings. Strings
// made only of whitespace are kept, since indent_char is one.
func trimStringHook() mapstructure.DecodeHookFuncKind {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok || to != reflect.String {
			return data, nil
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed, nil
		}
		return s, nil
	}
}

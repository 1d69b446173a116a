package configsource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fdkevin0/prettyprint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "PRETTYPRINT"

// NewViperForCommand layers defaults, config file, environment and the
// command's flags, lowest precedence first.
func NewViperForCommand(cmd *cobra.Command, configFlagValue string) (*viper.Viper, error) {
	v := viper.New()
	applyViperDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindViperFlags(v, cmd); err != nil {
		return nil, err
	}

	configPath, explicit, err := resolveConfigFilePath(cmd, configFlagValue)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) && !explicit {
				return v, nil
			}
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	return v, nil
}

func applyViperDefaults(v *viper.Viper) {
	defaultConfig := prettyprint.NewDefaultConfig()
	v.SetDefault("indent_char", defaultConfig.IndentChar)
	v.SetDefault("indent_width", defaultConfig.IndentWidth)
	v.SetDefault("input_format", string(defaultConfig.InputFormat))
	v.SetDefault("select_css", defaultConfig.SelectCSS)
	v.SetDefault("select_xpath", defaultConfig.SelectXPath)
	v.SetDefault("output", defaultConfig.Output)
	v.SetDefault("debug", false)
}

func bindViperFlags(v *viper.Viper, cmd *cobra.Command) error {
	visited := make(map[string]struct{})
	var bindErr error
	bindFlag := func(f *pflag.Flag) {
		if f == nil || bindErr != nil || f.Name == "config" {
			return
		}
		if _, ok := visited[f.Name]; ok {
			return
		}
		visited[f.Name] = struct{}{}
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(configName, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %q to key %q: %w", f.Name, configName, err)
		}
	}

	cmd.Flags().VisitAll(bindFlag)
	cmd.PersistentFlags().VisitAll(bindFlag)
	cmd.InheritedFlags().VisitAll(bindFlag)
	return bindErr
}

func resolveConfigFilePath(cmd *cobra.Command, configFlagValue string) (string, bool, error) {
	if flagChanged(cmd, "config") {
		path := strings.TrimSpace(configFlagValue)
		if path == "" {
			return "", true, errors.New("--config must not be empty")
		}
		return path, true, nil
	}

	if value := strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG")); value != "" {
		return value, true, nil
	}

	candidates := []string{
		filepath.Join(".", "prettyprint.toml"),
		filepath.Join(prettyprint.DefaultConfigDir("prettyprint"), "config.toml"),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, false, nil
		}
	}

	return "", false, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

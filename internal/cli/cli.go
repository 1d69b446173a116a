package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fdkevin0/prettyprint"
	"github.com/spf13/cobra"
)

var (
	// 命令行参数
	flagConfigFile  string
	flagIndentChar  string
	flagIndentWidth int
	flagInputFormat string
	flagSelectCSS   string
	flagSelectXPath string
	flagOutput      string
	flagDebug       bool
)

const usage = "prettyprint <html filename>"

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "prettyprint <filename>",
	Short: "Pretty print an HTML or XHTML file",
	Long: `prettyprint parses an HTML, XHTML or Markdown file and prints it back as
indented markup. Re-parsing the output yields the same document tree.`,
	Example: `  # Pretty print an HTML file to stdout
  prettyprint index.html

  # Parse as strict XHTML and indent with tabs
  prettyprint --input-format=xhtml --indent-char="	" --indent-width=1 chapter.xhtml

  # Print only the main content
  prettyprint --select-css="main article" page.html`,
	Args:          exactlyOneFile,
	RunE:          runPrettyPrint,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		prettyprint.InitLogger(flagDebug)
	},
}

func init() {
	defaultConfig := prettyprint.NewDefaultConfig()

	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file path (toml)")
	rootCmd.PersistentFlags().StringVar(&flagIndentChar, "indent-char", defaultConfig.IndentChar, "indentation character")
	rootCmd.PersistentFlags().IntVar(&flagIndentWidth, "indent-width", defaultConfig.IndentWidth, "indentation characters per level")
	rootCmd.PersistentFlags().StringVarP(&flagInputFormat, "input-format", "f", string(defaultConfig.InputFormat), "input format: auto, html, xhtml or markdown")
	rootCmd.PersistentFlags().StringVar(&flagSelectCSS, "select-css", "", "print only subtrees matching this CSS selector")
	rootCmd.PersistentFlags().StringVar(&flagSelectXPath, "select-xpath", "", "print only subtrees matching this XPath expression")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.MarkFlagsMutuallyExclusive("select-css", "select-xpath")
}

// Execute runs the command line program.
func Execute() error {
	return rootCmd.Execute()
}

// Run executes the command line program and returns the process exit code.
// Usage errors are reported by the usage line alone.
func Run() int {
	err := Execute()
	if err == nil {
		return 0
	}
	var appErr *prettyprint.AppError
	if !errors.As(err, &appErr) || appErr.Type != prettyprint.UsageError {
		slog.Error("prettyprint failed", "error", err)
	}
	return 1
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.OutOrStdout(), usage)
		return prettyprint.NewUsageError(fmt.Sprintf("expected exactly one file argument, got %d", len(args)))
	}
	return nil
}

func runPrettyPrint(cmd *cobra.Command, args []string) error {
	cfg, err := buildRuntimeConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Debug {
		prettyprint.InitLogger(true)
	}
	slog.Debug("formatting", "file", cfg.InputFile, "format", cfg.App.InputFormat, "config", cfg.ConfigFile)

	out, err := prettyprint.FormatFile(cfg.InputFile, cfg.App)
	if err != nil {
		return err
	}
	if out == "" {
		out = "\n"
	}

	if cfg.App.Output != "" {
		return prettyprint.WriteOutput(cfg.App.Output, out)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
		return prettyprint.NewIOError("failed to write output", err)
	}
	return nil
}

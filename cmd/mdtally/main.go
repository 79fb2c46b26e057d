package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mdtally/mdtally/internal/app"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments.
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	presetName, _ := cmd.Flags().GetString("preset")
	selector, _ := cmd.Flags().GetString("selector")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	topKeywords, _ := cmd.Flags().GetInt("keywords")
	textFlag, _ := cmd.Flags().GetBool("text")
	mdFlag, _ := cmd.Flags().GetBool("md")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	var format app.OutputFormat
	switch {
	case jsonFlag:
		format = app.JSON
	case mdFlag:
		format = app.Markdown
	case textFlag:
		format = app.Text
	default:
		format = app.Text // default if no format flag
	}

	// use positional arguments as sources; no arguments means stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	return app.Config{
		Sources:      sources,
		ConfigPath:   configPath,
		PresetName:   presetName,
		Selector:     selector,
		IncludeAll:   includeAll,
		OutputFormat: format,
		TopKeywords:  topKeywords,
		Quiet:        quiet,
		Debug:        debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode.
func setupLogger(debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "mdtally [sources...]",
	Short: "Configurable word, character, and structure counts for Markdown",
	Long: `Mdtally computes configurable textual metrics over Markdown documents:
word count, character counts, lines, paragraphs, link and citation counts,
and a derived page estimate. Presets control which metrics are shown and
how links, wikilinks, citekeys, and comments fold into the counts.

Sources may be local files, URLs (converted to Markdown first), or
standard input.

Examples:
  mdtally chapter.md
  mdtally --preset draft --json notes/*.md
  cat essay.md | mdtally --keywords 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		setupLogger(config.Debug)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("mdtally failed: %w", err)
		}

		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("config", "c", defaultConfigPath(), "Path to YAML preset store")
	rootCmd.Flags().StringP("preset", "p", "default", "Preset to compute under")

	// HTML source handling
	rootCmd.Flags().StringP("selector", "s", "", "CSS selector for HTML sources")
	rootCmd.Flags().BoolP("include-all", "i", false, "Include all HTML content without readability filtering")

	// output format flags are mutually exclusive
	rootCmd.Flags().Bool("text", false, "Output as plain text (default)")
	rootCmd.Flags().Bool("md", false, "Output as a Markdown table")
	rootCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("text", "md", "json")

	rootCmd.Flags().IntP("keywords", "k", 0, "Also show the top N keywords")

	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress warnings and progress output")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

// defaultConfigPath resolves the preset store location under the user's
// config directory; a missing file just yields the built-in default preset.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mdtally.yaml"
	}
	return dir + "/mdtally/presets.yaml"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

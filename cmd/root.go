// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"vidembed/internal/cache"
	"vidembed/internal/config"
	"vidembed/internal/oembed"
	"vidembed/internal/resolver"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagMaxWidth   int
	flagMaxHeight  int
	flagResponsive bool
	flagScheme     string
	flagCachePath  string
	flagDebug      bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vidembed [file]",
	Short: "Replace YouTube and Vimeo links in text with playable embeds",
	Long: `Vidembed is a text filter. It scans paragraph-oriented text for
stand-alone YouTube and Vimeo links, resolves embed markup through each
provider's oEmbed endpoint, and writes the transformed text to stdout.
Resolved embeds are cached so a video is fetched at most once.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              resolveRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagMaxWidth, "max-width", "W", 0, "Maximum embed width (default: 640)")
	rootCmd.PersistentFlags().IntVarP(&flagMaxHeight, "max-height", "H", 0, "Maximum embed height (default: 480)")
	rootCmd.PersistentFlags().BoolVarP(&flagResponsive, "responsive", "r", false, "Wrap embeds in fluid aspect-ratio containers")
	rootCmd.PersistentFlags().StringVar(&flagScheme, "scheme", "", "Outbound scheme: http | https")
	rootCmd.PersistentFlags().StringVar(&flagCachePath, "cache", "", "Path to the embed cache database")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagMaxWidth > 0 {
		cfg.MaxWidth = flagMaxWidth
	}
	if flagMaxHeight > 0 {
		cfg.MaxHeight = flagMaxHeight
	}
	if flagResponsive {
		cfg.Responsive = true
	}
	if flagScheme != "" {
		cfg.Scheme = flagScheme
	}
	if flagCachePath != "" {
		cfg.CachePath = flagCachePath
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[vidembed] ")
	} else {
		log.SetFlags(0)
	}

	return nil
}

// resolveRun filters a file (or stdin) to stdout.
func resolveRun(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	r := resolver.New(resolverOptions(), store, oembed.NewClient())
	r.Debugf = debugf

	if _, err := os.Stdout.WriteString(r.Resolve(string(text))); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// resolverOptions maps the merged configuration onto resolver options.
func resolverOptions() resolver.Options {
	return resolver.Options{
		MaxWidth:           cfg.MaxWidth,
		MaxHeight:          cfg.MaxHeight,
		Responsive:         cfg.Responsive,
		DefaultAspectRatio: cfg.DefaultAspectRatio,
		Scheme:             cfg.Scheme,
	}
}

// openStore opens the embed cache. An unavailable cache is not fatal:
// resolution proceeds without it and every match hits the network.
func openStore() *cache.Store {
	path, err := cfg.ResolveCachePath()
	if err != nil {
		debugf("resolving cache path: %v", err)
		return nil
	}
	store, err := cache.Open(path)
	if err != nil {
		debugf("opening cache: %v", err)
		return nil
	}
	return store
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...any) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidembed/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Administer the embed cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached embeds",
	RunE:  cacheClearRun,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report cached embed count",
	RunE:  cacheStatsRun,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
}

func cacheClearRun(cmd *cobra.Command, args []string) error {
	store, path, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	fmt.Printf("Removed %d cached embeds from %s\n", n, path)
	return nil
}

func cacheStatsRun(cmd *cobra.Command, args []string) error {
	store, path, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		return fmt.Errorf("counting cache: %w", err)
	}
	fmt.Printf("%d cached embeds in %s\n", n, path)
	return nil
}

// openStoreStrict opens the cache for administrative commands, where an
// unavailable cache is an error rather than a degraded mode.
func openStoreStrict() (*cache.Store, string, error) {
	path, err := cfg.ResolveCachePath()
	if err != nil {
		return nil, "", fmt.Errorf("resolving cache path: %w", err)
	}
	store, err := cache.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening cache: %w", err)
	}
	return store, path, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"javalex/internal/driver"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the token cache",
	}
	cmd.PersistentFlags().String("cache-dir", "", "token cache directory (default: user cache dir)")
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dir",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: withCache(func(cmd *cobra.Command, cache *driver.TokenCache) error {
				fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
				return nil
			}),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Count cached files",
			Args:  cobra.NoArgs,
			RunE: withCache(func(cmd *cobra.Command, cache *driver.TokenCache) error {
				st, err := cache.Stats()
				if err != nil {
					return fmt.Errorf("failed to scan cache: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d bytes\n", cache.Dir(), st.Entries, st.Bytes)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every cached token listing",
			Args:  cobra.NoArgs,
			RunE: withCache(func(cmd *cobra.Command, cache *driver.TokenCache) error {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear cache: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.Dir())
				return nil
			}),
		},
	)
	return cmd
}

// withCache открывает кэш по тем же правилам, что и tokenize: флаг,
// затем [cache].dir из javalex.toml, затем каталог пользователя.
func withCache(run func(*cobra.Command, *driver.TokenCache) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		settings, _, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		cache, err := openCache(settings.CacheDir)
		if err != nil {
			return err
		}
		return run(cmd, cache)
	}
}

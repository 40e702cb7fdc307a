package cmd

import (
	"github.com/spf13/cobra"

	"github.com/beetools/bee/internal/config"
	"github.com/beetools/bee/internal/logging"
)

var cfg config.Config

var (
	logger    logging.Logger = logging.Nop{}
	flushLogs func()         = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "bee",
	Short: "Solve, scrape, publish and replay NYT Spelling Bee answer lists",
	Long: `bee works with Spelling Bee answer lists.

It packs a list into a short URL-safe payload (encode/decode), solves a puzzle
against a dictionary, scrapes published answer pages, writes daily hint pages
and can type a decoded list into the game in Chrome.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger, flushLogs = logging.New(debug)

		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger.Debug("config loaded", "cache_backend", cfg.CacheBackend, "wordlist", cfg.WordlistPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushLogs()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(lettersCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(autotypeCmd)
	rootCmd.AddCommand(completionCmd)
}

// Root returns the bee command tree.
func Root() *cobra.Command {
	return rootCmd
}

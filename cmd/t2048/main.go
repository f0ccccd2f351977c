// t2048 is a terminal implementation of the 2048 sliding-tile puzzle.
//
// Usage:
//
//	t2048                    - Play (same as 't2048 play')
//	t2048 play               - Play in the current terminal
//	t2048 history            - Browse finished games
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games (0 = random)
//	--db <path>     - Set history database path
//	--config <path> - Set config file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is a terminal implementation of the 2048 puzzle.

Slide tiles with the arrow keys or H, J, K, L. Equal tiles merge into
their doubled value; reach 2048 to win.

Examples:
  t2048
  t2048 play --seed 42
  t2048 history
  t2048 serve --ssh :2222`,
	// Bare invocation plays.
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

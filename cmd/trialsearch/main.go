// Command trialsearch searches disease names and opens the clinical trial
// search page for the one the user picks.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trialsearch",
	Short: "Search diseases and open the matching clinical trials",
	Long: `trialsearch is a terminal search widget for the Korean clinical trial
registry. Type a disease name, pick a suggestion with the arrow keys or the
mouse, and press enter to open the trial search page for it.

Wide terminals get the desktop layout, narrow ones the mobile layout; F2
switches between them.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: $XDG_CONFIG_HOME/trialsearch/config.toml)")
	pf.String("log-level", "", "log level: debug, info, warn or error")

	f := rootCmd.Flags()
	f.String("layout", "", "layout: auto, desktop or mobile")
	f.String("query", "", "search this text on start")
	f.Bool("print", false, "print the chosen URL instead of opening a browser")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "shopforge",
	Short: "Generate a static storefront website from a store configuration",
	Long: `Shopforge compiles a store configuration and product catalog into a
self-contained static website: home page, product listing, custom
pages, stylesheet, and client script, with WhatsApp-based ordering.
The result is a zip archive ready for any static host.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".shopforge.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

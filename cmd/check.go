package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yassirfh/shopforge/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the store configuration",
	Long: `Checks the store for problems: missing required fields, invalid
colors and contact details, duplicate ids and slugs, broken pricing.
Errors block an export; warnings do not.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadStore(cfg)
	if err != nil {
		return err
	}

	res := store.Validate(s)
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range res.Errors {
		fmt.Printf("error: %s\n", e)
	}

	if !res.OK() {
		return fmt.Errorf("%d error(s) found in %s", len(res.Errors), cfg.StoreFile)
	}

	fmt.Printf("%s: %d product(s), %d page(s), no errors", cfg.StoreFile, len(s.Products), len(s.PublishedPages()))
	if n := len(res.Warnings); n > 0 {
		fmt.Printf(", %d warning(s)", n)
	}
	fmt.Println()
	return nil
}

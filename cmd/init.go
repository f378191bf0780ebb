package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yassirfh/shopforge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new store interactively",
	Long: `Runs a setup wizard that creates .shopforge.yml and a starter
store.json with the basic sections enabled.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing store file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	cfg, s, err := config.RunWizard()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.StoreFile); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite", cfg.StoreFile)
	}

	if err := s.Save(cfg.StoreFile); err != nil {
		return err
	}
	fmt.Printf("Store saved to %s\n", cfg.StoreFile)
	fmt.Println("\nNext steps:")
	fmt.Printf("  edit %s to add products\n", cfg.StoreFile)
	fmt.Println("  shopforge check    validate the store")
	fmt.Println("  shopforge serve    preview locally")
	fmt.Println("  shopforge export   build the zip archive")
	return nil
}

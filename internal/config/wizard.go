package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/yassirfh/shopforge/internal/store"
	"github.com/yassirfh/shopforge/internal/theme"
)

// RunWizard runs an interactive setup wizard: it collects the basics of
// a new store, saves the tool config to .shopforge.yml, and returns the
// starter store for the caller to persist.
func RunWizard() (*Config, *store.Store, error) {
	fmt.Println("Welcome to shopforge! Let's set up your store.")
	fmt.Println()

	namePrompt := promptui.Prompt{
		Label: "Store name",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("name must not be empty")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("store name: %w", err)
	}

	descPrompt := promptui.Prompt{
		Label:   "Short description (shown on the home page)",
		Default: "",
	}
	description, err := descPrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("description: %w", err)
	}

	themePrompt := promptui.Select{
		Label: "Select a theme",
		Items: theme.IDs(),
	}
	_, themeID, err := themePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("theme selection: %w", err)
	}

	currencyPrompt := promptui.Prompt{
		Label:   "Currency symbol",
		Default: "$",
	}
	currency, err := currencyPrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("currency: %w", err)
	}

	phonePrompt := promptui.Prompt{
		Label:   "WhatsApp number for orders (leave blank to skip)",
		Default: "",
	}
	phone, err := phonePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("whatsapp number: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Currency = currency

	s := store.NewStore(strings.TrimSpace(name))
	s.Description = strings.TrimSpace(description)
	s.Theme.ID = themeID
	if phone = strings.TrimSpace(phone); phone != "" {
		s.WhatsApp = store.WhatsAppSettings{
			Enabled:      true,
			Phone:        phone,
			IncludeName:  true,
			IncludePrice: true,
			IncludeLink:  true,
		}
	}

	if err := cfg.Save(DefaultFile); err != nil {
		return nil, nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", DefaultFile)

	return cfg, s, nil
}

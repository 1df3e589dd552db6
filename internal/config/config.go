package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rentbooks-dev/rentbooks/internal/model"
)

// Config represents the top-level rentbooks.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Feeds    []Feed         `yaml:"feeds"`
}

// BusinessConfig identifies the tracked business.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// Feed describes one bank/card export source. ExpenseOriented feeds get
// the card-issuer sign flip during normalization.
type Feed struct {
	Account         model.AccountTag `yaml:"account"`
	Name            string           `yaml:"name"`
	LastFour        string           `yaml:"last_four"`
	ExpenseOriented bool             `yaml:"expense_oriented"`
}

// Feed returns the feed configured for an account tag.
func (c *Config) Feed(tag model.AccountTag) (Feed, bool) {
	for _, f := range c.Feeds {
		if f.Account == tag {
			return f, true
		}
	}
	return Feed{}, false
}

// Load reads a rentbooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard five feeds.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Feeds: []Feed{
			{Account: model.AccountRental, Name: "Rental Income", LastFour: "0111"},
			{Account: model.AccountRealEstate, Name: "Real Estate", LastFour: "8529"},
			{Account: model.AccountBusiness, Name: "Business Income", LastFour: "7991"},
			{Account: model.AccountExpenses, Name: "Business Expenses", LastFour: "2299", ExpenseOriented: true},
			{Account: model.AccountChase, Name: "Chase Visa Prime", LastFour: "2434", ExpenseOriented: true},
		},
	}
}

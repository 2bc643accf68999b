package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateRules()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateRules() error {
	if len(c.Rules.Categories) == 0 {
		return errors.New("rules must define at least one category")
	}
	if err := validateCategoryName(c.Rules.DefaultCategory); err != nil {
		return fmt.Errorf("rules.default_category: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Rules.Categories))
	for i, cat := range c.Rules.Categories {
		if err := validateCategoryName(cat.Name); err != nil {
			return fmt.Errorf("rules.category[%d]: %w", i, err)
		}
		if _, ok := seen[cat.Name]; ok {
			return fmt.Errorf("rules.category[%d]: duplicate category name %q", i, cat.Name)
		}
		seen[cat.Name] = struct{}{}
	}
	return nil
}

// Category names become directory names, so they must be a single clean path
// element.
func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("category name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("category name %q must not contain path separators", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("category name %q is not a valid directory name", name)
	}
	return nil
}

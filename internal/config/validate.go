package config

import (
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateResolver(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q (use table or json)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q (use auto, always, or never)", c.Output.Color)
	}
	return nil
}

func (c *Config) validateResolver() error {
	if _, err := language.Parse(c.Resolver.LabelLanguage); err != nil {
		return fmt.Errorf("resolver.label_language: %q is not a valid language tag: %w", c.Resolver.LabelLanguage, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}

	c.Resolver.LabelLanguage = strings.TrimSpace(c.Resolver.LabelLanguage)
	if env := strings.TrimSpace(os.Getenv("AVMARK_LABEL_LANGUAGE")); env != "" {
		c.Resolver.LabelLanguage = env
	}
	if c.Resolver.LabelLanguage == "" {
		c.Resolver.LabelLanguage = defaultLabelLanguage
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

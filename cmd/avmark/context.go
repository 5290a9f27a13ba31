package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"avmark/internal/config"
	"avmark/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		fallback := config.Default()
		return &fallback
	}
	return cfg
}

// ensureLogger builds the run's logger once, tagged with a correlation id so
// multi-line output from a single invocation can be grouped.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg := c.configValue()
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger.With(slog.String(logging.FieldCorrelationID, uuid.NewString()))
	})
	return c.logger
}

func (c *commandContext) componentLogger(component string) *slog.Logger {
	return logging.WithComponent(c.ensureLogger(), component)
}

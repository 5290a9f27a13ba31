package config

const (
	defaultOutputFormat  = "table"
	defaultOutputColor   = "auto"
	defaultLabelLanguage = "en"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Resolver: Resolver{
			LabelLanguage: defaultLabelLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

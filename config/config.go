// Package config holds the converter settings. Values come from the
// environment (optionally seeded from a .env file) and may be overridden
// by command-line flags in main.
package config

// Config holds all converter configuration.
type Config struct {
	Reference ReferenceConfig
	Input     InputConfig
	Output    OutputConfig
	Logging   LoggingConfig
}

// ReferenceConfig locates the SPC code → name table.
type ReferenceConfig struct {
	// File is the SPC text file (default: spc_files/SPC.txt)
	File string `env:"SPC_FILE" default:"spc_files/SPC.txt"`

	// DB is an optional SQLite copy of the table; when set it is used instead of File
	DB string `env:"SPC_DB"`
}

// InputConfig restricts which log files are accepted.
type InputConfig struct {
	// Kinds are the accepted file extensions (default: txt,log)
	Kinds []string `env:"INPUT_EXTENSIONS" default:"txt,log"`
}

// OutputConfig controls where results go.
type OutputConfig struct {
	// Dir receives the xlsx reports (default: filtered)
	Dir string `env:"OUTPUT_DIR" default:"filtered"`

	// KeepCleaned also writes the filtered lines next to the input
	KeepCleaned bool `env:"KEEP_CLEANED" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

package config

const (
	defaultOutputDir       = "~/.local/share/namesong"
	defaultLogDir          = "~/.local/share/namesong/logs"
	defaultMaxInstructions = 1000
	defaultBaseAddress     = 0x555555555000
	defaultSlowTempo       = 90
	defaultMediumTempo     = 120
	defaultFastTempo       = 150
	defaultKey             = "C"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Trace: Trace{
			MaxInstructions: defaultMaxInstructions,
			BaseAddress:     defaultBaseAddress,
		},
		Music: Music{
			SlowTempo:   defaultSlowTempo,
			MediumTempo: defaultMediumTempo,
			FastTempo:   defaultFastTempo,
			DefaultKey:  defaultKey,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

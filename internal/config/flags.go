package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file")
	flagFrames    = flag.Int("frames", 0, "Number of frames to simulate")
	flagRuns      = flag.Int("runs", 0, "Number of parallel replays")
	flagTimeScale = flag.Float64("timescale", 0, "Simulation time scale")
	flagRate      = flag.Int("rate", 0, "Target physics frame rate")
	flagWrite     = flag.String("write-config", "", "Write the effective config to this file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, or "".
func WriteConfigPath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagFrames > 0 {
		cfg.Simulation.Frames = *flagFrames
	}
	if *flagRuns > 0 {
		cfg.Simulation.Runs = *flagRuns
	}
	if *flagTimeScale > 0 {
		cfg.Time.TimeScale = float32(*flagTimeScale)
	}
	if *flagRate > 0 {
		cfg.Time.TargetFrameRate = *flagRate
	}
}

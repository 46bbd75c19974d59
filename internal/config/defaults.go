package config

const (
	defaultDataDir         = "~/.local/share/cutline"
	defaultHistoryDepth    = 50
	defaultFrameCapacity   = 64
	defaultFFmpegBinary    = "ffmpeg"
	defaultFFprobeBinary   = "ffprobe"
	defaultOutputContainer = "mkv"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Editing: Editing{
			HistoryDepth: defaultHistoryDepth,
		},
		Cache: Cache{
			FrameCapacity: defaultFrameCapacity,
		},
		Export: Export{
			FFmpegBinary:    defaultFFmpegBinary,
			FFprobeBinary:   defaultFFprobeBinary,
			OutputContainer: defaultOutputContainer,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

const (
	defaultConfigPath     = "~/.config/postrec/config.toml"
	defaultDestinationDir = "~/Music/Recordings"
	defaultFFmpeg         = "ffmpeg"
	defaultAtomicParsley  = "AtomicParsley"
	defaultArtist         = "Jani"
	defaultCommentPrefix  = "Original filename: "
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DestinationDir: defaultDestinationDir,
		},
		Tools: Tools{
			FFmpeg:        defaultFFmpeg,
			AtomicParsley: defaultAtomicParsley,
		},
		Tagging: Tagging{
			Artist:        defaultArtist,
			CommentPrefix: defaultCommentPrefix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package app

// ConfigError reports an invalid runtime configuration. The CLI maps it to
// a dedicated exit code before any file is processed.
type ConfigError string

func (e ConfigError) Error() string { return "config: " + string(e) }

// Config holds runtime configuration for one run.
type Config struct {
	InputDir  string
	OutputDir string

	// Counting
	TopN        int
	Bigrams     bool
	MinTokenLen int

	// Normalization
	ExtraStopwords []string
	Stem           bool
	StripRefs      bool

	// Rendering
	FontFile string

	// Behavior
	Verbose bool
}

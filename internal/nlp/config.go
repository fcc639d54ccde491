package nlp

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultMaxQueueDepth = 32
	defaultMaxWait       = 30 * time.Second
)

// warmupText is analyzed once by New so that a broken model fails at startup
// rather than on the first request.
const warmupText = "Apple was founded by Steve Jobs in California."

// Config encapsulates all tunables for Host construction.
type Config struct {
	// ModelPath is a model directory on disk. Empty selects the library's
	// built-in English model.
	ModelPath string
	// MaxInflight bounds concurrent model calls. 1 serializes analysis.
	MaxInflight int
	// MaxQueueDepth bounds callers waiting for an in-flight slot.
	MaxQueueDepth int
	// MaxWait bounds how long a caller may wait for admission.
	MaxWait time.Duration
	// Logger receives load and fault events. Nil disables logging.
	Logger *zerolog.Logger
	// Analyzer overrides the model backend. When nil the prose backend is
	// loaded from ModelPath.
	Analyzer Analyzer
}

func (c Config) withDefaults() Config {
	if c.MaxInflight <= 0 {
		c.MaxInflight = runtime.NumCPU()
	}
	if c.MaxQueueDepth <= 0 {
		c.MaxQueueDepth = defaultMaxQueueDepth
	}
	if c.MaxWait <= 0 {
		c.MaxWait = defaultMaxWait
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}

package blake3

import "go.uber.org/zap"

// streamConfig holds the tunable knobs for the streaming helpers in
// stream.go. There is no file- or environment-based configuration surface
// for a hash engine; this functional-options struct is the whole of it.
type streamConfig struct {
	bufferSize int
	logger     *zap.Logger
}

func newStreamConfig(opts []StreamOption) streamConfig {
	cfg := streamConfig{
		bufferSize: DefaultBufferSize,
		logger:     nopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// StreamOption configures WriteReader, HashReader, and HashFile.
type StreamOption func(*streamConfig)

// WithBufferSize overrides the read buffer size used while streaming. A
// non-positive size is ignored and the default is kept.
func WithBufferSize(n int) StreamOption {
	return func(cfg *streamConfig) {
		if n > 0 {
			cfg.bufferSize = n
		}
	}
}

// WithLogger attaches a structured logger that receives start/completion/
// error events; individual reads are not logged. The default is a no-op
// logger.
func WithLogger(logger *zap.Logger) StreamOption {
	return func(cfg *streamConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

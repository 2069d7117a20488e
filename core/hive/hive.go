package hive

import (
	"s3hive/core/storage"

	"go.uber.org/zap"
)

// Hive is a facade over an S3-compatible storage service. It owns a single
// reusable storage client and exposes simplified bucket and object
// operations. The zero value is not usable; construct with New.
//
// Hive holds no mutable state beyond the client, so a single instance is
// safe for concurrent use. Every operation is synchronous and blocking;
// cancellation and deadlines come from the caller's context.
type Hive struct {
	cfg    storage.Config
	client storage.Client
	logger *zap.Logger
}

// Option customizes a Hive during construction.
type Option func(*Hive)

// WithLogger attaches a logger. Operations log at debug level only.
func WithLogger(l *zap.Logger) Option {
	return func(h *Hive) {
		h.logger = l
	}
}

// WithClient injects a pre-built storage client, bypassing NewClient.
// Used by tests to substitute a mock.
func WithClient(c storage.Client) Option {
	return func(h *Hive) {
		h.client = c
	}
}

// New creates a Hive from the given connection configuration.
// The underlying client is constructed once and reused for every call.
func New(cfg storage.Config, opts ...Option) (*Hive, error) {
	h := &Hive{
		cfg:    cfg,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.client == nil {
		client, err := storage.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		h.client = client
	}

	return h, nil
}

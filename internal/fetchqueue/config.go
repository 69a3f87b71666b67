package fetchqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the executor. Every field can be overridden through the
// environment with the FQ_ prefix (FQ_SHARDS, FQ_QUEUE_SIZE, ...).
type Config struct {
	Shards         int           `envconfig:"SHARDS"          default:"4"`
	QueueSize      int           `envconfig:"QUEUE_SIZE"      default:"64"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	// ErrorHandler receives errors from jobs that exhausted their retries.
	ErrorHandler func(error) `envconfig:"-"`

	MaxAttempts int           `envconfig:"MAX_ATTEMPTS"    default:"4"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF"    default:"250ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL"    default:"10s"`
}

// LoadConfig builds a Config from defaults and FQ_-prefixed env overrides.
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("FQ", &c)
}

package safewrite

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/docsafe-go/docsafe/pkg/config"
)

// Config holds the document-store connection settings, loaded from the
// environment.
type Config struct {
	ConnectionURL   string        `env:"DOCSAFE_MONGODB_URL,required"`
	Database        string        `env:"DOCSAFE_MONGODB_DATABASE" envDefault:"docsafe"`
	ConnectTimeout  time.Duration `env:"DOCSAFE_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"DOCSAFE_MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"DOCSAFE_MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"DOCSAFE_MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"DOCSAFE_MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"DOCSAFE_MONGODB_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"DOCSAFE_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"DOCSAFE_MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// LoadConfig reads Config from the environment via the shared loader.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Connect dials the store, retrying transient failures before giving up.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrFailedToConnect, err)
		}

		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryWrites(cfg.RetryWrites).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		time.Sleep(cfg.RetryInterval)
	}

	return nil, ErrFailedToConnect
}

// Healthcheck returns a probe function suitable for readiness endpoints. It
// performs a lightweight ping without touching any collection.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

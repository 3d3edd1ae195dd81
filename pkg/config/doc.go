// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (a missing file is fine), then
// the environment is parsed into any struct annotated with env tags.
//
//	type StoreConfig struct {
//		URL     string        `env:"DOCSAFE_MONGODB_URL,required"`
//		Timeout time.Duration `env:"DOCSAFE_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle
//	}
//
// MustLoad panics on failure, for configuration the process cannot start
// without. The package keeps no per-type cache: parsing is cheap and tests
// routinely reload the same struct type with a mutated environment.
package config

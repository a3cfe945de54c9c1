// Package config loads configuration structs from environment variables
// using struct tags, with an optional .env file picked up once per process.
//
//	type AppConfig struct {
//	    Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config

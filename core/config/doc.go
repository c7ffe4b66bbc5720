// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is loaded once on first use (existing
// environment variables win), then github.com/caarlos0/env parses variables
// into the struct according to its env and envDefault tags. Each struct type
// is parsed once and cached; later calls copy the cached value.
//
//	type MediaConfig struct {
//		ImagesDir string `env:"MEDIA_IMAGES_DIR,required"`
//		FilesDir  string `env:"MEDIA_FILES_DIR,required"`
//	}
//
//	var cfg MediaConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning an error, for use during startup.
package config

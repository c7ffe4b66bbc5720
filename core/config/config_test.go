package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbox/core/config"
)

// Tests in this file use t.Setenv and therefore cannot run in parallel.

type mediaConfig struct {
	ImagesDir string `env:"TEST_CFG_IMAGES_DIR,required"`
	Perm      uint32 `env:"TEST_CFG_PERM" envDefault:"493"`
}

type requiredConfig struct {
	Missing string `env:"TEST_CFG_DEFINITELY_MISSING,required"`
}

func TestLoad(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_CFG_IMAGES_DIR", "/srv/images")

	var cfg mediaConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "/srv/images", cfg.ImagesDir)
	assert.Equal(t, uint32(493), cfg.Perm)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_CFG_IMAGES_DIR", "/first")

	var first mediaConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CFG_IMAGES_DIR", "/second")

	var second mediaConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "/first", second.ImagesDir)

	config.Reset()
	var third mediaConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "/second", third.ImagesDir)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrFailedToParse)
}

func TestLoad_Nil(t *testing.T) {
	assert.ErrorIs(t, config.Load[mediaConfig](nil), config.ErrNilTarget)
}

func TestMustLoad_Panics(t *testing.T) {
	config.Reset()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

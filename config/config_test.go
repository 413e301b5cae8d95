package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("build.star", `
_base = "out/"
chunk_size = WORD_BYTES
data_out = _base + "data.hex"
inst_out = _base + "inst.hex"
verbose = True
listing = 1 > 2
`)
	assert.NoError(err)
	assert.Equal(&Config{
		ChunkSize: 6,
		DataOut:   "out/data.hex",
		InstOut:   "out/inst.hex",
		Verbose:   true,
		Listing:   false,
	}, cfg)
}

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("empty.star", "")
	assert.NoError(err)
	assert.Equal(Default(), cfg)
	assert.Equal(CHUNK_SIZE, cfg.ChunkSize)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	filename := filepath.Join(t.TempDir(), "shinasm.star")
	err := os.WriteFile(filename, []byte("chunk_size = 4\n"), 0o644)
	assert.NoError(err)

	cfg, err := Load(filename, nil)
	assert.NoError(err)
	assert.Equal(4, cfg.ChunkSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"), nil)
	assert.Error(err)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("bad.star", "chunk = 4\n")
	assert.Nil(cfg)
	var uk ErrUnknownKey
	assert.True(errors.As(err, &uk))
	assert.Equal(ErrUnknownKey("chunk"), uk)

	table := []string{
		"chunk_size = \"6\"",
		"chunk_size = 1 << 80",
		"data_out = 3",
		"inst_out = None",
		"verbose = 1",
		"listing = \"yes\"",
	}

	for _, src := range table {
		cfg, err := Load("bad.star", src)
		assert.Nil(cfg, src)
		var kt *ErrKeyType
		assert.True(errors.As(err, &kt), src)
	}

	_, err = Load("bad.star", "chunk_size = ")
	assert.Error(err)
}

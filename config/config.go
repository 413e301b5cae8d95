// Package config loads the Starlark build configuration of the assembler
// command line tool.
//
// A configuration file is a Starlark module whose global variables set
// the options:
//
//	chunk_size = WORD_BYTES
//	data_out = "build/data.hex"
//	inst_out = "build/inst.hex"
//	verbose = False
//	listing = True
//
// Globals starting with an underscore are private to the file.
package config

import (
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/shinrabansyo/assembler/isa"
	"github.com/shinrabansyo/assembler/translate"
)

var f = translate.From

// ErrUnknownKey is a global that names no option.
type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown configuration key '%v'", string(err))
}

// ErrKeyType is an option assigned a value of the wrong type.
type ErrKeyType struct {
	Key  string
	Want string
	Got  string
}

func (err *ErrKeyType) Error() string {
	return f("configuration key '%v' must be %v, not %v", err.Key, err.Want, err.Got)
}

// Config holds the options of one assembler run.
type Config struct {
	ChunkSize int    // Bytes per rendered hex line.
	DataOut   string // Data image path, empty for the default.
	InstOut   string // Instruction image path, empty for the default.
	Verbose   bool   // Log every pipeline stage.
	Listing   bool   // Print the instruction listing.
}

// CHUNK_SIZE is the default number of bytes per hex line.
const CHUNK_SIZE = 1

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{ChunkSize: CHUNK_SIZE}
}

// predeclared names visible to every configuration file.
var predeclared = starlark.StringDict{
	"WORD_BYTES": starlark.MakeInt(isa.WORD_BYTES),
}

// Load executes a configuration file on top of the defaults. If src is
// nil the file is read from filename, otherwise src provides the text as
// for starlark.ExecFileOptions.
func Load(filename string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v\n", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	cfg = Default()
	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}

		err = cfg.set(key, globals[key])
		if err != nil {
			return nil, err
		}
	}

	return
}

// set assigns one option from a Starlark value.
func (cfg *Config) set(key string, value starlark.Value) (err error) {
	switch key {
	case "chunk_size":
		var n int
		n, err = toInt(key, value)
		cfg.ChunkSize = n
	case "data_out":
		cfg.DataOut, err = toString(key, value)
	case "inst_out":
		cfg.InstOut, err = toString(key, value)
	case "verbose":
		cfg.Verbose, err = toBool(key, value)
	case "listing":
		cfg.Listing, err = toBool(key, value)
	default:
		err = ErrUnknownKey(key)
	}

	return
}

func toInt(key string, value starlark.Value) (n int, err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = &ErrKeyType{Key: key, Want: "int", Got: value.Type()}
		return
	}

	i64, ok := i.Int64()
	if !ok || int64(int(i64)) != i64 {
		err = &ErrKeyType{Key: key, Want: "int", Got: i.String()}
		return
	}

	n = int(i64)

	return
}

func toString(key string, value starlark.Value) (str string, err error) {
	s, ok := value.(starlark.String)
	if !ok {
		err = &ErrKeyType{Key: key, Want: "string", Got: value.Type()}
		return
	}
	str = string(s)
	return
}

func toBool(key string, value starlark.Value) (b bool, err error) {
	v, ok := value.(starlark.Bool)
	if !ok {
		err = &ErrKeyType{Key: key, Want: "bool", Got: value.Type()}
		return
	}
	b = bool(v)
	return
}

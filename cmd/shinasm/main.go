package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/shinrabansyo/assembler/asm"
	"github.com/shinrabansyo/assembler/config"
	"github.com/shinrabansyo/assembler/translate"
)

func main() {
	var cfgFile string
	var chunkSize int
	var dataOut string
	var instOut string
	var listing bool
	var verbose bool
	var lang string

	flag.StringVar(&cfgFile, "c", "", ".star configuration file")
	flag.IntVar(&chunkSize, "chunk", config.CHUNK_SIZE, "Bytes per hex line")
	flag.StringVar(&dataOut, "d", "", "Data image output (default <source>.data.hex)")
	flag.StringVar(&instOut, "i", "", "Instruction image output (default <source>.inst.hex)")
	flag.BoolVar(&listing, "l", false, "Print an instruction listing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Diagnostic locale such as de-DE (default from the host)")

	flag.Parse()

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if flag.NArg() != 1 {
		atexit.Fatalf("usage: %v [flags] source.asm", os.Args[0])
	}
	source := flag.Arg(0)

	cfg := config.Default()
	if len(cfgFile) != 0 {
		var err error
		cfg, err = config.Load(cfgFile, nil)
		if err != nil {
			atexit.Fatalf("%v: %v", cfgFile, err)
		}
	}

	// Flags given on the command line override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "chunk":
			cfg.ChunkSize = chunkSize
		case "d":
			cfg.DataOut = dataOut
		case "i":
			cfg.InstOut = instOut
		case "l":
			cfg.Listing = listing
		case "v":
			cfg.Verbose = verbose
		}
	})

	base := source
	if source == "-" {
		base = "a"
	}
	if len(cfg.DataOut) == 0 {
		cfg.DataOut = base + ".data.hex"
	}
	if len(cfg.InstOut) == 0 {
		cfg.InstOut = base + ".inst.hex"
	}

	var inf io.Reader = os.Stdin
	if source != "-" {
		file, err := os.Open(source)
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
		atexit.Register(func() { file.Close() })
		inf = file
	}

	assembler := &asm.Assembler{Verbose: cfg.Verbose, ChunkSize: cfg.ChunkSize}
	prog, err := assembler.Parse(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	data, inst, err := prog.Encode(cfg.ChunkSize)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	writeHex(cfg.DataOut, data)
	writeHex(cfg.InstOut, inst)

	if cfg.Listing {
		text, err := prog.Listing(listingWidth())
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
		fmt.Println(text)
	}

	atexit.Exit(0)
}

// writeHex writes one hex image, newline terminated.
func writeHex(filename string, text string) {
	ouf, err := os.Create(filename)
	if err != nil {
		atexit.Fatalf("%v: %v", filename, err)
	}
	atexit.Register(func() {
		err := ouf.Close()
		if err != nil {
			log.Printf("%v: %v", filename, err)
		}
	})

	if len(text) != 0 {
		text += "\n"
	}
	_, err = ouf.WriteString(text)
	if err != nil {
		atexit.Fatalf("%v: %v", filename, err)
	}
}

// listingWidth is the width of an interactive stdout, or 0 when stdout is
// not a terminal.
func listingWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}

// Package asm drives the whole assembler pipeline: it splits a source into
// its data and instruction segments, parses, validates, resolves and
// encodes them.
package asm

import (
	"io"
	"log"
	"strings"

	"github.com/shinrabansyo/assembler/check"
	"github.com/shinrabansyo/assembler/diag"
	"github.com/shinrabansyo/assembler/dmem"
	"github.com/shinrabansyo/assembler/imem"
	"github.com/shinrabansyo/assembler/isa"
	"github.com/shinrabansyo/assembler/resolve"
)

// SEPARATOR is the line dividing the data segment from the instructions.
const SEPARATOR = "==="

// Assembler is a two segment assembler.
type Assembler struct {
	Verbose   bool // If set, verbosely logs every pipeline stage.
	ChunkSize int  // Bytes per rendered hex line. Must be at least 1.
}

// Segments holds the two halves of a source.
type Segments struct {
	Data   string // Text before the separator.
	Inst   string // Text after the separator.
	Origin int    // Line number of the separator.
}

// Split divides a source at the first line that reads `===`.
func Split(input io.Reader) (seg Segments, err error) {
	buf, err := io.ReadAll(input)
	if err != nil {
		return
	}
	text := string(buf)

	offset := 0
	lineno := 0
	for line := range strings.Lines(text) {
		lineno++
		body := strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r")
		if body == SEPARATOR {
			seg = Segments{
				Data:   text[:offset],
				Inst:   text[offset+len(line):],
				Origin: lineno,
			}
			return
		}
		offset += len(line)
	}

	err = &diag.ErrSyntax{LineNo: 0, Line: "", Err: diag.ErrSeparatorMissing}

	return
}

// Parse reads a source and runs every stage up to and including encoding
// of the instruction words.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	seg, err := Split(input)
	if err != nil {
		return
	}

	dparser := &dmem.Parser{Verbose: asm.Verbose}
	datas, err := dparser.Parse(strings.NewReader(seg.Data))
	if err != nil {
		return
	}

	iparser := &imem.Parser{Verbose: asm.Verbose, Origin: seg.Origin}
	insts, err := iparser.Parse(strings.NewReader(seg.Inst))
	if err != nil {
		return
	}

	err = check.Check(datas, insts)
	if err != nil {
		return
	}

	resolver := &resolve.Resolver{Verbose: asm.Verbose}
	resolved, err := resolver.Resolve(datas, insts)
	if err != nil {
		return
	}

	prog = &Program{
		Data:   datas,
		Labels: resolve.Addresses(datas, insts),
		Lines:  make([]Line, 0, len(insts)),
	}

	for n, inst := range resolved {
		var w isa.Word
		w, err = isa.Encode(inst)
		if err != nil {
			err = located(err, insts[n].LineNo)
			return nil, err
		}

		line := Line{
			LineNo: insts[n].LineNo,
			Addr:   uint32(n * isa.WORD_BYTES),
			Label:  insts[n].Label,
			Source: insts[n].String(),
			Inst:   inst,
			Word:   w,
		}
		if asm.Verbose {
			log.Printf("asm %v: %#06x %v %v\n", line.LineNo, line.Addr, line.Word, line.Source)
		}
		prog.Lines = append(prog.Lines, line)
	}

	return
}

// located fills in the source line of an encoder error.
func located(err error, lineno int) error {
	switch e := err.(type) {
	case *diag.ErrRegisterRange:
		e.LineNo = lineno
	case *diag.ErrImmediateRange:
		e.LineNo = lineno
	}
	return err
}

// Assemble reads a source and returns its data and instruction images.
func (asm *Assembler) Assemble(input io.Reader) (data string, inst string, err error) {
	if asm.ChunkSize < 1 {
		err = diag.ErrChunkSize
		return
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	return prog.Encode(asm.ChunkSize)
}

// Assemble is a convenience wrapper for assembling source text.
func Assemble(src string, chunkSize int) (data string, inst string, err error) {
	asm := &Assembler{ChunkSize: chunkSize}
	return asm.Assemble(strings.NewReader(src))
}

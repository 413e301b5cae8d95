package asm

import (
	"fmt"
	"iter"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/shinrabansyo/assembler/dmem"
	"github.com/shinrabansyo/assembler/encode"
	"github.com/shinrabansyo/assembler/isa"
	"github.com/shinrabansyo/assembler/resolve"
)

// Line is one assembled instruction.
type Line struct {
	LineNo int      // Source line of the instruction.
	Addr   uint32   // Byte address in instruction memory.
	Label  string   // Instruction label, empty if none.
	Source string   // Instruction text as parsed.
	Inst   isa.Inst // Resolved instruction.
	Word   isa.Word // Encoded word.
}

// Program is a fully resolved and encoded source.
type Program struct {
	Data   []dmem.Data
	Labels resolve.Tables
	Lines  []Line
}

// Words iterates over the encoded words by address.
func (prog *Program) Words() iter.Seq2[uint32, isa.Word] {
	return func(yield func(addr uint32, w isa.Word) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Addr, line.Word) {
				return
			}
		}
	}
}

// Encode renders the data and instruction images.
func (prog *Program) Encode(chunkSize int) (data string, inst string, err error) {
	data, err = encode.Data(prog.Data, chunkSize)
	if err != nil {
		return
	}

	words := make([]isa.Word, 0, len(prog.Lines))
	for _, w := range prog.Words() {
		words = append(words, w)
	}

	inst, err = encode.Chunk(encode.WordImage(words), chunkSize)
	if err != nil {
		data = ""
	}

	return
}

// Listing renders a table with one row per instruction: its address, its
// word, its label and the instruction decoded back from the byte image.
// A positive width caps the length of every output line.
func (prog *Program) Listing(width int) (text string, err error) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Addr", "Word", "Label", "Instruction"})

	for _, line := range prog.Lines {
		bytes := line.Word.Bytes()

		var inst isa.Inst
		inst, err = isa.Decode(isa.WordOf(bytes[:]))
		if err != nil {
			return
		}

		label := ""
		if len(line.Label) != 0 {
			label = "@" + line.Label
		}
		tw.AppendRow(table.Row{fmt.Sprintf("%06X", line.Addr), line.Word.String(), label, inst.String()})
	}

	if width > 0 {
		tw.Style().Size.WidthMax = width
	}

	text = tw.Render()

	return
}

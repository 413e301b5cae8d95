// Package encode serializes the data segment and resolved instructions into
// chunked hex text.
package encode

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shinrabansyo/assembler/diag"
	"github.com/shinrabansyo/assembler/dmem"
	"github.com/shinrabansyo/assembler/internal"
	"github.com/shinrabansyo/assembler/isa"
)

// Chunk renders a byte stream as hex text. The stream is zero padded to a
// multiple of size, each chunk is written most significant byte first, and
// chunks are joined by newlines.
func Chunk(seq iter.Seq[byte], size int) (text string, err error) {
	if size < 1 {
		err = diag.ErrChunkSize
		return
	}

	var sb strings.Builder
	for chunk := range internal.IterSeqChunk(internal.IterSeqPad(seq, size, 0), size) {
		if sb.Len() != 0 {
			sb.WriteByte('\n')
		}
		slices.Reverse(chunk)
		for _, b := range chunk {
			fmt.Fprintf(&sb, "%02X", b)
		}
	}

	text = sb.String()

	return
}

// DataBytes yields the memory image of one data entry. Numbers are little
// endian; strings are followed by a zero terminator.
func DataBytes(data *dmem.Data) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if data.Command == dmem.CMD_STRING {
			for _, b := range []byte(data.Text) {
				if !yield(b) {
					return
				}
			}
			yield(0)
			return
		}

		for n := range data.Len() {
			if !yield(byte(data.Value >> (8 * n))) {
				return
			}
		}
	}
}

// DataImage yields the whole data segment in order.
func DataImage(datas []dmem.Data) iter.Seq[byte] {
	seqs := make([]iter.Seq[byte], len(datas))
	for n := range datas {
		seqs[n] = DataBytes(&datas[n])
	}
	return internal.IterSeqConcat(seqs...)
}

// Data renders the data segment as chunked hex.
func Data(datas []dmem.Data, size int) (text string, err error) {
	return Chunk(DataImage(datas), size)
}

// Words encodes every instruction into its 48-bit word.
func Words(insts []isa.Inst) (words []isa.Word, err error) {
	words = make([]isa.Word, 0, len(insts))
	for _, inst := range insts {
		var w isa.Word
		w, err = isa.Encode(inst)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return
}

// WordImage yields the little-endian bytes of every word in order.
func WordImage(words []isa.Word) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, w := range words {
			for _, b := range w.Bytes() {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// Insts renders resolved instructions as chunked hex.
func Insts(insts []isa.Inst, size int) (text string, err error) {
	if size < 1 {
		err = diag.ErrChunkSize
		return
	}

	words, err := Words(insts)
	if err != nil {
		return
	}

	return Chunk(WordImage(words), size)
}

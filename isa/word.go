package isa

import (
	"fmt"

	"github.com/shinrabansyo/assembler/diag"
)

// Word is a 48-bit instruction word in the low bits of a uint64.
type Word uint64

const (
	WORD_BYTES = 6         // Every instruction occupies six bytes.
	WORD_MASK  = 1<<48 - 1 // Bits of a Word that are significant.
	DISP_MASK  = 1<<DISP_BITS - 1
)

// Bytes splits the word into little-endian bytes.
func (w Word) Bytes() (bytes [WORD_BYTES]byte) {
	for n := range bytes {
		bytes[n] = byte(w >> (8 * n))
	}
	return
}

// WordOf joins up to six little-endian bytes into a word.
func WordOf(bytes []byte) (w Word) {
	for n, b := range bytes[:min(len(bytes), WORD_BYTES)] {
		w |= Word(b) << (8 * n)
	}
	return
}

func (w Word) String() string {
	return fmt.Sprintf("%012X", uint64(w))
}

// Opcode returns the format group selector in bits 0-4.
func (w Word) Opcode() uint8 {
	return uint8(w & 0x1f)
}

// Funct returns the function selector in bits 5-7.
func (w Word) Funct() uint8 {
	return uint8((w >> 5) & 0x7)
}

// Encode packs a resolved instruction into a word. Register fields and the
// branch displacement must fit their slots.
func Encode(inst Inst) (w Word, err error) {
	kind := inst.Mnemonic()
	layout, ok := kind.Layout()
	if !ok {
		err = diag.ErrUnknownMnemonic(kind.String())
		return
	}

	rd, rs1, rs2 := inst.Registers()
	if field, value, max, ok := CheckRegisters(kind, rd, rs1, rs2); !ok {
		err = &diag.ErrRegisterRange{Inst: inst.String(), Field: field.String(), Value: value, Max: max}
		return
	}

	w = Word(layout.Opcode&0x1f) | Word(layout.Funct&0x7)<<5

	switch in := inst.(type) {
	case R:
		if layout.Format != FORMAT_R {
			err = diag.ErrInstructionShape
			return
		}
		w |= Word(in.Rd)<<8 | Word(in.Rs1)<<13 | Word(in.Rs2)<<18
	case I:
		if layout.Format != FORMAT_I && layout.Format != FORMAT_J && layout.Format != FORMAT_L {
			err = diag.ErrInstructionShape
			return
		}
		w |= Word(in.Rd)<<8 | Word(in.Rs1)<<13 | Word(in.Imm)<<16
	case S:
		if layout.Format != FORMAT_S {
			err = diag.ErrInstructionShape
			return
		}
		w |= Word(in.Rs2)<<8 | Word(in.Rs1)<<13 | Word(in.Imm)<<16
	case B:
		if layout.Format != FORMAT_B {
			err = diag.ErrInstructionShape
			return
		}
		if in.Disp < DISP_MIN || in.Disp > DISP_MAX {
			err = &diag.ErrImmediateRange{Inst: in.String(), Value: int64(in.Disp), Min: DISP_MIN, Max: DISP_MAX}
			return
		}
		w |= Word(in.Rd)<<8 | Word(in.Rs1)<<13 | Word(in.Rs2)<<18 | Word(uint32(in.Disp)&DISP_MASK)<<23
	default:
		err = diag.ErrInstructionShape
		return
	}

	return
}

// Decode unpacks a word into a resolved instruction.
func Decode(w Word) (inst Inst, err error) {
	if w&^WORD_MASK != 0 {
		err = ErrOpcode(w)
		return
	}

	kind, ok := decodeMap[w.Opcode()<<3|w.Funct()]
	if !ok {
		err = ErrOpcode(w)
		return
	}

	reg5 := func(shift int) uint8 { return uint8((w >> shift) & 0x1f) }
	reg3 := func(shift int) uint8 { return uint8((w >> shift) & 0x7) }

	switch kind.Format() {
	case FORMAT_R:
		if w>>23 != 0 {
			err = ErrOpcode(w)
			return
		}
		inst = R{Kind: kind, Rd: reg5(8), Rs1: reg5(13), Rs2: reg5(18)}
	case FORMAT_I, FORMAT_J, FORMAT_L:
		inst = I{Kind: kind, Rd: reg5(8), Rs1: reg3(13), Imm: uint32(w >> 16)}
	case FORMAT_S:
		inst = S{Kind: kind, Rs1: reg3(13), Imm: uint32(w >> 16), Rs2: reg5(8)}
	case FORMAT_B:
		disp := int32(uint32(w>>23)<<(32-DISP_BITS)) >> (32 - DISP_BITS)
		inst = B{Kind: kind, Rd: reg5(8), Rs1: reg5(13), Rs2: reg5(18), Disp: disp}
	default:
		err = ErrOpcode(w)
	}

	return
}

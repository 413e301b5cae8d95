package isa

import (
	"fmt"
)

// Format is the operand shape of an instruction.
type Format int

//go:generate go tool stringer -linecomment -type=Format,Field
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
	FORMAT_B = Format(2) // B
	FORMAT_J = Format(3) // J
	FORMAT_L = Format(4) // L
	FORMAT_S = Format(5) // S
)

// Kind is a mnemonic.
type Kind int

const (
	KIND_ADD = Kind(iota) // add
	KIND_SUB              // sub
	KIND_AND              // and
	KIND_OR               // or
	KIND_XOR              // xor
	KIND_SRL              // srl
	KIND_SRA              // sra
	KIND_SLL              // sll

	KIND_ADDI // addi
	KIND_SUBI // subi
	KIND_ANDI // andi
	KIND_ORI  // ori
	KIND_XORI // xori
	KIND_SRLI // srli
	KIND_SRAI // srai
	KIND_SLLI // slli

	KIND_BEQ // beq
	KIND_BNE // bne
	KIND_BLT // blt
	KIND_BLE // ble

	KIND_JAL // jal

	KIND_LW  // lw
	KIND_LH  // lh
	KIND_LB  // lb
	KIND_LHU // lhu
	KIND_LBU // lbu
	KIND_IN  // in

	KIND_SW  // sw
	KIND_SH  // sh
	KIND_SB  // sb
	KIND_OUT // out
	KIND_ISB // isb

	kindCount
)

// Layout is the encoding of a single mnemonic.
type Layout struct {
	Name   string
	Format Format
	Opcode uint8 // 5 bits
	Funct  uint8 // 3 bits
}

var layouts = [kindCount]Layout{
	KIND_ADD: {"add", FORMAT_R, 0b00001, 0b001},
	KIND_SUB: {"sub", FORMAT_R, 0b00001, 0b010},
	KIND_AND: {"and", FORMAT_R, 0b00111, 0b000},
	KIND_OR:  {"or", FORMAT_R, 0b00111, 0b001},
	KIND_XOR: {"xor", FORMAT_R, 0b00111, 0b010},
	KIND_SRL: {"srl", FORMAT_R, 0b00111, 0b011},
	KIND_SRA: {"sra", FORMAT_R, 0b00111, 0b100},
	KIND_SLL: {"sll", FORMAT_R, 0b00111, 0b101},

	KIND_ADDI: {"addi", FORMAT_I, 0b00010, 0b001},
	KIND_SUBI: {"subi", FORMAT_I, 0b00010, 0b010},
	KIND_ANDI: {"andi", FORMAT_I, 0b01000, 0b000},
	KIND_ORI:  {"ori", FORMAT_I, 0b01000, 0b001},
	KIND_XORI: {"xori", FORMAT_I, 0b01000, 0b010},
	KIND_SRLI: {"srli", FORMAT_I, 0b01000, 0b011},
	KIND_SRAI: {"srai", FORMAT_I, 0b01000, 0b100},
	KIND_SLLI: {"slli", FORMAT_I, 0b01000, 0b101},

	KIND_BEQ: {"beq", FORMAT_B, 0b00011, 0b000},
	KIND_BNE: {"bne", FORMAT_B, 0b00011, 0b001},
	KIND_BLT: {"blt", FORMAT_B, 0b00011, 0b010},
	KIND_BLE: {"ble", FORMAT_B, 0b00011, 0b011},

	KIND_JAL: {"jal", FORMAT_J, 0b00011, 0b100},

	KIND_LW:  {"lw", FORMAT_L, 0b00100, 0b000},
	KIND_LH:  {"lh", FORMAT_L, 0b00100, 0b001},
	KIND_LB:  {"lb", FORMAT_L, 0b00100, 0b010},
	KIND_LHU: {"lhu", FORMAT_L, 0b00100, 0b011},
	KIND_LBU: {"lbu", FORMAT_L, 0b00100, 0b100},
	KIND_IN:  {"in", FORMAT_L, 0b00110, 0b000},

	KIND_SW:  {"sw", FORMAT_S, 0b00101, 0b000},
	KIND_SH:  {"sh", FORMAT_S, 0b00101, 0b001},
	KIND_SB:  {"sb", FORMAT_S, 0b00101, 0b010},
	KIND_OUT: {"out", FORMAT_S, 0b00110, 0b001},
	KIND_ISB: {"isb", FORMAT_S, 0b00101, 0b011},
}

var kindMap = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for kind, layout := range layouts {
		m[layout.Name] = Kind(kind)
	}
	return m
}()

// decodeMap maps opcode<<3|funct back to the mnemonic.
var decodeMap = func() map[uint8]Kind {
	m := make(map[uint8]Kind, kindCount)
	for kind, layout := range layouts {
		m[layout.Opcode<<3|layout.Funct] = Kind(kind)
	}
	return m
}()

// Kinds returns every mnemonic in declaration order.
func Kinds() (kinds []Kind) {
	for kind := range kindCount {
		kinds = append(kinds, kind)
	}
	return
}

// Lookup returns the mnemonic for a name.
func Lookup(name string) (kind Kind, ok bool) {
	kind, ok = kindMap[name]
	return
}

// Valid returns true if kind is a known mnemonic.
func (kind Kind) Valid() bool {
	return kind >= 0 && kind < kindCount
}

// Layout returns the encoding of the mnemonic.
func (kind Kind) Layout() (layout Layout, ok bool) {
	if !kind.Valid() {
		return
	}
	return layouts[kind], true
}

// Format returns the operand shape of the mnemonic, or -1 if unknown.
func (kind Kind) Format() Format {
	if !kind.Valid() {
		return Format(-1)
	}
	return layouts[kind].Format
}

// IsBranch returns true for the conditional branch family.
func (kind Kind) IsBranch() bool {
	return kind.Format() == FORMAT_B
}

func (kind Kind) String() string {
	if !kind.Valid() {
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
	return layouts[kind].Name
}

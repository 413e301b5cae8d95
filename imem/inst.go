// Package imem parses the instruction segment of an assembler source into
// unresolved instructions.
package imem

import (
	"fmt"

	"github.com/shinrabansyo/assembler/isa"
)

// Value is an operand that is either a literal or a label reference. The
// concrete types are DataLabel, InstLabel and Imm.
type Value interface {
	String() string

	isValue()
}

// DataLabel references a `$name` data label.
type DataLabel string

// InstLabel references an `@name` instruction label.
type InstLabel string

// Imm is a literal operand.
type Imm int64

func (DataLabel) isValue() {}
func (InstLabel) isValue() {}
func (Imm) isValue()       {}

func (label DataLabel) String() string { return "$" + string(label) }
func (label InstLabel) String() string { return "@" + string(label) }
func (imm Imm) String() string         { return fmt.Sprintf("%d", int64(imm)) }

// Op is the operand shape of an unresolved instruction. The concrete types
// are R, I, B, L and S.
type Op interface {
	Mnemonic() isa.Kind
	Registers() (rd, rs1, rs2 uint8)
	String() string

	isOp()
}

// R is `kind rd = rs1, rs2`.
type R struct {
	Kind isa.Kind
	Rd   uint8
	Rs1  uint8
	Rs2  uint8
}

// I is `kind rd = rs1, value`.
type I struct {
	Kind isa.Kind
	Rd   uint8
	Rs1  uint8
	Val  Value
}

// B is `kind rd, (rs1, rs2) -> value`.
type B struct {
	Kind isa.Kind
	Rd   uint8
	Rs1  uint8
	Rs2  uint8
	Val  Value
}

// L is `kind rd = rs1[imm]`, or `kind rd, rs1[imm]` for jal.
type L struct {
	Kind isa.Kind
	Rd   uint8
	Rs1  uint8
	Imm  int64
}

// S is `kind rs1[imm] = rs2`.
type S struct {
	Kind isa.Kind
	Rs1  uint8
	Imm  int64
	Rs2  uint8
}

func (R) isOp() {}
func (I) isOp() {}
func (B) isOp() {}
func (L) isOp() {}
func (S) isOp() {}

func (op R) Mnemonic() isa.Kind { return op.Kind }
func (op I) Mnemonic() isa.Kind { return op.Kind }
func (op B) Mnemonic() isa.Kind { return op.Kind }
func (op L) Mnemonic() isa.Kind { return op.Kind }
func (op S) Mnemonic() isa.Kind { return op.Kind }

func (op R) Registers() (rd, rs1, rs2 uint8) { return op.Rd, op.Rs1, op.Rs2 }
func (op I) Registers() (rd, rs1, rs2 uint8) { return op.Rd, op.Rs1, 0 }
func (op B) Registers() (rd, rs1, rs2 uint8) { return op.Rd, op.Rs1, op.Rs2 }
func (op L) Registers() (rd, rs1, rs2 uint8) { return op.Rd, op.Rs1, 0 }
func (op S) Registers() (rd, rs1, rs2 uint8) { return 0, op.Rs1, op.Rs2 }

func (op R) String() string { return isa.Render(op.Kind, op.Rd, op.Rs1, op.Rs2, "") }
func (op I) String() string { return isa.Render(op.Kind, op.Rd, op.Rs1, 0, valueString(op.Val)) }
func (op B) String() string { return isa.Render(op.Kind, op.Rd, op.Rs1, op.Rs2, valueString(op.Val)) }
func (op L) String() string { return isa.Render(op.Kind, op.Rd, op.Rs1, 0, Imm(op.Imm).String()) }
func (op S) String() string { return isa.Render(op.Kind, 0, op.Rs1, op.Rs2, Imm(op.Imm).String()) }

func valueString(val Value) string {
	if val == nil {
		return "?"
	}
	return val.String()
}

// Inst is an unresolved instruction with its optional label.
type Inst struct {
	LineNo int    // Source line of the instruction.
	Label  string // Instruction label, empty if none.
	Op     Op
}

func (inst *Inst) String() string {
	if inst.Op == nil {
		return "?"
	}
	return inst.Op.String()
}

// Value returns the label-capable operand of the instruction, if any.
func (inst *Inst) Value() (val Value, ok bool) {
	switch op := inst.Op.(type) {
	case I:
		return op.Val, op.Val != nil
	case B:
		return op.Val, op.Val != nil
	}
	return
}

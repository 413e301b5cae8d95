package isa

import (
	"fmt"
)

// Inst is a resolved instruction: every operand is a concrete field value.
// The concrete types are R, I, S and B; the Kind field of each selects the
// mnemonic, which must belong to a format of matching shape.
type Inst interface {
	Mnemonic() Kind
	Registers() (rd, rs1, rs2 uint8)
	String() string

	isInst()
}

// R is a register-register instruction.
type R struct {
	Kind Kind
	Rd   uint8
	Rs1  uint8
	Rs2  uint8
}

// I is an ALU-immediate, jal, load or input instruction.
type I struct {
	Kind Kind
	Rd   uint8
	Rs1  uint8
	Imm  uint32
}

// S is a store, output or input-strobe instruction.
type S struct {
	Kind Kind
	Rs1  uint8
	Imm  uint32
	Rs2  uint8
}

// B is a conditional branch. Disp is relative to the branch address.
type B struct {
	Kind Kind
	Rd   uint8
	Rs1  uint8
	Rs2  uint8
	Disp int32
}

func (inst R) isInst() {}
func (inst I) isInst() {}
func (inst S) isInst() {}
func (inst B) isInst() {}

func (inst R) Mnemonic() Kind { return inst.Kind }
func (inst I) Mnemonic() Kind { return inst.Kind }
func (inst S) Mnemonic() Kind { return inst.Kind }
func (inst B) Mnemonic() Kind { return inst.Kind }

func (inst R) Registers() (rd, rs1, rs2 uint8) { return inst.Rd, inst.Rs1, inst.Rs2 }
func (inst I) Registers() (rd, rs1, rs2 uint8) { return inst.Rd, inst.Rs1, 0 }
func (inst S) Registers() (rd, rs1, rs2 uint8) { return 0, inst.Rs1, inst.Rs2 }
func (inst B) Registers() (rd, rs1, rs2 uint8) { return inst.Rd, inst.Rs1, inst.Rs2 }

func (inst R) String() string {
	return Render(inst.Kind, inst.Rd, inst.Rs1, inst.Rs2, "")
}

func (inst I) String() string {
	value := fmt.Sprintf("%d", inst.Imm)
	if inst.Kind.Format() != FORMAT_I {
		value = fmt.Sprintf("%d", int32(inst.Imm))
	}
	return Render(inst.Kind, inst.Rd, inst.Rs1, 0, value)
}

func (inst S) String() string {
	return Render(inst.Kind, 0, inst.Rs1, inst.Rs2, fmt.Sprintf("%d", int32(inst.Imm)))
}

func (inst B) String() string {
	return Render(inst.Kind, inst.Rd, inst.Rs1, inst.Rs2, fmt.Sprintf("%d", inst.Disp))
}

// Render writes an instruction in assembler source syntax. value is the
// text of the immediate, label or offset operand and is ignored by the
// R format.
func Render(kind Kind, rd, rs1, rs2 uint8, value string) string {
	switch kind.Format() {
	case FORMAT_R:
		return fmt.Sprintf("%v r%d = r%d, r%d", kind, rd, rs1, rs2)
	case FORMAT_I:
		return fmt.Sprintf("%v r%d = r%d, %v", kind, rd, rs1, value)
	case FORMAT_B:
		return fmt.Sprintf("%v r%d, (r%d, r%d) -> %v", kind, rd, rs1, rs2, value)
	case FORMAT_J:
		return fmt.Sprintf("%v r%d, r%d[%v]", kind, rd, rs1, value)
	case FORMAT_L:
		return fmt.Sprintf("%v r%d = r%d[%v]", kind, rd, rs1, value)
	case FORMAT_S:
		return fmt.Sprintf("%v r%d[%v] = r%d", kind, rs1, value, rs2)
	}
	return fmt.Sprintf("%v ?", kind)
}

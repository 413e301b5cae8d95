// Package resolve replaces label operands with addresses and displacements,
// producing instructions ready for encoding.
package resolve

import (
	"log"
	"maps"
	"slices"

	"github.com/shinrabansyo/assembler/diag"
	"github.com/shinrabansyo/assembler/dmem"
	"github.com/shinrabansyo/assembler/imem"
	"github.com/shinrabansyo/assembler/isa"
)

// Tables holds the address of every declared label.
type Tables struct {
	Data map[string]uint32 // Byte offset of each data label.
	Inst map[string]uint32 // Byte address of each instruction label.
}

// Addresses assigns an address to every label. Data labels take the running
// byte offset of the data segment. Instruction labels take six times the
// instruction index.
func Addresses(datas []dmem.Data, insts []imem.Inst) (tables Tables) {
	tables = Tables{
		Data: map[string]uint32{},
		Inst: map[string]uint32{},
	}

	offset := uint32(0)
	for n := range datas {
		data := &datas[n]
		if len(data.Label) != 0 {
			tables.Data[data.Label] = offset
		}
		offset += uint32(data.Len())
	}

	for n, inst := range insts {
		if len(inst.Label) != 0 {
			tables.Inst[inst.Label] = uint32(n * isa.WORD_BYTES)
		}
	}

	return
}

// Resolver turns unresolved instructions into encodable ones.
type Resolver struct {
	Verbose bool // If set, logs the label tables and every substitution.
}

// Resolve is a convenience wrapper for Resolver.Resolve.
func Resolve(datas []dmem.Data, insts []imem.Inst) (out []isa.Inst, err error) {
	resolver := &Resolver{}
	return resolver.Resolve(datas, insts)
}

// Resolve substitutes every label operand and checks branch displacements
// against their slot.
func (resolver *Resolver) Resolve(datas []dmem.Data, insts []imem.Inst) (out []isa.Inst, err error) {
	tables := Addresses(datas, insts)

	if resolver.Verbose {
		for _, label := range slices.Sorted(maps.Keys(tables.Data)) {
			log.Printf("resolve: $%v = %#x\n", label, tables.Data[label])
		}
		for _, label := range slices.Sorted(maps.Keys(tables.Inst)) {
			log.Printf("resolve: @%v = %#x\n", label, tables.Inst[label])
		}
	}

	out = make([]isa.Inst, 0, len(insts))
	for n := range insts {
		inst := &insts[n]

		var resolved isa.Inst
		resolved, err = resolver.resolve(&tables, n, inst)
		if err != nil {
			return nil, err
		}

		if resolver.Verbose {
			log.Printf("resolve %v: %v => %v\n", inst.LineNo, inst, resolved)
		}

		out = append(out, resolved)
	}

	return
}

func (resolver *Resolver) resolve(tables *Tables, index int, inst *imem.Inst) (out isa.Inst, err error) {
	switch op := inst.Op.(type) {
	case imem.R:
		out = isa.R{Kind: op.Kind, Rd: op.Rd, Rs1: op.Rs1, Rs2: op.Rs2}
	case imem.I:
		var imm uint32
		imm, err = immediate(tables, inst, op.Val)
		out = isa.I{Kind: op.Kind, Rd: op.Rd, Rs1: op.Rs1, Imm: imm}
	case imem.B:
		var disp int32
		disp, err = displacement(tables, index, inst, op.Val)
		out = isa.B{Kind: op.Kind, Rd: op.Rd, Rs1: op.Rs1, Rs2: op.Rs2, Disp: disp}
	case imem.L:
		out = isa.I{Kind: op.Kind, Rd: op.Rd, Rs1: op.Rs1, Imm: uint32(op.Imm)}
	case imem.S:
		out = isa.S{Kind: op.Kind, Rs1: op.Rs1, Imm: uint32(op.Imm), Rs2: op.Rs2}
	default:
		err = diag.ErrInstructionShape
	}

	return
}

// immediate resolves an I-format operand to its 32-bit field value.
func immediate(tables *Tables, inst *imem.Inst, val imem.Value) (imm uint32, err error) {
	var ok bool

	switch v := val.(type) {
	case imem.Imm:
		imm, ok = uint32(v), true
	case imem.DataLabel:
		imm, ok = tables.Data[string(v)]
	case imem.InstLabel:
		imm, ok = tables.Inst[string(v)]
	}

	if !ok {
		err = unknown(inst, val)
	}

	return
}

// displacement resolves a branch operand to a byte offset from the branch.
func displacement(tables *Tables, index int, inst *imem.Inst, val imem.Value) (disp int32, err error) {
	var d64 int64

	switch v := val.(type) {
	case imem.Imm:
		d64 = int64(v)
	case imem.InstLabel:
		target, ok := tables.Inst[string(v)]
		if !ok {
			err = unknown(inst, val)
			return
		}
		d64 = int64(target) - int64(index*isa.WORD_BYTES)
	case imem.DataLabel:
		err = &diag.ErrInvalidLabelUsage{LineNo: inst.LineNo, Inst: inst.String(), Label: v.String()}
		return
	default:
		err = unknown(inst, val)
		return
	}

	if d64 < isa.DISP_MIN || d64 > isa.DISP_MAX {
		err = &diag.ErrImmediateRange{
			LineNo: inst.LineNo,
			Inst:   inst.String(),
			Value:  d64,
			Min:    isa.DISP_MIN,
			Max:    isa.DISP_MAX,
		}
		return
	}

	disp = int32(d64)

	return
}

func unknown(inst *imem.Inst, val imem.Value) error {
	label := "?"
	if val != nil {
		label = val.String()
	}
	return &diag.ErrUnknownLabel{LineNo: inst.LineNo, Inst: inst.String(), Label: label}
}

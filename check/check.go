// Package check validates a parsed program before resolution.
package check

import (
	"github.com/shinrabansyo/assembler/diag"
	"github.com/shinrabansyo/assembler/dmem"
	"github.com/shinrabansyo/assembler/imem"
	"github.com/shinrabansyo/assembler/isa"
)

// Check runs every validation pass in order and returns the first
// violation found.
func Check(datas []dmem.Data, insts []imem.Inst) (err error) {
	passes := []func([]dmem.Data, []imem.Inst) error{
		Labels,
		LabelUsage,
		Registers,
		Immediates,
	}

	for _, pass := range passes {
		err = pass(datas, insts)
		if err != nil {
			return
		}
	}

	return
}

// Labels checks that every label reference is declared in its namespace.
func Labels(datas []dmem.Data, insts []imem.Inst) (err error) {
	dataLabels := make(map[string]bool, len(datas))
	for _, data := range datas {
		if len(data.Label) != 0 {
			dataLabels[data.Label] = true
		}
	}

	instLabels := make(map[string]bool, len(insts))
	for _, inst := range insts {
		if len(inst.Label) != 0 {
			instLabels[inst.Label] = true
		}
	}

	for _, inst := range insts {
		val, ok := inst.Value()
		if !ok {
			continue
		}

		switch label := val.(type) {
		case imem.DataLabel:
			ok = dataLabels[string(label)]
		case imem.InstLabel:
			ok = instLabels[string(label)]
		}

		if !ok {
			err = &diag.ErrUnknownLabel{LineNo: inst.LineNo, Inst: inst.String(), Label: val.String()}
			return
		}
	}

	return
}

// LabelUsage checks that no branch uses a data label as its target.
func LabelUsage(datas []dmem.Data, insts []imem.Inst) (err error) {
	for _, inst := range insts {
		if !inst.Op.Mnemonic().IsBranch() {
			continue
		}

		val, _ := inst.Value()
		if label, ok := val.(imem.DataLabel); ok {
			err = &diag.ErrInvalidLabelUsage{LineNo: inst.LineNo, Inst: inst.String(), Label: label.String()}
			return
		}
	}

	return
}

// Registers checks every register index against the bit width of its slot.
func Registers(datas []dmem.Data, insts []imem.Inst) (err error) {
	for _, inst := range insts {
		kind := inst.Op.Mnemonic()
		if !kind.Valid() {
			err = diag.ErrUnknownMnemonic(kind.String())
			return
		}

		rd, rs1, rs2 := inst.Op.Registers()
		field, value, max, ok := isa.CheckRegisters(kind, rd, rs1, rs2)
		if !ok {
			err = &diag.ErrRegisterRange{
				LineNo: inst.LineNo,
				Inst:   inst.String(),
				Field:  field.String(),
				Value:  value,
				Max:    max,
			}
			return
		}
	}

	return
}

// Immediates checks literal operands against the range of their format.
// Label operands are checked after resolution.
func Immediates(datas []dmem.Data, insts []imem.Inst) (err error) {
	for _, inst := range insts {
		var imm int64

		switch op := inst.Op.(type) {
		case imem.R:
			continue
		case imem.I, imem.B:
			val, _ := inst.Value()
			lit, ok := val.(imem.Imm)
			if !ok {
				continue
			}
			imm = int64(lit)
		case imem.L:
			imm = op.Imm
		case imem.S:
			imm = op.Imm
		default:
			err = diag.ErrInstructionShape
			return
		}

		lo, hi := inst.Op.Mnemonic().Format().ImmediateRange()
		if imm < lo || imm > hi {
			err = &diag.ErrImmediateRange{LineNo: inst.LineNo, Inst: inst.String(), Value: imm, Min: lo, Max: hi}
			return
		}
	}

	return
}

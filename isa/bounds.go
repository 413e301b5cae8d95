package isa

// Field names a register operand.
type Field int

const (
	FIELD_RD  = Field(0) // rd
	FIELD_RS1 = Field(1) // rs1
	FIELD_RS2 = Field(2) // rs2
)

const (
	REG_MAX_5 = 31 // Largest index of a 5-bit register field.
	REG_MAX_3 = 7  // Largest index of a 3-bit register field.

	// ALU immediates are unsigned 32-bit.
	IMM_MIN = 0
	IMM_MAX = 1<<32 - 1

	// Branch displacements are signed 25-bit.
	DISP_BITS = 25
	DISP_MIN  = -(1 << (DISP_BITS - 1))
	DISP_MAX  = 1<<(DISP_BITS-1) - 1

	// jal/load/store/io offsets accept either signedness of a 32-bit value.
	OFFSET_MIN = -(1 << 31)
	OFFSET_MAX = 1<<32 - 1
)

// registerMax holds the largest index per rd/rs1/rs2; -1 marks an absent field.
var registerMax = map[Format][3]int{
	FORMAT_R: {REG_MAX_5, REG_MAX_5, REG_MAX_5},
	FORMAT_I: {REG_MAX_5, REG_MAX_3, -1},
	FORMAT_J: {REG_MAX_5, REG_MAX_3, -1},
	FORMAT_L: {REG_MAX_5, REG_MAX_3, -1},
	FORMAT_S: {-1, REG_MAX_3, REG_MAX_5},
	FORMAT_B: {REG_MAX_5, REG_MAX_5, REG_MAX_5},
}

// RegisterMax returns the largest register index a field of the format
// can hold. used is false if the format has no such field.
func (fm Format) RegisterMax(field Field) (max uint8, used bool) {
	bounds, ok := registerMax[fm]
	if !ok || field < 0 || int(field) >= len(bounds) || bounds[field] < 0 {
		return
	}
	return uint8(bounds[field]), true
}

// CheckRegisters returns the first register field of kind whose value
// exceeds the bit width of its slot. ok is true when every field fits.
func CheckRegisters(kind Kind, rd, rs1, rs2 uint8) (field Field, value, max uint8, ok bool) {
	values := [3]uint8{rd, rs1, rs2}
	fm := kind.Format()
	for _, field = range []Field{FIELD_RD, FIELD_RS1, FIELD_RS2} {
		var used bool
		max, used = fm.RegisterMax(field)
		if used && values[field] > max {
			value = values[field]
			return
		}
	}

	return 0, 0, 0, true
}

// ImmediateRange returns the accepted literal interval for the value
// operand of the format.
func (fm Format) ImmediateRange() (min, max int64) {
	switch fm {
	case FORMAT_I:
		return IMM_MIN, IMM_MAX
	case FORMAT_B:
		return DISP_MIN, DISP_MAX
	case FORMAT_J, FORMAT_L, FORMAT_S:
		return OFFSET_MIN, OFFSET_MAX
	}
	return 0, 0
}

package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinrabansyo/assembler/diag"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		inst Inst
		word Word
	}){
		{I{Kind: KIND_ADDI, Rd: 1, Rs1: 0, Imm: 1}, 0x0000_0001_0122},
		{R{Kind: KIND_ADD, Rd: 3, Rs1: 4, Rs2: 5}, 0x0000_0014_8321},
		{S{Kind: KIND_SW, Rs1: 2, Imm: 0xfffffffc, Rs2: 7}, 0xFFFF_FFFC_4705},
		{B{Kind: KIND_BEQ, Disp: -12}, 0xFFFF_FA00_0003},
		{B{Kind: KIND_BLE, Rd: 31, Rs1: 31, Rs2: 31, Disp: DISP_MAX}, 0x7FFF_FFFF_FF63},
		{I{Kind: KIND_IN, Rd: 2, Rs1: 1, Imm: 4}, 0x0000_0004_2206},
		{S{Kind: KIND_OUT, Rs1: 0, Imm: 4, Rs2: 1}, 0x0000_0004_0126},
	}

	for _, entry := range table {
		word, err := Encode(entry.inst)
		assert.NoError(err, entry.inst.String())
		assert.Equal(entry.word, word, entry.inst.String())
	}
}

func TestWordBytes(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(I{Kind: KIND_ADDI, Rd: 1, Rs1: 0, Imm: 1})
	assert.NoError(err)
	assert.Equal([WORD_BYTES]byte{0x22, 0x01, 0x01, 0x00, 0x00, 0x00}, word.Bytes())

	bytes := word.Bytes()
	assert.Equal(word, WordOf(bytes[:]))
	assert.Equal("000000010122", word.String())
	assert.Equal(uint8(0b00010), word.Opcode())
	assert.Equal(uint8(0b001), word.Funct())
}

// sample returns an instruction of the right shape for kind with every
// field set to a value near the top of its range.
func sample(kind Kind) Inst {
	switch kind.Format() {
	case FORMAT_R:
		return R{Kind: kind, Rd: 31, Rs1: 17, Rs2: 9}
	case FORMAT_I, FORMAT_J, FORMAT_L:
		return I{Kind: kind, Rd: 30, Rs1: 7, Imm: 0xdeadbeef}
	case FORMAT_S:
		return S{Kind: kind, Rs1: 5, Imm: 0x80000001, Rs2: 29}
	case FORMAT_B:
		return B{Kind: kind, Rd: 1, Rs1: 2, Rs2: 3, Disp: DISP_MIN}
	}
	return nil
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	kinds := Kinds()
	assert.Equal(32, len(kinds))

	for _, kind := range kinds {
		inst := sample(kind)
		word, err := Encode(inst)
		assert.NoError(err, kind.String())
		assert.Zero(word&^WORD_MASK, kind.String())

		decoded, err := Decode(word)
		assert.NoError(err, kind.String())
		assert.Equal(inst, decoded, kind.String())
		assert.Equal(kind, decoded.Mnemonic())
	}
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	for _, kind := range Kinds() {
		found, ok := Lookup(kind.String())
		assert.True(ok, kind.String())
		assert.Equal(kind, found)
	}

	_, ok := Lookup("mul")
	assert.False(ok)
	assert.Equal("Kind(99)", Kind(99).String())
	assert.Equal(Format(-1), Kind(-1).Format())
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	var re *diag.ErrRegisterRange
	_, err := Encode(I{Kind: KIND_ADDI, Rd: 1, Rs1: 8})
	assert.True(errors.As(err, &re))
	assert.Equal("rs1", re.Field)
	assert.Equal(uint8(8), re.Value)
	assert.Equal(uint8(7), re.Max)

	_, err = Encode(R{Kind: KIND_ADD, Rd: 32})
	assert.True(errors.As(err, &re))
	assert.Equal("rd", re.Field)
	assert.Equal(uint8(31), re.Max)

	_, err = Encode(S{Kind: KIND_SB, Rs1: 8, Rs2: 1})
	assert.True(errors.As(err, &re))
	assert.Equal("rs1", re.Field)

	var ie *diag.ErrImmediateRange
	_, err = Encode(B{Kind: KIND_BNE, Disp: DISP_MAX + 1})
	assert.True(errors.As(err, &ie))
	assert.Equal(int64(DISP_MAX+1), ie.Value)

	_, err = Encode(B{Kind: KIND_BNE, Disp: DISP_MIN - 1})
	assert.True(errors.As(err, &ie))

	_, err = Encode(R{Kind: KIND_ADDI})
	assert.ErrorIs(err, diag.ErrInstructionShape)

	_, err = Encode(I{Kind: KIND_SW})
	assert.ErrorIs(err, diag.ErrInstructionShape)

	var um diag.ErrUnknownMnemonic
	_, err = Encode(R{Kind: Kind(-3)})
	assert.True(errors.As(err, &um))
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []Word{
		0x0000_0000_0000,      // opcode 0
		0x0000_0000_00e1,      // R group, funct 7
		0x0000_0080_0021,      // add with reserved bit 23 set
		0x0001_0000_0000_0022, // beyond 48 bits
	} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrOpcode(0), word.String())
	}
}

func TestRegisterMax(t *testing.T) {
	assert := assert.New(t)

	max, used := FORMAT_I.RegisterMax(FIELD_RS1)
	assert.True(used)
	assert.Equal(uint8(7), max)

	_, used = FORMAT_I.RegisterMax(FIELD_RS2)
	assert.False(used)

	_, used = FORMAT_S.RegisterMax(FIELD_RD)
	assert.False(used)

	max, _ = FORMAT_S.RegisterMax(FIELD_RS2)
	assert.Equal(uint8(31), max)

	field, value, max, ok := CheckRegisters(KIND_SW, 0, 7, 32)
	assert.False(ok)
	assert.Equal(FIELD_RS2, field)
	assert.Equal(uint8(32), value)
	assert.Equal(uint8(31), max)

	_, _, _, ok = CheckRegisters(KIND_BEQ, 31, 31, 31)
	assert.True(ok)
}

func TestInstString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add r1 = r2, r3", R{Kind: KIND_ADD, Rd: 1, Rs1: 2, Rs2: 3}.String())
	assert.Equal("addi r1 = r0, 4294967295", I{Kind: KIND_ADDI, Rd: 1, Imm: 0xffffffff}.String())
	assert.Equal("lw r7 = r0[-4]", I{Kind: KIND_LW, Rd: 7, Imm: 0xfffffffc}.String())
	assert.Equal("jal r1, r2[0]", I{Kind: KIND_JAL, Rd: 1, Rs1: 2}.String())
	assert.Equal("sw r0[4] = r7", S{Kind: KIND_SW, Imm: 4, Rs2: 7}.String())
	assert.Equal("beq r0, (r1, r2) -> -12", B{Kind: KIND_BEQ, Rs1: 1, Rs2: 2, Disp: -12}.String())
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	names := []string{}
	for fm := FORMAT_R; fm <= FORMAT_S; fm++ {
		names = append(names, fm.String())
	}
	assert.Equal([]string{"R", "I", "B", "J", "L", "S"}, names)
	assert.Equal("Format(-1)", Format(-1).String())

	assert.Equal("rd", FIELD_RD.String())
	assert.Equal("rs1", FIELD_RS1.String())
	assert.Equal("rs2", FIELD_RS2.String())
	assert.Equal("Field(3)", Field(3).String())
}

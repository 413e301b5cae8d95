package encode

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinrabansyo/assembler/diag"
	"github.com/shinrabansyo/assembler/dmem"
	"github.com/shinrabansyo/assembler/isa"
)

func TestChunk(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		bytes []byte
		size  int
		text  string
	}){
		{nil, 1, ""},
		{nil, 4, ""},
		{[]byte{0x41, 0x42}, 1, "41\n42"},
		{[]byte{0x41, 0x42}, 2, "4241"},
		{[]byte{0x01, 0x02, 0x03}, 2, "0201\n0003"},
		{[]byte{0x01, 0x02, 0x03}, 4, "00030201"},
		{[]byte{0xab, 0xcd, 0xef, 0x10}, 3, "EFCDAB\n000010"},
	}

	for _, entry := range table {
		text, err := Chunk(slices.Values(entry.bytes), entry.size)
		assert.NoError(err)
		assert.Equal(entry.text, text, "%v/%v", entry.bytes, entry.size)
	}
}

func TestChunkSize(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []int{0, -1} {
		_, err := Chunk(slices.Values([]byte{1}), size)
		assert.True(errors.Is(err, diag.ErrChunkSize))

		_, err = Data(nil, size)
		assert.True(errors.Is(err, diag.ErrChunkSize))

		_, err = Insts(nil, size)
		assert.True(errors.Is(err, diag.ErrChunkSize))
	}
}

func TestData(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		data string
		size int
		text string
	}){
		{"byte1 65, 66", 1, "41\n42"},
		{"string \"AB\"", 1, "41\n42\n00"},
		{"string \"AB\"", 4, "00004241"},
		{"string \"\"", 1, "00"},
		{"byte2 0x1234", 2, "1234"},
		{"byte4 -2", 4, "FFFFFFFE"},
		{"byte6 0x010203040506", 6, "010203040506"},
		{"char 'A'\nbyte1 1", 2, "0141"},
		{"byte1 1\nbyte2 0x0302\nbyte1 4", 2, "0201\n0403"},
	}

	for _, entry := range table {
		datas, err := dmem.Parse(entry.data)
		assert.NoError(err, entry.data)

		text, err := Data(datas, entry.size)
		assert.NoError(err, entry.data)
		assert.Equal(entry.text, text, entry.data)
	}
}

func TestDataBytes(t *testing.T) {
	assert := assert.New(t)

	data := dmem.Data{Command: dmem.CMD_STRING, Text: "AB"}
	assert.Equal([]byte{0x41, 0x42, 0x00}, slices.Collect(DataBytes(&data)))

	data = dmem.Data{Command: dmem.CMD_BYTE4, Value: 0x11223344}
	assert.Equal([]byte{0x44, 0x33, 0x22, 0x11}, slices.Collect(DataBytes(&data)))

	// Early stop from the consumer.
	for b := range DataBytes(&data) {
		assert.Equal(byte(0x44), b)
		break
	}
}

func TestInsts(t *testing.T) {
	assert := assert.New(t)

	insts := []isa.Inst{isa.I{Kind: isa.KIND_ADDI, Rd: 1, Rs1: 0, Imm: 1}}

	text, err := Insts(insts, 1)
	assert.NoError(err)
	assert.Equal("22\n01\n01\n00\n00\n00", text)

	text, err = Insts(insts, 6)
	assert.NoError(err)
	assert.Equal("000000010122", text)

	insts = append(insts, isa.B{Kind: isa.KIND_BEQ, Disp: -12})
	text, err = Insts(insts, 6)
	assert.NoError(err)
	assert.Equal("000000010122\nFFFFFA000003", text)

	text, err = Insts(insts, 4)
	assert.NoError(err)
	assert.Equal("00010122\n00030000\nFFFFFA00", text)

	text, err = Insts(nil, 6)
	assert.NoError(err)
	assert.Equal("", text)
}

func TestInstsError(t *testing.T) {
	assert := assert.New(t)

	_, err := Insts([]isa.Inst{isa.R{Kind: isa.KIND_ADD, Rd: 32}}, 6)
	var re *diag.ErrRegisterRange
	assert.True(errors.As(err, &re))

	_, err = Insts([]isa.Inst{isa.B{Kind: isa.KIND_BEQ, Disp: isa.DISP_MAX + 1}}, 6)
	var ie *diag.ErrImmediateRange
	assert.True(errors.As(err, &ie))
}

func TestDataLongString(t *testing.T) {
	assert := assert.New(t)

	data := dmem.Data{Command: dmem.CMD_STRING, Text: strings.Repeat("B", 70000)}
	bytes := slices.Collect(DataBytes(&data))
	assert.Len(bytes, data.Len())
	assert.Equal(byte('B'), bytes[0])
	assert.Equal(byte(0), bytes[70000])

	text, err := Data([]dmem.Data{data}, 6)
	assert.NoError(err)
	lines := strings.Split(text, "\n")
	// 70001 bytes pad to 70002, which is 11667 chunks of six.
	assert.Len(lines, 11667)
	assert.Equal("000042424242", lines[11666])
}

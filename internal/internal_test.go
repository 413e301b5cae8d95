package internal

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	assert.Equal([]int{1, 2, 3, 0}, slices.Collect(IterSeqPad(seq, 2, 0)))
	assert.Equal([]int{1, 2, 3}, slices.Collect(IterSeqPad(seq, 3, 0)))
	assert.Equal([]int{1, 2, 3, 9, 9}, slices.Collect(IterSeqPad(seq, 5, 9)))
	assert.Empty(slices.Collect(IterSeqPad(slices.Values([]int{}), 4, 0)))

	assert.Equal([][]int{{1, 2}, {3}}, slices.Collect(IterSeqChunk(seq, 2)))
	assert.Equal([][]int{{1}, {2}, {3}}, slices.Collect(IterSeqChunk(seq, 1)))
	assert.Empty(slices.Collect(IterSeqChunk(seq, 0)))

	for chunk := range IterSeqChunk(seq, 2) {
		assert.Equal([]int{1, 2}, chunk)
		break
	}
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		want string
	}){
		{"", ""},
		{"   ", ""},
		{"// only a comment", ""},
		{"  add r0 = r0, r0 // trailing", "add r0 = r0, r0"},
		{"string \"http://x\" // url", "string \"http://x\""},
		{"char '/' // slash", "char '/'"},
		{"byte1 1/2", "byte1 1/2"},
	}

	for _, entry := range table {
		assert.Equal(entry.want, StripComment(entry.line), entry.line)
	}
}

func TestSplitOperands(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{""}, SplitOperands(""))
	assert.Equal([]string{"1", "2", "3"}, SplitOperands("1 ,2,  3"))
	assert.Equal([]string{"\"a,b\"", "'c'"}, SplitOperands("\"a,b\", 'c'"))
	assert.Equal([]string{"','", ""}, SplitOperands("',',"))
}

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	good := map[string]int64{
		"0":                    0,
		"42":                   42,
		"-42":                  -42,
		"0x1F":                 31,
		"0XfF":                 255,
		"-0x10":                -16,
		"0b101":                5,
		"0B11":                 3,
		"-0b1":                 -1,
		"4294967295":           4294967295,
		"-9223372036854775808": -9223372036854775808,
	}
	for word, want := range good {
		got, err := ParseNumber(word)
		assert.NoError(err, word)
		assert.Equal(want, got, word)
	}

	for _, word := range []string{"", "-", "+1", "0x", "0b", "1_000", "0b2", "12a", "x10", "--1", "r1", "$a"} {
		_, err := ParseNumber(word)
		assert.True(errors.Is(err, ErrNumber), word)
	}
}

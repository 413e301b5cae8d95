package internal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shinrabansyo/assembler/translate"
)

// ErrNumber is returned by ParseNumber for text that is not a literal.
var ErrNumber = errors.New(translate.From("not a number"))

// ParseNumber parses a signed integer literal. Accepted forms are decimal,
// `0x`/`0X` hexadecimal and `0b`/`0B` binary, each with an optional leading
// minus sign. Digit separators and other bases are not accepted.
func ParseNumber(word string) (value int64, err error) {
	text := word
	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		base = 16
		text = text[2:]
	case strings.HasPrefix(text, "0b"), strings.HasPrefix(text, "0B"):
		base = 2
		text = text[2:]
	}

	// strconv accepts a sign; the sign has already been consumed.
	if len(text) == 0 || text[0] == '+' || text[0] == '-' {
		err = ErrNumber
		return
	}

	u64, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		err = ErrNumber
		return
	}

	switch {
	case negative && u64 <= 1<<63:
		value = -int64(u64-1) - 1
	case !negative && u64 < 1<<63:
		value = int64(u64)
	default:
		err = ErrNumber
	}

	return
}

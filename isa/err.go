package isa

import (
	"github.com/shinrabansyo/assembler/translate"
)

var f = translate.From

// ErrOpcode reports a word that does not decode to any instruction.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode word %v", Word(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

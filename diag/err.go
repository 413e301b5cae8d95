// Package diag holds the assembler error taxonomy. Every stage reports the
// first violation it finds with one of these errors and stops.
package diag

import (
	"errors"

	"github.com/shinrabansyo/assembler/translate"
)

var f = translate.From

var (
	// Source errors
	ErrSeparatorMissing = errors.New(f("=== separator missing"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrLabelInvalid     = errors.New(f("label invalid"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrQuote            = errors.New(f("quote delimiters mismatched"))

	// Pipeline configuration errors
	ErrChunkSize = errors.New(f("chunk size must be positive"))

	// Encoding errors
	ErrInstructionShape = errors.New(f("instruction shape invalid"))
)

// ErrSyntax locates a SyntaxError in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a number, $data label or @instruction label", string(err))
}

// ErrOperands reports operands that do not match the surface form
// required by a mnemonic.
type ErrOperands string

func (err ErrOperands) Error() string {
	return f("operands do not match the form of '%v'", string(err))
}

// ErrLiteralRange reports a data literal that does not fit its command width.
type ErrLiteralRange struct {
	Literal string
	Bits    int
}

func (err *ErrLiteralRange) Error() string {
	return f("'%v' does not fit in %d bits", err.Literal, err.Bits)
}

// ErrUnknownDataCommand is an UnknownDataCommandError.
type ErrUnknownDataCommand string

func (err ErrUnknownDataCommand) Error() string {
	return f("unknown data command '%v'", string(err))
}

// ErrUnknownMnemonic is an UnknownMnemonicError.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

// ErrUnknownLabel is an UnknownLabelError. Label carries its sigil.
type ErrUnknownLabel struct {
	LineNo int
	Inst   string
	Label  string
}

func (err *ErrUnknownLabel) Error() string {
	return f("line %d '%v' label %v missing", err.LineNo, err.Inst, err.Label)
}

// ErrInvalidLabelUsage is an InvalidLabelUsageError.
type ErrInvalidLabelUsage struct {
	LineNo int
	Inst   string
	Label  string
}

func (err *ErrInvalidLabelUsage) Error() string {
	return f("line %d '%v' data label %v is not permitted in a branch", err.LineNo, err.Inst, err.Label)
}

// ErrRegisterRange is a RegisterRangeError.
type ErrRegisterRange struct {
	LineNo int
	Inst   string
	Field  string
	Value  uint8
	Max    uint8
}

func (err *ErrRegisterRange) Error() string {
	return f("line %d '%v' %v r%d out of range r0-r%d", err.LineNo, err.Inst, err.Field, err.Value, err.Max)
}

// ErrImmediateRange is an ImmediateRangeError.
type ErrImmediateRange struct {
	LineNo int
	Inst   string
	Value  int64
	Min    int64
	Max    int64
}

func (err *ErrImmediateRange) Error() string {
	return f("line %d '%v' immediate %d out of range %d..%d", err.LineNo, err.Inst, err.Value, err.Min, err.Max)
}

// Package dmem parses the data segment of an assembler source.
package dmem

import (
	"fmt"
	"strconv"
)

// Command is a data directive.
type Command int

//go:generate go tool stringer -linecomment -type=Command
const (
	CMD_BYTE1  = Command(0) // byte1
	CMD_BYTE2  = Command(1) // byte2
	CMD_BYTE4  = Command(2) // byte4
	CMD_BYTE6  = Command(3) // byte6
	CMD_CHAR   = Command(4) // char
	CMD_STRING = Command(5) // string
)

// commandMap maps directive names.
var commandMap = map[string]Command{
	"byte1":  CMD_BYTE1,
	"byte2":  CMD_BYTE2,
	"byte4":  CMD_BYTE4,
	"byte6":  CMD_BYTE6,
	"char":   CMD_CHAR,
	"string": CMD_STRING,
}

// Bits returns the width of a numeric command, 8 for char, or 0 for string.
func (cmd Command) Bits() int {
	switch cmd {
	case CMD_BYTE1, CMD_CHAR:
		return 8
	case CMD_BYTE2:
		return 16
	case CMD_BYTE4:
		return 32
	case CMD_BYTE6:
		return 48
	}
	return 0
}

// Data is a single data directive entry.
type Data struct {
	LineNo  int     // Source line of the directive.
	Label   string  // Data label, empty if none.
	Command Command // Directive kind.
	Value   uint64  // Two's complement value of a numeric command, or the char code.
	Text    string  // String contents, without quotes or terminator.
}

// Len returns the number of bytes the entry occupies.
func (data *Data) Len() int {
	switch data.Command {
	case CMD_STRING:
		return len(data.Text) + 1
	default:
		return data.Command.Bits() / 8
	}
}

// String reconstructs the directive source text.
func (data *Data) String() string {
	switch data.Command {
	case CMD_CHAR:
		return fmt.Sprintf("char '%c'", rune(data.Value))
	case CMD_STRING:
		return fmt.Sprintf("string \"%v\"", data.Text)
	default:
		return fmt.Sprintf("%v %v", data.Command, strconv.FormatUint(data.Value, 10))
	}
}

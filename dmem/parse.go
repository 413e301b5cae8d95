package dmem

import (
	"bufio"
	"io"
	"log"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shinrabansyo/assembler/diag"
	"github.com/shinrabansyo/assembler/internal"
)

// Parser reads a data segment.
type Parser struct {
	Verbose bool // If set, logs every directive parsed.
	Origin  int  // Number of source lines before the segment.
}

// Parse turns data segment text into an ordered list of entries. A `$name`
// line labels the first entry of the next directive.
func (parser *Parser) Parse(input io.Reader) (datas []Data, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &diag.ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	labels := map[string]bool{}
	label := ""

	lineno = parser.Origin
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		line = internal.StripComment(text)
		if len(line) == 0 {
			continue
		}

		if parser.Verbose {
			log.Printf("dmem %v: %v\n", lineno, line)
		}

		if strings.HasPrefix(line, "$") {
			label, err = labelOf(line)
			if err != nil {
				return
			}
			if labels[label] {
				err = diag.ErrLabelDuplicate
				return
			}
			continue
		}

		var entries []Data
		entries, err = parseLine(line)
		if err != nil {
			return
		}

		for n := range entries {
			entries[n].LineNo = lineno
		}
		if len(label) != 0 {
			entries[0].Label = label
			labels[label] = true
			label = ""
		}

		datas = append(datas, entries...)
	}

	err = scanner.Err()
	if err != nil {
		// The failed read is the line after the last one scanned.
		lineno += 1
		line = ""
	}

	return
}

// Parse is a convenience wrapper for a segment starting on line 1.
func Parse(text string) (datas []Data, err error) {
	parser := &Parser{}
	return parser.Parse(strings.NewReader(text))
}

// labelOf extracts the name of a `$name` line.
func labelOf(line string) (label string, err error) {
	label = line[1:]
	if len(label) == 0 || strings.ContainsFunc(label, unicode.IsSpace) {
		err = diag.ErrLabelInvalid
	}
	return
}

// parseLine parses `<command> <operand>[, <operand>]*`.
func parseLine(line string) (datas []Data, err error) {
	name, args := cutSpace(line)

	cmd, ok := commandMap[name]
	if !ok {
		err = diag.ErrUnknownDataCommand(name)
		return
	}

	for _, arg := range internal.SplitOperands(args) {
		data := Data{Command: cmd}
		switch cmd {
		case CMD_CHAR:
			data.Value, err = parseChar(arg)
		case CMD_STRING:
			data.Text, err = parseString(arg)
		default:
			data.Value, err = parseValue(arg, cmd.Bits())
		}
		if err != nil {
			return
		}
		datas = append(datas, data)
	}

	return
}

// cutSpace splits line at its first run of white space.
func cutSpace(line string) (before, after string) {
	n := strings.IndexFunc(line, unicode.IsSpace)
	if n < 0 {
		return line, ""
	}
	return line[:n], strings.TrimSpace(line[n:])
}

// parseValue parses a literal that must fit in bits, folding negative
// values into two's complement form.
func parseValue(arg string, bits int) (value uint64, err error) {
	if len(arg) == 0 {
		err = diag.ErrOperandMissing
		return
	}

	v64, err := internal.ParseNumber(arg)
	if err != nil {
		err = diag.ErrParseNumber(arg)
		return
	}

	lo := -(int64(1) << (bits - 1))
	hi := int64(1)<<bits - 1
	if v64 < lo || v64 > hi {
		err = &diag.ErrLiteralRange{Literal: arg, Bits: bits}
		return
	}

	value = uint64(v64) & uint64(hi)

	return
}

// parseChar parses a single character wrapped in one pair of single quotes.
func parseChar(arg string) (value uint64, err error) {
	if len(arg) == 0 {
		err = diag.ErrOperandMissing
		return
	}

	if !strings.HasPrefix(arg, "'") || !strings.HasSuffix(arg, "'") || len(arg) < 2 {
		err = diag.ErrQuote
		return
	}

	inner := arg[1 : len(arg)-1]
	ch, size := utf8.DecodeRuneInString(inner)
	if size == 0 || size != len(inner) || ch == '\'' {
		err = diag.ErrQuote
		return
	}

	if ch > 0xff {
		err = &diag.ErrLiteralRange{Literal: arg, Bits: 8}
		return
	}

	value = uint64(ch)

	return
}

// parseString parses text wrapped in double quotes.
func parseString(arg string) (text string, err error) {
	if len(arg) == 0 {
		err = diag.ErrOperandMissing
		return
	}

	if len(arg) < 2 || !strings.HasPrefix(arg, "\"") || !strings.HasSuffix(arg, "\"") {
		err = diag.ErrQuote
		return
	}

	text = arg[1 : len(arg)-1]

	return
}

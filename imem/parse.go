package imem

import (
	"bufio"
	"io"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shinrabansyo/assembler/diag"
	"github.com/shinrabansyo/assembler/internal"
	"github.com/shinrabansyo/assembler/isa"
)

// Parser reads an instruction segment.
type Parser struct {
	Verbose bool // If set, logs every instruction parsed.
	Origin  int  // Number of source lines before the segment.
}

// tok matches one operand word.
const tok = `([^\s=,\[\]()]+)`

// formMap holds the surface syntax of each format.
var formMap = map[isa.Format]*regexp.Regexp{
	isa.FORMAT_R: regexp.MustCompile(`^` + tok + `\s*=\s*` + tok + `\s*,\s*` + tok + `$`),
	isa.FORMAT_I: regexp.MustCompile(`^` + tok + `\s*=\s*` + tok + `\s*,\s*` + tok + `$`),
	isa.FORMAT_B: regexp.MustCompile(`^` + tok + `\s*,\s*\(\s*` + tok + `\s*,\s*` + tok + `\s*\)\s*->\s*` + tok + `$`),
	isa.FORMAT_J: regexp.MustCompile(`^` + tok + `\s*,\s*` + tok + `\s*\[\s*` + tok + `\s*\]$`),
	isa.FORMAT_L: regexp.MustCompile(`^` + tok + `\s*=\s*` + tok + `\s*\[\s*` + tok + `\s*\]$`),
	isa.FORMAT_S: regexp.MustCompile(`^` + tok + `\s*\[\s*` + tok + `\s*\]\s*=\s*` + tok + `$`),
}

// Parse turns instruction segment text into an ordered list of unresolved
// instructions. An `@name` line labels the next instruction.
func (parser *Parser) Parse(input io.Reader) (insts []Inst, err error) {
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
			log.Printf("imem %v: %v\n", lineno, line)
		}

		if strings.HasPrefix(line, "@") {
			label = line[1:]
			if len(label) == 0 || strings.ContainsFunc(label, unicode.IsSpace) {
				err = diag.ErrLabelInvalid
				return
			}
			if labels[label] {
				err = diag.ErrLabelDuplicate
				return
			}
			continue
		}

		var op Op
		op, err = ParseLine(line)
		if err != nil {
			return
		}

		inst := Inst{LineNo: lineno, Op: op}
		if len(label) != 0 {
			inst.Label = label
			labels[label] = true
			label = ""
		}

		insts = append(insts, inst)
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
func Parse(text string) (insts []Inst, err error) {
	parser := &Parser{}
	return parser.Parse(strings.NewReader(text))
}

// ParseLine parses a single instruction, without comment or label.
func ParseLine(line string) (op Op, err error) {
	line = strings.TrimSpace(line)
	name, args := line, ""
	if n := strings.IndexFunc(line, unicode.IsSpace); n >= 0 {
		name, args = line[:n], strings.TrimSpace(line[n:])
	}

	kind, ok := isa.Lookup(name)
	if !ok {
		err = diag.ErrUnknownMnemonic(name)
		return
	}

	fm := kind.Format()
	words := formMap[fm].FindStringSubmatch(args)
	if words == nil {
		err = diag.ErrOperands(name)
		return
	}
	words = words[1:]

	switch fm {
	case isa.FORMAT_R:
		var regs [3]uint8
		regs, err = registers(words[0], words[1], words[2])
		op = R{Kind: kind, Rd: regs[0], Rs1: regs[1], Rs2: regs[2]}
	case isa.FORMAT_I:
		var regs [3]uint8
		var val Value
		regs, err = registers(words[0], words[1])
		if err == nil {
			val, err = parseValue(words[2])
		}
		op = I{Kind: kind, Rd: regs[0], Rs1: regs[1], Val: val}
	case isa.FORMAT_B:
		var regs [3]uint8
		var val Value
		regs, err = registers(words[0], words[1], words[2])
		if err == nil {
			val, err = parseValue(words[3])
		}
		op = B{Kind: kind, Rd: regs[0], Rs1: regs[1], Rs2: regs[2], Val: val}
	case isa.FORMAT_J, isa.FORMAT_L:
		var regs [3]uint8
		var imm int64
		regs, err = registers(words[0], words[1])
		if err == nil {
			imm, err = parseImm(words[2])
		}
		op = L{Kind: kind, Rd: regs[0], Rs1: regs[1], Imm: imm}
	case isa.FORMAT_S:
		var regs [3]uint8
		var imm int64
		regs, err = registers(words[0], words[2])
		if err == nil {
			imm, err = parseImm(words[1])
		}
		op = S{Kind: kind, Rs1: regs[0], Imm: imm, Rs2: regs[1]}
	default:
		err = diag.ErrUnknownMnemonic(name)
	}

	if err != nil {
		op = nil
	}

	return
}

// registers parses `r<N>` words in order.
func registers(words ...string) (regs [3]uint8, err error) {
	for n, word := range words {
		regs[n], err = parseRegister(word)
		if err != nil {
			return
		}
	}
	return
}

// parseRegister parses `r<N>` with N a decimal index that fits in 8 bits.
// Whether N fits the slot is decided by the validator.
func parseRegister(word string) (reg uint8, err error) {
	digits, ok := strings.CutPrefix(word, "r")
	if !ok || len(digits) == 0 || digits[0] == '+' || digits[0] == '-' {
		err = diag.ErrParseRegister(word)
		return
	}

	u64, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		err = diag.ErrParseRegister(word)
		return
	}

	reg = uint8(u64)

	return
}

// parseValue classifies a literal-or-label operand. A number is tried
// first; otherwise the `$` or `@` sigil is required.
func parseValue(word string) (val Value, err error) {
	v64, err := internal.ParseNumber(word)
	if err == nil {
		val = Imm(v64)
		return
	}
	err = nil

	switch {
	case len(word) > 1 && word[0] == '$':
		val = DataLabel(word[1:])
	case len(word) > 1 && word[0] == '@':
		val = InstLabel(word[1:])
	default:
		err = diag.ErrParseValue(word)
	}

	return
}

// parseImm parses the literal index of a `rs1[imm]` operand.
func parseImm(word string) (imm int64, err error) {
	imm, err = internal.ParseNumber(word)
	if err != nil {
		err = diag.ErrParseNumber(word)
	}
	return
}

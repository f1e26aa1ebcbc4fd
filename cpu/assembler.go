// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates, in addition to the cpu defines.
var sysEquate = map[string]string{
	"LINENO": "0",
}

var reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// fixup is an operand byte waiting for a label defined later in the source.
type fixup struct {
	Address int
	Label   string
	LineNo  int
	Line    string
}

// Assembler is a two pass assembler for LS8 mnemonics.
//
//	label:  MNEMONIC [operand[, operand]]   ; comment
//	        .equ NAME VALUE
//	        .byte VALUE[, VALUE...]
//
// Operands are numbers (any Go integer literal), register names (R0-R7),
// equates, labels, or $(expression) evaluated at assembly time.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	prog   *Program
	fixups []fixup
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the byte value of a number, equate, or known label.
func (asm *Assembler) valueOf(word string) (value byte, err error) {
	// Equates may name other equates.
	for range len(asm.Equate) {
		equate, ok := asm.Equate[word]
		if !ok {
			break
		}
		word = equate
	}

	address, ok := asm.Label[word]
	if ok {
		value = byte(address)
		return
	}

	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < -0x80 || v64 > 0xff {
		err = ErrParseByte(word)
		return
	}

	value = byte(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, address := range asm.Label {
		pred[key] = starlark.MakeInt(address)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands a single line into words, defining labels and equates.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(strings.ReplaceAll(line, ",", " "))

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.prog.Bytes)
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 || !reLabel.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	return
}

// operand resolves an operand word to a byte, deferring unknown labels.
func (asm *Assembler) operand(word string, lineno int, line string) (value byte, err error) {
	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	_, is_equate := asm.Equate[word]
	if !is_equate && reLabel.MatchString(word) {
		asm.fixups = append(asm.fixups, fixup{
			Address: len(asm.prog.Bytes),
			Label:   word,
			LineNo:  lineno,
			Line:    line,
		})
		value = 0
		err = nil
	}

	return
}

// parseWords assembles the words of one line.
func (asm *Assembler) parseWords(words []string, lineno int, line string) (err error) {
	if len(words) == 0 {
		return
	}

	if words[0] == ".byte" {
		if len(words) == 1 {
			err = ErrByteMissing
			return
		}
		for _, word := range words[1:] {
			var value byte
			value, err = asm.operand(word, lineno, line)
			if err != nil {
				return
			}
			asm.prog.append(lineno, value)
		}
		return
	}

	op, ok := OpcodeOf(words[0])
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	if len(args) != op.Operands() {
		err = ErrOpcodeArgs
		return
	}

	asm.prog.append(lineno, byte(op))
	for _, arg := range args {
		var value byte
		value, err = asm.operand(arg, lineno, line)
		if err != nil {
			return
		}
		asm.prog.append(lineno, value)
	}

	if asm.Verbose {
		log.Printf("%02x: %v", len(asm.prog.Bytes)-op.Size(), strings.Join(words, " "))
	}

	return
}

// resolve patches the operands that referenced labels defined later.
func (asm *Assembler) resolve() (err error) {
	for _, fix := range asm.fixups {
		address, ok := asm.Label[fix.Label]
		if !ok {
			err = &ErrSyntax{LineNo: fix.LineNo, Line: fix.Line, Err: ErrLabelMissing(fix.Label)}
			return
		}
		asm.prog.Bytes[fix.Address] = byte(address)
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	asm.prog = &Program{}
	asm.fixups = asm.fixups[:0]
	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, _cpu_defines)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		if n := strings.IndexAny(text, ";#"); n >= 0 {
			text = text[:n]
		}
		line = strings.TrimSpace(text)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err == nil {
			err = asm.parseWords(words, lineno, line)
		}
		if err == nil && len(asm.prog.Bytes) > MEMORY_SIZE {
			err = ErrProgramSize
		}
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	err = asm.resolve()
	if err != nil {
		return
	}

	prog = asm.prog
	return
}

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"strconv"
	"strings"
)

// Program is a memory image, with the source line of each byte.
type Program struct {
	Bytes  []byte
	LineNo []int
}

// append adds bytes from a source line.
func (prog *Program) append(lineno int, data ...byte) {
	for _, b := range data {
		prog.Bytes = append(prog.Bytes, b)
		prog.LineNo = append(prog.LineNo, lineno)
	}
}

// Line returns the source line of the byte at address, or 0 if unknown.
func (prog *Program) Line(address int) int {
	if address < 0 || address >= len(prog.LineNo) {
		return 0
	}

	return prog.LineNo[address]
}

// Listing disassembles the program, yielding the address and text of each
// instruction. Bytes that are not opcodes are listed as .byte data.
func (prog *Program) Listing() iter.Seq2[int, string] {
	return func(yield func(address int, text string) bool) {
		for address := 0; address < len(prog.Bytes); {
			op := Opcode(prog.Bytes[address])
			_, known := Dispatch(op)
			if !known || address+op.Size() > len(prog.Bytes) {
				if !yield(address, fmt.Sprintf(".byte 0x%02x", byte(op))) {
					return
				}
				address++
				continue
			}

			words := []string{op.String()}
			for n := 1; n <= op.Operands(); n++ {
				words = append(words, fmt.Sprintf("0x%02x", prog.Bytes[address+n]))
			}
			text := strings.Join(words, " ")
			if op.IsAlu() {
				text += " ; alu"
			}
			if !yield(address, text) {
				return
			}
			address += op.Size()
		}
	}
}

// ParseProgram reads a program of base 2 byte literals, one per line.
// Text after a '#' is a comment; blank lines are skipped.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		lineno += 1
		line = scanner.Text()

		text, _, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(text, 2, 8)
		if err != nil {
			err = ErrParseNumber(text)
			return
		}

		prog.append(lineno, byte(value))
		if len(prog.Bytes) > MEMORY_SIZE {
			err = ErrProgramSize
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	return
}

// LogListing logs the disassembly of the program.
func (prog *Program) LogListing() {
	for address, text := range prog.Listing() {
		log.Printf("%02x: %v", address, text)
	}
}

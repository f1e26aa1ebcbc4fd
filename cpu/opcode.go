package cpu

import (
	"fmt"
	"maps"
	"strings"
)

// Opcode is the first byte of an instruction.
//
//	bits 7-6: operand count
//	bit 5:    ALU instruction
//	bit 4:    instruction sets the PC
type Opcode byte

const (
	OPCODE_OPERANDS_SHIFT = 6          // Operand count is opcode >> 6.
	OPCODE_FLAG_ALU       = 0b00100000 // ALU class instruction.
	OPCODE_FLAG_PC        = 0b00010000 // Instruction sets the PC itself.
)

const (
	OP_HLT  = Opcode(0b00000001)
	OP_RET  = Opcode(0b00010001)
	OP_PUSH = Opcode(0b01000101)
	OP_POP  = Opcode(0b01000110)
	OP_PRN  = Opcode(0b01000111)
	OP_CALL = Opcode(0b01010000)
	OP_LDI  = Opcode(0b10000010)
	OP_ADD  = Opcode(0b10100000)
	OP_MUL  = Opcode(0b10100010)
)

var _opcode_names = map[Opcode]string{
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_CALL: "CALL",
	OP_LDI:  "LDI",
	OP_ADD:  "ADD",
	OP_MUL:  "MUL",
}

var _opcode_mnemonics = func() map[string]Opcode {
	mnemonics := make(map[string]Opcode, len(_opcode_names))
	for op, name := range _opcode_names {
		mnemonics[name] = op
	}
	return mnemonics
}()

// OpcodeOf returns the opcode of a mnemonic, in any case.
func OpcodeOf(mnemonic string) (op Opcode, ok bool) {
	op, ok = _opcode_mnemonics[strings.ToUpper(mnemonic)]
	return
}

// Opcodes returns the mnemonics of all defined opcodes.
func Opcodes() map[string]Opcode {
	return maps.Clone(_opcode_mnemonics)
}

// String returns the mnemonic, or the hex value of an undefined opcode.
func (op Opcode) String() string {
	name, ok := _opcode_names[op]
	if !ok {
		return fmt.Sprintf("0x%02x", byte(op))
	}
	return name
}

// Operands returns the count of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPCODE_OPERANDS_SHIFT)
}

// Size returns the length in bytes of the whole instruction.
func (op Opcode) Size() int {
	return op.Operands() + 1
}

// SetsPc is true when the handler computes the next PC.
func (op Opcode) SetsPc() bool {
	return (op&OPCODE_FLAG_PC)>>4 == 1
}

// IsAlu is true for ALU class instructions.
func (op Opcode) IsAlu() bool {
	return (op & OPCODE_FLAG_ALU) != 0
}

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_MUL = AluOp(1) // mul
)

// String returns the operation name.
func (op AluOp) String() string {
	switch op {
	case ALU_OP_ADD:
		return "add"
	case ALU_OP_MUL:
		return "mul"
	}
	return fmt.Sprintf("AluOp(%d)", int(op))
}

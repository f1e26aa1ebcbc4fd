// Package cpu implements the LS8 microprocessor, its program loader, and its
// assembler.
//
// The CPU consists of a program counter (PC), eight integer registers (r0-r7,
// with r7 reserved as the stack pointer), 256 bytes of memory shared by the
// program text and the downward-growing stack, and a two-operation ALU.
//
// Instructions are one opcode byte followed by zero to two operand bytes. The
// operand count is the top two bits of the opcode; bit 4 marks instructions
// that set the PC themselves, and bit 5 marks ALU instructions.
//
// Programs are loaded either from text files of binary literals (ParseProgram)
// or from mnemonic assembly source (Assembler), supporting labels, equates,
// and compile-time expression evaluation.
package cpu

package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted             = errors.New(f("cpu halted"))
	ErrInstructionUnknown = errors.New(f("unknown instruction"))
	ErrAluUnsupported     = errors.New(f("unsupported alu operation"))
	ErrStackFull          = errors.New(f("stack full"))
	ErrStackEmpty         = errors.New(f("stack empty"))
	ErrOutputMissing      = errors.New(f("output missing"))
	ErrProgramSize        = errors.New(f("program exceeds memory"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelInvalid    = errors.New(f("label invalid"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOpcodeArgs      = errors.New(f("wrong argument count"))
	ErrByteMissing     = errors.New(f(".byte without values"))
)

// ErrRegister is a register index outside of r0-r7.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register %d out of range", int(er))
}

func (er ErrRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrRegister)
	return
}

// ErrAddress is a memory address outside of the 256 byte address space.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of range", int(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrAluOp is an ALU operation the ALU does not implement.
type ErrAluOp AluOp

func (eo ErrAluOp) Error() string {
	return f("alu operation %v", AluOp(eo).String())
}

func (eo ErrAluOp) Unwrap() error {
	return ErrAluUnsupported
}

// ErrInstruction is an opcode without a handler.
type ErrInstruction struct {
	Pc     int
	Opcode Opcode
}

func (err *ErrInstruction) Error() string {
	return f("unknown instruction 0x%02x at 0x%02x", byte(err.Opcode), err.Pc)
}

func (err *ErrInstruction) Unwrap() error {
	return ErrInstructionUnknown
}

// ErrFault terminates execution, recording the PC of the faulting instruction.
type ErrFault struct {
	Pc     int
	Opcode Opcode
	Err    error
}

func (err *ErrFault) Error() string {
	return f("pc 0x%02x %v: %v", err.Pc, err.Opcode.String(), err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseByte string

func (err ErrParseByte) Error() string {
	return f("'%v' does not fit in a byte", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

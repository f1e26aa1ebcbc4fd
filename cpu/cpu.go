package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// State is the execution state of the CPU.
type State int

const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// String returns the state name.
func (st State) String() string {
	switch st {
	case STATE_RUNNING:
		return "running"
	case STATE_HALTED:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

var _cpu_defines = func() map[string]string {
	defines := map[string]string{
		"SP":          fmt.Sprintf("%v", REGISTER_SP),
		"SP_INIT":     fmt.Sprintf("0x%x", SP_INIT),
		"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	}
	for n := range REGISTER_COUNT {
		defines[fmt.Sprintf("R%d", n)] = fmt.Sprintf("%v", n)
		defines[fmt.Sprintf("r%d", n)] = fmt.Sprintf("%v", n)
	}
	for name, op := range _opcode_mnemonics {
		defines["OP_"+name] = fmt.Sprintf("0x%02x", byte(op))
	}
	return defines
}()

// Cpu is the simulation context for the LS8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int       // Address of the next instruction.
	State    State     // Execution state.
	Register Registers // Register bank.
	Memory   Memory    // Program text and stack.

	Output io.Sink // Destination of PRN values.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new, reset, CPU printing to output.
func NewCpu(output io.Sink) (cpu *Cpu) {
	cpu = &Cpu{
		Output: output,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Sets the stack pointer to SP_INIT, and the PC to 0.
// - Zeros the tick counter.
// - Rewinds the output.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Memory.Reset()
	cpu.Pc = 0
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// Load a program into memory at address 0.
func (cpu *Cpu) Load(program []byte) (err error) {
	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(program))
	}

	return
}

// Tick executes a single fetch, decode, execute cycle.
// Any error halts the CPU, and is returned as an *ErrFault.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	pc := cpu.Pc
	var op Opcode

	defer func() {
		if err != nil {
			cpu.State = STATE_HALTED
			err = &ErrFault{Pc: pc, Opcode: op, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	code, err := cpu.Memory.Read(pc)
	if err != nil {
		return
	}
	op = Opcode(code)

	handler, ok := Dispatch(op)
	if !ok {
		err = &ErrInstruction{Pc: pc, Opcode: op}
		return
	}

	err = handler(cpu, pc)
	if err != nil {
		return
	}

	if !op.SetsPc() {
		cpu.Pc = pc + op.Size()
	}

	cpu.Ticks += 1

	return
}

// Run ticks the CPU until it halts.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// peek reads memory for diagnostics, with 0 for addresses out of range.
func (cpu *Cpu) peek(address int) byte {
	value, _ := cpu.Memory.Read(address)
	return value
}

// Trace returns the PC, the next three bytes of memory, and the registers.
func (cpu *Cpu) Trace() string {
	var text strings.Builder

	fmt.Fprintf(&text, "TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.peek(cpu.Pc),
		cpu.peek(cpu.Pc+1),
		cpu.peek(cpu.Pc+2),
	)

	for _, reg := range cpu.Register {
		fmt.Fprintf(&text, " %02X", reg)
	}

	return text.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"state",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "sp",
		"stack",
		"ticks",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			op := Opcode(cpu.peek(cpu.Pc))
			strval = fmt.Sprintf("%02X (%v)", cpu.Pc, op)
		case "state":
			strval = cpu.State.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6":
			val := cpu.Register[int(reg[1]-'0')]
			strval = fmt.Sprintf("%02X (%d)", val, val)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Register[REGISTER_SP])
		case "stack":
			if cpu.Depth() > 0 {
				strval = fmt.Sprintf("%02X [%d]", cpu.peek(cpu.Register[REGISTER_SP]), cpu.Depth())
			} else {
				strval = "--"
			}
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

package cpu

// Handler executes one instruction whose opcode is at pc.
// Handlers of opcodes with OPCODE_FLAG_PC set must update cpu.Pc.
type Handler func(cpu *Cpu, pc int) (err error)

var _dispatch = map[Opcode]Handler{
	OP_LDI:  handleLdi,
	OP_PRN:  handlePrn,
	OP_MUL:  handleAlu(ALU_OP_MUL),
	OP_ADD:  handleAlu(ALU_OP_ADD),
	OP_PUSH: handlePush,
	OP_POP:  handlePop,
	OP_CALL: handleCall,
	OP_RET:  handleRet,
	OP_HLT:  handleHlt,
}

// Dispatch returns the handler of an opcode.
func Dispatch(op Opcode) (handler Handler, ok bool) {
	handler, ok = _dispatch[op]
	return
}

// operand returns the n'th operand byte of the instruction at pc.
func (cpu *Cpu) operand(pc int, n int) (value int, err error) {
	data, err := cpu.Memory.Read(pc + n)
	if err != nil {
		return
	}

	value = int(data)
	return
}

// operands returns both operand bytes of the instruction at pc.
func (cpu *Cpu) operands(pc int) (a int, b int, err error) {
	a, err = cpu.operand(pc, 1)
	if err != nil {
		return
	}

	b, err = cpu.operand(pc, 2)
	return
}

// operandRegister returns the value of the register named by the first operand.
func (cpu *Cpu) operandRegister(pc int) (value int, err error) {
	reg, err := cpu.operand(pc, 1)
	if err != nil {
		return
	}

	value, err = cpu.Register.Read(reg)
	return
}

func handleLdi(cpu *Cpu, pc int) (err error) {
	reg, value, err := cpu.operands(pc)
	if err != nil {
		return
	}

	err = cpu.Register.Write(reg, value)
	return
}

func handlePrn(cpu *Cpu, pc int) (err error) {
	value, err := cpu.operandRegister(pc)
	if err != nil {
		return
	}

	if cpu.Output == nil {
		err = ErrOutputMissing
		return
	}

	err = cpu.Output.Emit(value)
	return
}

func handleAlu(op AluOp) Handler {
	return func(cpu *Cpu, pc int) (err error) {
		reg_a, reg_b, err := cpu.operands(pc)
		if err != nil {
			return
		}

		err = cpu.Alu(op, reg_a, reg_b)
		return
	}
}

func handlePush(cpu *Cpu, pc int) (err error) {
	value, err := cpu.operandRegister(pc)
	if err != nil {
		return
	}

	err = cpu.Push(value)
	return
}

func handlePop(cpu *Cpu, pc int) (err error) {
	reg, err := cpu.operand(pc, 1)
	if err != nil {
		return
	}

	// Validate the destination before the stack moves.
	_, err = cpu.Register.Read(reg)
	if err != nil {
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		return
	}

	err = cpu.Register.Write(reg, value)
	return
}

func handleCall(cpu *Cpu, pc int) (err error) {
	target, err := cpu.operandRegister(pc)
	if err != nil {
		return
	}

	ret := pc + 2
	if ret >= MEMORY_SIZE {
		err = ErrAddress(ret)
		return
	}

	err = cpu.Push(ret)
	if err != nil {
		return
	}

	cpu.Pc = target
	return
}

func handleRet(cpu *Cpu, pc int) (err error) {
	ret, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Pc = ret
	return
}

func handleHlt(cpu *Cpu, pc int) (err error) {
	cpu.State = STATE_HALTED
	return
}

package cpu

// Alu applies op to reg_a using the value of reg_b, storing the result in reg_a.
func (cpu *Cpu) Alu(op AluOp, reg_a int, reg_b int) (err error) {
	a, err := cpu.Register.Read(reg_a)
	if err != nil {
		return
	}

	b, err := cpu.Register.Read(reg_b)
	if err != nil {
		return
	}

	output, err := doAlu(op, a, b)
	if err != nil {
		return
	}

	err = cpu.Register.Write(reg_a, output)
	return
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op AluOp, input int, value int) (output int, err error) {
	switch op {
	case ALU_OP_ADD:
		output = input + value
	case ALU_OP_MUL:
		output = input * value
	default:
		err = ErrAluOp(op)
	}

	return
}

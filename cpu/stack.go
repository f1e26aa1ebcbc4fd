package cpu

// Push stores the low byte of value below the stack pointer, and moves the
// stack pointer down to it.
func (cpu *Cpu) Push(value int) (err error) {
	sp := cpu.Register[REGISTER_SP] - 1
	if sp < 0 {
		err = ErrStackFull
		return
	}

	err = cpu.Memory.Write(sp, byte(value))
	if err != nil {
		return
	}

	cpu.Register[REGISTER_SP] = sp
	return
}

// Pop returns the byte at the stack pointer, and moves the stack pointer up.
func (cpu *Cpu) Pop() (value int, err error) {
	sp := cpu.Register[REGISTER_SP]
	if sp+1 >= MEMORY_SIZE {
		err = ErrStackEmpty
		return
	}

	data, err := cpu.Memory.Read(sp)
	if err != nil {
		return
	}

	cpu.Register[REGISTER_SP] = sp + 1
	value = int(data)
	return
}

// Depth returns the count of bytes pushed since reset.
func (cpu *Cpu) Depth() int {
	return SP_INIT - cpu.Register[REGISTER_SP]
}

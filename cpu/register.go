package cpu

const (
	REGISTER_COUNT = 8    // General purpose registers.
	REGISTER_SP    = 7    // Register reserved as the stack pointer.
	SP_INIT        = 0xf4 // Stack pointer after reset.
)

// Registers is the register file.
type Registers [REGISTER_COUNT]int

// Reset zeros the register file and sets the stack pointer.
func (r *Registers) Reset() {
	clear(r[:])
	r[REGISTER_SP] = SP_INIT
}

// Read returns the value of a register.
func (r *Registers) Read(index int) (value int, err error) {
	if index < 0 || index >= len(r) {
		err = ErrRegister(index)
		return
	}

	value = r[index]
	return
}

// Write sets the value of a register.
func (r *Registers) Write(index int, value int) (err error) {
	if index < 0 || index >= len(r) {
		err = ErrRegister(index)
		return
	}

	r[index] = value
	return
}

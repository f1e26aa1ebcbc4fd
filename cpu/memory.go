package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory holds the program text and the stack in one address space.
// Accesses outside of it fail; addresses never wrap.
type Memory [MEMORY_SIZE]byte

// Reset zeros all of memory.
func (m *Memory) Reset() {
	clear(m[:])
}

// Read returns the byte at an address.
func (m *Memory) Read(address int) (value byte, err error) {
	if address < 0 || address >= len(m) {
		err = ErrAddress(address)
		return
	}

	value = m[address]
	return
}

// Write sets the byte at an address.
func (m *Memory) Write(address int, value byte) (err error) {
	if address < 0 || address >= len(m) {
		err = ErrAddress(address)
		return
	}

	m[address] = value
	return
}

// Load copies a program to memory starting at address 0.
// The remainder of memory is zeroed.
func (m *Memory) Load(program []byte) (err error) {
	if len(program) > len(m) {
		err = ErrProgramSize
		return
	}

	m.Reset()
	copy(m[:], program)

	return
}

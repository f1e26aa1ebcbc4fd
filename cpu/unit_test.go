package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       Opcode
		name     string
		operands int
		setsPc   bool
		isAlu    bool
	}){
		{OP_LDI, "LDI", 2, false, false},
		{OP_PRN, "PRN", 1, false, false},
		{OP_MUL, "MUL", 2, false, true},
		{OP_ADD, "ADD", 2, false, true},
		{OP_PUSH, "PUSH", 1, false, false},
		{OP_POP, "POP", 1, false, false},
		{OP_CALL, "CALL", 1, true, false},
		{OP_RET, "RET", 0, true, false},
		{OP_HLT, "HLT", 0, false, false},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.op.String())
		assert.Equal(entry.operands, entry.op.Operands(), entry.name)
		assert.Equal(entry.operands+1, entry.op.Size(), entry.name)
		assert.Equal(entry.setsPc, entry.op.SetsPc(), entry.name)
		assert.Equal(entry.isAlu, entry.op.IsAlu(), entry.name)

		op, ok := OpcodeOf(entry.name)
		assert.True(ok)
		assert.Equal(entry.op, op)

		_, ok = Dispatch(entry.op)
		assert.True(ok, entry.name)
	}

	assert.Len(Opcodes(), len(table))
}

func TestOpcode_Unknown(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0x00", Opcode(0).String())
	assert.Equal("0xff", Opcode(0xff).String())
	assert.Equal(3, Opcode(0xff).Operands())

	_, ok := Dispatch(Opcode(0))
	assert.False(ok)

	op, ok := OpcodeOf("ldi")
	assert.True(ok)
	assert.Equal(OP_LDI, op)

	_, ok = OpcodeOf("jmp")
	assert.False(ok)
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	var reg Registers
	reg.Reset()
	assert.Equal(SP_INIT, reg[REGISTER_SP])

	for n := range REGISTER_COUNT {
		assert.NoError(reg.Write(n, n*10))
	}
	for n := range REGISTER_COUNT {
		value, err := reg.Read(n)
		assert.NoError(err)
		assert.Equal(n*10, value)
	}

	_, err := reg.Read(REGISTER_COUNT)
	assert.ErrorIs(err, ErrRegister(0))
	assert.ErrorIs(reg.Write(-1, 0), ErrRegister(0))
	assert.Equal("register 8 out of range", ErrRegister(8).Error())
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	assert.NoError(mem.Write(0, 0x12))
	assert.NoError(mem.Write(MEMORY_SIZE-1, 0x34))

	value, err := mem.Read(MEMORY_SIZE - 1)
	assert.NoError(err)
	assert.Equal(byte(0x34), value)

	_, err = mem.Read(MEMORY_SIZE)
	assert.ErrorIs(err, ErrAddress(0))
	assert.ErrorIs(mem.Write(-1, 0), ErrAddress(0))

	assert.NoError(mem.Load([]byte{1, 2, 3}))
	assert.Equal(byte(1), mem[0])
	assert.Equal(byte(3), mem[2])
	assert.Equal(byte(0), mem[MEMORY_SIZE-1])

	assert.ErrorIs(mem.Load(make([]byte, MEMORY_SIZE+1)), ErrProgramSize)
}

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	out, err := doAlu(ALU_OP_ADD, 3, 4)
	assert.NoError(err)
	assert.Equal(7, out)

	out, err = doAlu(ALU_OP_MUL, 3, 4)
	assert.NoError(err)
	assert.Equal(12, out)

	_, err = doAlu(AluOp(7), 3, 4)
	assert.ErrorIs(err, ErrAluUnsupported)

	var aluop ErrAluOp
	assert.True(errors.As(err, &aluop))
	assert.Equal(AluOp(7), AluOp(aluop))
}

func TestCpu_Alu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[2] = 6
	cpu.Register[5] = 7

	assert.NoError(cpu.Alu(ALU_OP_MUL, 2, 5))
	assert.Equal(42, cpu.Register[2])
	assert.Equal(7, cpu.Register[5])

	assert.NoError(cpu.Alu(ALU_OP_ADD, 5, 5))
	assert.Equal(14, cpu.Register[5])

	assert.ErrorIs(cpu.Alu(ALU_OP_ADD, 8, 0), ErrRegister(0))
	assert.ErrorIs(cpu.Alu(ALU_OP_ADD, 0, 8), ErrRegister(0))
	assert.ErrorIs(cpu.Alu(AluOp(2), 0, 1), ErrAluUnsupported)
	assert.Equal(42, cpu.Register[2])
}

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	assert.NoError(cpu.Push(0x1234))
	assert.Equal(1, cpu.Depth())
	assert.Equal(SP_INIT-1, cpu.Register[REGISTER_SP])
	assert.Equal(byte(0x34), cpu.Memory[SP_INIT-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xab))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(0xab, val)

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(0x12, val)
	assert.Equal(0, cpu.Depth())
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	for n := range SP_INIT {
		assert.NoError(cpu.Push(n))
	}
	assert.Equal(0, cpu.Register[REGISTER_SP])

	assert.ErrorIs(cpu.Push(0), ErrStackFull)
	assert.Equal(0, cpu.Register[REGISTER_SP])
}

func TestStack_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[REGISTER_SP] = MEMORY_SIZE - 2

	_, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(MEMORY_SIZE-1, cpu.Register[REGISTER_SP])

	_, err = cpu.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(MEMORY_SIZE-1, cpu.Register[REGISTER_SP])
}

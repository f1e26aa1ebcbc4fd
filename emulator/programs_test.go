package emulator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ls8/cpu"
)

func runFile(t *testing.T, emu *Emulator, prog *cpu.Program) string {
	output := &bytes.Buffer{}
	emu.Tape.Output = output
	emu.Program = prog

	require.NoError(t, emu.Reset())
	require.NoError(t, emu.Run())
	assert.True(t, emu.Halted())

	return output.String()
}

func TestPrograms(t *testing.T) {
	table := map[string]string{
		"print8.ls8": "8\n",
		"mult.ls8":   "72\n",
		"call.ls8":   "20\n30\n36\n60\n",
		"stack.ls8":  "2\n4\n1\n",
	}

	for name, expected := range table {
		t.Run(name, func(t *testing.T) {
			inf, err := os.Open(filepath.Join("..", "programs", name))
			require.NoError(t, err)
			defer inf.Close()

			prog, err := cpu.ParseProgram(inf)
			require.NoError(t, err)

			assert.Equal(t, expected, runFile(t, NewEmulator(), prog))
		})
	}
}

func TestProgramsAssembled(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	asm := &cpu.Assembler{}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
	asm.Predefine("SCALE", "3")

	inf, err := os.Open(filepath.Join("..", "programs", "call.asm"))
	require.NoError(t, err)
	defer inf.Close()

	prog, err := asm.Parse(inf)
	require.NoError(t, err)

	ref, err := os.Open(filepath.Join("..", "programs", "call.ls8"))
	require.NoError(t, err)
	defer ref.Close()

	binary, err := cpu.ParseProgram(ref)
	require.NoError(t, err)

	assert.Equal(binary.Bytes, prog.Bytes)
	assert.Equal("20\n30\n36\n60\n", runFile(t, emu, prog))
}

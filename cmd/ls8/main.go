// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

func main() {
	var compile string
	var output string
	var verbose bool
	var dump bool
	var ticks int
	defines := map[string]string{}

	flag.StringVar(&compile, "c", "", ".asm file to assemble and run")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode (trace every instruction)")
	flag.BoolVar(&dump, "d", false, "Dump the machine state after the run")
	flag.IntVar(&ticks, "n", 0, "Stop after this many instructions (0 is unlimited)")
	flag.Func("D", "Predefine an assembler equate NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return cpu.ErrEquateSyntax
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = ticks

	if len(compile) != 0 {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		for name, value := range defines {
			asm.Predefine(name, value)
		}

		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		if flag.NArg() != 1 {
			translate.Fprintf(os.Stderr, "Usage: %v [options] <program.ls8>\n", os.Args[0])
			flag.PrintDefaults()
			os.Exit(1)
		}

		program := flag.Arg(0)
		inf, err := os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()

		emu.Program, err = cpu.ParseProgram(inf)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()

	if dump {
		pp.Fprintln(os.Stderr, emu.Cpu)
	}

	if err != nil {
		log.Fatal(err)
	}
}

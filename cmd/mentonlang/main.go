package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"mentonlang/parser"
	"mentonlang/trace"
	"mentonlang/types"
	"mentonlang/vm"
)

func main() {
	configPath := flag.String("config", "", "Config file (default "+DefaultConfigFile+" if present)")
	numerals := flag.String("numerals", "", "Laugh-numeral grammar: positional or stack")
	steps := flag.Int64("steps", 0, "Abort after this many statements (0 = unlimited)")

	// Trace flags
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Only trace statement kinds matching these glob patterns (comma-separated, e.g. 'WHILE,S*')")

	// Inspection flags
	dumpBlocks := flag.Bool("dump-blocks", false, "Print the program's block index and exit")
	dumpRegisters := flag.Bool("dump-registers", false, "Print the register table and exit")
	decodeNum := flag.String("decode", "", "Decode a laugh numeral and exit")
	encodeNum := flag.String("encode", "", "Encode a decimal integer as a laugh numeral and exit")

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyConfig(cfg, numerals, steps, traceEnabled, traceFilter)

	grammar, ok := parser.ParseGrammar(*numerals)
	if !ok {
		log.Fatalf("Unknown numeral grammar %q (want positional or stack)", *numerals)
	}

	// Inspection modes that need no program file
	if *dumpRegisters {
		printRegisters()
		return
	}
	if *decodeNum != "" {
		decodeNumeral(*decodeNum, grammar)
		return
	}
	if *encodeNum != "" {
		encodeNumeral(*encodeNum, grammar)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mentonlang [flags] <program.txt>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read program: %v", err)
	}
	lines := parser.SplitLines(parser.Preprocess(string(data)))

	if *dumpBlocks {
		dumpBlockIndex(lines)
		return
	}

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	in, err := vm.New(lines)
	if err != nil {
		fail(err)
	}
	in.Grammar = grammar
	in.StepLimit = *steps

	out, err := in.Run()
	if err != nil {
		fail(err)
	}
	os.Stdout.WriteString(out)
}

// fail reports an interpreter error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "mentonlang: %v\n", err)
	os.Exit(1)
}

// applyConfig fills in settings the command line left unset.
func applyConfig(cfg *Config, numerals *string, steps *int64, traceEnabled *bool, traceFilter *string) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["numerals"] && cfg.Numerals != "" {
		*numerals = cfg.Numerals
	}
	if !set["steps"] && cfg.Steps > 0 {
		*steps = cfg.Steps
	}
	if !set["trace"] && cfg.Trace {
		*traceEnabled = true
	}
	if !set["trace-filter"] && cfg.TraceFilter != "" {
		*traceFilter = cfg.TraceFilter
	}
}

func printRegisters() {
	fmt.Printf("=== Registers (%d) ===\n", types.Registers.Count())
	for i := 0; i < types.Registers.Count(); i++ {
		fmt.Printf("%3d  %s\n", i, types.Registers.Token(i))
	}
}

// dumpBlockIndex prints the jump metadata the interpreter would run with.
func dumpBlockIndex(lines []string) {
	index, err := parser.IndexBlocks(lines)
	if err != nil {
		fail(err)
	}

	fmt.Println("=== Blocks ===")
	for _, start := range index.IfStarts() {
		blk, _ := index.IfAt(start)
		if blk.Else >= 0 {
			fmt.Printf("if    line %-4d else %-4d end %d\n", blk.Start+1, blk.Else+1, blk.End+1)
		} else {
			fmt.Printf("if    line %-4d           end %d\n", blk.Start+1, blk.End+1)
		}
	}
	for _, start := range index.WhileStarts() {
		blk, _ := index.WhileAt(start)
		fmt.Printf("while line %-4d           end %d\n", blk.Start+1, blk.End+1)
	}
}

func decodeNumeral(s string, g parser.Grammar) {
	v, ok := parser.ParseNumber(s, g)
	if !ok {
		fmt.Fprintf(os.Stderr, "mentonlang: not a valid %s numeral: %q\n", g, s)
		os.Exit(1)
	}
	fmt.Println(v.String())
}

func encodeNumeral(s string, g parser.Grammar) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "mentonlang: not a decimal integer: %q\n", s)
		os.Exit(1)
	}
	fmt.Println(parser.EncodeNumber(n, g))
}

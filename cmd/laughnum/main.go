// Command laughnum converts between laugh numerals and decimal
// integers, in either numeral grammar.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"mentonlang/parser"
)

func main() {
	stack := flag.Bool("stack", false, "Use the stack numeral grammar")
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
	}

	grammar := parser.GrammarPositional
	if *stack {
		grammar = parser.GrammarStack
	}

	switch flag.Arg(0) {
	case "decode":
		v, ok := parser.ParseNumber(flag.Arg(1), grammar)
		if !ok {
			fmt.Fprintf(os.Stderr, "laughnum: not a valid %s numeral: %q\n", grammar, flag.Arg(1))
			os.Exit(1)
		}
		fmt.Println(v.String())
	case "encode":
		n, ok := new(big.Int).SetString(strings.TrimSpace(flag.Arg(1)), 10)
		if !ok {
			fmt.Fprintf(os.Stderr, "laughnum: not a decimal integer: %q\n", flag.Arg(1))
			os.Exit(1)
		}
		fmt.Println(parser.EncodeNumber(n, grammar))
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: laughnum [-stack] decode <numeral> | encode <integer>")
	os.Exit(2)
}

// Command sierpinski prints the size of the minimal Pascal's Triangle table
// for 2^depth rows and its Sierpinski number.
//
// Usage:
//
//	sierpinski [-depth N] [-decl] [-words] [-gasket] [-color]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bpot/pascal"
)

// defaultDepth is the number of Sierpinski iterations; iteration N needs
// 2^N rows.
const defaultDepth = 5

// maxDepth keeps 2^depth within pascal.MaxRows.
const maxDepth = 6

func main() {
	log.SetFlags(0)
	log.SetPrefix("sierpinski: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sierpinski", flag.ContinueOnError)
	depth := fs.Int("depth", defaultDepth, "sierpinski iterations; the table covers 2^depth rows")
	decl := fs.Bool("decl", false, "print the BCOEFFS shader declaration")
	words := fs.Bool("words", false, "print the SIERPINSKI shader declaration")
	draw := fs.Bool("gasket", false, "draw the gasket")
	colored := fs.Bool("color", false, "tint the drawn gasket, implies -gasket")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *depth < 0 || *depth > maxDepth {
		return fmt.Errorf("depth %d out of range", *depth)
	}

	table, err := pascal.BuildTable(1 << uint(*depth))
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, table.Len())
	fmt.Fprintln(stdout, pascal.SierpinskiNumber(table))

	if *decl {
		fmt.Fprintln(stdout, pascal.Declaration(table))
	}

	g := pascal.NewGasket(table)
	if *words {
		fmt.Fprintln(stdout, pascal.WordsDeclaration(g))
	}
	if *draw || *colored {
		return g.Render(stdout, *colored)
	}
	return nil
}

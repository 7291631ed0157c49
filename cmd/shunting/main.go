package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/quayside/shunting"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		opts         []shunting.ContextOption
		echo         bool
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
		if err != nil {
			return err
		}
		opts = append(opts, shunting.SetVar(strings.TrimSpace(d[0]), v))
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.Parse()

	srcs := append([]string(nil), flag.Args()...)
	lines, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	srcs = append(srcs, lines...)

	ctx := shunting.NewContext(opts...)
	verb += "\n"
	for _, src := range srcs {
		a, err := shunting.Parse(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := ctx.Eval(a)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

func infile(inname string, std bool) ([]string, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}

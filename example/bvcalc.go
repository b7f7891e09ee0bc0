// bvcalc.go -- evaluate bitvector operations from the command line
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// bvcalc is an example of using go-bitvector. Operands are comma separated
// lists of bit indices, e.g. "1,5,9", optionally followed by ":SIZE". With a
// schema (-c), component names and "@signature" references are accepted
// too:
//
//	bvcalc and 1,2,3 2,3,4
//	bvcalc -c ecs.toml contains @Moving Position
//	bvcalc compare 1,3:4 1,3:6
//
// In batch mode (-b), the first operand is the starting vector and the
// file holds one command per line (set 3, fill 0 8 true, ...).

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/containerd/log"
	flag "github.com/opencoff/pflag"

	"github.com/opencoff/go-bitvector"
	"github.com/opencoff/go-bitvector/batch"
)

// op takes the parsed operands and the remaining raw args
type op struct {
	nargs int
	fp    func(v []*bitvector.BitVector, args []string) (string, error)
}

var ops = map[string]op{
	"and":           {2, vecOp((*bitvector.BitVector).And)},
	"or":            {2, vecOp((*bitvector.BitVector).Or)},
	"xor":           {2, vecOp((*bitvector.BitVector).Xor)},
	"andnot":        {2, vecOp((*bitvector.BitVector).AndNot)},
	"not":           {1, func(v []*bitvector.BitVector, _ []string) (string, error) { return show(v[0].Not()), nil }},
	"contains":      {2, boolOp((*bitvector.BitVector).Contains)},
	"strict":        {2, boolOp((*bitvector.BitVector).StrictlyContains)},
	"intersect":     {2, boolOp((*bitvector.BitVector).Intersects)},
	"equal":         {2, boolOp((*bitvector.BitVector).Equal)},
	"equal-value":   {2, boolOp((*bitvector.BitVector).EqualIgnoreSize)},
	"compare":       {2, cmpOp((*bitvector.BitVector).Compare)},
	"compare-value": {2, cmpOp((*bitvector.BitVector).CompareIgnoreSize)},
	"card":          {1, card},
	"high":          {1, func(v []*bitvector.BitVector, _ []string) (string, error) { return strconv.Itoa(v[0].HighBit()), nil }},
	"next-set":      {1, scanOp((*bitvector.BitVector).NextSetBit)},
	"next-clear":    {1, scanOp((*bitvector.BitVector).NextClearBit)},
	"hash":          {1, hash},
	"dump":          {1, func(v []*bitvector.BitVector, _ []string) (string, error) { return v[0].String(), nil }},
}

var schema *Schema

func main() {
	var size int
	var schemaFile, batchFile string
	var keepGoing, verbose bool

	usage := fmt.Sprintf("%s [options] OP VECTOR [VECTOR|INDEX]", os.Args[0])

	flag.IntVarP(&size, "size", "s", 0, "Use `N` as the size of every operand")
	flag.StringVarP(&schemaFile, "schema", "c", "", "Read component names from TOML file `F`")
	flag.StringVarP(&batchFile, "batch", "b", "", "Apply the commands in file `F` (- for STDIN) to VECTOR")
	flag.BoolVarP(&keepGoing, "keep-going", "k", false, "Don't abort a batch on the first failed command")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	flag.Usage = func() {
		fmt.Printf("bvcalc - evaluate bitvector operations\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	if verbose {
		if err := log.SetLevel("debug"); err != nil {
			warn("can't set log level: %s", err)
		}
	}

	if len(schemaFile) > 0 {
		s, err := LoadSchema(schemaFile)
		if err != nil {
			die("%s", err)
		}
		schema = s
		log.L.WithField("signatures", schema.SignatureNames()).Debug("schema loaded")
	}

	if len(batchFile) > 0 {
		if err := runBatch(batchFile, args, size, keepGoing); err != nil {
			die("%s", err)
		}
		return
	}

	if len(args) < 2 {
		die("Insufficient arguments!\nUsage: %s\n", usage)
	}

	name := strings.ToLower(args[0])
	o, ok := ops[name]
	if !ok {
		die("unknown op %s", name)
	}

	args = args[1:]
	if len(args) < o.nargs {
		die("%s needs %d vectors", name, o.nargs)
	}

	vecs := make([]*bitvector.BitVector, o.nargs)
	for i := range vecs {
		v, err := schema.Vector(args[i], size)
		if err != nil {
			die("%s", err)
		}
		vecs[i] = v
	}

	s, err := o.fp(vecs, args[o.nargs:])
	if err != nil {
		die("%s", err)
	}
	fmt.Println(s)
}

func runBatch(fn string, args []string, size int, keepGoing bool) error {
	var in io.Reader = os.Stdin

	if fn != "-" {
		fd, err := os.Open(fn)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	start := ""
	if len(args) > 0 {
		start = args[0]
	}

	v, err := schema.Vector(start, size)
	if err != nil {
		return err
	}

	b, err := readBatch(in)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}

	h := batch.Abort
	if keepGoing {
		h = batch.Ignore
	}

	r, err := b.Apply(context.Background(), v, h)
	fmt.Printf("+ %s: %d applied, %d failed\n", fn, r.Applied, r.Failed)
	if err != nil {
		return err
	}

	fmt.Println(show(v))
	return nil
}

// readBatch parses one command per line; empty lines and lines starting
// with '#' are skipped.
func readBatch(in io.Reader) (*batch.Buffer, error) {
	var b batch.Buffer

	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		s := strings.TrimSpace(sc.Text())
		if len(s) == 0 || s[0] == '#' {
			continue
		}

		c, err := batch.ParseCommand(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		b.Add(c)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}

func vecOp(fp func(a, b *bitvector.BitVector) *bitvector.BitVector) func([]*bitvector.BitVector, []string) (string, error) {
	return func(v []*bitvector.BitVector, _ []string) (string, error) {
		return show(fp(v[0], v[1])), nil
	}
}

func boolOp(fp func(a, b *bitvector.BitVector) bool) func([]*bitvector.BitVector, []string) (string, error) {
	return func(v []*bitvector.BitVector, _ []string) (string, error) {
		return strconv.FormatBool(fp(v[0], v[1])), nil
	}
}

func cmpOp(fp func(a, b *bitvector.BitVector) int) func([]*bitvector.BitVector, []string) (string, error) {
	return func(v []*bitvector.BitVector, _ []string) (string, error) {
		return strconv.Itoa(fp(v[0], v[1])), nil
	}
}

func scanOp(fp func(a *bitvector.BitVector, from int) int) func([]*bitvector.BitVector, []string) (string, error) {
	return func(v []*bitvector.BitVector, args []string) (string, error) {
		if len(args) < 1 {
			return "", fmt.Errorf("missing start index")
		}

		from, err := strconv.Atoi(args[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(fp(v[0], from)), nil
	}
}

func card(v []*bitvector.BitVector, args []string) (string, error) {
	if len(args) == 0 {
		return strconv.Itoa(v[0].Cardinality()), nil
	}

	to, err := strconv.Atoi(args[0])
	if err != nil {
		return "", err
	}

	n, err := v[0].CardinalityTo(to)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func hash(v []*bitvector.BitVector, _ []string) (string, error) {
	return fmt.Sprintf("%#x %#x", v[0].Hash(), v[0].ValueHash()), nil
}

func show(v *bitvector.BitVector) string {
	return fmt.Sprintf("%d bits {%s}", v.Size(), strings.Join(schema.Names(v), ", "))
}

// die with error
func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}

// vim: ft=go:sw=4:ts=4:noexpandtab:tw=78:

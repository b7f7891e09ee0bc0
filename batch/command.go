// command.go -- commands recorded by a batch Buffer
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package batch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opencoff/go-bitvector"
)

// Op identifies a bitvector mutation
type Op int

const (
	OpSet Op = iota
	OpClear
	OpSetAll
	OpClearAll
	OpReset
	OpFill
	OpExpand
	OpCompress
)

var opNames = []string{
	OpSet:      "set",
	OpClear:    "clear",
	OpSetAll:   "setall",
	OpClearAll: "clearall",
	OpReset:    "reset",
	OpFill:     "fill",
	OpExpand:   "expand",
	OpCompress: "compress",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Command is a single mutation. Which fields are meaningful depends on Op:
//
//	OpSet, OpClear:        Idx[0]
//	OpSetAll, OpClearAll:  Idx
//	OpFill:                From, To, Flag
//	OpExpand, OpCompress:  N
type Command struct {
	Op   Op
	Idx  []int
	From int
	To   int
	Flag bool
	N    int
}

func (c Command) apply(v *bitvector.BitVector) error {
	switch c.Op {
	case OpSet:
		return v.Set(c.index())
	case OpClear:
		return v.Clear(c.index())
	case OpSetAll:
		return v.SetAll(c.Idx...)
	case OpClearAll:
		return v.ClearAll(c.Idx...)
	case OpReset:
		v.Reset()
	case OpFill:
		return v.Fill(c.From, c.To, c.Flag)
	case OpExpand:
		v.ExpandTo(c.N)
	case OpCompress:
		v.CompressTo(c.N)
	default:
		return fmt.Errorf("batch: unknown op %d", int(c.Op))
	}
	return nil
}

// a malformed single-index command refers to no valid bit
func (c Command) index() int {
	if len(c.Idx) == 0 {
		return bitvector.None
	}
	return c.Idx[0]
}

// String renders c in the syntax accepted by ParseCommand
func (c Command) String() string {
	var s strings.Builder

	s.WriteString(c.Op.String())
	switch c.Op {
	case OpSet, OpClear, OpSetAll, OpClearAll:
		for _, i := range c.Idx {
			fmt.Fprintf(&s, " %d", i)
		}
	case OpFill:
		fmt.Fprintf(&s, " %d %d %t", c.From, c.To, c.Flag)
	case OpExpand, OpCompress:
		fmt.Fprintf(&s, " %d", c.N)
	}
	return s.String()
}

// ParseCommand parses a textual command of the form
//
//	set I | clear I | setall I... | clearall I... | reset |
//	fill FROM TO BOOL | expand N | compress N
//
// Fields are separated by white space.
func ParseCommand(line string) (Command, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return Command{}, fmt.Errorf("batch: empty command")
	}

	var c Command
	var err error

	name, args := strings.ToLower(f[0]), f[1:]
	switch name {
	case "set":
		c.Op = OpSet
		c.Idx, err = ints(args, 1)

	case "clear":
		c.Op = OpClear
		c.Idx, err = ints(args, 1)

	case "setall":
		c.Op = OpSetAll
		c.Idx, err = ints(args, -1)

	case "clearall":
		c.Op = OpClearAll
		c.Idx, err = ints(args, -1)

	case "reset":
		c.Op = OpReset
		_, err = ints(args, 0)

	case "fill":
		c.Op = OpFill
		if len(args) != 3 {
			return c, fmt.Errorf("batch: fill: exp 3 args, saw %d", len(args))
		}

		var v []int
		if v, err = ints(args[:2], 2); err != nil {
			break
		}
		c.From, c.To = v[0], v[1]
		c.Flag, err = strconv.ParseBool(args[2])

	case "expand", "compress":
		c.Op = OpExpand
		if name == "compress" {
			c.Op = OpCompress
		}

		var v []int
		if v, err = ints(args, 1); err != nil {
			break
		}
		c.N = v[0]

	default:
		return c, fmt.Errorf("batch: unknown command %q", name)
	}

	if err != nil {
		return c, fmt.Errorf("batch: %s: %w", name, err)
	}
	return c, nil
}

// parse 'args' as ints; if n >= 0, exactly n args are required
func ints(args []string, n int) ([]int, error) {
	if n >= 0 && len(args) != n {
		return nil, fmt.Errorf("exp %d args, saw %d", n, len(args))
	}

	v := make([]int, len(args))
	for i, a := range args {
		x, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}

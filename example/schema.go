// schema.go -- component schema for bvcalc
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/opencoff/go-bitvector"
	"github.com/opencoff/go-bitvector/sigcache"
)

// Schema names the bits of a signature. A schema file looks like:
//
//	size = 64
//
//	[components]
//	Position = 0
//	Velocity = 1
//
//	[signatures]
//	Moving = ["Position", "Velocity"]
type Schema struct {
	Size       int                 `toml:"size"`
	Components map[string]int      `toml:"components"`
	Signatures map[string][]string `toml:"signatures"`

	names map[int]string
	sigs  map[string]*bitvector.BitVector
}

// LoadSchema reads and validates the schema in file 'fn'
func LoadSchema(fn string) (*Schema, error) {
	var s Schema

	if _, err := toml.DecodeFile(fn, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}

	if err := s.init(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return &s, nil
}

// ParseSchema parses a schema from its TOML text
func ParseSchema(txt string) (*Schema, error) {
	var s Schema

	if _, err := toml.Decode(txt, &s); err != nil {
		return nil, err
	}

	if err := s.init(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) init() error {
	if s.Size < 0 {
		return fmt.Errorf("schema: negative size %d", s.Size)
	}

	s.names = make(map[int]string)
	for nm, i := range s.Components {
		if i < 0 {
			return fmt.Errorf("schema: component %s: negative index %d", nm, i)
		}
		if o, ok := s.names[i]; ok {
			return fmt.Errorf("schema: components %s and %s share index %d", o, nm, i)
		}
		s.names[i] = nm
		if i >= s.Size {
			s.Size = i + 1
		}
	}

	// identical signatures share one vector
	sc, err := sigcache.New(len(s.Signatures) + 1)
	if err != nil {
		return err
	}

	s.sigs = make(map[string]*bitvector.BitVector)
	for nm, comps := range s.Signatures {
		v, err := bitvector.New(s.Size)
		if err != nil {
			return err
		}

		for _, c := range comps {
			i, ok := s.Components[c]
			if !ok {
				return fmt.Errorf("schema: signature %s: unknown component %s", nm, c)
			}
			v.Set(i)
		}
		s.sigs[nm] = sc.Intern(v)
	}
	return nil
}

// Vector parses an operand. An operand is a comma separated list of bit
// indices or component names, or "@name" for a named signature; an
// optional ":size" suffix sets the size of the vector. Without one, the
// size is 'size' if positive, else the schema size, else one past the
// highest index.
func (s *Schema) Vector(arg string, size int) (*bitvector.BitVector, error) {
	if i := strings.LastIndexByte(arg, ':'); i >= 0 {
		n, err := strconv.Atoi(arg[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%s: bad size: %w", arg, err)
		}
		arg, size = arg[:i], n
	}

	if strings.HasPrefix(arg, "@") {
		if s == nil {
			return nil, fmt.Errorf("%s: signatures need a schema", arg)
		}

		v, ok := s.sigs[arg[1:]]
		if !ok {
			return nil, fmt.Errorf("%s: unknown signature", arg)
		}

		v = v.Clone()
		if size > 0 {
			v.ExpandTo(size)
			v.CompressTo(size)
		}
		return v, nil
	}

	var idx []int
	var high int = -1
	for _, f := range strings.Split(arg, ",") {
		f = strings.TrimSpace(f)
		if len(f) == 0 || f == "-" {
			continue
		}

		i, err := s.index(f)
		if err != nil {
			return nil, err
		}
		idx = append(idx, i)
		if i > high {
			high = i
		}
	}

	if size <= 0 {
		size = high + 1
		if s != nil && s.Size > size {
			size = s.Size
		}
	}
	return bitvector.FromBits(size, idx...)
}

// Names renders the set bits of 'v' as component names where known
func (s *Schema) Names(v *bitvector.BitVector) []string {
	var r []string
	for _, i := range v.Bits() {
		if s != nil {
			if nm, ok := s.names[i]; ok {
				r = append(r, nm)
				continue
			}
		}
		r = append(r, strconv.Itoa(i))
	}
	return r
}

// SignatureNames returns the sorted names of all signatures
func (s *Schema) SignatureNames() []string {
	if s == nil {
		return nil
	}

	r := make([]string, 0, len(s.sigs))
	for nm := range s.sigs {
		r = append(r, nm)
	}
	sort.Strings(r)
	return r
}

func (s *Schema) index(f string) (int, error) {
	if i, err := strconv.Atoi(f); err == nil {
		return i, nil
	}

	if s != nil {
		if i, ok := s.Components[f]; ok {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown component %q", f)
}

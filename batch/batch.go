// batch.go -- batched mutation of bitvectors
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package batch records a sequence of bitvector mutations and plays them
// back against a vector. Every command that fails is handed to a Handler;
// the handler either swallows the failure (the batch continues with the
// next command) or returns an error, which aborts the batch.
//
// Commands that were applied before an abort stay applied: a batch is not
// a transaction. Individual commands keep the all-or-nothing guarantees of
// the bitvector operation they map to.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/containerd/log"

	"github.com/opencoff/go-bitvector"
)

// ErrAborted matches (via errors.Is) every error returned by Apply when
// the batch was cut short.
var ErrAborted = errors.New("batch aborted")

// AbortError describes an aborted batch. Cause is the error returned by
// the handler, or the context error if the batch was cancelled.
type AbortError struct {
	Applied int
	Failed  int
	Cause   error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("batch aborted after %d commands (%d failed): %s", e.Applied+e.Failed, e.Failed, e.Cause)
}

func (e *AbortError) Unwrap() error { return e.Cause }

func (e *AbortError) Is(target error) bool { return target == ErrAborted }

// Failure is a command that failed while a batch was applied
type Failure struct {
	// position of the command in the batch
	Index int
	Cmd   Command
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("command %d <%s>: %s", f.Index, f.Cmd, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Handler decides what to do with a failed command. Returning nil continues
// the batch; returning an error aborts it.
type Handler interface {
	Handle(ctx context.Context, f *Failure) error
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(ctx context.Context, f *Failure) error

func (h HandlerFunc) Handle(ctx context.Context, f *Failure) error {
	return h(ctx, f)
}

var (
	// Abort rethrows every failure; the first failed command aborts the batch.
	Abort Handler = HandlerFunc(func(_ context.Context, f *Failure) error {
		return f
	})

	// Ignore logs every failure and continues with the batch.
	Ignore Handler = HandlerFunc(func(ctx context.Context, f *Failure) error {
		log.G(ctx).WithFields(log.Fields{
			"index": f.Index,
			"cmd":   f.Cmd.String(),
		}).WithError(f.Err).Warn("batch: command failed; continuing")
		return nil
	})
)

// Collector swallows failures and remembers them
type Collector struct {
	Failures []*Failure
}

var _ Handler = &Collector{}

func (c *Collector) Handle(_ context.Context, f *Failure) error {
	c.Failures = append(c.Failures, f)
	return nil
}

// Err returns nil if nothing failed and otherwise all recorded failures
// joined together.
func (c *Collector) Err() error {
	if len(c.Failures) == 0 {
		return nil
	}

	errs := make([]error, len(c.Failures))
	for i, f := range c.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Result summarizes a call to Apply
type Result struct {
	Applied int
	Failed  int
}

// Buffer records commands for later playback. The zero value is an empty
// buffer ready for use. A Buffer is not safe for concurrent use.
type Buffer struct {
	cmds []Command
}

// Add appends 'c' to the batch
func (b *Buffer) Add(c Command) *Buffer {
	b.cmds = append(b.cmds, c)
	return b
}

// Set records setting bit 'i'
func (b *Buffer) Set(i int) *Buffer {
	return b.Add(Command{Op: OpSet, Idx: []int{i}})
}

// Clear records clearing bit 'i'
func (b *Buffer) Clear(i int) *Buffer {
	return b.Add(Command{Op: OpClear, Idx: []int{i}})
}

// SetAll records setting every bit in 'idx'
func (b *Buffer) SetAll(idx ...int) *Buffer {
	return b.Add(Command{Op: OpSetAll, Idx: append([]int(nil), idx...)})
}

// ClearAll records clearing every bit in 'idx'
func (b *Buffer) ClearAll(idx ...int) *Buffer {
	return b.Add(Command{Op: OpClearAll, Idx: append([]int(nil), idx...)})
}

// Reset records clearing the whole vector
func (b *Buffer) Reset() *Buffer {
	return b.Add(Command{Op: OpReset})
}

// Fill records filling [from, to) with 'flag'
func (b *Buffer) Fill(from, to int, flag bool) *Buffer {
	return b.Add(Command{Op: OpFill, From: from, To: to, Flag: flag})
}

// ExpandTo records growing the vector to 'n' bits
func (b *Buffer) ExpandTo(n int) *Buffer {
	return b.Add(Command{Op: OpExpand, N: n})
}

// CompressTo records shrinking the vector to 'n' bits
func (b *Buffer) CompressTo(n int) *Buffer {
	return b.Add(Command{Op: OpCompress, N: n})
}

// Len returns the number of recorded commands
func (b *Buffer) Len() int {
	return len(b.cmds)
}

// Commands returns a copy of the recorded commands
func (b *Buffer) Commands() []Command {
	return append([]Command(nil), b.cmds...)
}

// Discard drops all recorded commands
func (b *Buffer) Discard() {
	b.cmds = b.cmds[:0]
}

// Apply plays the recorded commands against 'v' in order. Failed commands
// are passed to 'h'; a nil handler behaves like Abort. If the handler
// returns an error, or ctx is done before the next command, Apply stops and
// returns an *AbortError. The buffer is left intact and may be applied
// again.
func (b *Buffer) Apply(ctx context.Context, v *bitvector.BitVector, h Handler) (Result, error) {
	var r Result

	if h == nil {
		h = Abort
	}

	for i, c := range b.cmds {
		if err := ctx.Err(); err != nil {
			return r, &AbortError{r.Applied, r.Failed, err}
		}

		err := c.apply(v)
		if err == nil {
			r.Applied++
			continue
		}

		r.Failed++
		f := &Failure{
			Index: i,
			Cmd:   c,
			Err:   err,
		}
		if err := h.Handle(ctx, f); err != nil {
			return r, &AbortError{r.Applied, r.Failed, err}
		}
	}

	log.G(ctx).WithFields(log.Fields{
		"applied": r.Applied,
		"failed":  r.Failed,
	}).Debug("batch: done")
	return r, nil
}

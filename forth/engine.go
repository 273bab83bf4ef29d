package forth

import (
	"io"

	"github.com/jcorbin/thicket/internal/flushio"
	"github.com/jcorbin/thicket/internal/panicerr"
)

// Engine is the core execution engine: outer interpreter/compiler, inner
// interpreter, data and return stacks, RAM, and dictionary. An Engine is
// not safe for concurrent use by multiple goroutines (§5: the core is
// single-threaded).
type Engine struct {
	logfn func(mess string, args ...interface{})

	// outer interpreter / tokenizer state (§4.1)
	input      string
	idx        int
	inDocQuote bool

	// compiler state (§3 "Compile state")
	compiling  bool
	currentDef *WordEntry
	leaveStack [][]int // per active loop: indices into currentDef.Code awaiting patch

	// data and return stacks
	stack  []Value
	rstack []Value

	// inner interpreter call-frame stack
	frames []*Frame

	mem  *memory
	dict *Dictionary

	lastError error

	out        flushio.WriteFlusher
	lineSource LineSource
	opener     FileOpener
	closers    []io.Closer
}

// New constructs an Engine with the core FORTH vocabulary of built-in
// words already registered, per engine.new_engine() in §6.
func New(opts ...Option) *Engine {
	e := &Engine{
		dict:   NewDictionary(),
		mem:    newMemory(0),
		opener: osFileOpener{},
		out:    flushio.NewWriteFlusher(io.Discard),
	}
	registerBuiltins(e.dict.Core())
	for _, opt := range opts {
		opt.apply(e)
	}
	return e
}

// Reset clears runtime state: both stacks, the call-frame stack, and any
// in-progress compilation, as specified in §3 for error recovery and the
// explicit RESET word. The dictionary and RAM are left untouched.
func (e *Engine) Reset() {
	e.stack = e.stack[:0]
	e.rstack = e.rstack[:0]
	e.frames = e.frames[:0]
	e.compiling = false
	e.currentDef = nil
	e.leaveStack = nil
}

// Stack returns a snapshot of the data stack, bottom first.
func (e *Engine) Stack() []Value {
	out := make([]Value, len(e.stack))
	copy(out, e.stack)
	return out
}

// RP returns a snapshot of the return stack, bottom first.
func (e *Engine) RP() []Value {
	out := make([]Value, len(e.rstack))
	copy(out, e.rstack)
	return out
}

// Mem returns a snapshot of every allocated memory cell, address 0 first.
func (e *Engine) Mem() []Value {
	n := e.mem.Size()
	out := make([]Value, n)
	for i := uint(0); i < n; i++ {
		out[i] = e.mem.Load(i)
	}
	return out
}

// Vocabularies returns the dictionary's vocabularies in insertion order.
func (e *Engine) Vocabularies() []*Vocabulary { return e.dict.Vocabularies() }

// LastError returns the most recently recorded error, or nil.
func (e *Engine) LastError() error { return e.lastError }

// IsCompiling reports whether the engine is mid ":" definition.
func (e *Engine) IsCompiling() bool { return e.compiling }

func (e *Engine) logf(mess string, args ...interface{}) {
	if e.logfn != nil {
		e.logfn(mess, args...)
	}
}

// recordError records err as last_error, dumps diagnostic context through
// the log channel (§4.5), and resets runtime state.
func (e *Engine) recordError(err error) {
	e.lastError = err
	e.dump(err)
	e.Reset()
}

// guarded runs f, converting any Go panic (a primitive's host bug, index
// out of range, etc.) into an ExecutionError recorded the same way as any
// other runtime failure, per the teacher's panicerr-based isolation. The
// recovered panic is also returned to the caller; Forth-domain errors are
// recorded and not returned.
func (e *Engine) guarded(f func() error) error {
	err := panicerr.Recover("forth", func() error {
		if err := f(); err != nil {
			if _, ok := err.(haltedSentinel); ok {
				return nil
			}
			e.recordError(err)
		}
		return nil
	})
	if err != nil {
		e.recordError(ExecutionError{Reason: err.Error()})
	}
	return err
}

// haltedSentinel is an error value that guarded treats as already
// handled: it is neither recorded nor returned. No primitive in this
// package returns it.
type haltedSentinel struct{}

func (haltedSentinel) Error() string { return "halted" }

package forth

import (
	"io"

	"github.com/jcorbin/thicket/internal/flushio"
)

// Option configures an Engine at construction time, grounded on the
// teacher's VMOption functional-options idiom (api.go's WithInput,
// WithOutput, WithLogf, and friends).
type Option interface {
	apply(e *Engine)
}

type optionFunc func(e *Engine)

func (f optionFunc) apply(e *Engine) { f(e) }

// WithInput sets the line source EXPECT reads from.
func WithInput(src LineSource) Option {
	return optionFunc(func(e *Engine) { e.lineSource = src })
}

// WithOutput sets the writer built-in output words print to, wrapping it
// in a flushio.WriteFlusher the same way the teacher's New does.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(e *Engine) { e.out = flushio.NewWriteFlusher(w) })
}

// WithTee additionally mirrors every output byte to w, for recording a
// session transcript alongside normal output, mirroring the teacher's
// WithTee.
func WithTee(w io.Writer) Option {
	return optionFunc(func(e *Engine) {
		e.out = flushio.WriteFlushers(e.out, flushio.NewWriteFlusher(w))
	})
}

// WithLogf installs a diagnostic callback invoked for TRACE/DUMP/ERROR
// level messages, per §4.5 and the teacher's WithLogf.
func WithLogf(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(e *Engine) { e.logfn = logf })
}

// WithMemLimit caps how large RAM may grow, surfacing mem.LimitError
// from the storing word once exceeded, mirroring the teacher's
// WithMemLimit.
func WithMemLimit(limit uint) Option {
	return optionFunc(func(e *Engine) { e.mem = newMemory(limit) })
}

// WithFileOpener overrides how LOAD resolves a filename to a readable
// stream, letting an embedder sandbox or virtualize the filesystem.
func WithFileOpener(o FileOpener) Option {
	return optionFunc(func(e *Engine) { e.opener = o })
}

// Options composes several options into one, mirroring the teacher's
// VMOptions helper.
func Options(opts ...Option) Option {
	return optionFunc(func(e *Engine) {
		for _, opt := range opts {
			opt.apply(e)
		}
	})
}

package forth

import "fmt"

// dump writes a diagnostic snapshot of the engine's runtime state through
// the log channel when a runtime error halts interpretation, per §4.5's
// failure-dump requirement. It is grounded on the teacher's vmDumper, cut
// down to the channel this engine actually exposes (a structured logf
// callback rather than an io.Writer).
func (e *Engine) dump(err error) {
	e.logf("ERROR %v", err)
	e.logf("  stack: %v", e.stack)
	e.logf("  rstack: %v", e.rstack)
	if e.compiling && e.currentDef != nil {
		e.logf("  compiling: %v (%d slots so far)", e.currentDef.Name, len(e.currentDef.Code))
	}
	for depth, frame := range e.frameStackSnapshot() {
		e.logf("  frame[%d]: %v @%d", depth, frame.Word.Name, frame.xp)
	}
}

func (e *Engine) frameStackSnapshot() []*Frame {
	out := make([]*Frame, len(e.frames))
	copy(out, e.frames)
	return out
}

// wordOf formats a word reference for diagnostics, mirroring the
// teacher's codeName helper.
func wordOf(w *WordEntry) string {
	if w == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v(%v)", w.Name, w.Kind)
}

func (k WordKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindThreaded:
		return "threaded"
	case KindConstant:
		return "constant"
	default:
		return "?"
	}
}

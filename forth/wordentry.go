package forth

// WordKind distinguishes the three ways a WordEntry can be implemented.
type WordKind uint8

const (
	// KindPrimitive entries invoke a host Go function directly.
	KindPrimitive WordKind = iota
	// KindThreaded entries hold a compiled sequence of Slots.
	KindThreaded
	// KindConstant entries push a single stored Value.
	KindConstant
)

// PrimitiveFunc implements a host primitive. frame is the call frame that
// invoked it (nil when invoked directly from the outer interpreter, e.g. a
// top-level "DUP"); branch primitives mutate that frame's instruction
// pointer (frame.xp), per §4.3.
type PrimitiveFunc func(e *Engine, frame *Frame) error

// Slot is one cell of a Threaded WordEntry's compiled body: either a
// reference to another WordEntry, or an inline constant. Inline constants
// double as mutable back-patch targets for control-flow offsets (§3, §9).
type Slot struct {
	Ref   *WordEntry
	Const Value
	isRef bool
}

// RefSlot constructs a slot referencing a word.
func RefSlot(w *WordEntry) Slot { return Slot{Ref: w, isRef: true} }

// ConstSlot constructs an inline-constant slot.
func ConstSlot(v Value) Slot { return Slot{Const: v} }

// IsRef reports whether the slot references a word (as opposed to holding
// an inline constant).
func (s Slot) IsRef() bool { return s.isRef }

// WordEntry is a named entry in a Vocabulary: a primitive, a threaded
// body, or a constant, along with the flags and docstring from §3.
type WordEntry struct {
	Name string
	Kind WordKind

	Prim  PrimitiveFunc
	Code  []Slot
	Const Value

	Immediate   bool
	ExecuteOnly bool
	ColonOnly   bool

	Doc []string
}

// NewPrimitive constructs a primitive WordEntry.
func NewPrimitive(name string, fn PrimitiveFunc) *WordEntry {
	return &WordEntry{Name: name, Kind: KindPrimitive, Prim: fn}
}

// NewConstant constructs a constant WordEntry.
func NewConstant(name string, v Value) *WordEntry {
	return &WordEntry{Name: name, Kind: KindConstant, Const: v}
}

// NewThreaded constructs an (initially empty) threaded WordEntry, as
// produced by a ":" definition under construction.
func NewThreaded(name string) *WordEntry {
	return &WordEntry{Name: name, Kind: KindThreaded}
}

// Package forth implements a small Forth-style stack language: an outer
// interpreter/compiler that threads word references into compiled bodies,
// and an inner interpreter that executes them against a data stack, a
// return stack, and a linear memory.
package forth

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

// The Value variants. The zero Kind is Nil, so a zero Value is NIL.
const (
	KindNil Kind = iota
	KindInt
	KindFloat
	KindString
	KindArray
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindWord:
		return "word"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is the uniform tagged value held by the data stack, the return
// stack, and main memory: an integer, a float, a string, an array of
// Values, a reference to a dictionary WordEntry, or the NIL sentinel.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	a    []Value
	w    *WordEntry
}

// Nil is the NIL sentinel value.
var Nil = Value{}

// Int constructs an integer Value.
func Int(n int64) Value { return Value{kind: KindInt, i: n} }

// Float constructs a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str constructs a string Value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Arr constructs an array Value. The given slice is retained, not copied.
func Arr(vs []Value) Value { return Value{kind: KindArray, a: vs} }

// WordRef constructs a Value referencing a dictionary word entry.
func WordRef(w *WordEntry) Value {
	if w == nil {
		return Nil
	}
	return Value{kind: KindWord, w: w}
}

// Bool renders a host bool as the integer-typed truthy/falsy convention
// used throughout the language: 1 for true, 0 for false.
func Bool(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the NIL sentinel.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Int reports v's integer value and whether v is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float reports v's float value and whether v is a float.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// AsFloat returns v's numeric value widened to float64, for any numeric v.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// StringValue reports v's string value and whether v is a string.
func (v Value) StringValue() (string, bool) { return v.s, v.kind == KindString }

// Array reports v's backing slice and whether v is an array.
func (v Value) Array() ([]Value, bool) { return v.a, v.kind == KindArray }

// Word reports v's referenced word entry and whether v is a word reference.
func (v Value) Word() (*WordEntry, bool) { return v.w, v.kind == KindWord }

// IsNumeric reports whether v is an Int or a Float.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Truthy implements §3's truthiness rule: zero, NIL, empty string, and
// empty array are falsy; everything else (including a word reference) is
// truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return len(v.a) != 0
	case KindWord:
		return true
	default:
		return false
	}
}

// Len reports the length of a string or array Value, and whether v
// supports LEN.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindString:
		return len(v.s), true
	case KindArray:
		return len(v.a), true
	default:
		return 0, false
	}
}

// String renders v the way the built-in print words do.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindArray:
		parts := make([]string, len(v.a))
		for i, e := range v.a {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindWord:
		if v.w != nil {
			return "'" + v.w.Name
		}
		return "'?"
	default:
		return "?"
	}
}

// Equal implements the "=" built-in's equality: numeric values compare
// across int/float by value; everything else compares structurally (same
// kind, same content). This is a deliberate widening of plain identity so
// that string and array equality (exercised by SPLIT/PACK round trips) are
// meaningful, not just numeric equality.
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		return af == bf
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !Equal(a.a[i], b.a[i]) {
				return false
			}
		}
		return true
	case KindWord:
		return a.w == b.w
	default:
		return false
	}
}

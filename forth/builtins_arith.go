package forth

// binaryArith wraps a (Value, Value) -> (Value, error) function as a
// primitive that pops b then a (a being pushed first), computes, and
// pushes the result, per the usual Forth "a b OP" stack order.
func binaryArith(fn func(a, b Value) (Value, error)) PrimitiveFunc {
	return func(e *Engine, _ *Frame) error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		v, err := fn(a, b)
		if err != nil {
			return err
		}
		e.push(v)
		return nil
	}
}

func registerArith(v *Vocabulary) {
	v.Define(NewPrimitive("+", binaryArith(addValues)))
	v.Define(NewPrimitive("-", binaryArith(subValues)))
	v.Define(NewPrimitive("*", binaryArith(mulValues)))
	v.Define(NewPrimitive("/", binaryArith(divValues)))
	v.Define(NewPrimitive("MOD", binaryArith(modValues)))

	v.Define(NewPrimitive("/MOD", func(e *Engine, _ *Frame) error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		q, err := truncDivValues(a, b)
		if err != nil {
			return err
		}
		r, err := modValues(a, b)
		if err != nil {
			return err
		}
		e.push(r)
		e.push(q)
		return nil
	}))

	v.Define(NewPrimitive("*/", func(e *Engine, _ *Frame) error {
		c, err := e.pop()
		if err != nil {
			return err
		}
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		prod, err := mulValues(a, b)
		if err != nil {
			return err
		}
		q, err := divValues(prod, c)
		if err != nil {
			return err
		}
		e.push(q)
		return nil
	}))

	v.Define(NewPrimitive("*/MOD", func(e *Engine, _ *Frame) error {
		c, err := e.pop()
		if err != nil {
			return err
		}
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		prod, err := mulValues(a, b)
		if err != nil {
			return err
		}
		q, err := truncDivValues(prod, c)
		if err != nil {
			return err
		}
		r, err := modValues(prod, c)
		if err != nil {
			return err
		}
		e.push(r)
		e.push(q)
		return nil
	}))

	v.Define(NewPrimitive("MIN", binaryArith(func(a, b Value) (Value, error) {
		c, err := compareValues(a, b)
		if err != nil {
			return Nil, err
		}
		if c <= 0 {
			return a, nil
		}
		return b, nil
	})))
	v.Define(NewPrimitive("MAX", binaryArith(func(a, b Value) (Value, error) {
		c, err := compareValues(a, b)
		if err != nil {
			return Nil, err
		}
		if c >= 0 {
			return a, nil
		}
		return b, nil
	})))

	v.Define(NewPrimitive("ABS", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		switch {
		case a.kindIsInt():
			i, _ := a.Int()
			if i < 0 {
				i = -i
			}
			e.push(Int(i))
		case a.IsNumeric():
			f, _ := a.AsFloat()
			if f < 0 {
				f = -f
			}
			e.push(Float(f))
		default:
			return TypeError{Op: "ABS", Value: a}
		}
		return nil
	}))

	v.Define(NewPrimitive("MINUS", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		return negate(e, a)
	}))

	v.Define(NewPrimitive("+-", binaryArith(func(a, b Value) (Value, error) {
		c, err := compareValues(b, Int(0))
		if err != nil || c >= 0 {
			return a, err
		}
		return subValues(Int(0), a)
	})))

	v.Define(NewPrimitive("1+", unaryIntOffset("1+", 1)))
	v.Define(NewPrimitive("2+", unaryIntOffset("2+", 2)))
	v.Define(NewPrimitive("1-", unaryIntOffset("1-", -1)))

	v.Define(NewPrimitive("<", compareBool("<", func(c int) bool { return c < 0 })))
	v.Define(NewPrimitive(">", compareBool(">", func(c int) bool { return c > 0 })))
	v.Define(NewPrimitive("<=", compareBool("<=", func(c int) bool { return c <= 0 })))
	v.Define(NewPrimitive(">=", compareBool(">=", func(c int) bool { return c >= 0 })))
	v.Define(NewPrimitive("=", func(e *Engine, _ *Frame) error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.push(Bool(Equal(a, b)))
		return nil
	}))

	v.Define(NewPrimitive("0<", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		f, ok := a.AsFloat()
		if !ok {
			return TypeError{Op: "0<", Value: a}
		}
		e.push(Bool(f < 0))
		return nil
	}))
	v.Define(NewPrimitive("0=", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.push(Bool(!a.Truthy()))
		return nil
	}))

	v.Define(NewPrimitive("AND", bitwiseOp("AND", func(a, b int64) int64 { return a & b })))
	v.Define(NewPrimitive("OR", bitwiseOp("OR", func(a, b int64) int64 { return a | b })))
	v.Define(NewPrimitive("XOR", bitwiseOp("XOR", func(a, b int64) int64 { return a ^ b })))
}

func (v Value) kindIsInt() bool { return v.kind == KindInt }

func negate(e *Engine, a Value) error {
	switch {
	case a.kindIsInt():
		i, _ := a.Int()
		e.push(Int(-i))
		return nil
	case a.IsNumeric():
		f, _ := a.AsFloat()
		e.push(Float(-f))
		return nil
	default:
		return TypeError{Op: "MINUS", Value: a}
	}
}

func unaryIntOffset(op string, delta int64) PrimitiveFunc {
	return func(e *Engine, _ *Frame) error {
		i, err := e.popInt(op)
		if err != nil {
			return err
		}
		e.push(Int(i + delta))
		return nil
	}
}

func compareBool(op string, test func(int) bool) PrimitiveFunc {
	return func(e *Engine, _ *Frame) error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		c, err := compareValues(a, b)
		if err != nil {
			return err
		}
		e.push(Bool(test(c)))
		return nil
	}
}

// bitwiseOp implements §6's Open Question resolution: AND/OR/XOR are
// bitwise-only, raising ExecutionError (via intOnly/TypeError) on any
// non-integer operand rather than falling back to a boolean reading.
func bitwiseOp(op string, fn func(a, b int64) int64) PrimitiveFunc {
	return func(e *Engine, _ *Frame) error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		ai, err := intOnly(op, a)
		if err != nil {
			return err
		}
		bi, err := intOnly(op, b)
		if err != nil {
			return err
		}
		e.push(Int(fn(ai, bi)))
		return nil
	}
}

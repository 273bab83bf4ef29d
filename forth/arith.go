package forth

// numericOp applies intOp when both operands are integers, else widens both
// to float64 and applies floatOp. It carries §3's "mixed int/float yields
// float" coercion rule for +, - and *; divValues, truncDivValues and
// modValues do their own int/float handling.
func numericOp(a, b Value, intOp func(a, b int64) (Value, bool), floatOp func(a, b float64) Value) (Value, error) {
	if ai, aok := a.Int(); aok {
		if bi, bok := b.Int(); bok {
			if v, ok := intOp(ai, bi); ok {
				return v, nil
			}
		}
	}
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	if !aok || !bok {
		return Nil, TypeError{Op: "arith", Value: pickNonNumeric(a, b)}
	}
	return floatOp(af, bf), nil
}

func pickNonNumeric(a, b Value) Value {
	if !a.IsNumeric() {
		return a
	}
	return b
}

func addValues(a, b Value) (Value, error) {
	return numericOp(a, b,
		func(a, b int64) (Value, bool) { return Int(a + b), true },
		func(a, b float64) Value { return Float(a + b) },
	)
}

func subValues(a, b Value) (Value, error) {
	return numericOp(a, b,
		func(a, b int64) (Value, bool) { return Int(a - b), true },
		func(a, b float64) Value { return Float(a - b) },
	)
}

func mulValues(a, b Value) (Value, error) {
	return numericOp(a, b,
		func(a, b int64) (Value, bool) { return Int(a * b), true },
		func(a, b float64) Value { return Float(a * b) },
	)
}

// divValues implements "/": exact integer division when both operands are
// integers and divide evenly, else float division.
func divValues(a, b Value) (Value, error) {
	if ai, aok := a.Int(); aok {
		if bi, bok := b.Int(); bok {
			if bi == 0 {
				return Nil, ExecutionError{Reason: "division by zero"}
			}
			if ai%bi == 0 {
				return Int(ai / bi), nil
			}
			return Float(float64(ai) / float64(bi)), nil
		}
	}
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	if !aok || !bok {
		return Nil, TypeError{Op: "/", Value: pickNonNumeric(a, b)}
	}
	if bf == 0 {
		return Nil, ExecutionError{Reason: "division by zero"}
	}
	return Float(af / bf), nil
}

// truncDivValues implements the quotient half of /MOD and */MOD: integer
// truncating division when both operands are integers (unlike "/",
// which widens inexact integer division to float), else float division
// truncated towards zero is never produced — both operands are required
// to be integers for the exact §8 scenario 11 contract ("17 4 /MOD" —>
// "[1, 4]", both ints); a non-integer operand widens through "/" instead.
func truncDivValues(a, b Value) (Value, error) {
	if ai, aok := a.Int(); aok {
		if bi, bok := b.Int(); bok {
			if bi == 0 {
				return Nil, ExecutionError{Reason: "division by zero"}
			}
			return Int(ai / bi), nil
		}
	}
	return divValues(a, b)
}

// modValues implements MOD: remainder of integer division; for non-integer
// operands both are widened to float and the remainder is taken against a
// quotient truncated towards zero, returned as a float.
func modValues(a, b Value) (Value, error) {
	ai, aok := a.Int()
	bi, bok := b.Int()
	if aok && bok {
		if bi == 0 {
			return Nil, ExecutionError{Reason: "division by zero"}
		}
		return Int(ai % bi), nil
	}
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	if !aok || !bok {
		return Nil, TypeError{Op: "MOD", Value: pickNonNumeric(a, b)}
	}
	if bf == 0 {
		return Nil, ExecutionError{Reason: "division by zero"}
	}
	q := int64(af / bf)
	return Float(af - float64(q)*bf), nil
}

func compareValues(a, b Value) (int, error) {
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	if !aok || !bok {
		return 0, TypeError{Op: "compare", Value: pickNonNumeric(a, b)}
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

func intOnly(op string, v Value) (int64, error) {
	n, ok := v.Int()
	if !ok {
		return 0, TypeError{Op: op, Value: v}
	}
	return n, nil
}

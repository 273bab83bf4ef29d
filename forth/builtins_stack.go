package forth

func registerStack(v *Vocabulary) {
	v.Define(NewPrimitive("DUP", func(e *Engine, _ *Frame) error {
		a, err := e.top()
		if err != nil {
			return err
		}
		e.push(a)
		return nil
	}))
	v.Define(NewPrimitive("DROP", func(e *Engine, _ *Frame) error {
		_, err := e.pop()
		return err
	}))
	v.Define(NewPrimitive("SWAP", func(e *Engine, _ *Frame) error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.push(b)
		e.push(a)
		return nil
	}))
	v.Define(NewPrimitive("OVER", func(e *Engine, _ *Frame) error {
		n := len(e.stack)
		if n < 2 {
			return StackUnderflowError{Stack: "data", Op: "OVER"}
		}
		e.push(e.stack[n-2])
		return nil
	}))
	v.Define(NewPrimitive("ROT", func(e *Engine, _ *Frame) error {
		n := len(e.stack)
		if n < 3 {
			return StackUnderflowError{Stack: "data", Op: "ROT"}
		}
		a, b, c := e.stack[n-3], e.stack[n-2], e.stack[n-1]
		e.stack[n-3], e.stack[n-2], e.stack[n-1] = b, c, a
		return nil
	}))
	v.Define(NewPrimitive("-DUP", func(e *Engine, _ *Frame) error {
		a, err := e.top()
		if err != nil {
			return err
		}
		if a.Truthy() {
			e.push(a)
		}
		return nil
	}))
	v.Define(NewPrimitive(">R", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.pushr(a)
		return nil
	}))
	v.Define(NewPrimitive("R>", func(e *Engine, _ *Frame) error {
		a, err := e.popr()
		if err != nil {
			return err
		}
		e.push(a)
		return nil
	}))
	v.Define(NewPrimitive("R", func(e *Engine, _ *Frame) error {
		a, err := e.peekr(0)
		if err != nil {
			return err
		}
		e.push(a)
		return nil
	}))
	v.Define(NewPrimitive("I", func(e *Engine, _ *Frame) error {
		a, err := e.peekr(0)
		if err != nil {
			return err
		}
		e.push(a)
		return nil
	}))
	v.Define(NewPrimitive("J", func(e *Engine, _ *Frame) error {
		a, err := e.peekr(2)
		if err != nil {
			return err
		}
		e.push(a)
		return nil
	}))
	v.Define(NewPrimitive("DEPTH", func(e *Engine, _ *Frame) error {
		e.push(Int(int64(len(e.stack))))
		return nil
	}))
	v.Define(NewPrimitive(".S", func(e *Engine, _ *Frame) error {
		e.printStack()
		return nil
	}))
	v.Define(NewPrimitive("PICK", func(e *Engine, _ *Frame) error {
		n, err := e.popInt("PICK")
		if err != nil {
			return err
		}
		idx := len(e.stack) - 1 - int(n)
		if idx < 0 || idx >= len(e.stack) {
			return StackUnderflowError{Stack: "data", Op: "PICK"}
		}
		e.push(e.stack[idx])
		return nil
	}))
}

func (e *Engine) printStack() {
	e.writeString("<")
	for i, v := range e.stack {
		if i > 0 {
			e.writeString(" ")
		}
		e.writeString(v.String())
	}
	e.writeString("> ")
}

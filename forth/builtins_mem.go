package forth

func registerMem(v *Vocabulary) {
	v.Define(NewPrimitive("@", func(e *Engine, _ *Frame) error {
		addr, err := e.popInt("@")
		if err != nil {
			return err
		}
		e.push(e.mem.Load(uint(addr)))
		return nil
	}))
	v.Define(NewPrimitive("!", func(e *Engine, _ *Frame) error {
		addr, err := e.popInt("!")
		if err != nil {
			return err
		}
		val, err := e.pop()
		if err != nil {
			return err
		}
		return e.mem.Store(uint(addr), val)
	}))
	v.Define(NewPrimitive("+!", func(e *Engine, _ *Frame) error {
		addr, err := e.popInt("+!")
		if err != nil {
			return err
		}
		delta, err := e.pop()
		if err != nil {
			return err
		}
		cur := e.mem.Load(uint(addr))
		sum, err := addValues(cur, delta)
		if err != nil {
			return err
		}
		return e.mem.Store(uint(addr), sum)
	}))
	v.Define(NewPrimitive("?", func(e *Engine, _ *Frame) error {
		addr, err := e.popInt("?")
		if err != nil {
			return err
		}
		e.writeString(e.mem.Load(uint(addr)).String())
		e.writeString(" ")
		return nil
	}))
	v.Define(NewPrimitive("FILL", func(e *Engine, _ *Frame) error {
		val, err := e.pop()
		if err != nil {
			return err
		}
		count, err := e.popInt("FILL")
		if err != nil {
			return err
		}
		addr, err := e.popInt("FILL")
		if err != nil {
			return err
		}
		return e.mem.Fill(uint(addr), uint(count), val)
	}))
	v.Define(NewPrimitive("MOVE", func(e *Engine, _ *Frame) error {
		count, err := e.popInt("MOVE")
		if err != nil {
			return err
		}
		dst, err := e.popInt("MOVE")
		if err != nil {
			return err
		}
		src, err := e.popInt("MOVE")
		if err != nil {
			return err
		}
		return e.mem.Move(uint(src), uint(dst), uint(count))
	}))
	v.Define(NewPrimitive("ERASE", func(e *Engine, _ *Frame) error {
		count, err := e.popInt("ERASE")
		if err != nil {
			return err
		}
		addr, err := e.popInt("ERASE")
		if err != nil {
			return err
		}
		return e.mem.Fill(uint(addr), uint(count), Nil)
	}))
	v.Define(NewPrimitive("BLANKS", func(e *Engine, _ *Frame) error {
		count, err := e.popInt("BLANKS")
		if err != nil {
			return err
		}
		addr, err := e.popInt("BLANKS")
		if err != nil {
			return err
		}
		return e.mem.Fill(uint(addr), uint(count), Int(32))
	}))
	v.Define(NewPrimitive("TOGGLE", func(e *Engine, _ *Frame) error {
		mask, err := e.popInt("TOGGLE")
		if err != nil {
			return err
		}
		addr, err := e.popInt("TOGGLE")
		if err != nil {
			return err
		}
		cur, err := intOnly("TOGGLE", e.mem.Load(uint(addr)))
		if err != nil {
			return err
		}
		return e.mem.Store(uint(addr), Int(cur^mask))
	}))

	v.Define(NewPrimitive("VARIABLE", wordVariable))
	v.Define(NewPrimitive("CONSTANT", wordConstant))
}

// wordVariable implements VARIABLE: pops the initializer off the data
// stack, reads the next token as the new word's name, appends a cell to
// RAM holding that initializer, and defines a word that pushes the
// cell's address (not its value) — the standard Forth VARIABLE contract,
// so "@"/"!" address it.
func wordVariable(e *Engine, _ *Frame) error {
	init, err := e.pop()
	if err != nil {
		return err
	}
	name, ok := e.nextWord()
	if !ok {
		return CompilationError{Reason: "VARIABLE with no name"}
	}
	addr, err := e.mem.Append(init)
	if err != nil {
		return err
	}
	e.dict.Definitions().Define(NewConstant(name, Int(int64(addr))))
	return nil
}

// wordConstant implements CONSTANT: pops a value off the data stack and
// defines a word under the following name that always pushes it.
func wordConstant(e *Engine, _ *Frame) error {
	val, err := e.pop()
	if err != nil {
		return err
	}
	name, ok := e.nextWord()
	if !ok {
		return CompilationError{Reason: "CONSTANT with no name"}
	}
	e.dict.Definitions().Define(NewConstant(name, val))
	return nil
}

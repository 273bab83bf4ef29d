package forth

import "strings"

func (e *Engine) writeString(s string) {
	if e.out == nil {
		return
	}
	_, _ = e.out.Write([]byte(s))
	_ = e.out.Flush()
}

func registerIO(v *Vocabulary) {
	v.Define(NewPrimitive(".", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.writeString(a.String())
		e.writeString(" ")
		return nil
	}))

	dotQuote := NewPrimitive(`."`, wordDotQuote)
	dotQuote.Immediate = true
	v.Define(dotQuote)

	paren := NewPrimitive("(", wordParenComment)
	paren.Immediate = true
	v.Define(paren)

	v.Define(NewPrimitive("CR", func(e *Engine, _ *Frame) error {
		e.writeString("\n")
		return nil
	}))

	v.Define(NewPrimitive("EXPECT", func(e *Engine, _ *Frame) error {
		if e.lineSource == nil {
			return ExecutionError{Reason: "EXPECT: no input source configured"}
		}
		line, err := e.lineSource.NextLine()
		if err != nil {
			return ExecutionError{Reason: "EXPECT: " + err.Error()}
		}
		e.push(Str(line))
		return nil
	}))

	v.Define(NewPrimitive("LOAD", func(e *Engine, _ *Frame) error {
		name, err := e.pop()
		if err != nil {
			return err
		}
		s, ok := name.StringValue()
		if !ok {
			return TypeError{Op: "LOAD", Value: name}
		}
		return e.load(s)
	}))

	v.Define(NewPrimitive("WORDS", func(e *Engine, _ *Frame) error {
		for _, voc := range e.dict.Vocabularies() {
			e.writeString(voc.Name + ": " + strings.Join(voc.Names(), " ") + "\n")
		}
		return nil
	}))

	v.Define(NewPrimitive("SEE", wordSee))

	v.Define(NewPrimitive("TYPE", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		s, ok := a.StringValue()
		if !ok {
			return TypeError{Op: "TYPE", Value: a}
		}
		e.writeString(s)
		return nil
	}))
}

// wordDotQuote implements `." ..."`: after the one space separating `."`
// from its text, the rest of the input up to the next '"' is printed
// verbatim (outside compilation) or compiled as a string literal followed
// by a print primitive (inside a definition), per §4.4.
func wordDotQuote(e *Engine, _ *Frame) error {
	if e.idx < len(e.input) && isSpace(e.input[e.idx]) {
		e.idx++
	}
	text := e.getInputTill('"')
	if !e.compiling {
		e.writeString(text)
		return nil
	}
	if err := e.emit(ConstSlot(Str(text))); err != nil {
		return err
	}
	_, err := e.emitCore("TYPE")
	return err
}

// wordParenComment implements "(": a parenthetical comment extending to
// the next ')', discarded unconditionally, immediate so it works both
// inside and outside a definition.
func wordParenComment(e *Engine, _ *Frame) error {
	e.getInputTill(')')
	return nil
}

// wordSee implements SEE: prints a human-readable disassembly of the
// named word's compiled body, grounded on the teacher's dumper.go
// formatCode/formatName helpers.
func wordSee(e *Engine, _ *Frame) error {
	name, ok := e.nextWord()
	if !ok {
		return ExecutionError{Reason: "SEE with no name"}
	}
	w, ok := e.dict.Find(name)
	if !ok {
		return WordNotFoundError{Token: name}
	}
	for _, doc := range w.Doc {
		e.writeString(doc)
	}
	e.writeString(": " + w.Name + " ")
	switch w.Kind {
	case KindPrimitive:
		e.writeString("<primitive>")
	case KindConstant:
		e.writeString(w.Const.String() + " CONSTANT")
	case KindThreaded:
		for _, slot := range w.Code {
			if slot.IsRef() {
				e.writeString(slot.Ref.Name + " ")
			} else {
				e.writeString(slot.Const.String() + " ")
			}
		}
	}
	e.writeString(";\n")
	return nil
}

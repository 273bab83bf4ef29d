package forth

// This file implements §4.4's reflection words: "'" and EXECUTE. The
// Open Question from §9 ("does ' reuse find_word()'s vocabulary-search
// order, or look only in the context vocabulary?") is resolved here in
// favor of reuse, for consistency with the outer interpreter's own name
// resolution (see SPEC_FULL.md).
func registerReflect(v *Vocabulary) {
	v.Define(NewPrimitive("'", wordTick))
	v.Define(NewPrimitive("EXECUTE", func(e *Engine, frame *Frame) error {
		wv, err := e.pop()
		if err != nil {
			return err
		}
		w, ok := wv.Word()
		if !ok {
			return TypeError{Op: "EXECUTE", Value: wv}
		}
		return e.execute(w, frame)
	}))
}

func wordTick(e *Engine, _ *Frame) error {
	name, ok := e.nextWord()
	if !ok {
		return ExecutionError{Reason: "' with no following name"}
	}
	w, ok := e.dict.Find(name)
	if !ok {
		return WordNotFoundError{Token: name}
	}
	ref := WordRef(w)
	if e.compiling {
		return e.emit(ConstSlot(ref))
	}
	e.push(ref)
	return nil
}

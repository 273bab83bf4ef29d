package forth

// dispatch handles one token per §4.2: a numeric literal, a known word
// (immediate or not), or an unknown token (a WordNotFoundError), routed
// to either immediate execution or compilation into currentDef depending
// on e.compiling and the word's Immediate flag.
func (e *Engine) dispatch(tok string) error {
	switch tok {
	case ":":
		return e.beginDefinition()
	case ";":
		return e.endDefinition()
	}

	if v, ok := parseNumber(tok); ok {
		return e.dispatchLiteral(v)
	}

	if w, ok := e.dict.Find(tok); ok {
		if !e.compiling || w.Immediate {
			if w.ColonOnly && !e.compiling {
				return ExecutionError{Reason: w.Name + " is colon-only"}
			}
			return e.execute(w, nil)
		}
		return e.emit(RefSlot(w))
	}

	return WordNotFoundError{Token: tok}
}

// dispatchLiteral pushes or compiles a literal value that was already
// resolved (a number from dispatch, or a quoted string token from
// Interpret, per §4.1 rule 4) without going through word lookup.
func (e *Engine) dispatchLiteral(v Value) error {
	if e.compiling {
		return e.emit(ConstSlot(v))
	}
	e.push(v)
	return nil
}

// beginDefinition handles ":": the next token names the new word, which
// becomes currentDef and is NOT yet installed in the definitions
// vocabulary until ";" completes it, per §4.2.
func (e *Engine) beginDefinition() error {
	if e.compiling {
		return CompilationError{Reason: ": nested inside another definition"}
	}
	name, ok := e.nextWord()
	if !ok {
		return CompilationError{Reason: ": with no name"}
	}
	e.compiling = true
	e.currentDef = NewThreaded(name)
	return nil
}

// endDefinition handles ";": installs currentDef into the definitions
// vocabulary and leaves compile mode.
func (e *Engine) endDefinition() error {
	if !e.compiling {
		return CompilationError{Reason: "; with no matching :"}
	}
	if len(e.leaveStack) != 0 {
		return ControlFlowError{Word: ";", Reason: "unclosed loop at end of definition"}
	}
	def := e.currentDef
	e.dict.Definitions().Define(def)
	e.compiling = false
	e.currentDef = nil
	return nil
}

// emit appends slot to currentDef's body; emitIndex is the variant that
// also reports where it was written (used by control-flow words to
// remember back-patch sites).
func (e *Engine) emit(slot Slot) error {
	if e.currentDef == nil {
		return CompilationError{Reason: "compile emission outside a definition"}
	}
	e.currentDef.Code = append(e.currentDef.Code, slot)
	return nil
}

// emitIndex is like emit but also reports the slot's index.
func (e *Engine) emitIndex(slot Slot) (int, error) {
	if e.currentDef == nil {
		return 0, CompilationError{Reason: "compile emission outside a definition"}
	}
	idx := len(e.currentDef.Code)
	e.currentDef.Code = append(e.currentDef.Code, slot)
	return idx, nil
}

// patch rewrites the inline constant at index idx in currentDef's body,
// used to back-patch a previously-emitted placeholder branch offset once
// its target slot index is known (§9's back-patching design note).
func (e *Engine) patch(idx int, v Value) error {
	if e.currentDef == nil || idx < 0 || idx >= len(e.currentDef.Code) {
		return CompilationError{Reason: "back-patch index out of range"}
	}
	e.currentDef.Code[idx] = ConstSlot(v)
	return nil
}

// emitCore compiles a reference to the named word as looked up in the
// core vocabulary specifically, not the current context, so that user
// redefinitions of e.g. IF or BRANCH can never shadow the compiler's own
// use of them (§4.2, §9).
func (e *Engine) emitCore(name string) (int, error) {
	w, ok := e.dict.Core().Lookup(name)
	if !ok {
		return 0, CompilationError{Reason: "missing core word " + name}
	}
	return e.emitIndex(RefSlot(w))
}

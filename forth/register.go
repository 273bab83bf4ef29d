package forth

// registerBuiltins populates core, the engine's core vocabulary, with
// every built-in word from §4.4 plus the hidden runtime primitives the
// compiler emits for control flow, per the teacher's compileBuiltins/
// compileEntry bootstrap in first.go: one table-building pass at
// construction time rather than scattering registration calls across the
// rest of the engine.
func registerBuiltins(core *Vocabulary) {
	registerArith(core)
	registerStack(core)
	registerMem(core)
	registerIO(core)
	registerArray(core)
	registerReflect(core)
	registerVocabulary(core)
	registerControlFlow(core)

	core.Define(NewPrimitive("RESET", func(e *Engine, _ *Frame) error {
		e.Reset()
		return nil
	}))
}

// registerControlFlow installs both the immediate compile-time words a
// user types (IF, BEGIN, DO, ...) and the hidden runtime primitives they
// compile calls to (0BRANCH, (DO), ...). The hidden primitives are
// looked up by emitCore under these exact names, so their names must
// match what emitPlaceholder/emitCore passes.
func registerControlFlow(core *Vocabulary) {
	immediate := func(name string, fn PrimitiveFunc) {
		w := NewPrimitive(name, fn)
		w.Immediate = true
		core.Define(w)
	}

	immediate("IF", wordIF)
	immediate("ELSE", wordELSE)
	immediate("ENDIF", wordENDIF)
	immediate("BEGIN", wordBEGIN)
	immediate("UNTIL", wordUNTIL)
	immediate("WHILE", wordWHILE)
	immediate("REPEAT", wordREPEAT)
	immediate("DO", wordDO)
	immediate("LOOP", wordLOOP)
	immediate("+LOOP", wordPlusLOOP)
	immediate("LEAVE", wordLEAVE)

	core.Define(NewPrimitive("BRANCH", primBranch))
	core.Define(NewPrimitive("0BRANCH", primZeroBranch))
	core.Define(NewPrimitive("(DO)", primDo))
	core.Define(NewPrimitive("(LOOP)", primLoop))
	core.Define(NewPrimitive("(+LOOP)", primPlusLoop))
	core.Define(NewPrimitive("(LEAVE)", primLeave))
}

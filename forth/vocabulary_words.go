package forth

// VOCABULARY and DEFINITIONS implement §4.4's vocabulary-table words,
// per §9's "global vocabulary table" design note: the Dictionary already
// models this as an engine-owned slice of named Vocabulary-s, so these
// two words just move the context/definitions pointers around it.

func registerVocabulary(v *Vocabulary) {
	v.Define(NewPrimitive("VOCABULARY", func(e *Engine, _ *Frame) error {
		name, ok := e.nextWord()
		if !ok {
			return CompilationError{Reason: "VOCABULARY with no name"}
		}
		voc := e.dict.AddVocabulary(name)
		e.dict.Definitions().Define(NewPrimitive(name, func(e *Engine, _ *Frame) error {
			e.dict.SetContext(voc)
			return nil
		}))
		return nil
	}))

	v.Define(NewPrimitive("DEFINITIONS", func(e *Engine, _ *Frame) error {
		e.dict.SetDefinitions(e.dict.Context())
		return nil
	}))
}

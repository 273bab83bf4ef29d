package forth

import "sort"

// Vocabulary is a mapping from word name to WordEntry, looked up by name;
// it keeps no insertion order (Names returns the names sorted).
// Redefinition replaces the prior entry under the same name, per §3.
type Vocabulary struct {
	Name  string
	words map[string]*WordEntry
}

// NewVocabulary constructs an empty vocabulary.
func NewVocabulary(name string) *Vocabulary {
	return &Vocabulary{Name: name, words: make(map[string]*WordEntry)}
}

// Lookup finds a word by exact name within this vocabulary only.
func (v *Vocabulary) Lookup(name string) (*WordEntry, bool) {
	w, ok := v.words[name]
	return w, ok
}

// Define installs w, replacing any prior entry of the same name.
func (v *Vocabulary) Define(w *WordEntry) {
	v.words[w.Name] = w
}

// Names returns every word name in this vocabulary, sorted, for WORDS.
func (v *Vocabulary) Names() []string {
	names := make([]string, 0, len(v.words))
	for name := range v.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dictionary owns the engine's vocabularies. It always holds one named
// FORTH, created at startup, which also serves as the "core" vocabulary
// that compile-time emission resolves control-flow primitives against
// (§4.2), so that a user redefinition of e.g. IF can't shadow the
// compiler's own use of it mid-compile.
type Dictionary struct {
	vocabs      []*Vocabulary
	byName      map[string]*Vocabulary
	context     *Vocabulary
	definitions *Vocabulary
	core        *Vocabulary
}

// NewDictionary constructs a Dictionary with the FORTH vocabulary
// installed as context, definitions, and core.
func NewDictionary() *Dictionary {
	forth := NewVocabulary("FORTH")
	d := &Dictionary{
		vocabs:      []*Vocabulary{forth},
		byName:      map[string]*Vocabulary{"FORTH": forth},
		context:     forth,
		definitions: forth,
		core:        forth,
	}
	return d
}

// Context returns the vocabulary consulted first at name resolution.
func (d *Dictionary) Context() *Vocabulary { return d.context }

// SetContext sets the context vocabulary.
func (d *Dictionary) SetContext(v *Vocabulary) { d.context = v }

// Definitions returns the vocabulary new words are installed into.
func (d *Dictionary) Definitions() *Vocabulary { return d.definitions }

// SetDefinitions sets the definitions vocabulary.
func (d *Dictionary) SetDefinitions(v *Vocabulary) { d.definitions = v }

// Core returns the vocabulary used to resolve primitive words by
// canonical name during compilation (§4.2).
func (d *Dictionary) Core() *Vocabulary { return d.core }

// Vocabularies returns every vocabulary in insertion order, for the
// read-only engine.vocabularies accessor (§6).
func (d *Dictionary) Vocabularies() []*Vocabulary {
	out := make([]*Vocabulary, len(d.vocabs))
	copy(out, d.vocabs)
	return out
}

// Lookup finds a vocabulary by name.
func (d *Dictionary) Lookup(name string) (*Vocabulary, bool) {
	v, ok := d.byName[name]
	return v, ok
}

// AddVocabulary creates a new, empty vocabulary and registers it.
func (d *Dictionary) AddVocabulary(name string) *Vocabulary {
	if v, ok := d.byName[name]; ok {
		return v
	}
	v := NewVocabulary(name)
	d.vocabs = append(d.vocabs, v)
	d.byName[name] = v
	return v
}

// Find resolves name per §4.2: the context vocabulary first, then every
// vocabulary in reverse insertion order; first hit wins.
func (d *Dictionary) Find(name string) (*WordEntry, bool) {
	if w, ok := d.context.Lookup(name); ok {
		return w, true
	}
	for i := len(d.vocabs) - 1; i >= 0; i-- {
		if w, ok := d.vocabs[i].Lookup(name); ok {
			return w, true
		}
	}
	return nil, false
}

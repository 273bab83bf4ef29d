package forth

import (
	"strconv"
	"strings"
)

// Interpret feeds one line of source text through the outer interpreter
// (§4.1, §4.2): words are read left to right and, per word, either
// executed immediately or compiled into the word under construction.
//
// Per §7's error policy, Interpret never returns a Forth-domain error to
// the caller: WordNotFoundError, CompilationError, ControlFlowError, and
// ExecutionError are all caught, recorded as LastError(), dumped through
// the log channel, and the engine is reset to a clean state. Only an
// unexpected host panic, recovered via internal/panicerr, surfaces here.
func (e *Engine) Interpret(line string) error {
	savedInput, savedIdx := e.input, e.idx
	e.input, e.idx = line, 0
	defer func() { e.input, e.idx = savedInput, savedIdx }()

	return e.guarded(func() error {
		for {
			tok, quoted, ok := e.nextToken()
			if !ok {
				return nil
			}
			if quoted {
				if err := e.dispatchLiteral(Str(tok)); err != nil {
					return err
				}
				continue
			}
			if err := e.dispatch(tok); err != nil {
				return err
			}
		}
	})
}

// nextWord consumes and returns the next token from the current input
// buffer, discarding whether it was a quoted string literal. Most
// callers (":", VARIABLE, CONSTANT, "'", SEE, ...) only ever want a bare
// name and don't care about the distinction.
func (e *Engine) nextWord() (string, bool) {
	tok, _, ok := e.nextToken()
	return tok, ok
}

// nextToken consumes and returns the next token from the current input
// buffer, per §4.1's rules, applied in order: (1) inside a doc-quote,
// consume up to the next `"""` and resume normal scanning; (2) skip
// whitespace; (3) a bare `"""` opens doc-quote mode and recurses; (4) a
// lone `"` opens a string read verbatim, including embedded whitespace,
// up to the next `"`; (5) otherwise read a bare whitespace-delimited
// word. quoted reports whether rule 4 produced a string literal token.
// It returns ok=false at end of input.
func (e *Engine) nextToken() (text string, quoted bool, ok bool) {
	if e.inDocQuote {
		return e.continueDocQuote()
	}
	e.skipSpace()
	if e.idx >= len(e.input) {
		return "", false, false
	}
	if strings.HasPrefix(e.input[e.idx:], `"""`) {
		e.idx += 3
		e.inDocQuote = true
		return e.nextToken()
	}
	if e.input[e.idx] == '"' {
		e.idx++
		return e.getInputTill('"'), true, true
	}
	start := e.idx
	for e.idx < len(e.input) && !isSpace(e.input[e.idx]) {
		e.idx++
	}
	return e.input[start:e.idx], false, true
}

// continueDocQuote implements rule 1: consume up to the next `"""`,
// delivering the clipped span to the definition under construction's
// docstring and resuming normal scanning. If the buffer ends first, it
// stays in doc-quote mode and reports end-of-input so the caller
// re-enters on the next line fed to Interpret, per §6's "doc-quote spans
// may cross line boundaries".
func (e *Engine) continueDocQuote() (string, bool, bool) {
	rest := e.input[e.idx:]
	if end := strings.Index(rest, `"""`); end >= 0 {
		e.appendDoc(rest[:end])
		e.idx += end + 3
		e.inDocQuote = false
		return e.nextToken()
	}
	e.appendDoc(rest)
	e.idx = len(e.input)
	return "", false, false
}

// appendDoc appends span to the docstring of the definition currently
// under construction, if any; a doc-quote with no enclosing ":" has
// nothing to attach to and is silently discarded.
func (e *Engine) appendDoc(span string) {
	if e.currentDef == nil || span == "" {
		return
	}
	e.currentDef.Doc = append(e.currentDef.Doc, span)
}

// getInputTill consumes and returns input up to (and consuming) the next
// occurrence of delim, or to end of input if delim doesn't appear.
func (e *Engine) getInputTill(delim byte) string {
	start := e.idx
	for e.idx < len(e.input) && e.input[e.idx] != delim {
		e.idx++
	}
	out := e.input[start:e.idx]
	if e.idx < len(e.input) {
		e.idx++ // consume delim
	}
	return out
}

func (e *Engine) skipSpace() {
	for e.idx < len(e.input) && isSpace(e.input[e.idx]) {
		e.idx++
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// parseNumber parses tok as an integer, else as a float literal, per
// §4.1's "numeric-vs-word" rule: dispatch tries every bare token as a
// number before falling back to word lookup.
func parseNumber(tok string) (Value, bool) {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Int(i), true
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Float(f), true
	}
	return Nil, false
}

func looksNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	i := 0
	if tok[0] == '-' || tok[0] == '+' {
		i = 1
	}
	return i < len(tok) && tok[i] >= '0' && tok[i] <= '9'
}

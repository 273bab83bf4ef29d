package forth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEngine(out *bytes.Buffer) *Engine {
	return New(WithOutput(out))
}

func TestEngine_LiteralArithmetic(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret("1 2 +"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(3)}, e.Stack())
}

func TestEngine_ColonDefinitionAndCall(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(": SQUARE DUP * ;"))
	require.NoError(t, e.Interpret("5 SQUARE"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(25)}, e.Stack())
}

func TestEngine_IfElse(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`: SIGN DUP 0< IF DROP -1 ELSE 0< IF 0 ELSE 1 ENDIF ENDIF ;`))
	require.NoError(t, e.Interpret("-5 SIGN"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(-1)}, e.Stack())
}

func TestEngine_IfElseSimple(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`: ABS2 DUP 0< IF MINUS ENDIF ;`))
	require.NoError(t, e.Interpret("-7 ABS2"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(7)}, e.Stack())

	e.Reset()
	require.NoError(t, e.Interpret("7 ABS2"))
	require.Equal(t, []Value{Int(7)}, e.Stack())
}

func TestEngine_BeginUntilCountdown(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`: COUNTDOWN BEGIN DUP . 1- DUP 0= UNTIL DROP ;`))
	require.NoError(t, e.Interpret("3 COUNTDOWN"))
	require.Nil(t, e.LastError())
	require.Equal(t, "3 2 1 ", out.String())
}

// TestEngine_DoLoop is spec scenario 3: ": t 0 0 5 DO I . 1 + LOOP ; t"
// counts I from 0 up to (not including) 5, accumulating 1 onto the
// untouched seed value each iteration, leaving [5] and printing "0 1 2 3 4".
func TestEngine_DoLoop(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`: t 0 0 5 DO I . 1 + LOOP ; t`))
	require.Nil(t, e.LastError())
	require.Equal(t, "0 1 2 3 4 ", out.String())
	require.Equal(t, []Value{Int(5)}, e.Stack())
}

// TestEngine_DoLoopEmptyRange is spec scenario 4: when the start index is
// already past the limit, the body never runs at all.
func TestEngine_DoLoopEmptyRange(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`: t 0 6 5 DO I . 1 + LOOP ; t`))
	require.Nil(t, e.LastError())
	require.Equal(t, "", out.String())
	require.Equal(t, []Value{Int(0)}, e.Stack())
}

// TestEngine_DoLoopLeave is spec scenario 12: LEAVE inside a DO loop exits
// with the index at the point of leaving, and the return stack cleaned.
func TestEngine_DoLoopLeave(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`: t 0 10 DO I 3 = IF I LEAVE ENDIF LOOP ; t`))
	require.Nil(t, e.LastError())
	require.Empty(t, e.RP())
	require.Equal(t, []Value{Int(3)}, e.Stack())
}

func TestEngine_VariableConstant(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret("0 VARIABLE X"))
	require.NoError(t, e.Interpret("42 X !"))
	require.NoError(t, e.Interpret("X @"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(42)}, e.Stack())

	require.NoError(t, e.Interpret("100 CONSTANT HUNDRED"))
	e.Reset()
	require.NoError(t, e.Interpret("HUNDRED"))
	require.Equal(t, []Value{Int(100)}, e.Stack())
}

func TestEngine_WordNotFoundRecordsLastError(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret("BOGUSWORD"))
	require.Error(t, e.LastError())
	require.IsType(t, WordNotFoundError{}, e.LastError())
	require.Empty(t, e.Stack())
}

func TestEngine_StackUnderflowRecordsLastErrorAndResets(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret("DUP"))
	require.Error(t, e.LastError())
	require.IsType(t, StackUnderflowError{}, e.LastError())
	require.Empty(t, e.Stack())
}

func TestEngine_DotQuotePrints(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`." hello world"`))
	require.Nil(t, e.LastError())
	require.Equal(t, "hello world", out.String())
}

func TestEngine_ArrayPackUnpack(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret("1 2 3 3 PACK"))
	require.Nil(t, e.LastError())
	require.Equal(t, 1, len(e.Stack()))
	arr, ok := e.Stack()[0].Array()
	require.True(t, ok)
	require.Equal(t, []Value{Int(1), Int(2), Int(3)}, arr)

	e.Reset()
	require.NoError(t, e.Interpret("[ 4 5 6 ] UNPACK"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(4), Int(5), Int(6)}, e.Stack())
}

// TestEngine_StringLiteralPrintsAsString guards against a quoted token
// being parsed as a number: `"3" .` must print the string "3".
func TestEngine_StringLiteralPrintsAsString(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`"3" .`))
	require.Nil(t, e.LastError())
	require.Equal(t, "3 ", out.String())
}

// TestEngine_SplitStringLiteral is spec scenario 9: a quoted string
// containing embedded spaces must tokenize as a single literal, not be
// re-split into words and fail word lookup.
func TestEngine_SplitStringLiteral(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`"CONSTANT BUU xyz" " " SPLIT`))
	require.Nil(t, e.LastError())
	require.Equal(t, 1, len(e.Stack()))
	arr, ok := e.Stack()[0].Array()
	require.True(t, ok)
	require.Equal(t, []Value{Str("CONSTANT"), Str("BUU"), Str("xyz")}, arr)
}

// TestEngine_Format is spec scenario 10.
func TestEngine_Format(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`2 4 8 "{} x {} = {}" FORMAT`))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Str("2 x 4 = 8")}, e.Stack())
}

// TestEngine_VariableInitializer is spec scenario 8: VARIABLE pops its
// initializer off the data stack instead of always starting at NIL.
func TestEngine_VariableInitializer(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret("1234 VARIABLE BUU BUU @"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(1234)}, e.Stack())
}

// TestEngine_SlashMod is spec scenario 11: both quotient and remainder
// come back as integers even when the division isn't exact.
func TestEngine_SlashMod(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret("17 4 /MOD"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(1), Int(4)}, e.Stack())
}

// TestEngine_DocQuote covers §4.1 rules 1 and 3: a """ ... """ span is
// captured as the definition's docstring and doesn't otherwise disturb
// compilation, and SEE surfaces it.
func TestEngine_DocQuote(t *testing.T) {
	var out bytes.Buffer
	e := newTestEngine(&out)
	require.NoError(t, e.Interpret(`: SQ """ squares its argument """ DUP * ;`))
	require.NoError(t, e.Interpret("5 SQ"))
	require.Nil(t, e.LastError())
	require.Equal(t, []Value{Int(25)}, e.Stack())

	out.Reset()
	require.NoError(t, e.Interpret("SEE SQ"))
	require.Contains(t, out.String(), "squares its argument")
}

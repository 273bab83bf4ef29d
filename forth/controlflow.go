package forth

// This file implements the compile-time control-flow protocol of §4.2:
// IF/ELSE/ENDIF, BEGIN/UNTIL, BEGIN/WHILE/REPEAT, and DO/LOOP/+LOOP with
// LEAVE, plus the runtime primitives each one compiles a call to. Every
// immediate word here uses the engine's own data stack as a compile-time
// work area, carrying the index of a not-yet-patched literal slot and a
// string sentinel identifying which opener is pending, exactly as §3
// describes the compile state's relationship to the data stack.

const (
	sentinelIF    = "IF"
	sentinelELSE  = "ELSE"
	sentinelBEGIN = "BEGIN"
	sentinelWHILE = "WHILE"
	sentinelDO    = "DO"
)

func isSentinel(v Value, want string) bool {
	s, ok := v.StringValue()
	return ok && s == want
}

// emitPlaceholder emits a literal-then-word pair for a branch primitive
// (BRANCH, 0BRANCH, (LOOP), (+LOOP), (LEAVE)), returning the index of the
// literal slot (to be patched later) and the index of the word slot
// itself (the base that offsets are relative to, per branchTo).
func (e *Engine) emitPlaceholder(coreName string) (litIdx, wordIdx int, err error) {
	litIdx, err = e.emitIndex(ConstSlot(Int(0)))
	if err != nil {
		return 0, 0, err
	}
	wordIdx, err = e.emitCore(coreName)
	if err != nil {
		return 0, 0, err
	}
	return litIdx, wordIdx, nil
}

// patchOffset back-patches the literal at litIdx so that branching from
// wordIdx lands at target, per branchTo's "frame.xp-1 + offset" rule
// (frame.xp-1 equals wordIdx once the branch primitive runs).
func (e *Engine) patchOffset(litIdx, wordIdx, target int) error {
	return e.patch(litIdx, Int(int64(target-wordIdx)))
}

func wordIF(e *Engine, _ *Frame) error {
	lit, word, err := e.emitPlaceholder("0BRANCH")
	if err != nil {
		return err
	}
	e.push(Int(int64(lit)))
	e.push(Int(int64(word)))
	e.push(Str(sentinelIF))
	return nil
}

func wordELSE(e *Engine, _ *Frame) error {
	tag, err := e.pop()
	if err != nil || !isSentinel(tag, sentinelIF) {
		return ControlFlowError{Word: "ELSE", Reason: "no matching IF"}
	}
	wordV, err := e.pop()
	if err != nil {
		return err
	}
	litV, err := e.pop()
	if err != nil {
		return err
	}
	ifLit, _ := litV.Int()
	ifWord, _ := wordV.Int()

	elseLit, elseWord, err := e.emitPlaceholder("BRANCH")
	if err != nil {
		return err
	}
	if err := e.patchOffset(int(ifLit), int(ifWord), len(e.currentDef.Code)); err != nil {
		return err
	}
	e.push(Int(int64(elseLit)))
	e.push(Int(int64(elseWord)))
	e.push(Str(sentinelELSE))
	return nil
}

func wordENDIF(e *Engine, _ *Frame) error {
	tag, err := e.pop()
	if err != nil {
		return err
	}
	switch {
	case isSentinel(tag, sentinelIF), isSentinel(tag, sentinelELSE):
	default:
		return ControlFlowError{Word: "ENDIF", Reason: "no matching IF or ELSE"}
	}
	wordV, err := e.pop()
	if err != nil {
		return err
	}
	litV, err := e.pop()
	if err != nil {
		return err
	}
	lit, _ := litV.Int()
	word, _ := wordV.Int()
	return e.patchOffset(int(lit), int(word), len(e.currentDef.Code))
}

func wordBEGIN(e *Engine, _ *Frame) error {
	e.push(Int(int64(len(e.currentDef.Code))))
	e.push(Str(sentinelBEGIN))
	return nil
}

func wordUNTIL(e *Engine, _ *Frame) error {
	tag, err := e.pop()
	if err != nil || !isSentinel(tag, sentinelBEGIN) {
		return ControlFlowError{Word: "UNTIL", Reason: "no matching BEGIN"}
	}
	topV, err := e.pop()
	if err != nil {
		return err
	}
	top, _ := topV.Int()

	lit, word, err := e.emitPlaceholder("0BRANCH")
	if err != nil {
		return err
	}
	return e.patchOffset(lit, word, int(top))
}

func wordWHILE(e *Engine, _ *Frame) error {
	tag, err := e.pop()
	if err != nil || !isSentinel(tag, sentinelBEGIN) {
		return ControlFlowError{Word: "WHILE", Reason: "no matching BEGIN"}
	}
	topV, err := e.pop()
	if err != nil {
		return err
	}
	lit, word, err := e.emitPlaceholder("0BRANCH")
	if err != nil {
		return err
	}
	e.push(topV)
	e.push(Int(int64(lit)))
	e.push(Int(int64(word)))
	e.push(Str(sentinelWHILE))
	return nil
}

func wordREPEAT(e *Engine, _ *Frame) error {
	tag, err := e.pop()
	if err != nil || !isSentinel(tag, sentinelWHILE) {
		return ControlFlowError{Word: "REPEAT", Reason: "no matching WHILE"}
	}
	wordV, err := e.pop()
	if err != nil {
		return err
	}
	litV, err := e.pop()
	if err != nil {
		return err
	}
	topV, err := e.pop()
	if err != nil {
		return err
	}
	whileLit, _ := litV.Int()
	whileWord, _ := wordV.Int()
	top, _ := topV.Int()

	backLit, backWord, err := e.emitPlaceholder("BRANCH")
	if err != nil {
		return err
	}
	if err := e.patchOffset(backLit, backWord, int(top)); err != nil {
		return err
	}
	return e.patchOffset(int(whileLit), int(whileWord), len(e.currentDef.Code))
}

// wordDO compiles "(DO)" (which moves the start/limit pair from the data
// stack to the return stack and leaves a 1/0 gate on the data stack for
// the range-empty guard) followed by a placeholder "0BRANCH" that skips
// straight to the loop's cleanup when the range is empty, per §4.2/§4.3.
// The 0BRANCH's target isn't known until the matching LOOP/+LOOP closes
// the loop, so its slot indices ride along on the compile stack.
func wordDO(e *Engine, _ *Frame) error {
	if _, err := e.emitCore("(DO)"); err != nil {
		return err
	}
	guardLit, guardWord, err := e.emitPlaceholder("0BRANCH")
	if err != nil {
		return err
	}
	e.leaveStack = append(e.leaveStack, nil)
	e.push(Int(int64(guardLit)))
	e.push(Int(int64(guardWord)))
	e.push(Int(int64(len(e.currentDef.Code))))
	e.push(Str(sentinelDO))
	return nil
}

// closeLoop implements LOOP/+LOOP: it emits the backward branch to the
// loop top, then the cleanup sequence "R> R> DROP DROP" that discards
// this loop's index and limit from the return stack. The DO-guard's
// 0BRANCH and every LEAVE registered inside the loop are patched to land
// on that cleanup, per §9's "LEAVE offset correctness with cleanup" note:
// whether the loop ran zero times, ran to completion, or was left early,
// the same cleanup code runs exactly once before falling through.
func (e *Engine) closeLoop(coreName string) error {
	tag, err := e.pop()
	if err != nil || !isSentinel(tag, sentinelDO) {
		return ControlFlowError{Word: coreName, Reason: "no matching DO"}
	}
	topV, err := e.pop()
	if err != nil {
		return err
	}
	guardWordV, err := e.pop()
	if err != nil {
		return err
	}
	guardLitV, err := e.pop()
	if err != nil {
		return err
	}
	top, _ := topV.Int()
	guardWord, _ := guardWordV.Int()
	guardLit, _ := guardLitV.Int()

	lit, word, err := e.emitPlaceholder(coreName)
	if err != nil {
		return err
	}
	if err := e.patchOffset(lit, word, int(top)); err != nil {
		return err
	}

	cleanupTarget := len(e.currentDef.Code)
	for _, name := range []string{"R>", "R>", "DROP", "DROP"} {
		if _, err := e.emitCore(name); err != nil {
			return err
		}
	}

	if err := e.patchOffset(int(guardLit), int(guardWord), cleanupTarget); err != nil {
		return err
	}

	n := len(e.leaveStack)
	pending := e.leaveStack[n-1]
	e.leaveStack = e.leaveStack[:n-1]
	for _, leaveLit := range pending {
		if err := e.patchOffset(leaveLit, leaveLit+1, cleanupTarget); err != nil {
			return err
		}
	}
	return nil
}

func wordLOOP(e *Engine, _ *Frame) error     { return e.closeLoop("(LOOP)") }
func wordPlusLOOP(e *Engine, _ *Frame) error { return e.closeLoop("(+LOOP)") }

func wordLEAVE(e *Engine, _ *Frame) error {
	if len(e.leaveStack) == 0 {
		return ControlFlowError{Word: "LEAVE", Reason: "not inside a loop"}
	}
	lit, _, err := e.emitPlaceholder("(LEAVE)")
	if err != nil {
		return err
	}
	n := len(e.leaveStack)
	e.leaveStack[n-1] = append(e.leaveStack[n-1], lit)
	return nil
}

// primDo pops the limit (TOS) then the start index off the data stack —
// i.e. the source reads "<index> <limit> DO" — and pushes them onto the
// return stack as limit then index, so index lands at rp[-1] and limit
// at rp[-2], matching §4.2/§4.3's "(DO) ... rp[-1] the index, rp[-2] the
// limit". It then pushes a 1/0 gate for the 0BRANCH DO itself compiled
// right after it, so an empty range (index >= limit) skips the body
// entirely instead of always running it at least once.
func primDo(e *Engine, _ *Frame) error {
	limit, err := e.popInt("(DO)")
	if err != nil {
		return err
	}
	index, err := e.popInt("(DO)")
	if err != nil {
		return err
	}
	e.pushr(Int(limit))
	e.pushr(Int(index))
	e.push(Bool(index < limit))
	return nil
}

// primLoop implements LOOP: increments the loop index by 1; if it is
// still below the limit, branches back to the loop top, else falls
// through into the closer's "R> R> DROP DROP" cleanup.
func primLoop(e *Engine, frame *Frame) error {
	return stepLoop(e, frame, 1)
}

// primPlusLoop implements +LOOP: pops a custom increment off the data
// stack instead of assuming 1. The increment sits just below the inline
// branch offset that was pushed right before (+LOOP) ran.
func primPlusLoop(e *Engine, frame *Frame) error {
	offset, err := e.pop()
	if err != nil {
		return err
	}
	inc, err := e.popInt("(+LOOP)")
	if err != nil {
		return err
	}
	e.push(offset)
	return stepLoop(e, frame, inc)
}

// stepLoop updates the index in place at rp[-1], leaving the limit at
// rp[-2] untouched, and either branches back to the loop top or leaves
// both cells for the closer's cleanup code to discard.
func stepLoop(e *Engine, frame *Frame, inc int64) error {
	offset, err := e.popInt("(LOOP)")
	if err != nil {
		return err
	}
	idxV, err := e.peekr(0)
	if err != nil {
		return err
	}
	limitV, err := e.peekr(1)
	if err != nil {
		return err
	}
	idx, _ := idxV.Int()
	limit, _ := limitV.Int()
	idx += inc
	e.rstack[len(e.rstack)-1] = Int(idx)
	if idx < limit {
		return branchTo(frame, frame.xp-1+int(offset))
	}
	return nil
}

// primLeave branches unconditionally to the exit target patched in by
// the enclosing LOOP/+LOOP, landing exactly on its "R> R> DROP DROP"
// cleanup so the return stack is left clean regardless of whether the
// loop was left early or ran to completion (§9).
func primLeave(e *Engine, frame *Frame) error {
	offset, err := e.popInt("(LEAVE)")
	if err != nil {
		return err
	}
	return branchTo(frame, frame.xp-1+int(offset))
}

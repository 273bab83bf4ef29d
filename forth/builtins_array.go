package forth

import "strings"

// This file implements §4.4's array-literal and array/string manipulation
// words. "[" and "]" bracket a sequence of values collected at runtime
// into a single Array Value, the same way the teacher's compileme/
// compileit pair gathers tokens during bootstrap compilation, adapted
// here to build a runtime aggregate instead of a compiled body.

func registerArray(v *Vocabulary) {
	v.Define(NewPrimitive("[", wordArrayOpen))

	v.Define(NewPrimitive("]", wordArrayClose))

	v.Define(NewPrimitive("LEN", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		n, ok := a.Len()
		if !ok {
			return TypeError{Op: "LEN", Value: a}
		}
		e.push(Int(int64(n)))
		return nil
	}))

	v.Define(NewPrimitive("PACK", func(e *Engine, _ *Frame) error {
		n, err := e.popInt("PACK")
		if err != nil {
			return err
		}
		if n < 0 || int(n) > len(e.stack) {
			return StackUnderflowError{Stack: "data", Op: "PACK"}
		}
		start := len(e.stack) - int(n)
		items := make([]Value, n)
		copy(items, e.stack[start:])
		e.stack = e.stack[:start]
		e.push(Arr(items))
		return nil
	}))

	v.Define(NewPrimitive("UNPACK", func(e *Engine, _ *Frame) error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		items, ok := a.Array()
		if !ok {
			return TypeError{Op: "UNPACK", Value: a}
		}
		for _, item := range items {
			e.push(item)
		}
		return nil
	}))

	v.Define(NewPrimitive("SPLIT", func(e *Engine, _ *Frame) error {
		sepV, err := e.pop()
		if err != nil {
			return err
		}
		strV, err := e.pop()
		if err != nil {
			return err
		}
		s, ok := strV.StringValue()
		if !ok {
			return TypeError{Op: "SPLIT", Value: strV}
		}
		sep, ok := sepV.StringValue()
		if !ok {
			return TypeError{Op: "SPLIT", Value: sepV}
		}
		parts := splitString(s, sep)
		items := make([]Value, len(parts))
		for i, p := range parts {
			items[i] = Str(p)
		}
		e.push(Arr(items))
		return nil
	}))

	v.Define(NewPrimitive("FORMAT", func(e *Engine, _ *Frame) error {
		fmtV, err := e.pop()
		if err != nil {
			return err
		}
		tmpl, ok := fmtV.StringValue()
		if !ok {
			return TypeError{Op: "FORMAT", Value: fmtV}
		}
		k := strings.Count(tmpl, "{}")
		if k > len(e.stack) {
			return StackUnderflowError{Stack: "data", Op: "FORMAT"}
		}
		args := make([]Value, k)
		for i := k - 1; i >= 0; i-- {
			args[i], err = e.pop()
			if err != nil {
				return err
			}
		}
		var b strings.Builder
		i := 0
		for {
			next := strings.Index(tmpl, "{}")
			if next < 0 {
				b.WriteString(tmpl)
				break
			}
			b.WriteString(tmpl[:next])
			b.WriteString(args[i].String())
			i++
			tmpl = tmpl[next+2:]
		}
		e.push(Str(b.String()))
		return nil
	}))

	v.Define(NewPrimitive("MAP", func(e *Engine, frame *Frame) error {
		wv, err := e.pop()
		if err != nil {
			return err
		}
		w, ok := wv.Word()
		if !ok {
			return TypeError{Op: "MAP", Value: wv}
		}
		av, err := e.pop()
		if err != nil {
			return err
		}
		items, ok := av.Array()
		if !ok {
			return TypeError{Op: "MAP", Value: av}
		}
		out := make([]Value, len(items))
		for i, item := range items {
			e.push(item)
			if err := e.execute(w, frame); err != nil {
				return err
			}
			out[i], err = e.pop()
			if err != nil {
				return err
			}
		}
		e.push(Arr(out))
		return nil
	}))
}

func splitString(s, sep string) []string {
	if sep == "" {
		out := make([]string, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out
	}
	var out []string
	start := 0
	for i := 0; i+len(sep) <= len(s); {
		if s[i:i+len(sep)] == sep {
			out = append(out, s[start:i])
			i += len(sep)
			start = i
			continue
		}
		i++
	}
	out = append(out, s[start:])
	return out
}

func wordArrayOpen(e *Engine, _ *Frame) error {
	e.push(Str("ARRAY-MARK"))
	return nil
}

func wordArrayClose(e *Engine, _ *Frame) error {
	var items []Value
	for {
		v, err := e.pop()
		if err != nil {
			return ExecutionError{Reason: "]: no matching ["}
		}
		if s, ok := v.StringValue(); ok && s == "ARRAY-MARK" {
			break
		}
		items = append(items, v)
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	e.push(Arr(items))
	return nil
}

package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Truthy(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", Nil, false},
		{"zero int", Int(0), false},
		{"nonzero int", Int(1), true},
		{"negative int", Int(-1), true},
		{"zero float", Float(0), false},
		{"nonzero float", Float(0.5), true},
		{"empty string", Str(""), false},
		{"nonempty string", Str("x"), true},
		{"empty array", Arr(nil), false},
		{"nonempty array", Arr([]Value{Int(1)}), true},
		{"word ref", WordRef(NewPrimitive("X", nil)), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Truthy())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Value
		want bool
	}{
		{"int/int equal", Int(1), Int(1), true},
		{"int/float equal by value", Int(1), Float(1), true},
		{"int/float unequal", Int(1), Float(1.5), false},
		{"string equal", Str("hi"), Str("hi"), true},
		{"string unequal", Str("hi"), Str("bye"), false},
		{"array equal", Arr([]Value{Int(1), Str("a")}), Arr([]Value{Int(1), Str("a")}), true},
		{"array unequal length", Arr([]Value{Int(1)}), Arr([]Value{Int(1), Int(2)}), false},
		{"nil equal", Nil, Nil, true},
		{"kind mismatch", Str("1"), Int(1), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Equal(tc.a, tc.b))
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "3", Int(3).String())
	assert.Equal(t, "hi", Str("hi").String())
	assert.Equal(t, "[1 2]", Arr([]Value{Int(1), Int(2)}).String())
	assert.Equal(t, "nil", Nil.String())
}

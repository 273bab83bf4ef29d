package forth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArith_MixedIntFloat(t *testing.T) {
	v, err := addValues(Int(1), Float(2.5))
	require.NoError(t, err)
	f, ok := v.Float()
	require.True(t, ok)
	require.Equal(t, 3.5, f)
}

func TestArith_IntDivision(t *testing.T) {
	v, err := divValues(Int(6), Int(3))
	require.NoError(t, err)
	i, ok := v.Int()
	require.True(t, ok)
	require.Equal(t, int64(2), i)
}

func TestArith_InexactIntDivisionYieldsFloat(t *testing.T) {
	v, err := divValues(Int(7), Int(2))
	require.NoError(t, err)
	f, ok := v.Float()
	require.True(t, ok)
	require.InDelta(t, 3.5, f, 1e-9)
}

func TestArith_DivisionByZero(t *testing.T) {
	_, err := divValues(Int(1), Int(0))
	require.Error(t, err)
	require.IsType(t, ExecutionError{}, err)
}

func TestArith_TypeError(t *testing.T) {
	_, err := addValues(Str("x"), Int(1))
	require.Error(t, err)
	var typeErr TypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, "x", typeErr.Value.String())
}

package forth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_ReadUnallocatedIsNil(t *testing.T) {
	m := newMemory(0)
	require.True(t, m.Load(100).IsNil())
}

func TestMemory_StoreExtendsSize(t *testing.T) {
	m := newMemory(0)
	require.NoError(t, m.Store(5, Int(42)))
	require.Equal(t, uint(6), m.Size())
	require.Equal(t, int64(42), mustInt(t, m.Load(5)))
	require.True(t, m.Load(4).IsNil())
}

func TestMemory_Append(t *testing.T) {
	m := newMemory(0)
	a1, err := m.Append(Int(1))
	require.NoError(t, err)
	a2, err := m.Append(Int(2))
	require.NoError(t, err)
	require.Equal(t, uint(0), a1)
	require.Equal(t, uint(1), a2)
}

func TestMemory_Fill(t *testing.T) {
	m := newMemory(0)
	require.NoError(t, m.Fill(0, 4, Int(7)))
	for i := uint(0); i < 4; i++ {
		require.Equal(t, int64(7), mustInt(t, m.Load(i)))
	}
}

func TestMemory_MoveNonOverlapping(t *testing.T) {
	m := newMemory(0)
	require.NoError(t, m.Fill(0, 3, Int(9)))
	require.NoError(t, m.Move(0, 10, 3))
	for i := uint(0); i < 3; i++ {
		require.True(t, m.Load(i).IsNil())
	}
	for i := uint(10); i < 13; i++ {
		require.Equal(t, int64(9), mustInt(t, m.Load(i)))
	}
}

func TestMemory_MoveOverlapping(t *testing.T) {
	m := newMemory(0)
	for i := uint(0); i < 5; i++ {
		require.NoError(t, m.Store(i, Int(int64(i))))
	}
	require.NoError(t, m.Move(0, 2, 3))
	require.Equal(t, int64(0), mustInt(t, m.Load(2)))
	require.Equal(t, int64(1), mustInt(t, m.Load(3)))
	require.Equal(t, int64(2), mustInt(t, m.Load(4)))
	require.True(t, m.Load(0).IsNil())
	require.True(t, m.Load(1).IsNil())
}

func mustInt(t *testing.T, v Value) int64 {
	t.Helper()
	i, ok := v.Int()
	require.True(t, ok)
	return i
}

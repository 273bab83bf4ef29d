package forth

import "github.com/jcorbin/thicket/internal/mem"

// memory implements §3's RAM: a dense vector of Value, indexed by
// non-negative integer, reading past the end as NIL and growing on write.
// It's backed by the generic paged store adapted from the teacher's
// internal/mem package; paging is an implementation detail that doesn't
// change the dense-vector contract (reads past any allocated page already
// return the zero Value, i.e. NIL).
type memory struct {
	cells mem.Paged[Value]
	size  uint
}

func newMemory(limit uint) *memory {
	m := &memory{}
	m.cells.Limit = limit
	return m
}

// Load reads the cell at addr, or NIL if addr is beyond the current size.
func (m *memory) Load(addr uint) Value {
	if addr >= m.size {
		return Nil
	}
	v, err := m.cells.Load(addr)
	if err != nil {
		return Nil
	}
	return v
}

// Store writes v at addr, extending the vector with NIL fillers as
// needed.
func (m *memory) Store(addr uint, v Value) error {
	if err := m.cells.Stor(addr, v); err != nil {
		return err
	}
	if addr+1 > m.size {
		m.size = addr + 1
	}
	return nil
}

// Append adds a new cell holding v and returns its address.
func (m *memory) Append(v Value) (uint, error) {
	addr := m.size
	if err := m.Store(addr, v); err != nil {
		return 0, err
	}
	return addr, nil
}

// Size returns the current dense size of memory (one past the highest
// address ever written).
func (m *memory) Size() uint { return m.size }

// Fill stores v into count consecutive cells starting at addr.
func (m *memory) Fill(addr, count uint, v Value) error {
	for i := uint(0); i < count; i++ {
		if err := m.Store(addr+i, v); err != nil {
			return err
		}
	}
	return nil
}

// Move copies count cells from src to dst, then sets the vacated source
// cells to NIL (per §4.4's MOVE contract).
func (m *memory) Move(src, dst, count uint) error {
	buf := make([]Value, count)
	for i := range buf {
		buf[i] = m.Load(src + uint(i))
	}
	for i, v := range buf {
		if err := m.Store(dst+uint(i), v); err != nil {
			return err
		}
	}
	if dst >= src+count || dst+count <= src {
		if err := m.Fill(src, count, Nil); err != nil {
			return err
		}
		return nil
	}
	// overlapping move: only the vacated range outside [dst, dst+count) is cleared.
	if dst > src {
		return m.Fill(src, dst-src, Nil)
	}
	return m.Fill(dst+count, src+count-(dst+count), Nil)
}

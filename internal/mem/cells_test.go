package mem_test

import (
	"testing"

	"github.com/jcorbin/thicket/internal/mem"
	"github.com/jcorbin/thicket/internal/panicerr"
	"github.com/stretchr/testify/require"
)

func Test_Paged(t *testing.T) {
	for _, tc := range []pagedTestCase{
		pagedTest("basic",
			"init", func(t *testing.T, m *mem.Paged[int]) {
				m.PageSize = 4
				val, err := m.Load(0)
				require.NoError(t, err, "unexpected load error")
				require.Equal(t, 0, val, "expected 0 @0")
				require.Equal(t, uint(0), m.Size(), "expected 0 initial size")
			},

			"9 -> 0", func(t *testing.T, m *mem.Paged[int]) {
				require.NoError(t, m.Stor(0, 9), "must stor @0")
				val, err := m.Load(0)
				require.NoError(t, err, "unexpected load error")
				require.Equal(t, 9, val, "expected 9 @0")
				expectValuesAt(t, m, 6,
					0, 0,
					0, 0, 0, 0,
					0, 0, 0, 0,
					0, 0)
			},

			"{1, 2, 3, 4, 5, 6} -> 0x9", func(t *testing.T, m *mem.Paged[int]) {
				require.NoError(t, m.Stor(0x9, 1, 2, 3, 4, 5, 6), "must stor @0x9")
				bases, sizes, pages := m.Dump()
				require.Equal(t, []uint{0x0, 0x8, 0xc}, bases, "expected page bases")
				require.Equal(t, []uint{4, 4, 4}, sizes, "expected page sizes")
				require.Equal(t, [][]int{
					{9, 0, 0, 0},
					{0, 1, 2, 3},
					{4, 5, 6, 0},
				}, pages, "expected a page hole")
				expectValuesAt(t, m, 6,
					0, 0,
					0, 1, 2, 3,
					4, 5, 6, 0,
					0, 0)
			},
		),

		pagedTest("missing lower section",
			"initial value in 2nd page", func(t *testing.T, m *mem.Paged[int]) {
				m.PageSize = 0x10
				expectValueAt(t, m, 0x18, 0)
				require.NoError(t, m.Stor(0x18, 42), "unexpected stor error")
				expectValueAt(t, m, 0x18, 42)
			},

			"load low", func(t *testing.T, m *mem.Paged[int]) { expectValueAt(t, m, 0x8, 0) },

			"create 3rd page", func(t *testing.T, m *mem.Paged[int]) {
				require.NoError(t, m.Stor(0x28, 99), "unexpected stor error")
				expectValueAt(t, m, 0x28, 99)
			},

			"finally create the 1st page", func(t *testing.T, m *mem.Paged[int]) {
				require.NoError(t, m.Stor(0x8, 3), "unexpected stor error")
				expectValueAt(t, m, 0x8, 3)
			},
		),
	} {
		t.Run(tc.name, func(t *testing.T) {
			var m mem.Paged[int]
			for _, step := range tc.steps {
				if !t.Run(step.name, func(t *testing.T) {
					isolateTest(t, step.bind(&m))
				}) {
					break
				}
			}
		})
	}
}

func Test_Paged_Limit(t *testing.T) {
	var m mem.Paged[int]
	m.Limit = 8
	require.NoError(t, m.Stor(0, 1, 2))
	_, err := m.Load(9)
	require.Error(t, err)
	var lim mem.LimitError
	require.ErrorAs(t, err, &lim)
	require.Equal(t, uint(9), lim.Addr)
}

func isolateTest(t *testing.T, f func(t *testing.T)) {
	if err := panicerr.Recover(t.Name(), func() error {
		f(t)
		return nil
	}); err != nil {
		t.Logf("%+v", err)
		t.Fail()
	}
}

func expectValueAt(t *testing.T, m *mem.Paged[int], addr uint, value int) {
	val, err := m.Load(addr)
	require.NoError(t, err, "unexpected load @0x%x error", addr)
	require.Equal(t, value, val, "expected value @0x%x", addr)
}

func expectValuesAt(t *testing.T, m *mem.Paged[int], addr uint, values ...int) {
	buf := make([]int, len(values))
	require.NoError(t, m.LoadInto(addr, buf),
		"must load %v values from @0x%x", len(values), addr)
	require.Equal(t, values, buf, "expected values @0x%x", addr)
}

func pagedTest(name string, args ...interface{}) (tc pagedTestCase) {
	tc.name = name
	for i := 0; i < len(args); i++ {
		var step pagedTestStep
		step.name = args[i].(string)
		if i++; i >= len(args) {
			panic("pagedTest: missing function argument after name")
		}
		step.f = args[i].(func(t *testing.T, m *mem.Paged[int]))
		tc.steps = append(tc.steps, step)
	}
	return tc
}

type pagedTestCase struct {
	name  string
	steps []pagedTestStep
}

type pagedTestStep struct {
	name string
	f    func(t *testing.T, m *mem.Paged[int])
	m    *mem.Paged[int]
}

func (step pagedTestStep) bind(m *mem.Paged[int]) func(t *testing.T) {
	step.m = m
	return step.boundTest
}

func (step pagedTestStep) boundTest(t *testing.T) {
	step.f(t, step.m)
}

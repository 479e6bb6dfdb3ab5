package option

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testString = "Ahoj"

type silent struct{}

func (silent) String() string { return "" }

func panicErr(t *testing.T, f func()) error {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	require.NotNil(t, recovered, "expected a panic")

	err, ok := recovered.(error)
	require.True(t, ok, "expected an error panic, got %T", recovered)
	return err
}

func TestSome(t *testing.T) {
	t.Parallel()

	o := Some(testString)
	assert.True(t, o.HasValue())
	assert.False(t, o.IsNone())

	v, err := o.Value()
	require.NoError(t, err)
	assert.Equal(t, testString, v)
	assert.Equal(t, testString, o.MustValue())
}

func TestSome_RejectsNil(t *testing.T) {
	t.Parallel()

	var ptr *int
	err := panicErr(t, func() { Some(ptr) })
	assert.ErrorIs(t, err, monads.ErrInvalidArgument)

	var e error
	err = panicErr(t, func() { Some(e) })
	assert.ErrorIs(t, err, monads.ErrInvalidArgument)

	assert.True(t, Some([]int{}).HasValue())
	assert.True(t, Some(0).HasValue())
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[string]()
	assert.False(t, o.HasValue())
	assert.True(t, o.IsNone())

	_, err := o.Value()
	assert.ErrorIs(t, err, monads.ErrInvalidState)

	err = panicErr(t, func() { o.MustValue() })
	assert.ErrorIs(t, err, monads.ErrInvalidState)

	var zero Option[int]
	assert.False(t, zero.HasValue())
}

func TestHasValue_Idempotent(t *testing.T) {
	t.Parallel()

	o := Some(3)
	for range 3 {
		assert.True(t, o.HasValue())
	}
	assert.Equal(t, 3, o.MustValue())
}

func TestFromNullable(t *testing.T) {
	t.Parallel()

	s := testString
	assert.True(t, FromNullable(&s).HasValue())
	assert.False(t, FromNullable[*string](nil).HasValue())
	assert.True(t, FromNullable(5).HasValue())

	assert.Equal(t, "x", FromPtr(strPtr("x")).MustValue())
	assert.False(t, FromPtr[string](nil).HasValue())

	m := map[string]int{"a": 1}
	v, ok := m["a"]
	assert.Equal(t, 1, FromOk(v, ok).MustValue())
	v, ok = m["b"]
	assert.False(t, FromOk(v, ok).HasValue())
}

func strPtr(s string) *string { return &s }

func TestIntoNullable(t *testing.T) {
	t.Parallel()

	p := strPtr("x")
	assert.Same(t, p, Some(p).IntoNullable())
	assert.Nil(t, None[*string]().IntoNullable())

	assert.Nil(t, None[int]().ToPtr())
	ptr := Some(4).ToPtr()
	require.NotNil(t, ptr)
	assert.Equal(t, 4, *ptr)
}

func TestValueOrDefault(t *testing.T) {
	t.Parallel()

	const orElse = "else"
	assert.Equal(t, testString, Some(testString).ValueOrDefault(orElse))
	assert.Equal(t, orElse, None[string]().ValueOrDefault(orElse))

	assert.Equal(t, 1, Some(1).ValueOrElse(func() int { return 2 }))
	assert.Equal(t, 2, None[int]().ValueOrElse(func() int { return 2 }))

	v, ok := None[int]().Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestBind(t *testing.T) {
	t.Parallel()

	const (
		first = " světe"
		bang  = "!"
		mid   = testString + first
		end   = mid + bang
	)

	next := Bind(Some(testString), func(s string) string { return s + first })
	last := Bind(next, func(s string) string { return s + bang })
	assert.Equal(t, mid, next.MustValue())
	assert.Equal(t, end, last.MustValue())

	length := Bind(last, func(s string) int { return len(s) })
	assert.Equal(t, len(end), length.MustValue())

	called := false
	none := Bind(None[string](), func(s string) string { called = true; return s + first })
	none = Bind(none, func(s string) string { called = true; return s + bang })
	assert.False(t, none.HasValue())
	assert.False(t, called)

	_, err := none.Value()
	assert.ErrorIs(t, err, monads.ErrInvalidState)
}

func TestBind_Laws(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	for _, v := range []int{-1, 0, 7} {
		assert.True(t, Bind(Some(v), double).Equal(Some(double(v))))
	}
	assert.True(t, Bind(None[int](), double).Equal(None[int]()))
}

func TestBind_NilOutcomeIsNone(t *testing.T) {
	t.Parallel()

	o := Bind(Some(1), func(int) *string { return nil })
	assert.False(t, o.HasValue())
}

func TestBind_NilFunc(t *testing.T) {
	t.Parallel()

	err := panicErr(t, func() { Bind[int, int](Some(1), nil) })
	assert.ErrorIs(t, err, monads.ErrInvalidArgument)

	err = panicErr(t, func() { Bind[int, int](None[int](), nil) })
	assert.ErrorIs(t, err, monads.ErrInvalidArgument)
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	half := func(n int) Option[int] {
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}

	assert.Equal(t, 2, AndThen(Some(4), half).MustValue())
	assert.False(t, AndThen(Some(3), half).HasValue())
	assert.False(t, AndThen(None[int](), half).HasValue())
}

func TestMap(t *testing.T) {
	t.Parallel()

	const doesnt = "doesn't exist"
	length := func(s string) int { return len(s) }
	zero := func() int { return 0 }

	assert.Equal(t, len(testString), Map(Some(testString), length, zero))
	assert.Equal(t, 0, Map(None[string](), length, zero))

	exists := func(s string) string { return s + " exists" }
	missing := func() string { return doesnt }
	assert.Equal(t, testString+" exists", Map(Some(testString), exists, missing))
	assert.Equal(t, doesnt, Map(None[string](), exists, missing))

	err := panicErr(t, func() { Map(Some(1), nil, zero) })
	assert.ErrorIs(t, err, monads.ErrInvalidArgument)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	var got []string
	some := func(s string) { got = append(got, "some:"+s) }
	none := func() { got = append(got, "none") }

	Some("a").Inspect(some, none)
	None[string]().Inspect(some, none)
	assert.Equal(t, []string{"some:a", "none"}, got)

	got = nil
	Some("b").InspectSome(some)
	None[string]().InspectSome(some)
	Some("c").InspectNone(none)
	None[string]().InspectNone(none)
	assert.Equal(t, []string{"some:b", "none"}, got)

	err := panicErr(t, func() { Some("x").Inspect(some, nil) })
	assert.ErrorIs(t, err, monads.ErrInvalidArgument)
	err = panicErr(t, func() { None[string]().InspectSome(nil) })
	assert.ErrorIs(t, err, monads.ErrInvalidArgument)
}

func TestFilterAndOr(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }
	assert.True(t, Some(2).Filter(even).HasValue())
	assert.False(t, Some(3).Filter(even).HasValue())
	assert.False(t, None[int]().Filter(even).HasValue())

	assert.Equal(t, 1, Some(1).Or(Some(2)).MustValue())
	assert.Equal(t, 2, None[int]().Or(Some(2)).MustValue())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	obj := &struct{ n int }{1}
	assert.True(t, Some(obj).Equal(Some(obj)))

	assert.True(t, Some(testString).Equal(Some(strings.Clone(testString))))
	assert.True(t, Some([]int{1, 2}).Equal(Some([]int{1, 2})))
	assert.True(t, None[string]().Equal(None[string]()))

	assert.False(t, Some("a").Equal(Some("b")))
	assert.False(t, Some("a").Equal(None[string]()))
	assert.False(t, None[string]().Equal(Some("a")))

	var e1, e2 error = errors.New("x"), errors.New("x")
	assert.True(t, Some(e1).Equal(Some(e2)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, testString, Some(testString).String())
	assert.Equal(t, "42", Some(42).String())
	assert.Equal(t, NoneString, None[int]().String())
	assert.Equal(t, "", Some(silent{}).String())
	assert.Equal(t, "None", fmt.Sprint(None[string]()))
}

package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var comparisons = []Comparison{Less, Same, More}

func TestDifferent(t *testing.T) {
	require.Equal(t, Less, Different(true))
	require.Equal(t, More, Different(false))
}

func TestIsDifferent(t *testing.T) {
	require.True(t, Less.IsDifferent())
	require.True(t, More.IsDifferent())
	require.False(t, Same.IsDifferent())
	require.True(t, Different(true).IsDifferent())
}

func TestFromInt(t *testing.T) {
	require.Equal(t, Less, FromInt(-42))
	require.Equal(t, Same, FromInt(0))
	require.Equal(t, More, FromInt(7))
	require.Equal(t, -1, Less.Int())
	require.Equal(t, 0, Same.Int())
	require.Equal(t, 1, More.Int())
}

func TestEvaluate(t *testing.T) {
	isLess, ok := Less.Evaluate()
	require.True(t, ok)
	require.True(t, isLess)

	isLess, ok = More.Evaluate()
	require.True(t, ok)
	require.False(t, isLess)

	_, ok = Same.Evaluate()
	require.False(t, ok)

	require.PanicsWithError(t, invalidComparison(Comparison(5)).Error(), func() {
		Comparison(5).Evaluate()
	})
}

func TestEagerAndOr(t *testing.T) {
	tests := []struct {
		a, b    Comparison
		and, or Comparison
	}{
		{Less, Less, Less, Less},
		{Less, Same, Less, Same},
		{Less, More, Less, More},
		{Same, Less, Less, Same},
		{Same, Same, Same, Same},
		{Same, More, Same, More},
		{More, Less, Less, More},
		{More, Same, Same, More},
		{More, More, More, More},
	}
	for _, tt := range tests {
		if got := tt.a.And(tt.b); got != tt.and {
			t.Errorf("%v.And(%v) = %v, want %v", tt.a, tt.b, got, tt.and)
		}
		if got := tt.a.Or(tt.b); got != tt.or {
			t.Errorf("%v.Or(%v) = %v, want %v", tt.a, tt.b, got, tt.or)
		}
	}
}

func TestShortCircuitAgreesWithEager(t *testing.T) {
	for _, a := range comparisons {
		for _, b := range comparisons {
			calls := 0
			probe := func() Comparison {
				calls++
				return b
			}

			require.Equal(t, a.And(b), a.AndThen(probe), "%v && %v", a, b)
			if a == Less {
				require.Zero(t, calls, "AndThen evaluated its operand after Less")
			}

			calls = 0
			require.Equal(t, a.Or(b), a.OrThen(probe), "%v || %v", a, b)
			if a == More {
				require.Zero(t, calls, "OrThen evaluated its operand after More")
			}
		}
	}
}

func TestComparisonOrElse(t *testing.T) {
	calls := 0
	probe := func() Comparison {
		calls++
		return More
	}

	require.Equal(t, Less, Less.OrElse(probe))
	require.Equal(t, More, More.OrElse(probe))
	require.Zero(t, calls)

	require.Equal(t, More, Same.OrElse(probe))
	require.Equal(t, 1, calls)

	require.Equal(t, Less, Same.OrElseValue(Less))
	require.Equal(t, More, More.OrElseValue(Less))
}

func TestFlip(t *testing.T) {
	require.Equal(t, More, Less.Flip())
	require.Equal(t, Less, More.Flip())
	require.Equal(t, Same, Same.Flip())
	for _, c := range comparisons {
		require.Equal(t, c, c.Flip().Flip())
	}
}

func TestComparisonString(t *testing.T) {
	require.Equal(t, "Less", Less.String())
	require.Equal(t, "Same", Same.String())
	require.Equal(t, "More", More.String())
	require.Equal(t, "Comparison(3)", Comparison(3).String())
}

func TestTernaryView(t *testing.T) {
	require.Equal(t, False, Less.Ternary())
	require.Equal(t, Unknown, Same.Ternary())
	require.Equal(t, True, More.Ternary())

	for _, a := range comparisons {
		require.Equal(t, a, FromTernary(a.Ternary()))
		require.Equal(t, a.Flip().Ternary(), a.Ternary().Not())
		for _, b := range comparisons {
			require.Equal(t, a.And(b).Ternary(), a.Ternary().And(b.Ternary()))
			require.Equal(t, a.Or(b).Ternary(), a.Ternary().Or(b.Ternary()))
		}
	}
}

func TestKleeneLogic(t *testing.T) {
	require.Equal(t, False, Unknown.And(False))
	require.Equal(t, Unknown, Unknown.And(True))
	require.Equal(t, True, Unknown.Or(True))
	require.Equal(t, Unknown, Unknown.Or(False))
	require.Equal(t, Unknown, Unknown.Not())
	require.Equal(t, True, Known(true))

	v, ok := Unknown.Bool()
	require.False(t, v)
	require.False(t, ok)
	v, ok = True.Bool()
	require.True(t, v)
	require.True(t, ok)
	require.Equal(t, "Unknown", Unknown.String())
}

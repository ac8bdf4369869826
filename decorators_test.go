package ordering

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := Logged(Natural[int](), zap.New(core))

	require.Equal(t, Less, c(1, 2))
	require.Equal(t, Same, c(4, 4))

	entries := logs.FilterMessage("compare").AllUntimed()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	require.EqualValues(t, 1, fields["left"])
	require.EqualValues(t, 2, fields["right"])
	require.Equal(t, "Less", fields["result"])
}

func TestLoggedRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := Logged(Natural[string](), zap.New(core))

	require.Equal(t, More, c("b", "a"))
	require.Zero(t, logs.Len())
}

func TestLoggedDefaultLogger(t *testing.T) {
	c := Logged(Natural[int](), nil)
	require.Equal(t, More, c(2, 1))
}

func TestCounted(t *testing.T) {
	var calls atomic.Int64
	c := Counted(Natural[int](), &calls)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c(i, 5)
		}()
	}
	wg.Wait()

	require.EqualValues(t, 10, calls.Load())
}

func TestCountedSortIsBounded(t *testing.T) {
	var calls atomic.Int64
	data := []int{5, 4, 3, 2, 1}
	InsertionSort(data, Counted(Natural[int](), &calls))

	require.Equal(t, []int{1, 2, 3, 4, 5}, data)
	require.LessOrEqual(t, calls.Load(), int64(len(data)*(len(data)-1)/2))
}

package ordering

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var ints = [...]int{74, 59, 238, -784, 9845, 959, 905, 0, 0, 42, 7586, -5467984, 7586}

var strs = [...]string{"", "Hello", "foo", "bar", "foo", "f00", "%*&^*&^&", "***"}

type engineCase struct {
	name string
	sort func([]int, Comparer[int])
}

var engineCases = []engineCase{
	{"Insertion", InsertionSort[int]},
	{"Merge", MergeSort[int]},
	{"Quick", QuickSort[int]},
	{"Default", Sort[int]},
}

func randomInts(r *rand.Rand, n, limit int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(limit)
	}
	return data
}

func TestInsertionSortScenario(t *testing.T) {
	data := []int{3, 1, 2}
	InsertionSort(data, Natural[int]())
	require.Equal(t, []int{1, 2, 3}, data)
}

func TestSortEmptyAndSingle(t *testing.T) {
	for _, tc := range engineCases {
		t.Run(tc.name, func(t *testing.T) {
			var empty []int
			tc.sort(empty, Natural[int]())
			require.Empty(t, empty)

			single := []int{42}
			tc.sort(single, Natural[int]())
			require.Equal(t, []int{42}, single)
		})
	}
}

func TestSortIntSlice(t *testing.T) {
	for _, tc := range engineCases {
		t.Run(tc.name, func(t *testing.T) {
			data := slices.Clone(ints[:])
			tc.sort(data, Natural[int]())
			if !Verify(data, Natural[int]()) {
				t.Errorf("sorted %v", ints)
				t.Errorf("   got %v", data)
			}
		})
	}
}

func TestSortStringSlice(t *testing.T) {
	data := slices.Clone(strs[:])
	QuickSort(data, Natural[string]())
	want := slices.Clone(strs[:])
	slices.Sort(want)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("QuickSort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortMatchesStandardLibrary(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	// Sizes straddle the insertion cutoff and the run size.
	sizes := []int{2, 7, 8, 9, 15, 16, 17, 31, 32, 33, 100, 1000}
	for _, tc := range engineCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range sizes {
				data := randomInts(r, n, 50)
				want := slices.Clone(data)
				slices.Sort(want)

				tc.sort(data, Natural[int]())
				if diff := cmp.Diff(want, data); diff != "" {
					t.Fatalf("n=%d: mismatch (-want +got):\n%s", n, diff)
				}
			}
		})
	}
}

func TestSortAlreadySortedAndReverse(t *testing.T) {
	for _, tc := range engineCases {
		t.Run(tc.name, func(t *testing.T) {
			sorted := make([]int, 200)
			for i := range sorted {
				sorted[i] = i
			}

			data := slices.Clone(sorted)
			tc.sort(data, Natural[int]())
			require.Equal(t, sorted, data)

			// Sorting twice is the same as sorting once.
			tc.sort(data, Natural[int]())
			require.Equal(t, sorted, data)

			slices.Reverse(data)
			tc.sort(data, Natural[int]())
			require.Equal(t, sorted, data)
		})
	}
}

func TestSortAllSame(t *testing.T) {
	for _, tc := range engineCases {
		t.Run(tc.name, func(t *testing.T) {
			data := make([]int, 300)
			for i := range data {
				data[i] = 7
			}
			tc.sort(data, Natural[int]())
			require.True(t, Verify(data, Natural[int]()))
		})
	}
}

type keyed struct {
	Key int
	Seq int
}

func TestStableAlgorithmsPreserveOrderOfEqualElements(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	byKey := By(func(k keyed) int { return k.Key })

	stable := map[string]func([]keyed, Comparer[keyed]){
		"Insertion": InsertionSort[keyed],
		"Merge":     MergeSort[keyed],
	}
	for name, sort := range stable {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{10, 16, 17, 64, 500} {
				data := make([]keyed, n)
				for i := range data {
					data[i] = keyed{Key: r.Intn(5), Seq: i}
				}

				sort(data, byKey)
				for i := 1; i < len(data); i++ {
					prev, cur := data[i-1], data[i]
					require.LessOrEqual(t, prev.Key, cur.Key)
					if prev.Key == cur.Key {
						require.Less(t, prev.Seq, cur.Seq, "n=%d: equal keys reordered", n)
					}
				}
			}
		})
	}
}

func TestSortWithCustomComparer(t *testing.T) {
	people := []person{
		{"Grace", "Hopper", 85},
		{"Alan", "Turing", 41},
		{"Ada", "Lovelace", 36},
		{"Edsger", "Dijkstra", 72},
	}
	QuickSort(people, ByDesc(func(p person) int { return p.Age }))

	ages := make([]int, len(people))
	for i, p := range people {
		ages[i] = p.Age
	}
	require.Equal(t, []int{85, 72, 41, 36}, ages)
}

func TestSorterConfig(t *testing.T) {
	s := NewSorter(Natural[int](), Config{InsertionCutoff: 4, RunSize: 2, Algorithm: AlgorithmMerge})
	require.Equal(t, 4, s.Config().InsertionCutoff)
	require.Equal(t, 2, s.Config().RunSize)
	require.Equal(t, ParallelDepth, s.Config().ParallelDepth)

	r := rand.New(rand.NewSource(3))
	data := randomInts(r, 333, 1000)
	want := slices.Clone(data)
	slices.Sort(want)

	s.Sort(data)
	require.Equal(t, want, data)

	// Invalid values fall back to the defaults.
	d := NewSorter(Natural[int](), Config{InsertionCutoff: -1, RunSize: -3})
	require.Equal(t, DefaultConfig(), d.Config())
}

func TestSorterMixedCaseAlgorithmIsStable(t *testing.T) {
	cfg, err := ParseConfig([]byte("algorithm: Merge\n"))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(13))
	data := make([]keyed, 500)
	for i := range data {
		data[i] = keyed{Key: r.Intn(3), Seq: i}
	}

	for _, s := range []*Sorter[keyed]{
		NewSorter(By(func(k keyed) int { return k.Key }), cfg),
		NewSorter(By(func(k keyed) int { return k.Key }), Config{Algorithm: "Merge"}),
	} {
		require.Equal(t, AlgorithmMerge, s.Config().Algorithm)

		got := slices.Clone(data)
		s.Sort(got)
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			require.LessOrEqual(t, prev.Key, cur.Key)
			if prev.Key == cur.Key {
				require.Less(t, prev.Seq, cur.Seq, "equal keys reordered at %d", i)
			}
		}
	}
}

func TestSortWithEveryAlgorithm(t *testing.T) {
	s := NewSorter(Natural[int](), DefaultConfig())
	r := rand.New(rand.NewSource(4))
	for _, alg := range Algorithms {
		data := randomInts(r, 257, 100)
		s.SortWith(alg, data)
		require.True(t, Verify(data, Natural[int]()), "algorithm %s", alg)
	}
}

func TestInsertionRange(t *testing.T) {
	data := []int{9, 8, 3, 1, 2, 0}
	NewSorter(Natural[int](), DefaultConfig()).InsertionRange(data, 2, 5)
	require.Equal(t, []int{9, 8, 1, 2, 3, 0}, data)
}

func TestSortOrdered(t *testing.T) {
	data := []float64{2.5, -1, 0, 3}
	SortOrdered(data)
	require.Equal(t, []float64{-1, 0, 2.5, 3}, data)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm(" Merge ")
	require.NoError(t, err)
	require.Equal(t, AlgorithmMerge, a)

	_, err = ParseAlgorithm("bogo")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestMergeSortPanicsOnInvalidComparison(t *testing.T) {
	broken := Comparer[int](func(a, b int) Comparison { return Comparison(2) })
	data := make([]int, 40)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*InvariantError)
		require.True(t, ok, "recovered %T", r)
		require.Equal(t, "merge", err.Op)
	}()
	MergeSort(data, broken)
}

func TestSortLarge_Random(t *testing.T) {
	n := 1000000
	if testing.Short() {
		n /= 100
	}
	r := rand.New(rand.NewSource(5))
	for _, tc := range engineCases[1:] {
		data := randomInts(r, n, 1<<30)
		if Verify(data, Natural[int]()) {
			t.Fatalf("terrible rand.rand")
		}
		tc.sort(data, Natural[int]())
		if !Verify(data, Natural[int]()) {
			t.Errorf("%s didn't sort %d ints", tc.name, n)
		}
	}
}

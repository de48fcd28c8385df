package extremal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(v float64) float64 { return v }

type rectangle struct {
	name          string
	length, width float64
}

func (r rectangle) area() float64 { return r.length * r.width }

func TestFindMax(t *testing.T) {
	tests := []struct {
		name  string
		items []float64
		want  int // index of the expected element
	}{
		{name: "single element", items: []float64{-5}, want: 0},
		{name: "leftmost tie wins", items: []float64{3, 7, 7, 2}, want: 1},
		{name: "max first", items: []float64{9, 1, 2}, want: 0},
		{name: "max last", items: []float64{1, 2, 9}, want: 2},
		{name: "negative values", items: []float64{-3, -1, -2}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindMax(tt.items, identity)
			require.NoError(t, err)
			assert.Equal(t, tt.items[tt.want], got)
		})
	}
}

func TestFindMin(t *testing.T) {
	tests := []struct {
		name  string
		items []float64
		want  int
	}{
		{name: "single element", items: []float64{42}, want: 0},
		{name: "leftmost tie wins", items: []float64{3, 1, 1, 2}, want: 1},
		{name: "min last", items: []float64{5, 4, 3}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindMin(tt.items, identity)
			require.NoError(t, err)
			assert.Equal(t, tt.items[tt.want], got)
		})
	}
}

func TestTiesKeepFirstElement(t *testing.T) {
	rects := []rectangle{
		{name: "a", length: 2, width: 3},
		{name: "b", length: 3, width: 2},
		{name: "c", length: 1, width: 1},
		{name: "d", length: 1, width: 1},
	}

	largest, err := FindMax(rects, rectangle.area)
	require.NoError(t, err)
	assert.Equal(t, "a", largest.name)

	smallest, err := FindMin(rects, rectangle.area)
	require.NoError(t, err)
	assert.Equal(t, "c", smallest.name)
}

func TestPathLengths(t *testing.T) {
	paths := []string{"/tmp/a/bb.txt", "/tmp/a.txt", "/tmp/abc/d.txt", "/tmp/b.txt"}
	byLength := func(p string) float64 { return float64(len(p)) }

	shortest, err := FindMin(paths, byLength)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.txt", shortest)

	longest, err := FindMax(paths, byLength)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/abc/d.txt", longest)
}

func TestEmptySequence(t *testing.T) {
	calls := 0
	projector := func(v float64) float64 {
		calls++
		return v
	}

	_, err := FindMax(nil, projector)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FindMin([]float64{}, projector)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FindMaxSeq[float64](nil, projector)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Zero(t, calls)
}

func TestNilProjector(t *testing.T) {
	_, err := FindMax([]int{1}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSeqSinglePass(t *testing.T) {
	pulls := 0
	seq := func(yield func(float64) bool) {
		for _, v := range []float64{4, 8, 8, 1} {
			pulls++
			if !yield(v) {
				return
			}
		}
	}

	got, err := FindMaxSeq(seq, identity)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)
	assert.Equal(t, 4, pulls)

	got, err = FindMinSeq(slices.Values([]float64{2, 0.5, 3}), identity)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/colinrgodsey/resforce/lib/force"
	"github.com/colinrgodsey/resforce/lib/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type run struct {
	points []force.Point
	origin force.Point
	err    error
	out    string
}

func collect(t *testing.T, in string, def force.Point) run {
	t.Helper()

	var out bytes.Buffer
	c := io.NewConn(4, 4)
	done := make(chan error)
	go func() {
		done <- io.LinePipe(strings.NewReader(in), &out, c)
	}()

	var r run
	s := NewSession(c, def, nil)
	r.points, r.origin, r.err = s.Collect()
	if r.err == nil {
		s.Report(force.Resultant(r.points, r.origin))
	}
	c.Close()
	require.NoError(t, <-done)

	r.out = out.String()
	return r
}

func TestCollect(t *testing.T) {
	r := collect(t, "2\n1 0\n0 1\n\n", force.Point{})
	require.NoError(t, r.err)
	assert.Equal(t, []force.Point{{1, 0}, {0, 1}}, r.points)
	assert.Equal(t, force.Point{}, r.origin)

	exp := "Restaurant Force Calculator\n" +
		"--------------------------\n" +
		"Enter the number of points (N): " +
		"Enter coordinates for point 1 (x y): " +
		"Enter coordinates for point 2 (x y): " +
		"Enter restaurant location (x y, default is 0 0): " +
		"\nRestaurant Force Resultant:\n" +
		"X-component: 1.0000\n" +
		"Y-component: 1.0000\n" +
		"Magnitude: 1.4142\n" +
		"Angle with positive x-axis: 45.00°\n"
	assert.Equal(t, exp, r.out)
}

func TestCollectReprompts(t *testing.T) {
	in := strings.Join([]string{
		"abc", "0", "1",
		"1", "x y", "1 2 3", "3 4",
		"1 2 3", "1 q", "5 5",
	}, "\n")
	r := collect(t, in, force.Point{})
	require.NoError(t, r.err)
	assert.Equal(t, []force.Point{{3, 4}}, r.points)
	assert.Equal(t, force.Point{5, 5}, r.origin)

	assert.Equal(t, 3, strings.Count(r.out, "Enter the number of points (N): "))
	assert.Equal(t, 1, strings.Count(r.out, msgInteger))
	assert.Equal(t, 1, strings.Count(r.out, msgPositive))
	assert.Equal(t, 4, strings.Count(r.out, "Enter coordinates for point 1 (x y): "))
	assert.Equal(t, 1, strings.Count(r.out, msgExactlyTwo))
	assert.Equal(t, 4, strings.Count(r.out, msgTwoNums))
	assert.Contains(t, r.out, "Angle with positive x-axis: 206.57°")
}

func TestCollectDefaultOrigin(t *testing.T) {
	r := collect(t, "1\n2 1\n   \n", force.Point{1.5, 1})
	require.NoError(t, r.err)
	assert.Equal(t, force.Point{1.5, 1}, r.origin)
	assert.Contains(t, r.out, "(x y, default is 1.5 1): ")
	assert.Contains(t, r.out, "X-component: 1.0000\n")
}

func TestCollectClosed(t *testing.T) {
	r := collect(t, "2\n1 1\n", force.Point{})
	assert.ErrorIs(t, r.err, ErrClosed)
	assert.NotContains(t, r.out, "Resultant")

	r = collect(t, "", force.Point{})
	assert.ErrorIs(t, r.err, ErrClosed)
}

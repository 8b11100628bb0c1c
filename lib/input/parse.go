package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/colinrgodsey/resforce/lib/force"
)

var (
	// ErrNotInteger is returned when a count is not an integer.
	ErrNotInteger = errors.New("input: not an integer")

	// ErrNotPositive is returned when a count is zero or negative.
	ErrNotPositive = errors.New("input: not a positive integer")

	// ErrNotNumber is returned when a coordinate is not a real number.
	ErrNotNumber = errors.New("input: not a number")

	// ErrWrongArity is returned when a pair does not hold exactly two numbers.
	ErrWrongArity = errors.New("input: need exactly two numbers")
)

// ParseCount parses a positive point count.
func ParseCount(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	switch {
	case err != nil:
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, line)
	case n <= 0:
		return 0, fmt.Errorf("%w: %v", ErrNotPositive, n)
	}
	return n, nil
}

// ParsePair parses "x y" (any whitespace) into a point. Every field
// must be a number before the field count is checked.
func ParsePair(line string) (p force.Point, err error) {
	spl := strings.Fields(line)

	vs := make([]float64, 0, len(spl))
	for _, s := range spl {
		var v float64
		if v, err = strconv.ParseFloat(s, 64); err != nil {
			err = fmt.Errorf("%w: %q", ErrNotNumber, s)
			return
		}
		vs = append(vs, v)
	}
	if len(vs) != 2 {
		err = fmt.Errorf("%w, got %v", ErrWrongArity, len(vs))
		return
	}

	p = force.Point{vs[0], vs[1]}
	return
}

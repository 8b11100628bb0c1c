package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/colinrgodsey/resforce/lib/force"
	"github.com/colinrgodsey/resforce/lib/io"
	"go.uber.org/zap"
)

const (
	title = "Restaurant Force Calculator"

	msgPositive  = "Please enter a positive integer."
	msgInteger   = "Invalid input. Please enter an integer."
	msgTwoNums   = "Invalid input. Please enter two numbers separated by space."
	msgExactlyTwo = "Please enter exactly two numbers."
)

// ErrClosed is returned when input ends before collection is done.
var ErrClosed = errors.New("input: closed before all values were entered")

// Session collects points and an origin over a Conn, re-prompting
// until each entry is valid.
type Session struct {
	conn   io.Conn
	origin force.Point
	log    *zap.Logger
}

// NewSession creates a Session on c. origin is used when the origin
// prompt is left blank. log may be nil.
func NewSession(c io.Conn, origin force.Point, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{conn: c, origin: origin, log: log}
}

// Collect prompts for the point count, each point, then the origin.
func (s *Session) Collect() (points []force.Point, origin force.Point, err error) {
	s.println(title)
	s.println(strings.Repeat("-", len(title)-1))

	n, err := s.count()
	if err != nil {
		return
	}

	points = make([]force.Point, 0, n)
	for i := 0; i < n; i++ {
		var p force.Point
		if p, err = s.point(i); err != nil {
			return
		}
		points = append(points, p)
	}

	origin, err = s.restaurant()
	return
}

// Report writes the result block.
func (s *Session) Report(res force.Result) {
	s.println("\n" + res.String())
}

func (s *Session) count() (int, error) {
	for {
		line, err := s.ask("Enter the number of points (N): ")
		if err != nil {
			return 0, err
		}
		n, err := ParseCount(line)
		switch {
		case err == nil:
			s.log.Debug("point count", zap.Int("n", n))
			return n, nil
		case errors.Is(err, ErrNotPositive):
			s.reject(err, msgPositive)
		default:
			s.reject(err, msgInteger)
		}
	}
}

func (s *Session) point(i int) (force.Point, error) {
	for {
		line, err := s.ask(fmt.Sprintf("Enter coordinates for point %v (x y): ", i+1))
		if err != nil {
			return force.Point{}, err
		}
		p, err := ParsePair(line)
		if err != nil {
			s.reject(err, msgTwoNums)
			continue
		}
		s.log.Debug("point", zap.Int("index", i), zap.Float64("x", p[0]), zap.Float64("y", p[1]))
		return p, nil
	}
}

func (s *Session) restaurant() (force.Point, error) {
	prompt := fmt.Sprintf("Enter restaurant location (x y, default is %v %v): ",
		fmtFloat(s.origin[0]), fmtFloat(s.origin[1]))
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return force.Point{}, err
		}
		if line == "" {
			s.log.Debug("default origin", zap.Float64("x", s.origin[0]), zap.Float64("y", s.origin[1]))
			return s.origin, nil
		}
		p, err := ParsePair(line)
		switch {
		case err == nil:
			return p, nil
		case errors.Is(err, ErrWrongArity):
			s.reject(err, msgExactlyTwo)
		default:
			s.reject(err, msgTwoNums)
		}
	}
}

func (s *Session) ask(prompt string) (string, error) {
	s.conn.Write(prompt)
	line, ok := <-s.conn.Rc()
	if !ok {
		return "", ErrClosed
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) reject(err error, msg string) {
	s.log.Warn("rejected input", zap.Error(err))
	s.println(msg)
}

func (s *Session) println(msg string) {
	s.conn.Write(msg + "\n")
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

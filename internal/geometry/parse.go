package geometry

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line in a coordinate list.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePath reads one "x,y" pair per line. Blank lines are skipped and
// whitespace around either number is ignored.
func ParsePath(r io.Reader) ([]Coordinate, error) {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long single-line inputs
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var points []Coordinate
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		c, err := parseCoordinate(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		points = append(points, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read coordinates: %w", err)
	}
	return points, nil
}

// ParsePathString is ParsePath over an in-memory string.
func ParsePathString(s string) ([]Coordinate, error) {
	return ParsePath(strings.NewReader(s))
}

func parseCoordinate(text string) (Coordinate, error) {
	xs, ys, ok := strings.Cut(text, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("expected \"x,y\"")
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid y: %w", err)
	}
	return Coordinate{X: x, Y: y}, nil
}

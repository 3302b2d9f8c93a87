package results

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"iter"
	"k8s.io/klog/v2"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const (
	// DepthMarker identifies a line that starts the section of a new depth, e.g. "Profondeur : 3".
	DepthMarker = "Profondeur"

	// PlayerMarker identifies a line with the wins of one player, e.g. "Joueur : robot1 : 7".
	PlayerMarker = "Joueur"

	// maxLineLength accepted by Scan.
	maxLineLength = 1 << 20
)

var (
	// ErrMissingDepth is returned when a depth line has no number in it.
	ErrMissingDepth = errors.New("depth line without a depth number")

	// ErrMalformedScore is returned when a player line doesn't follow the ":<name>:<wins>" format.
	ErrMalformedScore = errors.New("player line not in the format \":<name>:<wins>\"")

	// ErrUndefinedDepth is returned when a player line comes before any depth line.
	ErrUndefinedDepth = errors.New("player line before any depth line")

	depthParser = regexp.MustCompile(`[0-9]+`)
	scoreParser = regexp.MustCompile(`:([^:]+)\s*:\s*([0-9]+)`)
)

// ParseError reports the line where the extraction failed.
//
// Use errors.Is with ErrMissingDepth, ErrMalformedScore or ErrUndefinedDepth to find out the kind
// of failure.
type ParseError struct {
	// Line number, starting from 1.
	Line int

	// Text of the offending line.
	Text string

	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap returns the kind of the parsing error.
func (e *ParseError) Unwrap() error { return e.Err }

// extractor accumulates the results while lines are consumed in order.
type extractor struct {
	results *ResultSet

	// current holds the wins of the last depth seen. It is nil until the first depth line.
	current map[string]WinCount
	depth   Depth
	lineNum int
}

func newExtractor() *extractor {
	return &extractor{results: newResultSet()}
}

func (e *extractor) fail(line string, err error) error {
	return errors.WithStack(&ParseError{Line: e.lineNum, Text: line, Err: err})
}

// consume the next line of the log.
func (e *extractor) consume(line string) error {
	e.lineNum++
	switch {
	case strings.Contains(line, DepthMarker):
		digits := depthParser.FindString(line)
		if digits == "" {
			return e.fail(line, ErrMissingDepth)
		}
		depth, err := strconv.Atoi(digits)
		if err != nil {
			return e.fail(line, errors.Wrapf(err, "failed to parse depth %q", digits))
		}
		e.depth = Depth(depth)
		e.current = make(map[string]WinCount)
		e.results.byDepth[e.depth] = e.current
		klog.V(2).Infof("line %d: depth %d", e.lineNum, e.depth)

	case strings.Contains(line, PlayerMarker):
		matches := scoreParser.FindStringSubmatch(line)
		if matches == nil {
			return e.fail(line, ErrMalformedScore)
		}
		if e.current == nil {
			return e.fail(line, ErrUndefinedDepth)
		}
		wins, err := strconv.Atoi(matches[2])
		if err != nil {
			return e.fail(line, errors.Wrapf(err, "failed to parse number of wins %q", matches[2]))
		}
		player := strings.TrimSpace(matches[1])
		e.current[player] = WinCount(wins)
		klog.V(2).Infof("line %d: depth %d, player %q won %d", e.lineNum, e.depth, player, wins)
	}
	return nil
}

// ExtractSeq builds the ResultSet from the sequence of lines of an experiment log.
//
// Lines with "Profondeur" start a new depth section, and lines with "Joueur" record the wins
// of a player for the current depth. Everything else is ignored. If a depth shows up twice,
// the later section replaces the earlier one; if a player shows up twice in a section, the
// later count is kept.
//
// It fails on the first malformed line, with a *ParseError.
func ExtractSeq(lines iter.Seq[string]) (*ResultSet, error) {
	e := newExtractor()
	for line := range lines {
		if err := e.consume(line); err != nil {
			return nil, err
		}
	}
	klog.V(1).Infof("extracted results for %d depths from %d lines", e.results.Len(), e.lineNum)
	return e.results, nil
}

// Extract is like ExtractSeq, for a slice of lines.
func Extract(lines []string) (*ResultSet, error) {
	return ExtractSeq(slices.Values(lines))
}

// Scan reads the experiment log from r and extracts its ResultSet.
func Scan(r io.Reader) (*ResultSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	e := newExtractor()
	for scanner.Scan() {
		if err := e.consume(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed reading line %d", e.lineNum+1)
	}
	klog.V(1).Infof("extracted results for %d depths from %d lines", e.results.Len(), e.lineNum)
	return e.results, nil
}

// ReadFile opens the experiment log in filePath and extracts its ResultSet.
func ReadFile(filePath string) (*ResultSet, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open results file")
	}
	defer func() { _ = f.Close() }()
	rs, err := Scan(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "in %q", filePath)
	}
	return rs, nil
}

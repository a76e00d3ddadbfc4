package records

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MaxLineLen bounds a single physical line, not counting its terminator. Real rows are about
// 60 bytes.
const MaxLineLen = 64 * 1024

var ErrLineTooLong = errors.New("line exceeds maximum length")

// LineError ties a decode failure to the 1-based physical line it happened on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Scanner reads the data rows of a log, skipping its header line.
//
//	s := records.NewScanner(r)
//	for s.Scan() {
//		rec, err := s.Record()
//		...
//	}
//	if err := s.Err(); err != nil { ... }
type Scanner struct {
	sc     *bufio.Scanner
	lineNo int
	line   []byte
	err    error
}

func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	// room for a MaxLineLen row plus "\r\n"
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLen+2)
	return &Scanner{sc: sc}
}

// Scan advances to the next data row. The header is consumed by the first call.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.lineNo == 0 {
		if !s.sc.Scan() {
			return false
		}
		s.lineNo++
		if len(bytes.TrimSuffix(s.sc.Bytes(), []byte{'\r'})) > MaxLineLen {
			s.err = s.Wrap(ErrLineTooLong)
			return false
		}
	}
	if !s.sc.Scan() {
		return false
	}
	s.lineNo++
	s.line = bytes.TrimSuffix(s.sc.Bytes(), []byte{'\r'})
	if len(s.line) > MaxLineLen {
		s.err = s.Wrap(ErrLineTooLong)
		s.line = nil
		return false
	}
	return true
}

// Line is the current row without its line terminator. It is overwritten by the next Scan.
func (s *Scanner) Line() []byte {
	return s.line
}

func (s *Scanner) LineNo() int {
	return s.lineNo
}

// Record decodes the current row. Errors are *LineError.
func (s *Scanner) Record() (Record, error) {
	rec, err := View(s.line)
	if err != nil {
		return Record{}, s.Wrap(err)
	}
	return rec, nil
}

// Wrap attaches the current line number to err.
func (s *Scanner) Wrap(err error) error {
	return &LineError{Line: s.lineNo, Err: err}
}

// Err reports the first read failure. A row longer than MaxLineLen is a *LineError wrapping
// ErrLineTooLong.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	err := s.sc.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return &LineError{Line: s.lineNo + 1, Err: ErrLineTooLong}
	default:
		return fmt.Errorf("read line %d: %w", s.lineNo+1, err)
	}
}

// ForEachLine calls fn for every line of buf, a run of whole rows whose first row is physical
// line firstLine. A final line without terminator is included; empty trailing input is not.
// A line longer than MaxLineLen stops the walk with a *LineError wrapping ErrLineTooLong.
func ForEachLine(buf []byte, firstLine int, fn func(lineNo int, line []byte) error) error {
	lineNo := firstLine
	for len(buf) > 0 {
		var line []byte
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			line, buf = buf, nil
		}
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if len(line) > MaxLineLen {
			return &LineError{Line: lineNo, Err: ErrLineTooLong}
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
		lineNo++
	}
	return nil
}

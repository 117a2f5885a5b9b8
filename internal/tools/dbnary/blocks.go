package dbnary

import (
	"bufio"
	"io"
	"strings"
)

// BlockScanner splits Turtle text into record blocks: runs of non-blank
// lines closed by a line whose trimmed content ends with a period.
//
// Lines are kept as read, minus the trailing newline, and joined with "\n".
// Blank lines never start or end a block. Text after the last terminated
// block is discarded.
type BlockScanner struct {
	r     *bufio.Reader
	lines []string
	block string
	err   error
}

// NewBlockScanner returns a BlockScanner reading from r. Lines may be of any
// length.
func NewBlockScanner(r io.Reader) *BlockScanner {
	return &BlockScanner{r: bufio.NewReaderSize(r, 64*1024)}
}

// Scan advances to the next block. It returns false at end of input or on
// a read error; Err reports the latter.
func (s *BlockScanner) Scan() bool {
	for s.err == nil {
		line, err := s.r.ReadString('\n')
		if err != nil && err != io.EOF {
			s.err = err
			return false
		}
		if s.push(line) {
			return true
		}
		if err == io.EOF {
			return false
		}
	}
	return false
}

func (s *BlockScanner) push(line string) bool {
	line = strings.TrimSuffix(line, "\n")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	s.lines = append(s.lines, line)
	if !strings.HasSuffix(trimmed, ".") {
		return false
	}
	s.block = strings.Join(s.lines, "\n")
	s.lines = s.lines[:0]
	return true
}

// Block returns the most recent block produced by Scan.
func (s *BlockScanner) Block() string {
	return s.block
}

// Err returns the first non-EOF read error.
func (s *BlockScanner) Err() error {
	return s.err
}

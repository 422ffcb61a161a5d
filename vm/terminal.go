package vm

import (
	"bufio"
	"io"

	"github.com/peterh/liner"
)

// LineSource is the terminal's character-input collaborator: a
// line-granularity read from standard input, newline included (matching
// spec's "refills by reading one line from standard input, newline
// included"). The VM never reads bytes directly off stdin — it always goes
// through this seam so tests can script input and the CLI can back it with
// an interactive line editor.
type LineSource interface {
	ReadLine() (string, error)
}

// scannerSource is a non-interactive LineSource for piped/file input and
// for tests — grounded on the teacher's bufio.NewReader(os.Stdin) usage,
// generalized to any io.Reader.
type scannerSource struct {
	r *bufio.Reader
}

// NewScannerSource wraps r as a LineSource that preserves the trailing
// newline of each line, as the architecture's input-buffer protocol
// requires.
func NewScannerSource(r io.Reader) LineSource {
	return &scannerSource{r: bufio.NewReader(r)}
}

func (s *scannerSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if line != "" {
		// Got a (possibly final, unterminated) line; surface it even if
		// ReadString also returned io.EOF, matching the Rust prototype's
		// behavior of delivering whatever read_line() managed to fill.
		return line, nil
	}
	return "", err
}

// linerSource backs interactive terminal sessions with github.com/peterh/liner
// (as used by rcornwell-S370's command reader), giving the debugger-command
// interface history and line editing for free.
type linerSource struct {
	state *liner.State
}

// NewLinerSource starts a liner-backed LineSource for interactive stdin.
// Callers must call Close when done to restore terminal state.
func NewLinerSource() *linerSource {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return &linerSource{state: l}
}

func (s *linerSource) ReadLine() (string, error) {
	line, err := s.state.Prompt("")
	if err != nil {
		return "", err
	}
	s.state.AppendHistory(line)
	// liner strips the terminator; the protocol expects it back.
	return line + "\n", nil
}

func (s *linerSource) Close() error {
	return s.state.Close()
}

// OutputSink is the terminal's character-output collaborator.
type OutputSink interface {
	io.Writer
}

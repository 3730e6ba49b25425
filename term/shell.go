// Package term runs the local shell behind the terminal pane: a pty-backed
// process, a capture buffer for its output, and the selection state the
// copy commands read.
package term

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"portside/log"

	"github.com/charmbracelet/x/ansi"
	"github.com/creack/pty"
)

// captureLimit bounds the output buffer so long-lived shells don't grow
// without limit. Oldest bytes are dropped.
const captureLimit = 256 * 1024

// Shell is a local shell attached to a pty. All methods are safe for
// concurrent use.
type Shell struct {
	program string

	mu        sync.Mutex
	cmd       *exec.Cmd
	ptm       *os.File
	capture   []byte
	selection string
	rows      uint16
	cols      uint16
	onOutput  func([]byte)
}

// NewShell prepares a shell for the given program; empty means $SHELL, with
// /bin/sh as the last resort. The shell is not started yet.
func NewShell(program string) *Shell {
	if program == "" {
		program = os.Getenv("SHELL")
	}
	if program == "" {
		program = "/bin/sh"
	}
	return &Shell{program: program, rows: 24, cols: 80}
}

// OnOutput registers a callback invoked with every chunk the shell writes.
// The app uses it to trigger redraws.
func (s *Shell) OnOutput(fn func([]byte)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onOutput = fn
}

// Start launches the shell process on a fresh pty and begins capturing its
// output. Starting an already-running shell is an error.
func (s *Shell) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd != nil {
		return fmt.Errorf("shell already running")
	}

	cmd := exec.Command(s.program)
	ptm, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: s.rows, Cols: s.cols})
	if err != nil {
		return fmt.Errorf("failed to start shell %s: %w", s.program, err)
	}
	s.cmd = cmd
	s.ptm = ptm

	go s.readLoop(ptm)
	return nil
}

func (s *Shell) readLoop(ptm *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := ptm.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.capture = append(s.capture, buf[:n]...)
			if len(s.capture) > captureLimit {
				s.capture = s.capture[len(s.capture)-captureLimit:]
			}
			fn := s.onOutput
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			s.mu.Unlock()
			if fn != nil {
				fn(chunk)
			}
		}
		if err != nil {
			return
		}
	}
}

// Stop terminates the shell process and closes its pty. Stopping a stopped
// shell is a no-op.
func (s *Shell) Stop() error {
	s.mu.Lock()
	cmd, ptm := s.cmd, s.ptm
	s.cmd, s.ptm = nil, nil
	s.mu.Unlock()

	if ptm != nil {
		_ = ptm.Close()
	}
	if cmd != nil && cmd.Process != nil {
		if err := cmd.Process.Kill(); err != nil {
			return fmt.Errorf("failed to kill shell: %w", err)
		}
		_ = cmd.Wait()
	}
	return nil
}

// RestartShell stops the running shell, clears the capture, and starts a
// fresh one.
func (s *Shell) RestartShell() error {
	if err := s.Stop(); err != nil {
		log.WarningLog.Printf("failed to stop shell for restart: %v", err)
	}
	s.mu.Lock()
	s.capture = nil
	s.selection = ""
	s.mu.Unlock()
	return s.Start()
}

// Resize propagates the pane size to the pty.
func (s *Shell) Resize(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols, s.rows = uint16(cols), uint16(rows)
	if s.ptm == nil {
		return nil
	}
	return pty.Setsize(s.ptm, &pty.Winsize{Rows: s.rows, Cols: s.cols})
}

// Paste writes text to the shell's input.
func (s *Shell) Paste(text string) error {
	s.mu.Lock()
	ptm := s.ptm
	s.mu.Unlock()
	if ptm == nil {
		return fmt.Errorf("shell not running")
	}
	if _, err := ptm.WriteString(text); err != nil {
		return fmt.Errorf("failed to paste: %w", err)
	}
	return nil
}

// SetSelection records the text the user has selected in the pane. The app
// calls this from its mouse handling; an empty string clears the selection.
func (s *Shell) SetSelection(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = text
}

// SelectedText returns the current selection with ANSI escapes stripped, so
// what lands on the clipboard is plain text.
func (s *Shell) SelectedText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ansi.Strip(s.selection)
}

// SelectAll selects the entire captured output.
func (s *Shell) SelectAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = string(s.capture)
	return nil
}

// Clear drops the captured output and selection and asks the shell to
// redraw a clean screen.
func (s *Shell) Clear() error {
	s.mu.Lock()
	s.capture = nil
	s.selection = ""
	ptm := s.ptm
	s.mu.Unlock()

	if ptm != nil {
		if _, err := ptm.WriteString("clear\n"); err != nil {
			return fmt.Errorf("failed to clear: %w", err)
		}
	}
	return nil
}

// Output returns the captured output as plain text lines, ANSI stripped,
// for rendering in the pane.
func (s *Shell) Output() []string {
	s.mu.Lock()
	raw := string(s.capture)
	s.mu.Unlock()
	if raw == "" {
		return nil
	}
	clean := ansi.Strip(strings.ReplaceAll(raw, "\r\n", "\n"))
	return strings.Split(clean, "\n")
}

// Running reports whether the shell process is alive.
func (s *Shell) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}

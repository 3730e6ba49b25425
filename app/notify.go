package app

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusMsg updates the status line.
type statusMsg struct {
	text  string
	isErr bool
}

// confirmRequestMsg asks the model to show a modal choice.
type confirmRequestMsg struct {
	title   string
	message string
	choices []string
	resp    chan int
}

// statusNotifier satisfies domains.Notifier by sending status-line updates
// into the program. Safe to call from command goroutines.
type statusNotifier struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (n *statusNotifier) bind(send func(tea.Msg)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.send = send
}

func (n *statusNotifier) post(msg tea.Msg) {
	n.mu.Lock()
	send := n.send
	n.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (n *statusNotifier) Info(msg string)  { n.post(statusMsg{text: msg}) }
func (n *statusNotifier) Error(msg string) { n.post(statusMsg{text: msg, isErr: true}) }

// modalConfirmer satisfies domains.Confirmer by raising a modal in the UI
// and blocking until the user picks a choice. It must only be called from a
// command goroutine (dispatch runs inside a tea.Cmd), never from Update.
type modalConfirmer struct {
	notifier *statusNotifier
	timeout  time.Duration
}

func newModalConfirmer(n *statusNotifier) *modalConfirmer {
	return &modalConfirmer{notifier: n, timeout: 2 * time.Minute}
}

// Confirm returns the chosen index. A dismissed or timed-out modal returns
// an error so destructive commands bail out.
func (c *modalConfirmer) Confirm(title, message string, choices []string) (int, error) {
	resp := make(chan int, 1)
	c.notifier.post(confirmRequestMsg{title: title, message: message, choices: choices, resp: resp})

	select {
	case choice, ok := <-resp:
		if !ok || choice < 0 {
			return 0, fmt.Errorf("confirmation dismissed")
		}
		return choice, nil
	case <-time.After(c.timeout):
		return 0, fmt.Errorf("confirmation timed out")
	}
}

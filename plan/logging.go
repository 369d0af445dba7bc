package plan

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	lineWidth  = 80
	bodyIndent = 4
)

// Logger receives progress entries while Run works.
type Logger interface {
	Iteration(IterationLog)
	Promote(PromoteLog)
	Batch(BatchLog)
}

// IterationLog is emitted at the start of each iteration.
type IterationLog struct {
	Iteration int
	Unlocked  int
	Locked    int
}

// PromoteLog lists the targets promoted by one promotion pass.
type PromoteLog struct {
	Iteration int
	Pass      int
	Items     []string
}

// BatchLog describes one batch selection.
type BatchLog struct {
	Iteration  int
	Candidates []Ranked
	Searched   int
	Chosen     []string

	// Count is how many targets the batch completes, or for a fallback
	// pick how many remaining targets need it.
	Count    int
	Fallback bool
}

type noopLogger struct{}

func (noopLogger) Iteration(IterationLog) {}
func (noopLogger) Promote(PromoteLog)     {}
func (noopLogger) Batch(BatchLog)         {}

// ConsoleLogger writes a readable trace of a run.
type ConsoleLogger struct {
	writer      io.Writer
	headerStyle lipgloss.Style
	itemStyle   lipgloss.Style
}

// NewConsoleLogger builds a styled logger for interactive output.
func NewConsoleLogger(writer io.Writer) *ConsoleLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &ConsoleLogger{
		writer:      writer,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		itemStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
	}
}

// Iteration logs the start of an iteration.
func (logger *ConsoleLogger) Iteration(entry IterationLog) {
	if logger == nil {
		return
	}
	header := fmt.Sprintf("Iteration %d: %d unlocked, %d locked", entry.Iteration, entry.Unlocked, entry.Locked)
	fmt.Fprintln(logger.writer, logger.headerStyle.Render(header))
}

// Promote logs a promotion pass.
func (logger *ConsoleLogger) Promote(entry PromoteLog) {
	if logger == nil {
		return
	}
	label := fmt.Sprintf("promoted %d (pass %d):", len(entry.Items), entry.Pass)
	logger.writeBody(label, strings.Join(entry.Items, " "))
}

// Batch logs a batch selection.
func (logger *ConsoleLogger) Batch(entry BatchLog) {
	if logger == nil {
		return
	}
	candidates := make([]string, len(entry.Candidates))
	for i, candidate := range entry.Candidates {
		candidates[i] = fmt.Sprintf("%s×%d", candidate.Item, candidate.Count)
	}
	logger.writeBody(
		fmt.Sprintf("candidates (%d subsets searched):", entry.Searched),
		strings.Join(candidates, " "),
	)

	chosen := logger.itemStyle.Render(strings.Join(entry.Chosen, " "))
	if entry.Fallback {
		logger.writeBody("fallback:", fmt.Sprintf("%s, used in %d remaining items", chosen, entry.Count))
		return
	}
	logger.writeBody("learn:", fmt.Sprintf("%s, will unlock %d now", chosen, entry.Count))
}

func (logger *ConsoleLogger) writeBody(label, body string) {
	prefix := strings.Repeat(" ", bodyIndent)
	fmt.Fprintln(logger.writer, prefix+label)

	body = strings.TrimSpace(body)
	if body == "" {
		body = "-"
	}
	wrapped := wordwrap.String(body, lineWidth-2*bodyIndent)
	for _, line := range strings.Split(wrapped, "\n") {
		fmt.Fprintln(logger.writer, prefix+prefix+line)
	}
}

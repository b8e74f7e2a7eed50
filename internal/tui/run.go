package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/searchclient"
)

// Run blocks until the user quits and returns the chosen city, if any.
func Run(ctx context.Context, client Searcher, debounce time.Duration, in io.Reader, out io.Writer) (*searchclient.Suggestion, error) {
	m := New(client, debounce)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return m.Chosen(), nil
}

package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/ddmsim/internal/config"
	"github.com/san-kum/ddmsim/internal/ddm"
	"github.com/san-kum/ddmsim/internal/session"
	"github.com/san-kum/ddmsim/internal/stats"
)

const (
	pathWidth  = 60
	pathHeight = 12
	histRows   = 5
	batchSize  = 10
)

// App is the Bubble Tea model of an interactive session. The session is
// mutated only from Update, so renders never observe a partial append.
type App struct {
	sess          *session.Session
	names         []string
	cursor        int
	theme         int
	status        string
	width, height int
}

func NewApp(sess *session.Session, theme string) App {
	return App{
		sess:   sess,
		names:  ddm.ParamNames(),
		theme:  themeIndex(theme),
		width:  80,
		height: 40,
	}
}

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "r", " ":
		m.run(1)
	case "R":
		m.run(batchSize)
	case "c":
		m.sess.Reset()
		m.status = "cleared"
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
	}
	return m, nil
}

func (m *App) run(n int) {
	trials, err := m.sess.RunN(context.Background(), n)
	if err != nil {
		m.status = err.Error()
		return
	}
	last := trials[len(trials)-1]
	m.status = fmt.Sprintf("%s in %.2fs", last.Outcome, last.DecisionTime)
	if last.Truncated {
		m.status += " (step cap)"
	}
}

func (m *App) adjust(steps int) {
	name := m.names[m.cursor]
	p, err := config.Adjust(m.sess.Params(), name, steps)
	if err == nil {
		err = m.sess.SetParams(p)
	}
	if err != nil {
		logrus.Warnf("adjust %s: %v", name, err)
		m.status = err.Error()
	}
}

func (m App) View() string {
	th := Themes[m.theme]
	title := lipgloss.NewStyle().Foreground(th.Title).Bold(true)
	muted := th.style(th.Muted)

	var b strings.Builder
	b.WriteString("\n  " + title.Render("DRIFT DIFFUSION") + "  " + muted.Render(th.Name) + "\n\n")
	b.WriteString(m.viewParams(th) + "\n")

	trials := m.sess.Trials()
	span := PathSpan(trials)
	b.WriteString(indent(RenderPaths(m.sess.Last(VisibleTrials), m.sess.Params().A, span, pathWidth, pathHeight, th)) + "\n\n")
	b.WriteString(indent(RenderHistogram(m.sess.Distribution(), histRows, th)) + "\n\n")
	b.WriteString("  " + m.viewSummary(trials, th) + "\n")
	if m.status != "" {
		b.WriteString("  " + th.style(th.Accent).Render(m.status) + "\n")
	}
	b.WriteString("\n  " + muted.Render("r run  R run 10  c clear  j/k select  h/l adjust  t theme  q quit") + "\n")
	return b.String()
}

func (m App) viewParams(th Theme) string {
	p := m.sess.Params()
	var b strings.Builder
	for i, name := range m.names {
		v, _ := p.Get(name)
		line := fmt.Sprintf("%-3s %6.2f", name, v)
		if name == "dt" {
			line = fmt.Sprintf("%-3s %6.3f", name, v)
		}
		if i == m.cursor {
			b.WriteString("  " + th.style(th.Accent).Bold(true).Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + th.style(th.Muted).Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (m App) viewSummary(trials []ddm.Trial, th Theme) string {
	s := stats.Summarize(trials)
	if s.N == 0 {
		return th.style(th.Muted).Render("no trials")
	}
	return fmt.Sprintf("%s  %s  %s",
		th.style(th.Text).Render(fmt.Sprintf("n=%d", s.N)),
		th.style(th.Upper).Render(fmt.Sprintf("upper %d (%.0f%%) mean %.3fs", s.Upper.Count, 100*s.PUpper, s.Upper.MeanRT)),
		th.style(th.Lower).Render(fmt.Sprintf("lower %d mean %.3fs", s.Lower.Count, s.Lower.MeanRT)),
	)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func Run(sess *session.Session, theme string) error {
	_, err := tea.NewProgram(NewApp(sess, theme), tea.WithAltScreen()).Run()
	return err
}

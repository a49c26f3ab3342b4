package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"javalex/internal/driver"
)

// maxRows ограничивает список файлов: в больших деревьях видны только
// последние изменившиеся, остальное сворачивается в строку "… N more".
const maxRows = 10

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyles = map[string]lipgloss.Style{
		"done":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"loading": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"loaded":  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"lexing":  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"writing": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
	queuedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type fileItem struct {
	path     string
	status   string
	progress float64
	tokens   int
	cached   bool
	elapsed  time.Duration
}

type progressModel struct {
	title  string
	events <-chan driver.Event
	spin   spinner.Model
	bar    progress.Model

	items []fileItem
	index map[string]int
	// recent: индексы items, последний изменившийся первым.
	recent []int

	stageLabel string
	width      int
	done       bool
}

type (
	eventMsg driver.Event
	doneMsg  struct{}
)

// NewProgressModel returns a Bubble Tea model showing how far a directory
// tokenize run has got. It quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	m := &progressModel{
		title:  title,
		events: events,
		spin:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		items:  make([]fileItem, len(files)),
		index:  make(map[string]int, len(files)),
		width:  80,
	}
	m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	for i, path := range files {
		m.items[i] = fileItem{path: path, status: "queued"}
		m.index[path] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.listenForEvent())
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case eventMsg:
		cmd = tea.Batch(m.applyEvent(driver.Event(msg)), m.listenForEvent())
	case doneMsg:
		m.done = true
		cmd = tea.Quit
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case spinner.TickMsg:
		if !m.done {
			m.spin, cmd = m.spin.Update(msg)
		}
	case progress.FrameMsg:
		var next tea.Model
		next, cmd = m.bar.Update(msg)
		m.bar = next.(progress.Model)
	}
	return m, cmd
}

// applyEvent переносит событие драйвера на строку файла. События без файла
// меняют только подпись этапа.
func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	label := statusLabel(ev.Stage, ev.Status)
	if label == "" {
		return nil
	}
	if ev.File == "" {
		m.stageLabel = label
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	item.status = label
	item.progress = progressFor(ev.Stage, ev.Status)
	if ev.Stage == driver.StageLex && ev.Status != driver.StatusWorking {
		item.tokens = ev.Tokens
		item.cached = ev.Cached
		item.elapsed = ev.Elapsed
	}
	m.touch(idx)
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) touch(idx int) {
	out := make([]int, 0, maxRows)
	out = append(out, idx)
	for _, i := range m.recent {
		if i != idx && len(out) < maxRows {
			out = append(out, i)
		}
	}
	m.recent = out
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range m.items {
		sum += item.progress
	}
	return sum / float64(len(m.items))
}

type tally struct {
	finished, failed, cached, tokens int
}

func (m *progressModel) tally() tally {
	var t tally
	for _, item := range m.items {
		switch item.status {
		case "done":
			t.finished++
		case "error":
			t.finished++
			t.failed++
		}
		if item.cached {
			t.cached++
		}
		t.tokens += item.tokens
	}
	return t
}

// visible выбирает строки для показа: сначала недавние, затем по порядку.
func (m *progressModel) visible() (rows []int, hidden int) {
	shown := make(map[int]bool, maxRows)
	for _, i := range m.recent {
		rows = append(rows, i)
		shown[i] = true
	}
	for i := 0; i < len(m.items) && len(rows) < maxRows; i++ {
		if !shown[i] {
			rows = append(rows, i)
		}
	}
	return rows, len(m.items) - len(rows)
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	var b strings.Builder

	header := m.title
	if m.stageLabel != "" {
		header += " (" + m.stageLabel + ")"
	}
	if m.done {
		header = "done: " + header
	} else {
		header = m.spin.View() + " " + header
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')

	t := m.tally()
	summary := fmt.Sprintf("%d/%d files · %d tokens", t.finished, len(m.items), t.tokens)
	if t.failed > 0 {
		summary += fmt.Sprintf(" · %d failed", t.failed)
	}
	if t.cached > 0 {
		summary += fmt.Sprintf(" · %d cached", t.cached)
	}
	b.WriteString("  " + summaryStyle.Render(summary) + "\n\n")

	const statusWidth, detailWidth = 8, 22
	nameWidth := max(m.width-statusWidth-detailWidth-6, 20)
	rows, hidden := m.visible()
	for _, i := range rows {
		item := m.items[i]
		status := statusStyle(item.status).Render(fmt.Sprintf("%*s", statusWidth, item.status))
		line := fmt.Sprintf("  %s  %-*s", status, nameWidth, truncate(item.path, nameWidth))
		if d := detail(item); d != "" {
			line += "  " + summaryStyle.Render(d)
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	if hidden > 0 {
		fmt.Fprintf(&b, "  … %d more\n", hidden)
	}

	b.WriteByte('\n')
	pct := m.percent()
	if m.done {
		pct = 1
	}
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteByte('\n')
	return b.String()
}

func detail(item fileItem) string {
	switch {
	case item.status != "done" && item.status != "error":
		return ""
	case item.cached:
		return fmt.Sprintf("%d tok, cached", item.tokens)
	case item.tokens > 0:
		return fmt.Sprintf("%d tok, %s", item.tokens, item.elapsed.Round(time.Microsecond))
	default:
		return ""
	}
}

// progressFor: доля работы над файлом после события. Ошибка загрузки
// завершает файл так же, как конец лексинга.
func progressFor(stage driver.Stage, status driver.Status) float64 {
	if status == driver.StatusQueued {
		return 0
	}
	if status == driver.StatusError {
		return 1
	}
	working := status == driver.StatusWorking
	switch stage {
	case driver.StageLoad:
		if working {
			return 0.1
		}
		return 0.4
	case driver.StageLex:
		if working {
			return 0.6
		}
	}
	return 1
}

func statusLabel(stage driver.Stage, status driver.Status) string {
	switch status {
	case driver.StatusQueued:
		return "queued"
	case driver.StatusError:
		return "error"
	case driver.StatusDone:
		if stage == driver.StageLoad {
			return "loaded"
		}
		return "done"
	case driver.StatusWorking:
		switch stage {
		case driver.StageLoad:
			return "loading"
		case driver.StageLex:
			return "lexing"
		case driver.StageEmit:
			return "writing"
		}
	}
	return ""
}

func statusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return queuedStyle
}

// truncate режет строку по ширине терминала с учётом широких символов.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}

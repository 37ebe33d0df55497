package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tide/buffer"
)

// chromeRows is the number of terminal rows taken by the header and footer.
const chromeRows = 2

// Model is a Bubble Tea component that owns one editing Session.
type Model struct {
	cfg  Config
	keys KeyMap
	sess *Session

	width, height int
	viewport      viewport.Model
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
	m.sess = NewSession(cfg.Filename, cfg.Store, cfg.Width, bodyHeight(cfg.Height))
	return m.SetSize(cfg.Width, cfg.Height)
}

func (m Model) Session() *Session { return m.sess }

func (m Model) Buffer() *buffer.Buffer { return m.sess.Buffer() }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the terminal size. Two rows go to the header and footer; the
// rest is the viewport.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.sess.SetSize(m.width, bodyHeight(m.height))

	m.viewport.Width = m.width
	m.viewport.Height = m.sess.Controller().Height()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		for _, ev := range m.eventsForKey(msg) {
			m.sess.Apply(ev)
		}
		if !m.sess.Running() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	m.viewport.SetContent(m.renderBody())
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}

func bodyHeight(height int) int {
	return max(height-chromeRows, 1)
}

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	listview "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type panel int

const (
	nav panel = iota
	contents
)

type model struct {
	tour         transcript
	styled       bool
	offsets      []int
	history      *stack[int]
	viewport     viewport.Model
	navigation   listview.Model
	help         help.Model
	keys         keyMap
	windowWidth  int
	windowHeight int
	focus        panel
}

type keyMap struct {
	scroll   viewport.KeyMap
	Navigate key.Binding
	Jump     key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		scroll: viewport.DefaultKeyMap(),
		Navigate: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Jump: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go to section"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Jump, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Jump, k.Back},
		{k.scroll.PageDown, k.scroll.PageUp},
		{k.scroll.HalfPageDown, k.scroll.HalfPageUp},
		{k.scroll.Down, k.scroll.Up},
		{k.Help, k.Quit},
	}
}

var (
	scrollPctStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	tocItemStyle         = lipgloss.NewStyle()
	selectedTocItemStyle = tocItemStyle.Copy().Foreground(lipgloss.Color("#ae00ff"))

	titleStyle             = lipgloss.NewStyle().Padding(0, 1).Margin(1, 0)
	focusNavTitleStyle     = titleStyle.Copy().Background(lipgloss.Color("#64708d")).Foreground(lipgloss.Color("#ddd"))
	unfocusedNavTitleStyle = titleStyle.Copy().Background(lipgloss.Color("#282a2e")).Foreground(lipgloss.Color("#888"))
)

type navItem string

func (n navItem) FilterValue() string { return string(n) }

type navItemDelegate struct{}

func (navItemDelegate) Height() int  { return 1 }
func (navItemDelegate) Spacing() int { return 0 }
func (navItemDelegate) Update(_ tea.Msg, _ *listview.Model) tea.Cmd {
	return nil
}
func (navItemDelegate) Render(w io.Writer, m listview.Model, index int, listItem listview.Item) {
	i, ok := listItem.(navItem)
	if !ok {
		return
	}

	str := string(i)

	if index == m.Index() {
		fmt.Fprint(w, selectedTocItemStyle.Render(str))
	} else {
		fmt.Fprint(w, tocItemStyle.Render(str))
	}
}

func newModel(t transcript, styled bool) *model {
	return &model{
		tour:       t,
		styled:     styled,
		history:    &stack[int]{},
		help:       help.New(),
		keys:       defaultKeyMap(),
		focus:      nav,
		navigation: buildTableOfContents(t),
		viewport:   viewport.New(0, 0),
	}
}

func buildTableOfContents(t transcript) listview.Model {
	var sections []listview.Item
	maxWidth := 0
	for _, name := range t.sectionNames() {
		sections = append(sections, navItem(name))
		maxWidth = max(maxWidth, lipgloss.Width(name))
	}
	navigation := listview.New(sections, navItemDelegate{}, maxWidth, 100)

	navigation.SetShowTitle(false)
	navigation.SetShowStatusBar(false)
	navigation.SetShowHelp(false)
	navigation.SetFilteringEnabled(false)

	return navigation
}

func (m model) Init() tea.Cmd {
	return nil
}

// jump scrolls to the section selected in the navigation list and records
// where we came from.
func (m *model) jump() {
	i := m.navigation.Index()
	if i < 0 || i >= len(m.offsets) {
		return
	}
	m.history.Push(m.viewport.YOffset)
	m.viewport.SetYOffset(m.offsets[i])
}

// back returns to the offset before the last jump. An empty history is a
// no-op.
func (m *model) back() {
	offset, err := m.history.Pop()
	if err != nil {
		return
	}
	m.viewport.SetYOffset(offset)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Navigate):
			if m.focus == nav {
				m.focus = contents
			} else {
				m.focus = nav
			}
		case key.Matches(msg, m.keys.Jump):
			m.jump()
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.back()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

		titleHeight := lipgloss.Height(m.titleView(nav))
		footerHeight := lipgloss.Height(m.footerView())
		verticalMargins := titleHeight + footerHeight + 1 // +1 for panel margins

		navWidth := lipgloss.Width(m.sidebarView())
		contentWidth := max(m.windowWidth-navWidth, 1)

		r := renderer{width: contentWidth, styled: m.styled}
		m.viewport.Width = contentWidth
		m.viewport.Height = m.windowHeight - verticalMargins
		m.viewport.SetContent(r.render(m.tour))
		m.offsets = r.offsets(m.tour)

		m.navigation.SetHeight(m.windowHeight - verticalMargins)
		m.help.Width = m.windowWidth
	}

	if m.focus == nav {
		m.navigation, cmd = m.navigation.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	return m.mainView() + "\n" + m.footerView()
}

func (m model) titleView(panel panel) string {
	style := unfocusedNavTitleStyle
	if m.focus == panel {
		style = focusNavTitleStyle
	}

	if panel == nav {
		return style.Render("Sections")
	}
	return style.Render(m.tour.Title)
}

func (m model) sidebarView() string {
	style := lipgloss.NewStyle().Margin(0, 2, 0, 1)
	return style.Render(m.titleView(nav) + "\n" + m.navigation.View())
}

func (m model) contentsView() string {
	return m.titleView(contents) + "\n" + m.viewport.View()
}

func (m model) mainView() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.contentsView())
}

func (m model) footerView() string {
	info := scrollPctStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	help := m.help.View(m.keys)

	remainingWidth := m.windowWidth - lipgloss.Width(info) - 1
	helpStyle := lipgloss.NewStyle().
		MarginBottom(1).
		PaddingLeft(2).
		Width(remainingWidth)

	return lipgloss.JoinHorizontal(lipgloss.Bottom, helpStyle.Render(help), info)
}

func runPager(t transcript, styled bool) error {
	p := tea.NewProgram(
		newModel(t, styled),
		tea.WithAltScreen(),       // use the full size of the terminal in its "alternate screen buffer"
		tea.WithMouseCellMotion(), // turn on mouse support so we can track the mouse wheel
	)
	_, err := p.Run()
	return err
}

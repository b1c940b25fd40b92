package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jvmkit/classreader/classfile"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type section int

const (
	sectionOverview section = iota
	sectionPool
	sectionFields
	sectionMethods
	sectionCount
)

var sectionNames = [sectionCount]string{"Overview", "Pool", "Fields", "Methods"}

type inspectorState int

const (
	stateBrowse inspectorState = iota
	stateFilter
	stateDetail
)

type inspectorModel struct {
	err      error
	class    *classfile.Class
	filename string
	filter   textinput.Model
	detail   []string
	section  section
	cursor   int
	offset   int
	height   int
	state    inspectorState
}

func newInspectorModel(filename string) *inspectorModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Width = 40
	return &inspectorModel{
		filename: filename,
		filter:   ti,
		height:   24,
	}
}

type loadedMsg struct {
	err   error
	class *classfile.Class
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadClass
}

func (m *inspectorModel) loadClass() tea.Msg {
	c, err := classfile.ParseFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{class: c}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case loadedMsg:
		m.err = msg.err
		m.class = msg.class

	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.filter.Blur()
				m.state = stateBrowse
				m.cursor, m.offset = 0, 0
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
				m.detail = nil
			}

		case "tab", "right", "l":
			if m.state == stateBrowse {
				m.section = (m.section + 1) % sectionCount
				m.cursor, m.offset = 0, 0
				m.filter.SetValue("")
			}

		case "shift+tab", "left", "h":
			if m.state == stateBrowse {
				m.section = (m.section + sectionCount - 1) % sectionCount
				m.cursor, m.offset = 0, 0
				m.filter.SetValue("")
			}

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case "down", "j":
			if m.cursor < len(m.rows())-1 {
				m.cursor++
				if m.cursor >= m.offset+m.pageSize() {
					m.offset = m.cursor - m.pageSize() + 1
				}
			}

		case "/":
			if m.state == stateBrowse && (m.section == sectionFields || m.section == sectionMethods) {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			if m.state == stateBrowse && m.section == sectionMethods {
				m.openMethodDetail()
			}
		}
	}

	return m, nil
}

func (m *inspectorModel) pageSize() int {
	// Header, tab bar, and help line take up the rest
	n := m.height - 6
	if n < 4 {
		n = 4
	}
	return n
}

// rows builds the visible lines of the active section.
func (m *inspectorModel) rows() []string {
	if m.class == nil {
		return nil
	}
	switch m.section {
	case sectionOverview:
		return m.overviewRows()
	case sectionPool:
		return m.poolRows()
	case sectionFields:
		return m.memberRows(m.class.Fields)
	case sectionMethods:
		return m.memberRows(m.class.Methods)
	}
	return nil
}

func (m *inspectorModel) overviewRows() []string {
	c := m.class
	name, err := c.ThisClassName()
	if err != nil {
		name = "<unresolved>"
	}

	rows := []string{
		fmt.Sprintf("Class    %s", name),
		fmt.Sprintf("Version  %d.%d", c.MajorVersion, c.MinorVersion),
		fmt.Sprintf("Flags    %s", strings.Join(classfile.FlagNames(c.AccessFlags), " ")),
	}
	if super, ok, err := c.SuperClassName(); err == nil && ok {
		rows = append(rows, fmt.Sprintf("Super    %s", super))
	}
	if ifaces, err := c.InterfaceNames(); err == nil {
		for _, n := range ifaces {
			rows = append(rows, fmt.Sprintf("Implements %s", n))
		}
	}
	rows = append(rows,
		fmt.Sprintf("Constants %d", c.Pool.Count()),
		fmt.Sprintf("Fields    %d", len(c.Fields)),
		fmt.Sprintf("Methods   %d", len(c.Methods)),
		fmt.Sprintf("Class attributes %d", len(c.Attributes)))
	return rows
}

func (m *inspectorModel) poolRows() []string {
	pool := m.class.Pool
	rows := make([]string, 0, pool.Count())
	for i := 1; i < pool.Count(); i++ {
		e, err := pool.Entry(uint16(i))
		if err != nil {
			// second slot of an 8-byte constant
			continue
		}
		rows = append(rows, fmt.Sprintf("#%-4d %s", i, poolEntryString(pool, e)))
	}
	return rows
}

func poolEntryString(pool *classfile.ConstantPool, e *classfile.PoolEntry) string {
	switch e.Tag {
	case classfile.TagUtf8:
		return fmt.Sprintf("Utf8        %q", e.Utf8)
	case classfile.TagClass:
		name, err := pool.Utf8At(e.NameIndex)
		if err != nil {
			return fmt.Sprintf("Class       #%d", e.NameIndex)
		}
		return fmt.Sprintf("Class       %s", name)
	case classfile.TagMethodref:
		return fmt.Sprintf("Methodref   #%d.#%d", e.ClassIndex, e.NameAndTypeIndex)
	case classfile.TagInterfaceMethodref:
		return fmt.Sprintf("IfMethodref #%d.#%d", e.ClassIndex, e.NameAndTypeIndex)
	case classfile.TagNameAndType:
		return fmt.Sprintf("NameAndType #%d:#%d", e.NameIndex, e.DescriptorIndex)
	case classfile.TagMethodHandle:
		return fmt.Sprintf("MethodHandle kind=%d #%d", e.ReferenceKind, e.ReferenceIndex)
	default:
		return fmt.Sprintf("tag %-2d      % x", e.Tag, e.Raw)
	}
}

func (m *inspectorModel) memberRows(members []classfile.Member) []string {
	needle := strings.ToLower(m.filter.Value())
	var rows []string
	for i := range members {
		sig := memberSignature(&members[i], m.class.Pool)
		if needle != "" && !strings.Contains(strings.ToLower(sig), needle) {
			continue
		}
		rows = append(rows, sig)
	}
	return rows
}

func (m *inspectorModel) openMethodDetail() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	sig := rows[m.cursor]

	// Map the (possibly filtered) row back to its method
	var method *classfile.Member
	for i := range m.class.Methods {
		if memberSignature(&m.class.Methods[i], m.class.Pool) == sig {
			method = &m.class.Methods[i]
			break
		}
	}
	if method == nil {
		return
	}

	m.detail = []string{nameStyle.Render(sig)}
	code := method.Code()
	if code == nil {
		m.detail = append(m.detail, "", "(no Code attribute)")
		m.state = stateDetail
		return
	}

	m.detail = append(m.detail, "",
		fmt.Sprintf("max_stack=%d max_locals=%d %d bytes", code.MaxStack, code.MaxLocals, len(code.Code)))
	for off := 0; off < len(code.Code); off += 16 {
		end := off + 16
		if end > len(code.Code) {
			end = len(code.Code)
		}
		m.detail = append(m.detail, fmt.Sprintf("%04x: % x", off, code.Code[off:end]))
	}

	if len(code.ExceptionTable) > 0 {
		m.detail = append(m.detail, "", "Exception table:")
		for _, e := range code.ExceptionTable {
			m.detail = append(m.detail,
				fmt.Sprintf("  [%d, %d) -> %d  catch_type #%d", e.StartPC, e.EndPC, e.HandlerPC, e.CatchType))
		}
	}
	if lnt := code.LineNumberTable(); lnt != nil {
		m.detail = append(m.detail, "", "Line numbers:")
		for _, e := range lnt.Entries {
			m.detail = append(m.detail, fmt.Sprintf("  pc %4d  line %d", e.StartPC, e.LineNumber))
		}
	}
	m.state = stateDetail
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.class == nil {
		return "Loading class file..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Class Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if m.state == stateDetail {
		b.WriteString(strings.Join(m.detail, "\n"))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
		return b.String()
	}

	for s := section(0); s < sectionCount; s++ {
		if s == m.section {
			b.WriteString(activeTabStyle.Render(sectionNames[s]))
		} else {
			b.WriteString(tabStyle.Render(" " + sectionNames[s] + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	rows := m.rows()
	end := m.offset + m.pageSize()
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + rows[i]))
		} else {
			b.WriteString("  " + rows[i])
		}
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  (empty)\n"))
	}

	b.WriteString("\n")
	if m.state == stateFilter {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc clear"))
	} else {
		help := "tab section • ↑/↓ move • q quit"
		switch m.section {
		case sectionMethods:
			help = "tab section • ↑/↓ move • enter code • / filter • q quit"
		case sectionFields:
			help = "tab section • ↑/↓ move • / filter • q quit"
		}
		b.WriteString(helpStyle.Render(help))
	}

	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInspectorModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

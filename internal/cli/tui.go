package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pathtrace/pathtrace/pkg/graph"
	"github.com/pathtrace/pathtrace/pkg/search"
)

// Animation styles
var (
	animNodeStyle    = lipgloss.NewStyle().Foreground(colorGray)
	animVisitedStyle = lipgloss.NewStyle().Foreground(colorCyan)
	animPathStyle    = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)
	animStartStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	animGoalStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	animLabelStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// Autoplay interval bounds, matching the original UI's speed slider range.
const (
	minInterval  = 50 * time.Millisecond
	maxInterval  = 800 * time.Millisecond
	intervalStep = 50 * time.Millisecond
)

// tickMsg drives autoplay. The search itself finished before the program
// started; ticks only advance the replay cursor.
type tickMsg time.Time

// AnimModel is the bubbletea model replaying a finished search. It steps
// through the visitation order first, then sweeps in the final path, pacing
// playback independently of the (already completed) computation.
type AnimModel struct {
	GraphName string
	Kind      search.Kind
	Start     graph.Node
	Goal      graph.Node

	graph  *graph.Graph
	result search.Result[graph.Node]

	step     int // replay cursor: 0..totalSteps()
	playing  bool
	interval time.Duration
	width    int
	height   int
}

// NewAnimModel creates an animation model for a completed search.
func NewAnimModel(graphName string, g *graph.Graph, kind search.Kind, start, goal graph.Node, res search.Result[graph.Node], interval time.Duration) AnimModel {
	if interval < minInterval {
		interval = minInterval
	}
	if interval > maxInterval {
		interval = maxInterval
	}
	return AnimModel{
		GraphName: graphName,
		Kind:      kind,
		Start:     start,
		Goal:      goal,
		graph:     g,
		result:    res,
		playing:   true,
		interval:  interval,
		width:     80,
		height:    24,
	}
}

// totalSteps is the visited sweep followed by the path sweep.
func (m AnimModel) totalSteps() int {
	return len(m.result.VisitedOrder) + len(m.result.Path)
}

// Done reports whether the replay has reached the end.
func (m AnimModel) Done() bool { return m.step >= m.totalSteps() }

// Step returns the current replay cursor (for tests).
func (m AnimModel) Step() int { return m.step }

func (m AnimModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m AnimModel) Init() tea.Cmd {
	return m.tick()
}

func (m AnimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}
		case "n", "right":
			m.playing = false
			if m.step < m.totalSteps() {
				m.step++
			}
		case "r":
			m.step = 0
			if !m.playing {
				m.playing = true
				return m, m.tick()
			}
		case "+", "=":
			if m.interval > minInterval {
				m.interval -= intervalStep
			}
		case "-":
			if m.interval < maxInterval {
				m.interval += intervalStep
			}
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.step < m.totalSteps() {
			m.step++
		}
		if m.step >= m.totalSteps() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m AnimModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s  %s %s %s  [%s]",
		m.GraphName, m.Start, iconArrow, m.Goal, strings.ToUpper(string(m.Kind)))))
	b.WriteString("\n")
	b.WriteString(animLabelStyle.Render("space pause  n step  r reset  +/- speed  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCanvas())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderStatus shows the replay phase, cursor, and outcome stats.
func (m AnimModel) renderStatus() string {
	visited, path := m.sweep()

	var phase string
	switch {
	case m.step == 0:
		phase = "ready"
	case len(path) == 0:
		phase = fmt.Sprintf("exploring %d/%d", len(visited), len(m.result.VisitedOrder))
	case m.step < m.totalSteps():
		phase = fmt.Sprintf("tracing path %d/%d", len(path), len(m.result.Path))
	default:
		if len(m.result.Path) == 0 {
			phase = "no path found"
		} else {
			phase = fmt.Sprintf("done: %d edges, %d nodes visited", m.result.Distance, m.result.VisitedCount)
		}
	}

	state := "▶"
	if !m.playing {
		state = "⏸"
	}
	legend := fmt.Sprintf("%s start  %s goal  %s visited  %s path",
		animStartStyle.Render("●"), animGoalStyle.Render("●"),
		animVisitedStyle.Render("●"), animPathStyle.Render("●"))

	return fmt.Sprintf("%s %s  %s\n%s",
		StyleHighlight.Render(state),
		StyleValue.Render(phase),
		animLabelStyle.Render(fmt.Sprintf("(%dms)", m.interval.Milliseconds())),
		legend)
}

// sweep returns the visited prefix and path prefix revealed at the current
// replay cursor.
func (m AnimModel) sweep() (visited, path []graph.Node) {
	v := m.step
	if v > len(m.result.VisitedOrder) {
		v = len(m.result.VisitedOrder)
	}
	p := m.step - len(m.result.VisitedOrder)
	if p < 0 {
		p = 0
	}
	return m.result.VisitedOrder[:v], m.result.Path[:p]
}

// renderCanvas projects node positions onto a character grid. Edges are not
// drawn; the node sweep itself carries the animation.
func (m AnimModel) renderCanvas() string {
	nodes := m.graph.Nodes()
	positions := m.graph.Positions()

	width := m.width - 4
	height := m.height - 9
	if width < 20 {
		width = 20
	}
	if height < 6 {
		height = 6
	}

	minX, minY, maxX, maxY := bounds(positions)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	type cell struct {
		text  string
		style lipgloss.Style
	}
	grid := make(map[[2]int]cell)

	visited, path := m.sweep()
	visitedSet := make(map[graph.Node]bool, len(visited))
	for _, n := range visited {
		visitedSet[n] = true
	}
	pathSet := make(map[graph.Node]bool, len(path))
	for _, n := range path {
		pathSet[n] = true
	}

	for _, n := range nodes {
		pos, ok := positions[n]
		if !ok {
			continue
		}
		col := int((pos.X - minX) / spanX * float64(width-1))
		row := int((pos.Y - minY) / spanY * float64(height-1))

		style := animNodeStyle
		switch {
		case n == m.Start:
			style = animStartStyle
		case n == m.Goal:
			style = animGoalStyle
		case pathSet[n]:
			style = animPathStyle
		case visitedSet[n]:
			style = animVisitedStyle
		}
		grid[[2]int{row, col}] = cell{text: "●", style: style}

		// Short labels fit beside the marker; cells on dense grids stay bare.
		label := n.String()
		if len(label) <= 4 || n == m.Start || n == m.Goal {
			for i, r := range label {
				key := [2]int{row, col + 1 + i}
				if _, taken := grid[key]; !taken {
					grid[key] = cell{text: string(r), style: animLabelStyle}
				}
			}
		}
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if c, ok := grid[[2]int{row, col}]; ok {
				b.WriteString(c.style.Render(c.text))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// bounds returns the bounding box of all positions.
func bounds(positions map[graph.Node]graph.Position) (minX, minY, maxX, maxY float64) {
	first := true
	for _, p := range positions {
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}

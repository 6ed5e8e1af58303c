package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timebar/internal/progress"
)

// Hourglass geometry. Each half holds exactly hgCapacity sand cells:
// bottom = 4 reservoir rows of 9 + funnel rows 3,5,7,9 + the neck = 61,
// top = 5 reservoir rows of 9 + funnel rows 7,5,3,1 = 61.
const (
	hgInnerWidth = 9
	hgTopRows    = 5
	hgBottomRows = 4
	hgCapacity   = 61
)

var (
	hgTopFunnelWidths    = []int{7, 5, 3, 1}
	hgBottomFunnelWidths = []int{3, 5, 7, 9}
)

const (
	hgSand  = '█'
	hgEmpty = '░'

	hgFlowHead  = '┊'
	hgFlowTrail = '┊'
)

var hourglassTitleStyle = lipgloss.NewStyle().Bold(true)

// HourglassTheme animates sand draining between two reservoirs. The same
// filled-cell count drives the top and bottom traversals, so the halves
// conserve sand at every tick.
type HourglassTheme struct{}

func (HourglassTheme) Name() string { return "hourglass" }

func (t HourglassTheme) Render(p progress.Progress, title string, width int) []string {
	var lines []string

	if title != "" {
		lines = append(lines, hourglassTitleStyle.Render(title))
	}

	header := t.buildHeader(p)
	footer := t.buildFooter(p)
	lines = append(lines, header)

	// Left-pad the glass so its center column sits under the footer's
	// divider, clipping the pad when the terminal is too narrow.
	dividerCol := strings.IndexRune(footer, '|')
	if dividerCol < 0 {
		dividerCol = 0
	}
	baseCenter := 1 + hgInnerWidth/2
	leftPad := dividerCol - baseCenter
	if maxPad := width - (hgInnerWidth + 2); leftPad > maxPad {
		leftPad = maxPad
	}
	if leftPad < 0 {
		leftPad = 0
	}
	pad := strings.Repeat(" ", leftPad)

	for _, line := range t.buildGlass(p) {
		lines = append(lines, pad+line)
	}

	lines = append(lines, footer)
	return lines
}

func (HourglassTheme) buildHeader(p progress.Progress) string {
	return fmt.Sprintf("%s → %s   |   %d%%",
		p.Span.FormatFrom(), p.Span.FormatTo(), p.Percent())
}

func (HourglassTheme) buildFooter(p progress.Progress) string {
	return fmt.Sprintf("elapsed: %s   |   remaining: %s",
		p.FormatElapsed(), p.FormatRemaining())
}

// cellRef addresses one sand cell. Sections: bottom reservoir, bottom
// funnel, neck, top funnel, top reservoir.
type cellRef struct {
	section int
	row     int
	col     int
}

const (
	secBotRes = iota
	secBotFun
	secNeck
	secTopFun
	secTopRes
)

type glassCells struct {
	topRes [][]rune
	topFun [][]rune
	neck   rune
	botFun [][]rune
	botRes [][]rune
}

func newGlassCells() *glassCells {
	g := &glassCells{neck: hgEmpty}
	for i := 0; i < hgTopRows; i++ {
		g.topRes = append(g.topRes, runeRow(hgSand, hgInnerWidth))
	}
	for _, w := range hgTopFunnelWidths {
		g.topFun = append(g.topFun, runeRow(hgSand, w))
	}
	for _, w := range hgBottomFunnelWidths {
		g.botFun = append(g.botFun, runeRow(hgEmpty, w))
	}
	for i := 0; i < hgBottomRows; i++ {
		g.botRes = append(g.botRes, runeRow(hgEmpty, hgInnerWidth))
	}
	return g
}

func runeRow(ch rune, width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ch
	}
	return row
}

func (g *glassCells) set(ref cellRef, ch rune) {
	switch ref.section {
	case secBotRes:
		g.botRes[ref.row][ref.col] = ch
	case secBotFun:
		g.botFun[ref.row][ref.col] = ch
	case secNeck:
		g.neck = ch
	case secTopFun:
		g.topFun[ref.row][ref.col] = ch
	case secTopRes:
		g.topRes[ref.row][ref.col] = ch
	}
}

// centerOrder yields column indices for a row of the given width, middle
// first, then alternating outward. Sand settles from the center.
func centerOrder(width int) []int {
	mid := width / 2
	order := []int{mid}
	for d := 1; ; d++ {
		pushed := false
		if mid-d >= 0 {
			order = append(order, mid-d)
			pushed = true
		}
		if mid+d < width {
			order = append(order, mid+d)
			pushed = true
		}
		if !pushed {
			return order
		}
	}
}

// bottomFillOrder is the traversal the lower half fills in: reservoir rows
// nearest the floor first, then the funnel upward, finally the neck.
func bottomFillOrder() []cellRef {
	order := make([]cellRef, 0, hgCapacity)
	for r := hgBottomRows - 1; r >= 0; r-- {
		for _, c := range centerOrder(hgInnerWidth) {
			order = append(order, cellRef{secBotRes, r, c})
		}
	}
	for i := len(hgBottomFunnelWidths) - 1; i >= 0; i-- {
		for _, c := range centerOrder(hgBottomFunnelWidths[i]) {
			order = append(order, cellRef{secBotFun, i, c})
		}
	}
	order = append(order, cellRef{secNeck, 0, 0})
	return order
}

// topEmptyOrder mirrors bottomFillOrder: topmost reservoir row first,
// then downward through the funnel toward the neck.
func topEmptyOrder() []cellRef {
	order := make([]cellRef, 0, hgCapacity)
	for r := 0; r < hgTopRows; r++ {
		for _, c := range centerOrder(hgInnerWidth) {
			order = append(order, cellRef{secTopRes, r, c})
		}
	}
	for i := range hgTopFunnelWidths {
		for _, c := range centerOrder(hgTopFunnelWidths[i]) {
			order = append(order, cellRef{secTopFun, i, c})
		}
	}
	return order
}

func (t HourglassTheme) buildGlass(p progress.Progress) []string {
	g := newGlassCells()
	filled := fillCells(p.Ratio, hgCapacity)

	for i, ref := range bottomFillOrder() {
		if i >= filled {
			break
		}
		g.set(ref, hgSand)
	}
	for i, ref := range topEmptyOrder() {
		if i >= filled {
			break
		}
		g.set(ref, hgEmpty)
	}

	if !p.IsComplete() {
		t.overlayDroplet(g, p)
	}

	return g.compose()
}

// overlayDroplet marks the falling sand along the neck -> funnel ->
// reservoir center path. Its position advances with wall-clock elapsed
// time rather than the ratio, so it keeps moving between ratio changes;
// the path ends at the first center cell already holding sand, and the
// droplet never appears once the session is complete.
func (HourglassTheme) overlayDroplet(g *glassCells, p progress.Progress) {
	path := []cellRef{{secNeck, 0, 0}}
	for i, w := range hgBottomFunnelWidths {
		path = append(path, cellRef{secBotFun, i, w / 2})
	}
	for i := 0; i < hgBottomRows; i++ {
		path = append(path, cellRef{secBotRes, i, hgInnerWidth / 2})
	}

	activeLen := 0
	for _, ref := range path {
		occupied := false
		switch ref.section {
		case secNeck:
			occupied = g.neck == hgSand
		case secBotFun:
			occupied = g.botFun[ref.row][ref.col] == hgSand
		case secBotRes:
			occupied = g.botRes[ref.row][ref.col] == hgSand
		}
		if occupied {
			break
		}
		activeLen++
	}
	if activeLen == 0 {
		return
	}

	step := int(p.Elapsed.Milliseconds()/500) % activeLen
	for i, ref := range path[:activeLen] {
		if i == step {
			g.set(ref, hgFlowHead)
		} else {
			g.set(ref, hgFlowTrail)
		}
	}
}

func (g *glassCells) compose() []string {
	lines := make([]string, 0, hgTopRows+hgBottomRows+len(hgTopFunnelWidths)+len(hgBottomFunnelWidths)+3)
	lines = append(lines, "┏"+strings.Repeat("━", hgInnerWidth)+"┓")
	for _, row := range g.topRes {
		lines = append(lines, "┃"+string(row)+"┃")
	}
	for i, row := range g.topFun {
		lines = append(lines, funnelLine(1+i, row))
	}
	lines = append(lines, funnelLine(4, []rune{g.neck}))
	for i, row := range g.botFun {
		lines = append(lines, funnelLine(3-i, row))
	}
	for _, row := range g.botRes {
		lines = append(lines, "┃"+string(row)+"┃")
	}
	lines = append(lines, "┗"+strings.Repeat("━", hgInnerWidth)+"┛")
	return lines
}

func funnelLine(indent int, inner []rune) string {
	if indent < 0 {
		indent = 0
	}
	return strings.Repeat(" ", indent) + "┃" + string(inner) + "┃"
}

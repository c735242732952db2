package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/unvolume/internal/control"
	"github.com/san-kum/unvolume/internal/controls"
)

func (a *App) View() string {
	if !a.sized {
		return "measuring terminal..."
	}
	if a.page == pageMenu {
		return a.viewMenu()
	}
	return a.viewControl()
}

func (a *App) viewMenu() string {
	var lines []string

	lines = append(lines, strings.Split(titleStyle.Render(a.title.Text()), "\n")...)

	tileWidth := max(20, a.width-4)
	for _, tile := range a.tiles {
		style := tileStyle
		if tile.target == pageMenu {
			style = tileDisabledStyle
		}
		block := style.Width(tileWidth).Render(tile.label.Text())
		lines = append(lines, strings.Split(block, "\n")...)
	}

	top := int(a.scroll)
	view := int(a.viewportRows())
	if top > len(lines) {
		top = len(lines)
	}
	end := min(len(lines), top+view)

	var b strings.Builder
	for _, line := range lines[top:end] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for i := end - top; i < view; i++ {
		b.WriteByte('\n')
	}
	b.WriteString(dim.Render("click a tile · 1-7 jump · ↑/↓ scroll · q quit"))
	return b.String()
}

func (a *App) viewControl() string {
	c := a.active()
	info := a.infoFor(c)

	var body string
	switch a.page {
	case pageColor:
		body = a.renderColor()
	case pageMemory:
		body = a.renderMemory()
	default:
		a.canvas.clear()
		switch a.page {
		case pageGravity:
			a.renderGravity()
		case pageSling:
			a.renderSling()
		case pageIsotope:
			a.renderIsotope()
		case pageCircle:
			a.renderCircle()
		case pageBounce:
			a.renderBounce()
		}
		body = a.canvas.String()
	}

	var b strings.Builder
	b.WriteString(white.Bold(true).Render(info.Title))
	b.WriteByte('\n')
	b.WriteString(dim.Render(info.Instruction))
	b.WriteByte('\n')
	b.WriteString(a.headerExtra())
	b.WriteByte('\n')
	b.WriteString(pad(body, contentLeft))
	b.WriteByte('\n')
	b.WriteString(volumeStyle.Render(fmt.Sprintf(" Volume: %d", c.Volume())))
	b.WriteByte('\n')
	b.WriteString(dim.Render(" esc back · r reset · q menu"))
	return b.String()
}

// headerExtra fills the third header row on pages that have live
// numbers worth surfacing above the play area.
func (a *App) headerExtra() string {
	switch a.page {
	case pageColor:
		target := swatchStyle.Background(lipgloss.Color(a.color.TargetColor().Hex()))
		yours := swatchStyle.Background(lipgloss.Color(a.color.CurrentColor().Hex()))
		return " " + dim.Render("chase") + target.Render("") +
			dim.Render("  yours") + yours.Render("")
	case pageBounce:
		return yellow.Render(fmt.Sprintf(" bounces: %d", a.bounce.Bounces()))
	case pageIsotope:
		return yellow.Render(fmt.Sprintf(" level: %.2f", a.isotope.Value()))
	}
	return ""
}

func (a *App) infoFor(c control.Control) controls.Info {
	for _, info := range controls.Catalog {
		if info.Name == c.Name() {
			return info
		}
	}
	return controls.Info{Title: c.Name()}
}

func pad(body string, left int) string {
	prefix := strings.Repeat(" ", left)
	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderGravity() {
	w, h := a.canvas.width(), a.canvas.height()
	cx, cy := w/2, h/2
	radius := math.Min(w, h) * 0.4
	angle := a.gravity.Angle()

	x1 := cx + radius*math.Cos(angle)
	y1 := cy + radius*math.Sin(angle)
	x2 := cx - radius*math.Cos(angle)
	y2 := cy - radius*math.Sin(angle)
	a.canvas.line(int(x1), int(y1), int(x2), int(y2))

	ball := control.Point{
		X: cx + radius*math.Cos(angle)*a.gravity.Ball(),
		Y: cy + radius*math.Sin(angle)*a.gravity.Ball(),
	}
	a.canvas.disc(ball, 2.5)
	a.canvas.border()
}

func (a *App) renderSling() {
	anchor := a.sling.Anchor()
	a.canvas.border()
	a.canvas.disc(anchor, 1.2)

	p, firing := a.sling.Projectile()
	if a.sling.Dragging() {
		a.canvas.line(int(anchor.X), int(anchor.Y), int(p.X), int(p.Y))
		a.canvas.disc(p, 2)
	} else if firing {
		a.canvas.disc(p, 2)
	} else {
		a.canvas.disc(anchor, 2)
	}
}

func (a *App) renderIsotope() {
	w, h := a.canvas.width(), a.canvas.height()
	fill := a.isotope.Value() / 100 * (w - 8)
	top := int(h/2) - 4
	for y := 0; y < 8; y++ {
		a.canvas.line(4, top+y, 4+int(fill), top+y)
	}
	a.canvas.border()
}

func (a *App) renderCircle() {
	for _, p := range a.circle.Stroke() {
		a.canvas.plot(p)
	}
	a.canvas.border()
}

func (a *App) renderBounce() {
	a.canvas.disc(a.bounce.Pos(), 2.5)
	a.canvas.border()
}

// renderColor lays one slider in each vertical third of the body so the
// drawn bars line up with the pointer's channel bands.
func (a *App) renderColor() string {
	rows := a.canvas.rows
	cols := a.canvas.cols
	lines := make([]string, rows)

	names := []string{"R", "G", "B"}
	styles := []lipgloss.Style{magenta, green, cyan}
	current := a.color.Current()

	barWidth := max(10, cols-8)
	third := max(1, rows/3)
	for i := 0; i < 3; i++ {
		mid := i*third + third/2
		if mid >= rows {
			mid = rows - 1
		}
		filled := current[i] * barWidth / 255
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		lines[mid] = fmt.Sprintf(" %s %s %3d", styles[i].Render(names[i]), bar, current[i])
	}
	return strings.Join(lines, "\n")
}

// renderMemory fills the body with a 4x4 card grid whose cell pitch
// matches the even hit-test bands the control uses.
func (a *App) renderMemory() string {
	cols, rows := a.canvas.cols, a.canvas.rows
	cw, ch := cols/4, rows/4
	if cw < 5 || ch < 3 {
		return a.renderMemoryCompact()
	}

	lines := make([]string, rows)
	cards := a.memory.Cards()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			box := cardBox(cards[r*4+c], cw-1, ch)
			for i, row := range box {
				lines[r*ch+i] += row + " "
			}
		}
	}
	return strings.Join(lines, "\n")
}

// cardBox draws one card as w x h terminal cells, h including one
// blank separator row.
func cardBox(card controls.Card, w, h int) []string {
	inner := w - 2
	style := dim
	face := strings.Repeat("░", inner)
	if card.FaceUp || card.Matched {
		pad := inner - 1
		face = strings.Repeat(" ", pad/2) + string(card.Symbol) + strings.Repeat(" ", pad-pad/2)
		style = white
		if card.Matched {
			style = green
		}
	}

	boxH := h - 1
	if boxH < 3 {
		boxH = 3
	}
	rule := strings.Repeat("─", inner)
	blankRow := "│" + strings.Repeat(" ", inner) + "│"
	rows := make([]string, 0, h)
	rows = append(rows, style.Render("┌"+rule+"┐"))
	for y := 0; y < boxH-2; y++ {
		if y == (boxH-2)/2 {
			rows = append(rows, style.Render("│"+face+"│"))
		} else {
			rows = append(rows, style.Render(blankRow))
		}
	}
	rows = append(rows, style.Render("└"+rule+"┘"))
	for len(rows) < h {
		rows = append(rows, "")
	}
	return rows
}

// renderMemoryCompact is the tiny-terminal fallback: one symbol per
// card.
func (a *App) renderMemoryCompact() string {
	cards := a.memory.Cards()
	var b strings.Builder
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			card := cards[r*4+c]
			switch {
			case card.Matched:
				b.WriteString(green.Render(string(card.Symbol)))
			case card.FaceUp:
				b.WriteString(white.Render(string(card.Symbol)))
			default:
				b.WriteString(dim.Render("▒"))
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Package tui is the presentation shell: a bubbletea program hosting
// the scrolling menu of decrypting labels and one page per volume
// control. All simulation state advances inside Update, from tick and
// mouse messages only.
package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/unvolume/internal/config"
	"github.com/san-kum/unvolume/internal/control"
	"github.com/san-kum/unvolume/internal/controls"
	"github.com/san-kum/unvolume/internal/scramble"
)

type page int

const (
	pageMenu page = iota
	pageGravity
	pageColor
	pageSling
	pageIsotope
	pageCircle
	pageBounce
	pageMemory
)

var pageByName = map[string]page{
	"gravity":   pageGravity,
	"color":     pageColor,
	"slingshot": pageSling,
	"isotope":   pageIsotope,
	"circle":    pageCircle,
	"bounce":    pageBounce,
	"memory":    pageMemory,
}

const (
	placeholderTiles = 24
	menuTop          = 2 // rows used by the title block
	tileRows         = 3 // bordered tile height in rows
	contentTop       = 3 // rows above the canvas on widget pages
	contentLeft      = 1
)

type menuTile struct {
	label  *scramble.Label
	info   controls.Info
	target page // pageMenu marks a disabled placeholder
}

type App struct {
	cfg *config.Config
	rng *rand.Rand

	page   page
	width  int
	height int
	sized  bool

	gravity *controls.Gravity
	color   *controls.ColorMatch
	sling   *controls.Slingshot
	isotope *controls.Isotope
	circle  *controls.Circle
	bounce  *controls.Bounce
	memory  *controls.Memory

	title   *scramble.Label
	tiles   []menuTile
	tracker *scramble.Tracker
	scroll  float64

	canvas    *canvas
	mouseDown bool
	seq       int // bumps on navigation, invalidating stale tick loops
}

func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	a := &App{
		cfg:     cfg,
		rng:     rng,
		gravity: controls.NewGravity(),
		color:   controls.NewColorMatch(rng),
		sling:   controls.NewSlingshot(),
		isotope: controls.NewIsotope(),
		circle:  controls.NewCircle(),
		bounce:  controls.NewBounce(),
		memory:  controls.NewMemory(rng),
		tracker: &scramble.Tracker{},
		canvas:  newCanvas(78, 18),
	}
	for _, c := range a.controls() {
		cfg.Apply(c)
	}

	sc := cfg.Scramble
	a.title = a.newLabel("UNINTUITIVE VOLUME CONTROLS", sc.TitleSpeedMS)
	a.tracker.Add(a.title, 0, menuTop)

	top := float64(menuTop)
	for _, info := range controls.Catalog {
		l := a.newLabel(info.Title, sc.TileSpeedMS)
		a.tiles = append(a.tiles, menuTile{label: l, info: info, target: pageByName[info.Name]})
		a.tracker.Add(l, top, tileRows)
		top += tileRows
	}
	for i := 0; i < placeholderTiles; i++ {
		l := a.newLabel(placeholderTitle(i+1), sc.PlaceholderSpeedMS)
		a.tiles = append(a.tiles, menuTile{label: l, target: pageMenu})
		a.tracker.Add(l, top, tileRows)
		top += tileRows
	}

	return a
}

func (a *App) newLabel(text string, speedMS int) *scramble.Label {
	l := scramble.New(text, time.Duration(speedMS)*time.Millisecond, a.rng)
	l.SetCharset(a.cfg.Scramble.Charset)
	return l
}

func placeholderTitle(n int) string {
	// Same filler the menu always had; they never become pages.
	return "Placeholder " + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func (a *App) controls() []control.Control {
	return []control.Control{a.gravity, a.color, a.sling, a.isotope, a.circle, a.bounce, a.memory}
}

func (a *App) active() control.Control {
	switch a.page {
	case pageGravity:
		return a.gravity
	case pageColor:
		return a.color
	case pageSling:
		return a.sling
	case pageIsotope:
		return a.isotope
	case pageCircle:
		return a.circle
	case pageBounce:
		return a.bounce
	case pageMemory:
		return a.memory
	default:
		return nil
	}
}

// Run starts the interactive program.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return a.armMenu()
}

type tickMsg struct {
	seq int
	d   time.Duration
}

func tickEvery(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{seq: seq, d: d} })
}

// armMenu starts one tick loop per distinct label speed.
func (a *App) armMenu() tea.Cmd {
	a.seq++
	speeds := map[time.Duration]bool{a.title.Speed: true}
	for _, tile := range a.tiles {
		speeds[tile.label.Speed] = true
	}
	var cmds []tea.Cmd
	for d := range speeds {
		cmds = append(cmds, tickEvery(d, a.seq))
	}
	return tea.Batch(cmds...)
}

func (a *App) armControl(c control.Control) tea.Cmd {
	a.seq++
	return tickEvery(c.Interval(), a.seq)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tickMsg:
		return a.handleTick(msg)
	}
	return a, nil
}

func (a *App) resize(w, h int) {
	a.width = w
	a.height = h

	cols := w - 2*contentLeft
	rows := h - contentTop - 3
	if cols < 10 {
		cols = 10
	}
	if rows < 4 {
		rows = 4
	}
	a.canvas = newCanvas(cols, rows)
	for _, c := range a.controls() {
		c.Resize(a.canvas.width(), a.canvas.height())
	}

	// First layout settle doubles as the initial visibility pass.
	a.checkVisibility()
	a.sized = true
}

func (a *App) viewportRows() float64 {
	if a.height <= 1 {
		return 0
	}
	return float64(a.height - 1) // bottom row is the help line
}

func (a *App) checkVisibility() {
	if a.page != pageMenu {
		return
	}
	a.tracker.Check(a.scroll, a.viewportRows())
}

func (a *App) maxScroll() float64 {
	total := float64(menuTop + tileRows*len(a.tiles))
	if m := total - a.viewportRows(); m > 0 {
		return m
	}
	return 0
}

func (a *App) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.seq {
		return a, nil // stale loop from a page we left
	}

	if a.page == pageMenu {
		if a.title.Speed == msg.d {
			a.title.Tick()
		}
		for _, tile := range a.tiles {
			if tile.label.Speed == msg.d {
				tile.label.Tick()
			}
		}
	} else if c := a.active(); c != nil {
		c.Tick()
	}

	return a, tickEvery(msg.d, a.seq)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.page {
	case pageMenu:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "up", "k":
			a.scrollBy(-1)
		case "down", "j":
			a.scrollBy(1)
		case "pgup":
			a.scrollBy(-10)
		case "pgdown":
			a.scrollBy(10)
		case "1", "2", "3", "4", "5", "6", "7":
			idx := int(msg.String()[0] - '1')
			if idx < len(controls.Catalog) {
				return a, a.navigate(pageByName[controls.Catalog[idx].Name])
			}
		}
	default:
		switch msg.String() {
		case "q", "esc":
			return a, a.navigate(pageMenu)
		case "ctrl+c":
			return a, tea.Quit
		case "r":
			if c := a.active(); c != nil {
				c.Reset()
			}
		}
	}
	return a, nil
}

func (a *App) scrollBy(rows float64) {
	a.scroll = control.Clamp(a.scroll+rows, 0, a.maxScroll())
	a.checkVisibility()
}

func (a *App) navigate(to page) tea.Cmd {
	a.mouseDown = false
	a.page = to
	if to == pageMenu {
		return a.armMenu()
	}
	if to == pageColor {
		// The color challenge restarts every time the page is entered.
		a.color.Reset()
	}
	return a.armControl(a.active())
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.page == pageMenu {
		return a.menuMouse(msg)
	}

	c := a.active()
	if c == nil {
		return a, nil
	}
	pos := a.dotPos(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.mouseDown = true
		c.Pointer(control.Pointer{Kind: control.PointerDown, Pos: pos})
	case msg.Action == tea.MouseActionMotion && a.mouseDown:
		c.Pointer(control.Pointer{Kind: control.PointerMove, Pos: pos})
	case msg.Action == tea.MouseActionRelease && a.mouseDown:
		a.mouseDown = false
		c.Pointer(control.Pointer{Kind: control.PointerUp, Pos: pos})
	}
	return a, nil
}

// dotPos converts a terminal cell to the braille dot coordinates the
// active control was sized with.
func (a *App) dotPos(x, y int) control.Point {
	return control.Point{
		X: float64((x - contentLeft) * 2),
		Y: float64((y - contentTop) * 4),
	}
}

func (a *App) menuMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.scrollBy(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		a.scrollBy(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		row := a.scroll + float64(msg.Y)
		if row < menuTop {
			return a, nil
		}
		idx := int(row-menuTop) / tileRows
		if idx >= 0 && idx < len(a.tiles) && a.tiles[idx].target != pageMenu {
			return a, a.navigate(a.tiles[idx].target)
		}
	}
	return a, nil
}

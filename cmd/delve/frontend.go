package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/delvegame/delve/internal/world"
)

// tcellFrontend renders the world into a terminal and translates terminal
// events into the engine's abstract input. The event pump runs on its own
// goroutine; PollInput drains whatever arrived since the last frame.
type tcellFrontend struct {
	screen   tcell.Screen
	events   chan tcell.Event
	logLines int

	mouseX, mouseY int
}

func newTcellFrontend(logLines int) (*tcellFrontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	fe := &tcellFrontend{
		screen:   screen,
		events:   make(chan tcell.Event, 100),
		logLines: logLines,
	}
	go func() {
		for {
			ev := fe.screen.PollEvent()
			if ev == nil {
				return
			}
			fe.events <- ev
		}
	}()
	return fe, nil
}

func (fe *tcellFrontend) Close() {
	fe.screen.Fini()
}

// PollInput drains the event channel without blocking and returns this
// frame's input snapshot.
func (fe *tcellFrontend) PollInput() world.InputState {
	in := world.InputState{}
	for {
		select {
		case ev := <-fe.events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				in.Events = append(in.Events, fe.translateKey(tev))
			case *tcell.EventMouse:
				x, y := tev.Position()
				fe.mouseX, fe.mouseY = x, y
				btns := tev.Buttons()
				if btns&tcell.Button1 != 0 {
					in.Events = append(in.Events, world.InputEvent{
						Kind: world.EventMouseDown, Button: world.MouseLeft, X: x, Y: y,
					})
				}
				if btns&tcell.Button2 != 0 {
					in.Events = append(in.Events, world.InputEvent{
						Kind: world.EventMouseDown, Button: world.MouseRight, X: x, Y: y,
					})
				}
			case *tcell.EventResize:
				fe.screen.Sync()
			}
		default:
			in.MouseX, in.MouseY = fe.mouseX, fe.mouseY
			return in
		}
	}
}

// translateKey maps a physical keystroke onto an abstract command key. The
// raw rune travels along for the letter menus.
func (fe *tcellFrontend) translateKey(ev *tcell.EventKey) world.InputEvent {
	out := world.InputEvent{Kind: world.EventKey}
	switch ev.Key() {
	case tcell.KeyUp:
		out.Key = world.KeyUp
	case tcell.KeyDown:
		out.Key = world.KeyDown
	case tcell.KeyLeft:
		out.Key = world.KeyLeft
	case tcell.KeyRight:
		out.Key = world.KeyRight
	case tcell.KeyEscape:
		out.Key = world.KeyCancel
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		out.Kind = world.EventQuit
	case tcell.KeyRune:
		r := ev.Rune()
		out.Rune = r
		switch r {
		case 'h':
			out.Key = world.KeyLeft
		case 'j':
			out.Key = world.KeyDown
		case 'k':
			out.Key = world.KeyUp
		case 'l':
			out.Key = world.KeyRight
		case '.', ' ':
			out.Key = world.KeyWait
		case 'g':
			out.Key = world.KeyPickup
		case 'u':
			out.Key = world.KeyUse
		case 't':
			out.Key = world.KeyThrow
		case 'e':
			out.Key = world.KeyEquip
		case 'd':
			out.Key = world.KeyDrop
		case 'f':
			out.Key = world.KeyFire
		case 'z':
			out.Key = world.KeyCast
		case 'c', '@':
			out.Key = world.KeyCharacter
		case '?':
			out.Key = world.KeyHelp
		case '>':
			out.Key = world.KeyDescend
		case '<':
			out.Key = world.KeyAscend
		case 'q':
			out.Key = world.KeyQuit
		}
	}
	return out
}

var colorNames = map[string]tcell.Color{
	"white":  tcell.ColorWhite,
	"gray":   tcell.ColorGray,
	"red":    tcell.ColorRed,
	"green":  tcell.ColorGreen,
	"blue":   tcell.ColorBlue,
	"yellow": tcell.ColorYellow,
	"orange": tcell.ColorOrange,
	"purple": tcell.ColorPurple,
	"brown":  tcell.ColorBrown,
	"cyan":   tcell.ColorLightCyan,
}

func styleFor(name string) tcell.Style {
	c, ok := colorNames[name]
	if !ok {
		c = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(c)
}

// Render draws the full frame: map, entities, status row, message log, and
// whatever modal screen is open.
func (fe *tcellFrontend) Render(s *world.State) {
	fe.screen.Clear()
	fe.drawMap(s)
	fe.drawEntities(s)
	fe.drawStatus(s)
	fe.drawMessages(s)
	fe.drawModal(s)
	fe.screen.Show()
}

var (
	dimStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	floorStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorLightSlateGray)
)

func (fe *tcellFrontend) drawMap(s *world.State) {
	for y := 0; y < s.Map.H; y++ {
		for x := 0; x < s.Map.W; x++ {
			glyph := '.'
			style := floorStyle
			if s.Map.IsWall(x, y) {
				glyph = '#'
				style = wallStyle
			}
			switch {
			case s.Visibility.IsVisible(x, y):
				fe.screen.SetContent(x, y, glyph, nil, style)
			case s.Visibility.IsExplored(x, y):
				fe.screen.SetContent(x, y, glyph, nil, dimStyle)
			}
		}
	}
}

func (fe *tcellFrontend) drawEntities(s *world.State) {
	for _, v := range s.RenderViews() {
		fe.screen.SetContent(v.X, v.Y, v.Glyph, nil, styleFor(v.Color))
	}
}

func (fe *tcellFrontend) drawStatus(s *world.State) {
	st := s.Stores
	h, _ := st.Health.Get(s.Player)
	m, _ := st.Mana.Get(s.Player)
	xp, _ := st.Experience.Get(s.Player)
	line := ""
	if h != nil {
		line += fmt.Sprintf("HP %d/%d  ", h.Current, h.Max)
	}
	if m != nil {
		line += fmt.Sprintf("MP %d/%d  ", m.Current, m.Max)
	}
	if xp != nil {
		line += fmt.Sprintf("Lv %d  ", xp.Level)
	}
	if s.Depth == 0 {
		line += "Surface  "
	} else {
		line += fmt.Sprintf("Depth %d  ", s.Depth)
	}
	line += fmt.Sprintf("Turn %d", s.Turn)
	fe.print(0, s.Map.H, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (fe *tcellFrontend) drawMessages(s *world.State) {
	for i, msg := range s.Log.Tail(fe.logLines) {
		fe.print(0, s.Map.H+1+i, msg, floorStyle)
	}
}

func (fe *tcellFrontend) drawModal(s *world.State) {
	st := s.Stores
	if menu, ok := st.InventoryMenu.Get(s.Player); ok {
		lines := []string{menu.Title, ""}
		for _, l := range s.InventoryLines() {
			worn := ""
			if l.Worn {
				worn = " (worn)"
			}
			lines = append(lines, fmt.Sprintf("%c) %s%s", 'a'+l.Index, l.Name, worn))
		}
		lines = append(lines, "", "ESC to cancel")
		fe.drawPanel(s, lines)
		return
	}
	if st.CharacterScreen.Has(s.Player) {
		fe.drawPanel(s, append([]string{"Character", ""}, s.CharacterSheet()...))
		return
	}
	if st.HelpScreen.Has(s.Player) {
		fe.drawPanel(s, append([]string{"Commands", ""}, world.HelpLines()...))
	}
}

// drawPanel centers a boxed text panel over the map.
func (fe *tcellFrontend) drawPanel(s *world.State, lines []string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 2
	x0 := (s.Map.W - w) / 2
	y0 := (s.Map.H - h) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			fe.screen.SetContent(x, y, ' ', nil, border)
		}
	}
	for i, l := range lines {
		fe.print(x0+2, y0+1+i, l, border)
	}
}

func (fe *tcellFrontend) print(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		fe.screen.SetContent(x+i, y, r, nil, style)
	}
}

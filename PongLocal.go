package main

import (
	"PongMatch/core"
	"PongMatch/logger"
	"fmt"
	"time"

	"github.com/gdamore/tcell"
	"github.com/sirupsen/logrus"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

type localGame struct {
	screen tcell.Screen
	match  *core.Match
	hold   *keyHold
	tick   time.Duration
	log    *logrus.Entry
}

func newLocalGame(screen tcell.Screen, match *core.Match, conf core.RunConfig) *localGame {
	return &localGame{
		screen: screen,
		match:  match,
		hold:   newKeyHold(time.Duration(conf.ReleaseMillis)*time.Millisecond, time.Duration(conf.FirstRepeatMillis)*time.Millisecond),
		tick:   time.Duration(conf.TickMillis) * time.Millisecond,
		log:    logger.Log.WithMatch(match.ID()),
	}
}

// startGameLoop runs until the match is finished or the player quits and returns the last state.
func (g *localGame) startGameLoop() core.State {
	done := make(chan struct{})
	defer close(done)

	inputChan := g.initUserInput(done)
	for {
		if quit := g.userOperationHandle(inputChan, time.Now()); quit {
			left, right := g.match.Score()
			g.log.WithFields(logrus.Fields{"left": left, "right": right}).
				Info(fmt.Sprintf(logger.MatchQuitMsg, left, right))
			return g.match.State()
		}

		if state := g.updateState(); state == core.Finished {
			g.drawView()
			return state
		}

		g.drawView()
		time.Sleep(g.tick)
	}
}

func (g *localGame) updateState() core.State {
	state, events := g.match.Update()
	for _, e := range events {
		g.log.WithFields(logrus.Fields{"left": e.LeftScore, "right": e.RightScore}).Info(e.String())
	}
	return state
}

// userOperationHandle drains every pending key event, then releases keys whose repeats stopped.
func (g *localGame) userOperationHandle(inputChan chan *tcell.EventKey, now time.Time) bool {
	for {
		ev := readInput(inputChan)
		if ev == nil {
			break
		}
		if isQuitKey(ev) {
			return true
		}

		key := core.ParseKey(ev.Name())
		if key == core.KeyOther {
			continue
		}
		g.hold.press(key, now)
		g.match.Press(key)
	}

	for _, key := range g.hold.expired(now) {
		g.match.Release(key)
	}
	return false
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

func (g *localGame) initUserInput(done <-chan struct{}) chan *tcell.EventKey {
	inputChan := make(chan *tcell.EventKey, 16)

	// PollEvent returns nil once the screen is finalized
	go func() {
		for {
			switch ev := g.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				if !forwardKey(inputChan, ev, done) {
					return
				}
			}
		}
	}()

	return inputChan
}

// forwardKey hands ev to the game loop and reports false once the loop is gone.
func forwardKey(inputChan chan<- *tcell.EventKey, ev *tcell.EventKey, done <-chan struct{}) bool {
	select {
	case inputChan <- ev:
		return true
	case <-done:
		return false
	}
}

func readInput(inputChan chan *tcell.EventKey) *tcell.EventKey {
	select {
	case ev := <-inputChan:
		return ev
	default:
		return nil
	}
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

func (g *localGame) drawView() {
	drawFrame(g.screen, g.match.Render())
}

// drawFrame scales the arena onto the terminal cell grid.
func drawFrame(screen tcell.Screen, frame core.Frame) {
	bg := toTcellColor(frame.Background)
	screen.SetStyle(tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite))
	screen.Clear()

	cols, rows := screen.Size()
	for _, shape := range frame.Shapes {
		style := tcell.StyleDefault.Background(bg).Foreground(toTcellColor(shape.Color))
		switch shape.Kind {
		case core.RectShape:
			drawRect(screen, frame, cols, rows, shape.Rect, style)
		case core.CircleShape:
			drawCircle(screen, frame, cols, rows, shape.Circle, style)
		}
	}
	screen.Show()
}

func drawRect(screen tcell.Screen, frame core.Frame, cols, rows int, r core.Rect, style tcell.Style) {
	c0, c1 := clamp(r.X*cols/frame.Width, 0, cols), clamp(r.Right()*cols/frame.Width, 0, cols)
	r0, r1 := clamp(r.Y*rows/frame.Height, 0, rows), clamp(r.Bottom()*rows/frame.Height, 0, rows)
	Print(screen, r0, c0, c1-c0, r1-r0, PaddleSymbol, style)
}

// drawCircle fills every cell whose centre falls inside the circle.
func drawCircle(screen tcell.Screen, frame core.Frame, cols, rows int, c core.Circle, style tcell.Style) {
	c0 := clamp((c.X-c.Radius)*cols/frame.Width-1, 0, cols)
	c1 := clamp((c.X+c.Radius)*cols/frame.Width+1, 0, cols)
	r0 := clamp((c.Y-c.Radius)*rows/frame.Height-1, 0, rows)
	r1 := clamp((c.Y+c.Radius)*rows/frame.Height+1, 0, rows)

	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			x := (2*col + 1) * frame.Width / (2 * cols)
			y := (2*row + 1) * frame.Height / (2 * rows)
			if c.Contains(x, y) {
				screen.SetContent(col, row, BallSymbol, nil, style)
			}
		}
	}
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

// toTcellColor flattens the alpha channel onto black.
func toTcellColor(c core.Color) tcell.Color {
	a := c[3]
	return tcell.NewRGBColor(int32(c[0]*a*255), int32(c[1]*a*255), int32(c[2]*a*255))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

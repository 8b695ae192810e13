package commands

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/battlesnakeio/snake/game"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	promptColor  = termbox.ColorWhite | termbox.AttrBold

	// each tile is two cells wide so the board looks square
	tileWidth = 2
	left      = 2
	top       = 2
)

// termScreen draws to the terminal and reads game over answers from the
// event pump.
type termScreen struct {
	answers chan termbox.Event
	last    game.Snapshot
}

func newTermScreen() *termScreen {
	return &termScreen{answers: make(chan termbox.Event)}
}

func (s *termScreen) Draw(snap game.Snapshot) error {
	s.last = snap
	return render(snap, "")
}

func (s *termScreen) Confirm(ctx context.Context, message string) (bool, error) {
	if err := render(s.last, message); err != nil {
		return false, err
	}
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case ev := <-s.answers:
			if yes, ok := promptAnswer(ev); ok {
				return yes, nil
			}
		}
	}
}

// answer hands ev to a waiting Confirm. It reports false when no prompt is
// showing.
func (s *termScreen) answer(ev termbox.Event) bool {
	select {
	case s.answers <- ev:
		return true
	default:
		return false
	}
}

func render(snap game.Snapshot, prompt string) error {
	err := termbox.Clear(defaultColor, bgColor)
	if err != nil {
		return err
	}

	w, h := termbox.Size()
	needW, needH := boardSize(snap)
	if w < needW || h < needH {
		tbprint(0, 0, defaultColor, bgColor, fmt.Sprintf("Terminal too small, need %dx%d", needW, needH))
		return termbox.Flush()
	}

	renderTitle(snap)
	renderBoard(snap.Width, snap.Height)
	renderFood(snap.Food)
	renderSnake(snap)
	renderHelp(snap)
	if prompt != "" {
		renderPrompt(snap, prompt)
	}

	return termbox.Flush()
}

// boardSize is the number of terminal columns and rows needed to draw snap.
func boardSize(snap game.Snapshot) (int, int) {
	return left + snap.Width*tileWidth + 1, top + snap.Height + 3
}

// tileCell returns the terminal cell of the left half of a tile.
func tileCell(t game.Tile) (int, int) {
	return left + t.X*tileWidth, top + 1 + t.Y
}

func renderSnake(snap game.Snapshot) {
	setTile(snap.Head, ' ', snakeColor)
	for _, b := range snap.Body {
		setTile(b, ' ', snakeColor)
	}
}

func setTile(t game.Tile, ch rune, bg termbox.Attribute) {
	x, y := tileCell(t)
	for i := 0; i < tileWidth; i++ {
		termbox.SetCell(x+i, y, ch, defaultColor, bg)
	}
}

func renderFood(food game.Tile) {
	x, y := tileCell(food)
	termbox.SetCell(x, y, getFoodEmoji(food), defaultColor, bgColor)
}

var foods = map[game.Tile]rune{}

func getFoodEmoji(t game.Tile) rune {
	r, ok := foods[t]
	if !ok {
		r = randomFoodEmoji()
		foods[t] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍍',
		'🍑',
		'🍇',
		'🍏',
		'🍌',
		'🍓',
		'🍉',
		'🍋',
		'🍎',
	}

	return f[rand.Intn(len(f))]
}

func renderBoard(width, height int) {
	right := left + width*tileWidth
	bottom := top + height + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width*tileWidth, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width*tileWidth, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(snap game.Snapshot) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake! - Turn %d - Score %d", snap.Turn, snap.Score))
}

func renderHelp(snap game.Snapshot) {
	text := "arrows/wasd: move  esc: quit"
	if !snap.Started && snap.Over == nil {
		text = "press a direction to start  esc: quit"
	}
	tbprint(left, top+snap.Height+2, defaultColor, defaultColor, text)
}

// renderPrompt draws message and the y/n hint in a box centred on the board.
func renderPrompt(snap game.Snapshot, message string) {
	lines := append(strings.Split(message, "\n"), "", "(y)es / (n)o")

	width := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > width {
			width = lw
		}
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := left + (snap.Width*tileWidth-boxW)/2
	y := top + 1 + (snap.Height-boxH)/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	fill(x, y, boxW, boxH, termbox.Cell{Ch: ' ', Bg: termbox.ColorBlack})
	for i, l := range lines {
		tbprint(x+2, y+1+i, promptColor, termbox.ColorBlack, l)
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

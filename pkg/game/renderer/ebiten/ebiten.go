package ebiten

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	engineinput "chunky/pkg/engine/input"
	"chunky/pkg/game/renderer"
)

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64 // milliseconds
	lastRepeat   int64
}

// EbitenRenderer draws frames in a window and turns key presses into intents.
// RenderFrame may be called from any goroutine; Run must be called from main.
type EbitenRenderer struct {
	title    string
	cols     int
	rows     int
	tileSize int

	monoFontSource *text.GoTextFaceSource
	monoFace       *text.GoTextFace

	// Current frame (set by RenderFrame)
	frame      renderer.Frame
	frameMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	keyRepeatState map[string]keyRepeatInfo

	closed             bool
	closeMutex         sync.Mutex
	windowOpenedLogged bool
}

// New creates a renderer with a map window of cols x rows tiles
func New(title string, cols, rows int) *EbitenRenderer {
	return &EbitenRenderer{
		title:          title,
		cols:           cols,
		rows:           rows,
		tileSize:       defaultTileSize,
		inputChan:      make(chan engineinput.Intent, 16),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads the font and sizes the window
func (e *EbitenRenderer) Init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Printf("ebiten: cannot load font: %v", err)
	} else {
		e.monoFontSource = src
		e.monoFace = &text.GoTextFace{
			Source: src,
			Size:   baseFontSize * float64(e.tileSize) / defaultTileSize,
		}
	}
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(e.title)
}

// Clear drops the current frame
func (e *EbitenRenderer) Clear() {
	e.frameMutex.Lock()
	e.frame = renderer.Frame{}
	e.frameMutex.Unlock()
}

// RenderFrame stores f for the next Draw
func (e *EbitenRenderer) RenderFrame(f renderer.Frame) {
	e.frameMutex.Lock()
	e.frame = f
	e.frameMutex.Unlock()
}

// Intents returns the channel key presses are delivered on
func (e *EbitenRenderer) Intents() <-chan engineinput.Intent {
	return e.inputChan
}

// Close makes the game loop stop after the current frame
func (e *EbitenRenderer) Close() {
	e.closeMutex.Lock()
	e.closed = true
	e.closeMutex.Unlock()
}

func (e *EbitenRenderer) isClosed() bool {
	e.closeMutex.Lock()
	defer e.closeMutex.Unlock()
	return e.closed
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cols * e.tileSize, (e.rows + statusLines) * e.tileSize
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

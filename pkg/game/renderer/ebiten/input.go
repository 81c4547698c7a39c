package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "chunky/pkg/engine/input"
)

// keyCodes maps keys to the raw codes the input bindings understand
var keyCodes = []struct {
	key    ebiten.Key
	code   string
	repeat bool
}{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyM, "m", false},
	{ebiten.KeyF, "f", false},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.isClosed() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Window opened (%dx%d)", w, h)
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// checkInput returns the intent of the first key pressed this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range keyCodes {
		triggered := inpututil.IsKeyJustPressed(k.key)
		if k.repeat {
			key := k.key
			triggered = e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, k.code, time.Now().UnixMilli())
		}
		if triggered {
			raw := engineinput.NewRawInput(engineinput.DeviceKeyboard, k.code)
			return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string, now int64) bool {
	state, exists := e.keyRepeatState[code]

	if !isPressed() {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

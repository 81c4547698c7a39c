package gameplay

import (
	engineinput "chunky/pkg/engine/input"
	"chunky/pkg/game/i18n"
	"chunky/pkg/game/renderer"
)

// Session is the state an interactive client drives with intents.
type Session struct {
	Terrain Terrain
	Player  Player
	Fog     *Fog // nil disables fog of war

	// OnMove runs after the player entered a new tile, e.g. to recentre a view.
	OnMove func(x, y int)
	// OnDump handles the dump-map action and returns a status line.
	OnDump func() string

	Message string
	Quit    bool
}

// NewSession places the player at (x, y) on m and reveals the start.
func NewSession(m Terrain, fog *Fog, x, y int) *Session {
	s := &Session{Terrain: m, Player: Player{X: x, Y: y}, Fog: fog}
	s.reveal()
	return s
}

func (s *Session) reveal() {
	if s.Fog != nil {
		s.Fog.Reveal(s.Terrain, s.Player.X, s.Player.Y)
	}
}

// Visible reports whether (x, y) should be drawn.
func (s *Session) Visible(x, y int) bool {
	return s.Fog == nil || s.Fog.Discovered(x, y)
}

// ProcessIntent applies one high-level intent to the session.
func ProcessIntent(s *Session, intent engineinput.Intent) {
	s.Message = ""

	if dir, ok := intent.Direction(); ok {
		switch s.Player.Move(s.Terrain, dir) {
		case Moved:
			if s.OnMove != nil {
				s.OnMove(s.Player.X, s.Player.Y)
			}
			s.reveal()
		case OpenedDoor:
			s.Message = i18n.T("DOOR_OPENED")
			s.reveal()
		}
		return
	}

	switch intent.Action {
	case engineinput.ActionQuit:
		s.Quit = true
	case engineinput.ActionToggleFog:
		if s.Fog != nil {
			s.Fog.Toggle()
		}
	case engineinput.ActionDumpMap:
		if s.OnDump != nil {
			s.Message = s.OnDump()
		}
	}
}

// FrameSpec describes the w x h window with top-left tile (ox, oy) as seen by
// the player.
func (s *Session) FrameSpec(ox, oy, w, h int) renderer.FrameSpec {
	return renderer.FrameSpec{
		OriginX:    ox,
		OriginY:    oy,
		Width:      w,
		Height:     h,
		Visible:    s.Visible,
		ShowPlayer: true,
		PlayerX:    s.Player.X,
		PlayerY:    s.Player.Y,
		Message:    s.Message,
	}
}

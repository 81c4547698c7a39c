package gameplay

import (
	"chunky/pkg/game/chunkview"
	"chunky/pkg/game/renderer"
	"chunky/pkg/game/tile"
)

// NewViewSession starts a session over v with the player at world tile
// (x, y). When that tile cannot be stood on the player starts at the anchor
// of the chunk holding it instead. The view follows the player.
func NewViewSession(v *chunkview.View, x, y int) *Session {
	v.ChangePosition(x, y)
	if !Walkable(v.Tile(x, y)) || v.Entity(x, y) != tile.None {
		if c, local, ok := v.ChunkAt(x, y); ok {
			if a, ok := c.Anchor(); ok {
				x += a.X - local.X
				y += a.Y - local.Y
				v.ChangePosition(x, y)
			}
		}
	}

	w, h := v.WorldSize()
	s := NewSession(v, NewFog(w, h), x, y)
	s.OnMove = v.ChangePosition
	return s
}

// ViewFrameSpec describes the view's current window as seen by the player.
func (s *Session) ViewFrameSpec(v *chunkview.View) renderer.FrameSpec {
	ox, oy := v.Origin()
	return s.FrameSpec(ox, oy, v.ViewWidth(), v.ViewHeight())
}

package renderer

// TextStyle represents the colour class of a drawn cell
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleDoor
	StyleChest
	StyleSacred // altars, shrines, groves and rails
	StyleNature
	StyleHazard
	StyleEntity
	StylePlayer
	StyleSubtle
)

// Renderer defines the interface for map rendering backends.
// Implementations are the terminal (tui) and a window (ebiten).
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws a complete frame: the map window and status lines
	RenderFrame(f Frame)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(f Frame) {
	if Current != nil {
		Current.RenderFrame(f)
	}
}

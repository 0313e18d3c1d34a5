package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyC     = 67  // C key (ASCII)
	KeyV     = 86  // V key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
	KeyTab   = 258 // Tab key (GLFW)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)

	KeyLeftShift   = 340 // Left shift (GLFW)
	KeyLeftControl = 341 // Left control (GLFW)
)

var namedKeys = map[string]uint32{
	"SPACE":   KeySpace,
	"ESCAPE":  KeyEsc,
	"ESC":     KeyEsc,
	"TAB":     KeyTab,
	"RIGHT":   KeyRight,
	"LEFT":    KeyLeft,
	"DOWN":    KeyDown,
	"UP":      KeyUp,
	"SHIFT":   KeyLeftShift,
	"CONTROL": KeyLeftControl,
	"CTRL":    KeyLeftControl,
}

// KeyByName resolves a key name from configuration to its virtual key code.
// Single letters and digits map to their ASCII code; named keys (space, escape, tab,
// arrows, shift, control) are matched case-insensitively.
//
// Parameters:
//   - name: the key name, e.g. "W", "up", "space"
//
// Returns:
//   - uint32: the virtual key code
//   - bool: false if the name is not recognized
func KeyByName(name string) (uint32, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if len(upper) == 1 {
		c := upper[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return uint32(c), true
		}
		return 0, false
	}
	code, ok := namedKeys[upper]
	return code, ok
}

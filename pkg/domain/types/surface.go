package types

import "fmt"

// Surface selects which action set a dashboard view offers.
// The profile view of a single player and the live roster view
// present different, independently ordered action menus.
type Surface string

const (
	SurfaceProfile Surface = "profile"
	SurfaceRoster  Surface = "roster"
)

// AllSurfaces returns all valid surfaces
func AllSurfaces() []Surface {
	return []Surface{SurfaceProfile, SurfaceRoster}
}

// IsValid checks if the surface is valid
func (s Surface) IsValid() bool {
	switch s {
	case SurfaceProfile, SurfaceRoster:
		return true
	default:
		return false
	}
}

// String returns the string representation of the surface
func (s Surface) String() string {
	return string(s)
}

// ParseSurface parses a string into a Surface
func ParseSurface(s string) (Surface, error) {
	surface := Surface(s)
	if !surface.IsValid() {
		return "", fmt.Errorf("invalid surface: %s", s)
	}
	return surface, nil
}

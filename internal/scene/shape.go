package scene

import (
	"fmt"
	"strings"
)

// ShapeID identifies one of the selectable primitives.
type ShapeID int

const (
	None ShapeID = iota
	Lightning
	Cloud
	Rainbow
	Rocket
	Star
	Saturn
	Earth
	Moon
)

var shapeNames = [...]string{
	None:      "none",
	Lightning: "lightning",
	Cloud:     "cloud",
	Rainbow:   "rainbow",
	Rocket:    "rocket",
	Star:      "star",
	Saturn:    "saturn",
	Earth:     "earth",
	Moon:      "moon",
}

func (s ShapeID) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("ShapeID(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShapeID resolves a case-insensitive shape name.
func ParseShapeID(name string) (ShapeID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return ShapeID(i), nil
		}
	}
	return None, fmt.Errorf("scene: unknown shape %q", name)
}

// Shapes returns every selectable shape in button order.
func Shapes() []ShapeID {
	return []ShapeID{Lightning, Cloud, Rainbow, Rocket, Star, Saturn, Earth, Moon}
}

// Animated reports whether the animation clock spins the shape while it is active.
func (s ShapeID) Animated() bool {
	switch s {
	case Star, Saturn, Earth, Moon:
		return true
	}
	return false
}

// Colorable reports whether the user may override the shape's fill color.
func (s ShapeID) Colorable() bool {
	switch s {
	case Lightning, Cloud, Rocket:
		return true
	}
	return false
}

// Solid reports whether the shape is drawn with lighting and texturing enabled.
func (s ShapeID) Solid() bool {
	return s.Animated()
}

// Axis selects a rotation, translation or scale component.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis resolves "x", "y" or "z".
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return X, fmt.Errorf("scene: unknown axis %q", name)
}

func (a Axis) valid() bool {
	return a >= X && a <= Z
}

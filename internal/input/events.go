// Package input maps pointer, wheel and keyboard events onto transform
// controller operations.
package input

import (
	"fmt"
	"image"
	"strings"
)

// Button indicates a mouse button in an event.
type Button string

// List of all mouse buttons.
const (
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
)

// Key indicates a keyboard key in an event.
type Key int

// List of all keys the mapper reacts to.
const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQ
	KeyE
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyPlus
	KeyMinus
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
)

var keyNames = map[string]Key{
	"left":  KeyLeft,
	"right": KeyRight,
	"up":    KeyUp,
	"down":  KeyDown,
	"q":     KeyQ,
	"e":     KeyE,
	"w":     KeyW,
	"a":     KeyA,
	"s":     KeyS,
	"d":     KeyD,
	"r":     KeyR,
	"+":     KeyPlus,
	"plus":  KeyPlus,
	"=":     KeyPlus,
	"-":     KeyMinus,
	"minus": KeyMinus,
	"0":     Key0,
	"1":     Key1,
	"2":     Key2,
	"3":     Key3,
	"4":     Key4,
	"5":     Key5,
	"6":     Key6,
	"7":     Key7,
	"8":     Key8,
}

// ParseKey resolves a key name such as "left", "q" or "+".
func ParseKey(name string) (Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyUnknown, fmt.Errorf("input: unknown key %q", name)
	}
	return k, nil
}

type (
	// MouseDown is an event that happens when a mouse button gets pressed.
	MouseDown struct {
		image.Point
		Button Button
	}

	// MouseUp is an event that happens when a mouse button gets released.
	MouseUp struct {
		image.Point
		Button Button
	}

	// MouseMove is an event that happens when the mouse gets moved across the window.
	MouseMove struct{ image.Point }

	// Scroll is an event that happens on turning the wheel.
	// Positive notches scroll away from the user.
	Scroll struct{ Notches float64 }

	// KeyPress is an event that happens when a key gets pressed.
	KeyPress struct{ Key Key }

	// Resize is an event that happens when the drawable area changes size.
	Resize struct{ W, H int }
)

// Event is any of the event types above.
type Event interface{}

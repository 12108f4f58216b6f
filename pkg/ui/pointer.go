package ui

import "github.com/hajimehoshi/ebiten/v2"

// Pointer is the mouse state the widgets react to during one frame.
type Pointer struct {
	X, Y    float64
	Pressed bool    // left button held down
	WheelY  float64 // vertical wheel delta
}

// CurrentPointer reads the mouse state from ebiten.
func CurrentPointer() Pointer {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	return Pointer{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:  dy,
	}
}

// In reports whether the pointer is inside the rectangle.
func (p Pointer) In(x, y, w, h float64) bool {
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

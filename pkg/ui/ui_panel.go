package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update(p Pointer)
	Draw(screen *ebiten.Image)
	GetHeight() float64
	setY(y float64)
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // slider height + label space
}

func (s *SliderWrapper) setY(y float64) { s.Y = y }

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 20
}

func (c *CheckboxWrapper) setY(y float64) { c.Y = y }

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 10
}

func (b *ButtonWrapper) setY(y float64) { b.Y = y }

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	Title         string
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Widgets       []UIWidget
	Labels        []string // drawn above each widget, empty for buttons
	ScrollOffset  float64

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups the widgets added between AddSection and EndSection
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
	EndIndex   int // Widget index where this section ends (exclusive)
}

// NewUIPanel creates a new UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	yOffset := p.calculateNextYOffset()
	slider := NewSlider(p.X+10, p.Y+yOffset+15, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{slider}, label)
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	yOffset := p.calculateNextYOffset()
	checkbox := NewCheckbox(p.X+10, p.Y+yOffset+15, label, value)
	p.add(&CheckboxWrapper{checkbox}, label)
	return checkbox
}

// AddButton adds a full width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	yOffset := p.calculateNextYOffset()
	button := NewButton(p.X+10, p.Y+yOffset, p.Width-20, 24, label, onClick)
	p.add(&ButtonWrapper{button}, "")
	return button
}

func (p *UIPanel) add(w UIWidget, label string) {
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// calculateNextYOffset is the offset, from the panel top, of the next widget
func (p *UIPanel) calculateNextYOffset() float64 {
	offset := 30.0 // title
	offset += float64(len(p.sections)) * 25
	for _, widget := range p.Widgets {
		offset += widget.GetHeight()
	}
	return offset
}

// calculateTotalHeight calculates the total content height
func (p *UIPanel) calculateTotalHeight() float64 {
	return p.calculateNextYOffset()
}

// Contains reports whether the pointer is over the panel, clicks there
// must not reach the world behind it.
func (p *UIPanel) Contains(ptr Pointer) bool {
	return ptr.In(p.X, p.Y, p.Width, p.Height)
}

// Update handles scrolling and input for all widgets
func (p *UIPanel) Update(ptr Pointer) {
	if ptr.WheelY != 0 && p.Contains(ptr) {
		p.ScrollOffset -= ptr.WheelY * 20
		maxScroll := max(0, p.calculateTotalHeight()-p.Height+10)
		p.ScrollOffset = max(0, min(maxScroll, p.ScrollOffset))
	}
	p.layout()
	for _, widget := range p.Widgets {
		widget.Update(ptr)
	}
}

// layout moves every widget to its scrolled position
func (p *UIPanel) layout() {
	currentY := p.Y + 30 - p.ScrollOffset
	widgetIdx := 0
	place := func(end int) {
		for ; widgetIdx < end && widgetIdx < len(p.Widgets); widgetIdx++ {
			w := p.Widgets[widgetIdx]
			if p.Labels[widgetIdx] != "" {
				w.setY(currentY + 15)
			} else {
				w.setY(currentY)
			}
			currentY += w.GetHeight()
		}
	}
	for _, section := range p.sections {
		place(section.StartIndex)
		currentY += 25
		place(section.EndIndex)
	}
	place(len(p.Widgets))
}

// visible reports whether a widget starting at y is inside the panel
func (p *UIPanel) visible(y, h float64) bool {
	return y >= p.Y+20 && y+h <= p.Y+p.Height
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	p.layout()
	currentY := p.Y + 30 - p.ScrollOffset
	widgetIdx := 0
	drawUntil := func(end int) {
		for ; widgetIdx < end && widgetIdx < len(p.Widgets); widgetIdx++ {
			w := p.Widgets[widgetIdx]
			if p.visible(currentY, w.GetHeight()) {
				if label := p.Labels[widgetIdx]; label != "" {
					ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(currentY))
				}
				w.Draw(screen)
			}
			currentY += w.GetHeight()
		}
	}
	for _, section := range p.sections {
		drawUntil(section.StartIndex)
		if p.visible(currentY, 20) {
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, section.Title, int(p.X+10), int(currentY+3))
		}
		currentY += 25
		drawUntil(section.EndIndex)
	}
	drawUntil(len(p.Widgets))
}

// GetSliderValue gets the value of a slider by index
func (p *UIPanel) GetSliderValue(index int) float64 {
	if index < 0 || index >= len(p.Widgets) {
		return 0
	}
	if sw, ok := p.Widgets[index].(*SliderWrapper); ok {
		return sw.Value
	}
	return 0
}

// GetCheckboxValue gets the value of a checkbox by index
func (p *UIPanel) GetCheckboxValue(index int) bool {
	if index < 0 || index >= len(p.Widgets) {
		return false
	}
	if cw, ok := p.Widgets[index].(*CheckboxWrapper); ok {
		return cw.Value
	}
	return false
}

package teletext

import "github.com/charmbracelet/lipgloss"

const (
	Blue   = lipgloss.Color("#0000AA")
	Green  = lipgloss.Color("#00CC00")
	Cyan   = lipgloss.Color("#00CCCC")
	Yellow = lipgloss.Color("#CCCC00")
	White  = lipgloss.Color("#FFFFFF")
	Black  = lipgloss.Color("#000000")
)

// Temperature band edges in °C.
const (
	MildThreshold = 10
	WarmThreshold = 15
)

// MosaicGlyphs is indexed by a 4-bit mask of filled sub-cells.
var MosaicGlyphs = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛', '▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

// Sub-cell bits of a 2x2 block.
const (
	TopLeft     uint8 = 1
	TopRight    uint8 = 2
	BottomLeft  uint8 = 4
	BottomRight uint8 = 8
)

// Glyph returns the mosaic character for mask. Bits above the low four are ignored.
func Glyph(mask uint8) rune {
	return MosaicGlyphs[mask&0x0F]
}

// Palette names the colors the renderer paints with.
type Palette struct {
	Sea    lipgloss.Color
	Cold   lipgloss.Color
	Mild   lipgloss.Color
	Warm   lipgloss.Color
	Text   lipgloss.Color
	Header lipgloss.Color
}

func DefaultPalette() Palette {
	return Palette{
		Sea:    Blue,
		Cold:   Green,
		Mild:   Cyan,
		Warm:   Yellow,
		Text:   White,
		Header: Black,
	}
}

// TemperatureColor bands t into cold, mild or warm.
func (p Palette) TemperatureColor(t int) lipgloss.Color {
	switch {
	case t < MildThreshold:
		return p.Cold
	case t < WarmThreshold:
		return p.Mild
	default:
		return p.Warm
	}
}

// TemperatureColor uses the default palette.
func TemperatureColor(t int) lipgloss.Color {
	return DefaultPalette().TemperatureColor(t)
}

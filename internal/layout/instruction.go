package layout

// RGB is an opaque 8-bit color. Zero value is black.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Grey  = RGB{150, 150, 150}
)

// FontStyle matches the renderer's font style selectors.
type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
	FontItalic  FontStyle = "I"
)

// TextStyle is the font selection for a single text run. It is also the unit
// the measure function is parameterized by: the same text has different
// widths under different styles.
type TextStyle struct {
	Family string
	Style  FontStyle
	Size   float64
	Color  RGB
}

// Op discriminates draw instructions.
type Op string

const (
	OpText Op = "text"
	OpRule Op = "rule"
	OpRect Op = "rect"
)

// Instruction is one backend-agnostic drawing operation at an absolute
// position. Coordinates and sizes are in the renderer's units (mm for the
// PDF backend); Y is the text baseline for OpText and the line/box origin
// otherwise.
type Instruction struct {
	Op Op
	X  float64
	Y  float64

	// OpText
	Text string
	Font TextStyle

	// OpRule: W is the horizontal length, H the stroke width.
	// OpRect: W and H are the filled box dimensions.
	W     float64
	H     float64
	Color RGB
}

// TextRun builds a text instruction.
func TextRun(x, y float64, text string, font TextStyle) Instruction {
	return Instruction{Op: OpText, X: x, Y: y, Text: text, Font: font}
}

// Rule builds a horizontal line instruction.
func Rule(x, y, width, stroke float64, color RGB) Instruction {
	return Instruction{Op: OpRule, X: x, Y: y, W: width, H: stroke, Color: color}
}

// FilledRect builds a filled rectangle instruction.
func FilledRect(x, y, w, h float64, color RGB) Instruction {
	return Instruction{Op: OpRect, X: x, Y: y, W: w, H: h, Color: color}
}

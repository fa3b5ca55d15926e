package color

import (
	"github.com/fatih/color"
)

// Color identifies a card color on the wire and carries its terminal paint.
type Color string

const (
	Red    Color = "RED"
	Yellow Color = "YELLOW"
	Green  Color = "GREEN"
	Blue   Color = "BLUE"

	// Sentinel colors for the special kinds.
	Wild Color = "WILD"
	Skip Color = "SKIP"
)

var paints = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
	Skip:   color.New(color.FgHiBlack).SprintfFunc(),
}

func (c Color) Paint(text string) string {
	if paint, ok := paints[c]; ok {
		return paint("%s", text)
	}
	return text
}

func (c Color) Paintf(format string, args ...interface{}) string {
	if paint, ok := paints[c]; ok {
		return paint(format, args...)
	}
	return format
}

func (c Color) String() string {
	return string(c)
}

// Playable lists the four colors number cards come in.
var Playable = []Color{Red, Yellow, Green, Blue}

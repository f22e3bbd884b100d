package app

import "github.com/ferrule/pomotide/store"

// Palette holds all visual styling constants for one theme.
type Palette struct {
	// Page colors
	Background string
	Surface    string

	// Countdown dial colors
	DialTrack string
	DialFocus string
	DialBreak string
	DialGlow  string

	// Text colors
	TimeColor     string
	LabelColor    string
	TextSecondary string

	// Control colors
	ButtonFill   string
	ButtonBorder string
	Accent       string

	// Fonts
	TimeFont  string
	LabelFont string
}

// Palettes maps theme names to their styling. The default leans on
// deep sea blues; the rest cover a dark dusk, a warm ember, and a
// light paper look.
var Palettes = map[string]Palette{
	"tide": {
		Background:    "#0B1E2D",
		Surface:       "#12293C",
		DialTrack:     "#1D3A52",
		DialFocus:     "#4FD1C5",
		DialBreak:     "#63B3ED",
		DialGlow:      "#4FD1C5",
		TimeColor:     "#EDF2F7",
		LabelColor:    "#A0AEC0",
		TextSecondary: "#718096",
		ButtonFill:    "#12293C",
		ButtonBorder:  "#4FD1C5",
		Accent:        "#4FD1C5",
		TimeFont:      "Consolas,monospace",
		LabelFont:     "16px sans-serif",
	},
	"dusk": {
		Background:    "#17131F",
		Surface:       "#221B30",
		DialTrack:     "#332947",
		DialFocus:     "#B794F4",
		DialBreak:     "#76E4F7",
		DialGlow:      "#B794F4",
		TimeColor:     "#FAF5FF",
		LabelColor:    "#A99BC4",
		TextSecondary: "#7B6F96",
		ButtonFill:    "#221B30",
		ButtonBorder:  "#B794F4",
		Accent:        "#B794F4",
		TimeFont:      "Consolas,monospace",
		LabelFont:     "16px sans-serif",
	},
	"ember": {
		Background:    "#1A1210",
		Surface:       "#2A1C16",
		DialTrack:     "#3E2A20",
		DialFocus:     "#F6AD55",
		DialBreak:     "#FBD38D",
		DialGlow:      "#F6AD55",
		TimeColor:     "#FFFAF0",
		LabelColor:    "#C4A48A",
		TextSecondary: "#97765C",
		ButtonFill:    "#2A1C16",
		ButtonBorder:  "#F6AD55",
		Accent:        "#F6AD55",
		TimeFont:      "Consolas,monospace",
		LabelFont:     "16px sans-serif",
	},
	"paper": {
		Background:    "#F7F3EC",
		Surface:       "#FFFFFF",
		DialTrack:     "#E2DCD1",
		DialFocus:     "#2C7A7B",
		DialBreak:     "#2B6CB0",
		DialGlow:      "#2C7A7B",
		TimeColor:     "#1A202C",
		LabelColor:    "#4A5568",
		TextSecondary: "#718096",
		ButtonFill:    "#FFFFFF",
		ButtonBorder:  "#2C7A7B",
		Accent:        "#2C7A7B",
		TimeFont:      "Consolas,monospace",
		LabelFont:     "16px sans-serif",
	},
}

// ThemePalette resolves a theme by name, falling back to the default.
func ThemePalette(name string) Palette {
	if p, ok := Palettes[name]; ok {
		return p
	}
	return Palettes[store.DefaultTheme]
}

// ThemeNames lists the available themes for the settings UI.
func ThemeNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	return names
}

package fracjson

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/fracjson/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName:    ansi.PaletteJQDefault,
	"jq":                  ansi.PaletteJQDefault,
	"catppuccin-mocha":    ansi.PaletteCatppuccinMocha,
	"doom-dracula":        ansi.PaletteDoomDracula,
	"doom-gruvbox":        ansi.PaletteDoomGruvbox,
	"doom-iosvkem":        ansi.PaletteDoomIosvkem,
	"doom-nord":           ansi.PaletteDoomNord,
	"gruvbox-light":       ansi.PaletteGruvboxLight,
	"monokai-vibrant":     ansi.PaletteMonokaiVibrant,
	"one-dark-aurora":     ansi.PaletteOneDarkAurora,
	"outrun-electric":     ansi.PaletteOutrunElectric,
	"solarized-nightfall": ansi.PaletteSolarizedNightfall,
	"synthwave84":         ansi.PaletteSynthwave84,
	"tokyo-night":         ansi.PaletteTokyoNight,
	"basic-16":            ansi.PaletteBasic16,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// resolvePalette looks up opts.Palette ("default" when empty). The name is
// validated even when enableColor is false, in which case no palette is
// returned.
func resolvePalette(opts *Options, enableColor bool) (ColorPalette, error) {
	name := paletteDefaultName
	if opts != nil && strings.TrimSpace(opts.Palette) != "" {
		name = strings.ToLower(strings.TrimSpace(opts.Palette))
	}

	if name == paletteNoneName {
		return NoColorPalette(), nil
	}

	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("%w: unknown palette %q (use one of: %s)", ErrBadOption, name, strings.Join(PaletteNames(), ", "))
	}

	if !enableColor {
		return NoColorPalette(), nil
	}
	return colorPaletteFromAnsi(ap), nil
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	brackets := ap.Brackets
	if brackets == "" {
		brackets = ap.Null
	}
	punct := ap.Punctuation
	if punct == "" {
		punct = brackets
	}
	comment := ap.Comment
	if comment == "" {
		comment = ap.Null
	}

	return ColorPalette{
		Key:         ap.Key,
		String:      ap.String,
		Number:      ap.Number,
		True:        ap.Bool,
		False:       ap.Bool,
		Null:        ap.Null,
		Brackets:    brackets,
		Punctuation: punct,
		Comment:     comment,
	}
}

// NoColorPalette disables all styling; Colorize returns its input unchanged.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}

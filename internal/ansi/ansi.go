// Package ansi provides ANSI escape sequences and the colour presets used to
// highlight formatted JSONC. The palette values are derived from
// pkt.systems/pslog/ansi (MIT License).
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Palette assigns an escape sequence to each token class. An empty entry
// leaves the token unstyled.
type Palette struct {
	Key         string
	String      string
	Number      string
	Bool        string
	Null        string
	Brackets    string
	Punctuation string
	Comment     string
}

// PaletteJQDefault mirrors jq's default JQ_COLORS:
// 0;90:null, 0;39:false, 0;39:true, 0;39:numbers, 0;32:strings,
// 1;39:arrays, 1;39:objects, 1;34:keys.
var PaletteJQDefault = Palette{
	Key:         "\x1b[1;34m",
	String:      "\x1b[0;32m",
	Number:      "\x1b[0;39m",
	Bool:        "\x1b[0;39m",
	Null:        "\x1b[0;90m",
	Brackets:    "\x1b[1;39m",
	Punctuation: "\x1b[1;39m",
	Comment:     "\x1b[0;90m",
}

// PaletteBasic16 uses only the 16 standard terminal colours.
var PaletteBasic16 = Palette{
	Key:         Cyan,
	String:      BrightBlue,
	Number:      Magenta,
	Bool:        Yellow,
	Null:        Faint,
	Brackets:    Faint,
	Punctuation: Faint,
	Comment:     Faint,
}

// PaletteOutrunElectric delivers an outrun electric palette with neon pinks and blues.
var PaletteOutrunElectric = Palette{
	Key:         "\x1b[38;5;201m",
	String:      "\x1b[38;5;81m",
	Number:      "\x1b[38;5;99m",
	Bool:        "\x1b[38;5;69m",
	Null:        "\x1b[38;5;60m",
	Brackets:    "\x1b[38;5;117m",
	Punctuation: "\x1b[38;5;60m",
	Comment:     "\x1b[38;5;117m",
}

// PaletteDoomIosvkem mirrors doom-emacs' iosvkem theme with dusky oranges and seafoam greens.
var PaletteDoomIosvkem = Palette{
	Key:         "\x1b[38;5;222m",
	String:      "\x1b[38;5;216m",
	Number:      "\x1b[38;5;109m",
	Bool:        "\x1b[38;5;151m",
	Null:        "\x1b[38;5;244m",
	Brackets:    "\x1b[38;5;114m",
	Punctuation: "\x1b[38;5;244m",
	Comment:     "\x1b[38;5;242m",
}

// PaletteDoomGruvbox echoes doom-gruvbox colours with earthy reds and ambers.
var PaletteDoomGruvbox = Palette{
	Key:         "\x1b[38;5;214m",
	String:      "\x1b[38;5;178m",
	Number:      "\x1b[38;5;108m",
	Bool:        "\x1b[38;5;142m",
	Null:        "\x1b[38;5;101m",
	Brackets:    "\x1b[38;5;172m",
	Punctuation: "\x1b[38;5;101m",
	Comment:     "\x1b[38;5;137m",
}

// PaletteDoomDracula mirrors doom-dracula with pink, purple, and cyan accents.
var PaletteDoomDracula = Palette{
	Key:         "\x1b[38;5;219m",
	String:      "\x1b[38;5;141m",
	Number:      "\x1b[38;5;111m",
	Bool:        "\x1b[38;5;81m",
	Null:        "\x1b[38;5;240m",
	Brackets:    "\x1b[38;5;147m",
	Punctuation: "\x1b[38;5;95m",
	Comment:     "\x1b[38;5;95m",
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Key:         "\x1b[38;5;153m",
	String:      "\x1b[38;5;152m",
	Number:      "\x1b[38;5;109m",
	Bool:        "\x1b[38;5;115m",
	Null:        "\x1b[38;5;245m",
	Brackets:    "\x1b[38;5;110m",
	Punctuation: "\x1b[38;5;245m",
	Comment:     "\x1b[38;5;109m",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues, violets, and warm highlights.
var PaletteTokyoNight = Palette{
	Key:         "\x1b[38;5;69m",
	String:      "\x1b[38;5;110m",
	Number:      "\x1b[38;5;176m",
	Bool:        "\x1b[38;5;117m",
	Null:        "\x1b[38;5;244m",
	Brackets:    "\x1b[38;5;74m",
	Punctuation: "\x1b[38;5;244m",
	Comment:     "\x1b[38;5;109m",
}

// PaletteSolarizedNightfall adapts Solarized Night with teal highlights and amber warnings.
var PaletteSolarizedNightfall = Palette{
	Key:         "\x1b[38;5;37m",
	String:      "\x1b[38;5;86m",
	Number:      "\x1b[38;5;61m",
	Bool:        "\x1b[38;5;65m",
	Null:        "\x1b[38;5;239m",
	Brackets:    "\x1b[38;5;33m",
	Punctuation: "\x1b[38;5;239m",
	Comment:     "\x1b[38;5;244m",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha with soft pastels and rosewater highlights.
var PaletteCatppuccinMocha = Palette{
	Key:         "\x1b[38;5;217m",
	String:      "\x1b[38;5;183m",
	Number:      "\x1b[38;5;147m",
	Bool:        "\x1b[38;5;152m",
	Null:        "\x1b[38;5;244m",
	Brackets:    "\x1b[38;5;182m",
	Punctuation: "\x1b[38;5;244m",
	Comment:     "\x1b[38;5;110m",
}

// PaletteGruvboxLight is a Gruvbox light variant with warm browns and turquoise hints.
var PaletteGruvboxLight = Palette{
	Key:         "\x1b[38;5;130m",
	String:      "\x1b[38;5;108m",
	Number:      "\x1b[38;5;66m",
	Bool:        "\x1b[38;5;142m",
	Null:        "\x1b[38;5;180m",
	Brackets:    "\x1b[38;5;136m",
	Punctuation: "\x1b[38;5;180m",
	Comment:     "\x1b[38;5;180m",
}

// PaletteMonokaiVibrant supplies a Monokai-inspired mix of neon yellows and minty greens.
var PaletteMonokaiVibrant = Palette{
	Key:         "\x1b[38;5;229m",
	String:      "\x1b[38;5;121m",
	Number:      "\x1b[38;5;198m",
	Bool:        "\x1b[38;5;118m",
	Null:        "\x1b[38;5;59m",
	Brackets:    "\x1b[38;5;141m",
	Punctuation: "\x1b[38;5;59m",
	Comment:     "\x1b[38;5;103m",
}

// PaletteOneDarkAurora reflects the One Dark Aurora theme with cyan, violet, and crimson tones.
var PaletteOneDarkAurora = Palette{
	Key:         "\x1b[38;5;110m",
	String:      "\x1b[38;5;147m",
	Number:      "\x1b[38;5;141m",
	Bool:        "\x1b[38;5;115m",
	Null:        "\x1b[38;5;59m",
	Brackets:    "\x1b[38;5;75m",
	Punctuation: "\x1b[38;5;59m",
	Comment:     "\x1b[38;5;109m",
}

// PaletteSynthwave84 channels synthwave aesthetics with glowing magentas, cyans, and gold accents.
var PaletteSynthwave84 = Palette{
	Key:         "\x1b[38;5;198m",
	String:      "\x1b[38;5;51m",
	Number:      "\x1b[38;5;207m",
	Bool:        "\x1b[38;5;219m",
	Null:        "\x1b[38;5;102m",
	Brackets:    "\x1b[38;5;45m",
	Punctuation: "\x1b[38;5;102m",
	Comment:     "\x1b[38;5;69m",
}

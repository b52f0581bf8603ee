package workspace

import "sort"

const (
	DefaultIcon  = "leaf"
	DefaultColor = "green"
)

// Color holds the terminal rendering hints for a palette entry. ANSI is
// an ANSI-256 color code consumed by the ui layer.
type Color struct {
	Label string
	ANSI  string
}

// Colors is the fixed workspace palette.
var Colors = map[string]Color{
	"green":  {Label: "Green", ANSI: "2"},
	"blue":   {Label: "Blue", ANSI: "4"},
	"purple": {Label: "Purple", ANSI: "5"},
	"orange": {Label: "Orange", ANSI: "208"},
	"red":    {Label: "Red", ANSI: "1"},
	"teal":   {Label: "Teal", ANSI: "6"},
}

// Icons maps icon keys to terminal glyphs.
var Icons = map[string]string{
	"leaf":       "❀",
	"sprout":     "⌁",
	"field":      "▦",
	"flask":      "⚗",
	"dna":        "◬",
	"seed":       "●",
	"sun":        "☀",
	"chart":      "▤",
	"microscope": "◉",
}

// ValidColor reports whether key names a palette entry.
func ValidColor(key string) bool {
	_, exists := Colors[key]
	return exists
}

// IconGlyph resolves an icon key to its glyph, falling back to the
// default icon for unknown keys.
func IconGlyph(key string) string {
	if glyph, exists := Icons[key]; exists {
		return glyph
	}
	return Icons[DefaultIcon]
}

func ColorKeys() []string {
	keys := make([]string, 0, len(Colors))
	for key := range Colors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func IconKeys() []string {
	keys := make([]string, 0, len(Icons))
	for key := range Icons {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

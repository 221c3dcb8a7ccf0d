package tools

// Name identifies a built-in tool.
type Name int

const (
	Line Name = iota
	Erase
	Text
	Spray
	Rectangle
	Bubbles
	Blobs
	BrokenLine
	Radiate
	RainbowLine
	Icicles
	Jagged
)

var displayNames = [...]string{
	Line:        "Line",
	Erase:       "Erase",
	Text:        "Text",
	Spray:       "Spray",
	Rectangle:   "Rectangle",
	Bubbles:     "Bubbles",
	Blobs:       "Blobs",
	BrokenLine:  "Broken Line",
	Radiate:     "Radiate",
	RainbowLine: "Rainbow Line",
	Icicles:     "Icicles",
	Jagged:      "Jagged",
}

// String returns the name shown in the tool selector.
func (n Name) String() string {
	if n < 0 || int(n) >= len(displayNames) {
		return "Unknown"
	}
	return displayNames[n]
}

// Names returns every tool in selector order.
func Names() []Name {
	out := make([]Name, len(displayNames))
	for i := range displayNames {
		out[i] = Name(i)
	}
	return out
}

// DisplayNames returns the selector labels in selector order.
func DisplayNames() []string {
	out := make([]string, len(displayNames))
	copy(out, displayNames[:])
	return out
}

// ParseName resolves a selector label.
func ParseName(s string) (Name, bool) {
	for i, d := range displayNames {
		if d == s {
			return Name(i), true
		}
	}
	return Line, false
}

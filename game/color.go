package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Color identifies one of the two sides. Black always makes the first
// opening removal.
type Color int

const (
	Black Color = iota
	White
)

func (c Color) Opposite() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// ParseColor accepts "Black" or "White" in any casing.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Black, fmt.Errorf("invalid color %q: must be \"Black\" or \"White\"", s)
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

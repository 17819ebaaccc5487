package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/opencells/internal/hex"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Name  string     `yaml:"name"`
	Cells []YAMLCell `yaml:"cells"`
}

// YAMLCell represents a single placed cell in YAML format.
type YAMLCell struct {
	Q             int    `yaml:"q"`
	R             int    `yaml:"r"`
	Kind          string `yaml:"kind"`                     // "empty" or "marked"
	ShowCount     *bool  `yaml:"show_count,omitempty"`     // Empty only, defaults to true
	ShowAround    bool   `yaml:"show_around,omitempty"`    // Marked only
	StartRevealed bool   `yaml:"start_revealed,omitempty"` // Authoring flag
}

// ParseYAML parses a level file. Hints are computed and every cell starts
// with Revealed equal to its StartRevealed flag.
func ParseYAML(data []byte) (*Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	l := New()
	l.Name = yl.Name

	for i, yc := range yl.Cells {
		a := hex.A(yc.Q, yc.R)
		if _, dup := l.Get(a); dup {
			return nil, fmt.Errorf("cell %d: duplicate coordinate %v", i, a)
		}

		var t Tile
		switch yc.Kind {
		case KindEmpty.String():
			show := true
			if yc.ShowCount != nil {
				show = *yc.ShowCount
			}
			t = Empty{ShowNeighborCount: show}
		case KindMarked.String():
			t = Marked{ShowAround: yc.ShowAround}
		default:
			return nil, fmt.Errorf("cell %d at %v: unknown kind %q", i, a, yc.Kind)
		}

		c := NewCell(t)
		c.StartRevealed = yc.StartRevealed
		l.Set(a, c)
	}

	l.ResetRevealed()
	l.CalculateHints()
	return l, nil
}

// LoadFile reads and parses a level file from disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	l, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", path, err)
	}
	return l, nil
}

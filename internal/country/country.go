package country

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Region is a named area on the map whose weather comes from City.
// Char is the single template character that marks its land cells and
// TempPos is the [col, row] template anchor for the temperature overlay.
type Region struct {
	Name    string `mapstructure:"name"`
	City    string `mapstructure:"city"`
	Char    string `mapstructure:"char"`
	TempPos []int  `mapstructure:"temp_pos"`
}

// Marker returns the region's template character.
func (r Region) Marker() rune {
	m, _ := utf8.DecodeRuneInString(r.Char)
	return m
}

// Anchor returns the template column and row of the temperature overlay.
func (r Region) Anchor() (col, row int) {
	if len(r.TempPos) != 2 {
		return 0, 0
	}
	return r.TempPos[0], r.TempPos[1]
}

// Country is one selectable map. Name is the file stem it was loaded from.
type Country struct {
	Name        string   `mapstructure:"-"`
	MapTemplate []string `mapstructure:"map_template"`
	Regions     []Region `mapstructure:"regions"`
	LeftText    []string `mapstructure:"left_text"`
	FooterText  string   `mapstructure:"footer_text"`
}

// Width is the length of the longest template line.
func (c Country) Width() int {
	w := 0
	for _, line := range c.MapTemplate {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}
	return w
}

// Height is the number of template lines.
func (c Country) Height() int {
	return len(c.MapTemplate)
}

// RegionByMarker finds the first region drawn with r.
func (c Country) RegionByMarker(r rune) (Region, bool) {
	for _, reg := range c.Regions {
		if reg.Marker() == r {
			return reg, true
		}
	}
	return Region{}, false
}

// Validate checks the template and regions agree with each other.
func (c Country) Validate() error {
	if len(c.MapTemplate) == 0 {
		return errors.New("map_template is empty")
	}
	if len(c.Regions) == 0 {
		return errors.New("no regions defined")
	}

	markers := make(map[rune]string, len(c.Regions))
	for i, r := range c.Regions {
		if r.Name == "" {
			return errors.Errorf("region %d: name is empty", i+1)
		}
		if r.City == "" {
			return errors.Errorf("region %q: city is empty", r.Name)
		}
		if utf8.RuneCountInString(r.Char) != 1 {
			return errors.Errorf("region %q: char must be exactly one character, got %q", r.Name, r.Char)
		}
		m := r.Marker()
		if m > unicode.MaxASCII || unicode.IsSpace(m) || !unicode.IsPrint(m) {
			return errors.Errorf("region %q: char %q must be a printable ASCII character", r.Name, r.Char)
		}
		if other, dup := markers[m]; dup {
			return errors.Errorf("region %q: char %q already used by %q", r.Name, r.Char, other)
		}
		markers[m] = r.Name

		if len(r.TempPos) != 2 {
			return errors.Errorf("region %q: temp_pos must have two values", r.Name)
		}
		col, row := r.Anchor()
		if col < 0 || row < 0 || col >= c.Width() || row >= c.Height() {
			return errors.Errorf("region %q: temp_pos [%d, %d] is outside the %dx%d template", r.Name, col, row, c.Width(), c.Height())
		}
	}

	for y, line := range c.MapTemplate {
		for x, ch := range []rune(line) {
			if ch > unicode.MaxASCII {
				return errors.Errorf("map_template line %d col %d: non-ASCII character %q", y+1, x+1, ch)
			}
			if ch == ' ' {
				continue
			}
			if _, ok := markers[ch]; !ok {
				return errors.Errorf("map_template line %d col %d: %q does not match any region", y+1, x+1, ch)
			}
		}
	}
	return nil
}

package country

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const validTOML = `
map_template = [
  "  AA",
  " AABB",
  "BB",
]
left_text = ["hello"]
footer_text = "bye"

[[regions]]
name = "North"
city = "Aberdeen"
char = "A"
temp_pos = [2, 0]

[[regions]]
name = "South"
city = "Brighton"
char = "B"
temp_pos = [0, 2]
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func sampleCountry() Country {
	return Country{
		MapTemplate: []string{"  AA", " AABB", "BB"},
		Regions: []Region{
			{Name: "North", City: "Aberdeen", Char: "A", TempPos: []int{2, 0}},
			{Name: "South", City: "Brighton", Char: "B", TempPos: []int{0, 2}},
		},
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "testland.toml", validTOML)

	c, err := Loader{Dir: dir}.Load("testland")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Name != "testland" {
		t.Errorf("expected name testland, got %q", c.Name)
	}
	if !reflect.DeepEqual(c.MapTemplate, []string{"  AA", " AABB", "BB"}) {
		t.Errorf("template not preserved: %q", c.MapTemplate)
	}
	if len(c.Regions) != 2 || c.Regions[1].City != "Brighton" {
		t.Fatalf("unexpected regions: %+v", c.Regions)
	}
	if col, row := c.Regions[1].Anchor(); col != 0 || row != 2 {
		t.Errorf("unexpected anchor %d,%d", col, row)
	}
	if c.FooterText != "bye" || len(c.LeftText) != 1 {
		t.Errorf("optional fields not decoded: %+v", c)
	}
	if c.Width() != 5 || c.Height() != 3 {
		t.Errorf("unexpected size %dx%d", c.Width(), c.Height())
	}
}

func TestLoaderLoadFoldsCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "uk.toml", validTOML)
	writeFile(t, dir, "NorthLand.toml", validTOML)

	tests := []struct {
		arg  string
		want string
	}{
		{"uk", "uk"},
		{"UK", "uk"},
		{" Uk ", "uk"},
		{"NorthLand", "NorthLand"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			c, err := Loader{Dir: dir}.Load(tt.arg)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", tt.arg, err)
			}
			if c.Name != tt.want {
				t.Errorf("Load(%q) name = %q; want %q", tt.arg, c.Name, tt.want)
			}
		})
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.yaml", `
map_template:
  - "XX"
regions:
  - name: Only
    city: Oslo
    char: X
    temp_pos: [0, 0]
`)
	c, err := Loader{Dir: dir}.Load("tiny")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r, ok := c.RegionByMarker('X'); !ok || r.City != "Oslo" {
		t.Errorf("expected region X for Oslo, got %+v", r)
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.toml", "map_template = [")
	writeFile(t, dir, "unknown.toml", validTOML+"\nsurprise = true\n")
	writeFile(t, dir, "orphan.toml", strings.Replace(validTOML, `"BB",`, `"BBZ",`, 1))

	tests := []struct {
		name    string
		country string
		wantMsg string
	}{
		{"missing file", "nowhere", `country "nowhere" not found`},
		{"bad syntax", "broken", "failed to parse"},
		{"unknown key", "unknown", "failed to parse"},
		{"unmatched character", "orphan", "does not match any region"},
		{"path traversal", "../etc", "invalid country name"},
		{"empty name", "", "invalid country name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Loader{Dir: dir}.Load(tt.country)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestListAvailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "uk.toml", validTOML)
	writeFile(t, dir, "germany.toml", validTOML)
	writeFile(t, dir, "france.yaml", "")
	writeFile(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "spain.toml"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := Loader{Dir: dir}.ListAvailable()
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	want := []string{"france", "germany", "uk"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestListAvailableMissingDir(t *testing.T) {
	if _, err := (Loader{Dir: filepath.Join(t.TempDir(), "nope")}).ListAvailable(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Country)
		wantErr string
	}{
		{"valid", func(c *Country) {}, ""},
		{"empty template", func(c *Country) { c.MapTemplate = nil }, "map_template is empty"},
		{"no regions", func(c *Country) { c.Regions = nil }, "no regions"},
		{"two-char marker", func(c *Country) { c.Regions[0].Char = "AB" }, "exactly one character"},
		{"space marker", func(c *Country) { c.Regions[0].Char = " " }, "printable ASCII"},
		{"duplicate marker", func(c *Country) { c.Regions[1].Char = "A" }, "already used"},
		{"anchor outside", func(c *Country) { c.Regions[0].TempPos = []int{9, 0} }, "outside"},
		{"negative anchor", func(c *Country) { c.Regions[0].TempPos = []int{-1, 0} }, "outside"},
		{"short anchor", func(c *Country) { c.Regions[0].TempPos = []int{1} }, "two values"},
		{"missing city", func(c *Country) { c.Regions[0].City = "" }, "city is empty"},
		{"non-ascii template", func(c *Country) { c.MapTemplate[0] = "  AÄ" }, "non-ASCII"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sampleCountry()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestShippedTemplatesLoad(t *testing.T) {
	loader := Loader{Dir: filepath.Join("..", "..", "templates")}
	names, err := loader.ListAvailable()
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("expected shipped templates")
	}
	for _, name := range names {
		if _, err := loader.Load(name); err != nil {
			t.Errorf("shipped template %s does not load: %v", name, err)
		}
	}
}

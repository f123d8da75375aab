package country

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// TemplatesDirName is the directory looked up next to the executable.
const TemplatesDirName = "templates"

var supportedExts = []string{".toml", ".yaml", ".yml", ".json"}

// Loader reads country files from Dir.
type Loader struct {
	Dir string
}

func NewLoader(dir string) Loader {
	if dir == "" {
		dir = DefaultDir()
	}
	return Loader{Dir: dir}
}

// DefaultDir prefers <exe dir>/templates and falls back to ./templates.
func DefaultDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), TemplatesDirName)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return TemplatesDirName
}

// Load reads, decodes and validates the named country.
func (l Loader) Load(name string) (Country, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return Country{}, errors.Errorf("invalid country name %q", name)
	}

	path, stem, err := l.find(name)
	if err != nil {
		return Country{}, err
	}
	name = stem

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Country{}, errors.Wrapf(err, "failed to parse %s", path)
	}

	var c Country
	if err := v.UnmarshalExact(&c); err != nil {
		return Country{}, errors.Wrapf(err, "failed to parse %s", path)
	}
	c.Name = name

	if err := c.Validate(); err != nil {
		return Country{}, errors.Wrapf(err, "invalid country %s", name)
	}
	return c, nil
}

// find tries the exact stem first, then its lower-cased form.
func (l Loader) find(name string) (string, string, error) {
	stems := []string{name}
	if lower := strings.ToLower(name); lower != name {
		stems = append(stems, lower)
	}
	for _, stem := range stems {
		for _, ext := range supportedExts {
			path := filepath.Join(l.Dir, stem+ext)
			info, err := os.Stat(path)
			if err == nil && info.Mode().IsRegular() {
				return path, stem, nil
			}
		}
	}
	return "", "", errors.Errorf("country %q not found in %s", name, l.Dir)
}

// ListAvailable returns the sorted stems of every country file in Dir.
func (l Loader) ListAvailable() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", l.Dir)
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !supported(ext) {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ext)
		if stem == "" || seen[stem] {
			continue
		}
		seen[stem] = true
		names = append(names, stem)
	}
	sort.Strings(names)
	return names, nil
}

func supported(ext string) bool {
	for _, s := range supportedExts {
		if s == ext {
			return true
		}
	}
	return false
}

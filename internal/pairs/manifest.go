package pairs

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joynutrics/json-assertions/jsonvalue"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Entry is one pair of files in a manifest.
type Entry struct {
	Name     string
	Expected string
	Actual   string
}

// Manifest is a parsed manifest file.
type Manifest struct {
	Entries []Entry
}

// ParseManifest parses the JSON text of a manifest. Entry names must be unique; an entry with no name
// is named after its index.
func ParseManifest(text string) (Manifest, error) {
	v, err := jsonvalue.Parse(text)
	if err != nil {
		return Manifest{}, err
	}
	if v.Kind() != jsonvalue.ArrayKind {
		return Manifest{}, errManifestNotArray
	}
	m := Manifest{Entries: make([]Entry, 0, v.Count())}
	seen := make(map[string]bool, v.Count())
	for i := 0; i < v.Count(); i++ {
		e, err := parseEntry(v.Index(i))
		if err != nil {
			return Manifest{}, errManifestEntry(i, err)
		}
		if e.Name == "" {
			e.Name = strconv.Itoa(i)
		}
		if seen[e.Name] {
			return Manifest{}, errManifestEntry(i, errDuplicateName(e.Name))
		}
		seen[e.Name] = true
		m.Entries = append(m.Entries, e)
	}
	return m, nil
}

func parseEntry(v jsonvalue.Value) (Entry, error) {
	if v.Kind() != jsonvalue.ObjectKind {
		return Entry{}, errEntryNotObject()
	}
	var e Entry
	if name, ok := v.Get("name"); ok && name.Kind() == jsonvalue.StringKind {
		e.Name = name.StringValue()
	}
	for _, f := range []struct {
		key    string
		target *string
	}{
		{"expected", &e.Expected},
		{"actual", &e.Actual},
	} {
		prop, ok := v.Get(f.key)
		if !ok || prop.Kind() != jsonvalue.StringKind || prop.StringValue() == "" {
			return Entry{}, errMissingField(f.key)
		}
		*f.target = prop.StringValue()
	}
	return e, nil
}

// LoadManifest reads and parses a manifest file.
//
// If root is empty, it is set to the directory containing the manifest; the returned root is the one
// that entry paths should be resolved against.
func LoadManifest(root, manifestPath string) (Manifest, string, error) {
	data, err := os.ReadFile(manifestPath) //nolint:gosec
	if err != nil {
		return Manifest{}, "", errCannotReadManifest(manifestPath, err)
	}
	m, err := ParseManifest(string(data))
	if err != nil {
		return Manifest{}, "", errCannotReadManifest(manifestPath, err)
	}
	if root == "" {
		root = filepath.Dir(manifestPath)
	}
	return m, root, nil
}

// readPairFile reads a file named in a manifest. The path is resolved within root even if it contains
// ".." components or symlinks that point elsewhere.
func readPairFile(root, name, relPath string) (string, error) {
	fullPath, err := securejoin.SecureJoin(root, relPath)
	if err != nil {
		return "", errCannotReadPairFile(name, relPath, err)
	}
	data, err := os.ReadFile(fullPath) //nolint:gosec
	if err != nil {
		return "", errCannotReadPairFile(name, relPath, err)
	}
	return string(data), nil
}

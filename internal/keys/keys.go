// Package keys maps human-readable key names to the platform key codes delivered
// by the keyboard hook.
package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Code identifies a physical key as reported by the platform hook.
type Code uint16

// UnknownLabel is shown for codes that have no entry in the name table.
const UnknownLabel = "(?)"

var (
	byName = make(map[string]Code, len(table))
	byCode = make(map[Code]string, len(table))
	names  = make([]string, 0, len(table))
)

func init() {
	for _, e := range table {
		byName[strings.ToLower(e.name)] = e.code
		if _, ok := byCode[e.code]; !ok {
			byCode[e.code] = e.name
		}
		names = append(names, e.name)
	}
	sort.Strings(names)
}

type entry struct {
	name string
	code Code
}

// Lookup resolves a key name (case-insensitive) to its platform code.
func Lookup(name string) (Code, bool) {
	code, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// Parse is Lookup with an error that carries suggestions for misspelled names.
func Parse(name string) (Code, error) {
	if code, ok := Lookup(name); ok {
		return code, nil
	}
	if s := Suggest(name, 3); len(s) > 0 {
		return 0, fmt.Errorf("unknown key %q (did you mean %s?)", name, strings.Join(s, ", "))
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Name returns the canonical name for a code, or UnknownLabel.
func Name(code Code) string {
	if name, ok := byCode[code]; ok {
		return name
	}
	return UnknownLabel
}

// Names returns every known key name in sorted order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Suggest returns up to limit key names that fuzzy-match query, best first.
func Suggest(query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(query), lowerNames())
	out := make([]string, 0, limit)
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, names[m.Index])
	}
	return out
}

// Filter returns all key names matching query; an empty query returns all names.
func Filter(query string) []string {
	if strings.TrimSpace(query) == "" {
		return Names()
	}
	return Suggest(query, len(names))
}

func lowerNames() []string {
	lower := make([]string, len(names))
	for i, n := range names {
		lower[i] = strings.ToLower(n)
	}
	return lower
}

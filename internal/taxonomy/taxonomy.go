// Package taxonomy loads the hierarchical expense-category list used to
// validate transaction categories. Categories live in a markdown bullet-list
// document: top-level bullets are main categories, nested bullets are
// subcategories (up to three levels). The taxonomy is the union of every bare
// name at every level plus every "Main > Sub" and "Main > Sub > SubSub" path.
package taxonomy

import (
	"bufio"
	"strings"
)

// Separator joins the levels of a hierarchical category path.
const Separator = " > "

// DefaultSentinel is returned for blank or unrecognized categories.
const DefaultSentinel = "Uncategorized"

// Taxonomy is an immutable set of valid category path strings.
type Taxonomy struct {
	entries map[string]string // lowercased name -> canonical-cased entry
	doc     string            // raw markdown, kept for prompt injection
	source  string            // file path, or "builtin"
}

// Parse builds a taxonomy from a markdown bullet-list document. Headings,
// blank lines and anything that is not a bullet are ignored.
func Parse(doc, source string) *Taxonomy {
	t := &Taxonomy{
		entries: make(map[string]string),
		doc:     doc,
		source:  source,
	}

	// Path under construction: [main, sub, subsub].
	var path [3]string

	scanner := bufio.NewScanner(strings.NewReader(doc))
	for scanner.Scan() {
		line := scanner.Text()
		name, level, ok := parseBullet(line)
		if !ok {
			continue
		}

		path[level] = name
		t.add(name)
		if level >= 1 && path[0] != "" && path[1] != "" {
			t.add(path[0] + Separator + path[1])
		}
		if level == 2 && path[0] != "" && path[1] != "" {
			t.add(path[0] + Separator + path[1] + Separator + path[2])
		}
		if level < 2 {
			path[2] = ""
		}
		if level == 0 {
			path[1] = ""
		}
	}

	// The sentinel is always a valid category, document or not.
	t.add(DefaultSentinel)

	return t
}

// parseBullet extracts the bullet text and nesting level (0-2) from a line.
func parseBullet(line string) (name string, level int, ok bool) {
	expanded := strings.ReplaceAll(line, "\t", "  ")
	trimmed := strings.TrimLeft(expanded, " ")
	indent := len(expanded) - len(trimmed)

	if !strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(trimmed, "* ") {
		return "", 0, false
	}

	name = strings.TrimSpace(trimmed[2:])
	if name == "" {
		return "", 0, false
	}

	switch {
	case indent < 2:
		level = 0
	case indent < 4:
		level = 1
	default:
		level = 2
	}
	return name, level, true
}

func (t *Taxonomy) add(name string) {
	key := strings.ToLower(name)
	if _, exists := t.entries[key]; !exists {
		t.entries[key] = name
	}
}

// Match resolves a name case-insensitively to its canonical-cased entry.
func (t *Taxonomy) Match(name string) (string, bool) {
	canonical, ok := t.entries[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// Default returns the sentinel used for blank or unrecognized categories.
func (t *Taxonomy) Default() string { return DefaultSentinel }

// Source reports where this taxonomy was loaded from ("builtin" when the
// compiled-in default set is in use).
func (t *Taxonomy) Source() string { return t.source }

// Document returns the raw markdown this taxonomy was built from, for
// injection into the extraction prompt.
func (t *Taxonomy) Document() string { return t.doc }

// Len reports the number of distinct entries.
func (t *Taxonomy) Len() int { return len(t.entries) }

// Entries returns the canonical-cased entries in unspecified order. Used to
// inject the category list into the extraction prompt.
func (t *Taxonomy) Entries() []string {
	out := make([]string, 0, len(t.entries))
	for _, v := range t.entries {
		out = append(out, v)
	}
	return out
}

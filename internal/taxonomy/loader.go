package taxonomy

import (
	"os"
	"path/filepath"
	"sync"
)

// builtinDoc is the fallback category set used when no taxonomy document is
// found at any search location.
const builtinDoc = `# Expense Categories
- Food & Dining
  - Groceries
  - Restaurants
  - Cafes
- Transportation
  - Public Transit
  - Fuel
  - Parking
- Shopping
  - Clothing
  - Electronics
  - Personal Care
- Entertainment
  - Subscriptions
  - Streaming Services
- Bills & Utilities
- Health & Wellness
- Education
- Travel
- Financial
  - Fees & Charges
  - Income
- Other
  - Uncategorized
  - Transfers
`

// DocumentName is the filename probed at each search location.
const DocumentName = "expense_categories.md"

// Loader caches a taxonomy across a process lifetime. The zero value is ready
// to use. Load is guarded so the first load wins when the loader is shared.
type Loader struct {
	mu   sync.Mutex
	path string // explicit override; empty means search
	tax  *Taxonomy
}

// Load returns the cached taxonomy, loading it on first use. A missing or
// unreadable document never fails the caller: the builtin set is used instead.
func (l *Loader) Load() *Taxonomy {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.tax != nil {
		return l.tax
	}

	paths := searchPaths()
	if l.path != "" {
		paths = []string{l.path}
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		l.tax = Parse(string(data), p)
		return l.tax
	}

	l.tax = Builtin()
	return l.tax
}

// SetPath points the loader at a caller-specified document and invalidates
// the cache; the next Load reads from that path.
func (l *Loader) SetPath(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
	l.tax = nil
}

// Builtin returns the compiled-in default taxonomy.
func Builtin() *Taxonomy {
	return Parse(builtinDoc, "builtin")
}

// searchPaths lists the default document locations in probe order.
func searchPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, DocumentName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".bill2csv", DocumentName))
	}
	return paths
}

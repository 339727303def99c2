package naming

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Guard tracks target paths claimed during a run. A target may be claimed
// once: when it already exists on disk or another rename has claimed it,
// Claim refuses. The disk check and the set update happen under one mutex,
// so two files with identical content can never both pass. All methods are
// goroutine-safe.
type Guard struct {
	fs      afero.Fs
	mu      sync.Mutex
	claimed map[string]struct{} // cleaned target path → claimed
}

// NewGuard creates an empty Guard that checks existence on fs.
func NewGuard(fs afero.Fs) *Guard {
	return &Guard{
		fs:      fs,
		claimed: make(map[string]struct{}),
	}
}

// Claim reserves target for the caller and reports true, or reports false
// without side effects when target exists on disk or is already claimed.
// Claims are never released: a target renamed into stays taken for the
// rest of the run.
func (g *Guard) Claim(target string) bool {
	key := filepath.Clean(target)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, taken := g.claimed[key]; taken {
		return false
	}
	if g.exists(key) {
		return false
	}
	g.claimed[key] = struct{}{}
	return true
}

// Claimed returns the number of targets claimed so far.
func (g *Guard) Claimed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.claimed)
}

// exists reports whether anything occupies path. A dangling symlink counts
// as existing. Errors other than not-exist (e.g. permission denied on the
// parent) are treated as occupied so the rename is skipped, not attempted.
func (g *Guard) exists(path string) bool {
	var err error
	if l, ok := g.fs.(afero.Lstater); ok {
		_, _, err = l.LstatIfPossible(path)
	} else {
		_, err = g.fs.Stat(path)
	}
	return !os.IsNotExist(err)
}

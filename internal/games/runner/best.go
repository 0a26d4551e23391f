package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tap-runner/internal/storage"
)

// DefaultBestKey is the KV key the best score is stored under.
const DefaultBestKey = "tap-runner.best"

// ErrInvalidBest is returned by Load when the stored value is not a
// non-negative base-10 integer.
var ErrInvalidBest = errors.New("runner: invalid stored best score")

// UserBestKey scopes the best score key to one user.
func UserBestKey(user string) string {
	if user == "" {
		return DefaultBestKey
	}
	return DefaultBestKey + ":" + user
}

// BestStore loads and saves the persisted best score.
type BestStore interface {
	Load() (int, error)
	Save(score int) error
}

// BestScore persists the best score as a base-10 string in a KV store.
type BestScore struct {
	kv  storage.KV
	key string
}

// NewBestScore creates a best score adapter. An empty key uses DefaultBestKey.
func NewBestScore(kv storage.KV, key string) *BestScore {
	if key == "" {
		key = DefaultBestKey
	}
	return &BestScore{kv: kv, key: key}
}

// Key returns the KV key in use.
func (b *BestScore) Key() string {
	return b.key
}

// Load returns the stored best score. A missing key yields 0 and no error.
// Unreadable, malformed and negative values yield 0 along with the error so
// the caller can report it.
func (b *BestScore) Load() (int, error) {
	raw, ok, err := b.kv.Get(b.key)
	if err != nil {
		return 0, fmt.Errorf("runner: cannot load best score: %w", err)
	}
	if !ok {
		return 0, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBest, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrInvalidBest, v)
	}
	return v, nil
}

// Save stores score when it beats the stored value. Smaller or equal scores
// are a no-op. A malformed stored value counts as 0 and gets overwritten.
func (b *BestScore) Save(score int) error {
	current, _ := b.Load()
	if score <= current {
		return nil
	}
	if err := b.kv.Set(b.key, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("runner: cannot save best score: %w", err)
	}
	return nil
}

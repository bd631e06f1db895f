// Package history remembers where playback of each file stopped.
package history

import (
	"path/filepath"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/subplay/subplay/filesystem"
	"github.com/subplay/subplay/where"
)

var cacher = gache.New[map[string]*Position](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved position keyed by media path.
func Get() (map[string]*Position, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Position), nil
	}
	return cached, nil
}

// Save records the position reached in the media at path.
func Save(path string, at, length float64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	key := encode(path)
	saved[key] = &Position{
		Path:      key,
		Time:      at,
		Duration:  length,
		UpdatedAt: time.Now(),
	}

	return cacher.Set(saved)
}

// Resume returns the position to continue the media at path from. Files
// that were barely started or already finished start over.
func Resume(path string) mo.Option[float64] {
	saved, err := Get()
	if err != nil {
		return mo.None[float64]()
	}

	position, ok := saved[encode(path)]
	if !ok || !position.Resumable() {
		return mo.None[float64]()
	}
	return mo.Some(position.Time)
}

// Remove forgets the position of the media at path.
func Remove(path string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, encode(path))
	return cacher.Set(saved)
}

func encode(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

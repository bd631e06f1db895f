package player

import (
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/subplay/subplay/filesystem"
)

const (
	socketPattern = "subplay-*.sock"
	probeTimeout  = 200 * time.Millisecond
)

// SweepSockets removes the sockets in dir left behind by players that did not
// exit cleanly. A socket that still accepts connections belongs to a running
// player and is kept.
func SweepSockets(dir string) (removed int, err error) {
	matches, err := afero.Glob(filesystem.API(), filepath.Join(dir, socketPattern))
	if err != nil {
		return 0, err
	}

	for _, path := range matches {
		if live(path) {
			continue
		}

		if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
			return removed, err
		}

		removed++
	}

	return removed, nil
}

func live(path string) bool {
	conn, err := net.DialTimeout("unix", path, probeTimeout)
	if err != nil {
		return false
	}

	_ = conn.Close()
	return true
}

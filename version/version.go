package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/subplay/subplay/constant"
	"github.com/subplay/subplay/filesystem"
	"github.com/subplay/subplay/network"
	"github.com/subplay/subplay/util"
	"github.com/subplay/subplay/where"
)

var latestCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

var releasesURL = fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)

// Latest returns the newest published release, cached for two days.
func Latest() (string, error) {
	cached, expired, err := latestCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Client.Get(releasesURL)
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching latest release: %s", resp.Status)
	}

	latest, err := decodeRelease(resp.Body)
	if err != nil {
		return "", err
	}

	_ = latestCacher.Set(latest)
	return latest, nil
}

func decodeRelease(r io.Reader) (string, error) {
	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(r).Decode(&release); err != nil {
		return "", fmt.Errorf("decoding release: %w", err)
	}

	tag := strings.TrimPrefix(release.TagName, "v")
	if tag == "" {
		return "", errors.New("empty tag name")
	}

	return tag, nil
}

package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/videodb/internal/logging"
)

// Directories never walked: bonus/extras material that would pollute the
// database with trailers and featurettes. Matched by exact name.
var filteredDirs = map[string]bool{
	"Deleted Scenes":    true,
	"@eaDir":            true,
	"External AC3":      true,
	"Extras":            true,
	"Featurettes":       true,
	"Interviews":        true,
	"Select Soundbites": true,
	"Soundtrack":        true,
	"Storyboards":       true,
	"Trailers":          true,
}

// Video file extensions (lowercase, without the dot). Lowercased before the
// lookup so upper-case extensions from Windows servers still match.
var videoExtensions = map[string]bool{
	"av1": true, "avi": true, "divx": true, "mp4": true, "mkv": true,
	"m4v": true, "mpg": true, "mpeg": true, "mov": true, "rm": true,
	"vob": true, "wmv": true, "flv": true, "3gp": true, "rmvb": true,
	"webm": true, "dat": true, "mts": true,
}

// Discover walks root, prunes filtered directories (optionally dropping a
// .nomedia marker inside each), collects video files, and returns the paths
// sorted lexicographically for deterministic dispatch order.
func Discover(root string, nomediaCreate, verbose bool, log *logging.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if filteredDirs[d.Name()] {
				if nomediaCreate {
					createNomedia(path, verbose, log)
				}
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if videoExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// createNomedia drops an empty .nomedia marker in dir so media centers like
// Kodi skip it. An existing marker is left alone.
func createNomedia(dir string, verbose bool, log *logging.Logger) {
	path := filepath.Join(dir, ".nomedia")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o666)
	switch {
	case err == nil:
		f.Close()
		log.Debug(verbose, "Created '%s'", path)
	case os.IsExist(err):
		log.Debug(verbose, "'%s' already exists", path)
	default:
		log.Warn("Cannot create '%s': %v", path, err)
	}
}

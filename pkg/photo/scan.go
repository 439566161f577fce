package photo

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
)

// supportedExts lists the file extensions the scanner accepts, matching the
// decoders registered by this package. Matching is case-insensitive.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// IsSupported reports whether name carries a supported image extension.
// The check is purely name-based; the file is never opened.
func IsSupported(name string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(name))]
}

// List returns the paths of all supported image files directly inside dir,
// sorted by file name. Subdirectories are not descended into. A missing or
// unreadable directory yields a DIRECTORY_NOT_FOUND error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDirectoryNotFound, err, "read folder %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

package config

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorewood/texcli/internal/envfile"
)

// ErrNoDocumentsDir is returned when no documents directory can be resolved.
var ErrNoDocumentsDir = errors.New("could not find Documents directory")

// DateLayout is the format of default dates.
const DateLayout = "2006-01-02"

// DocumentsDir returns the directory documents are written under.
//
// Resolution:
//   - $TEXCLI_ROOT if set
//   - $XDG_DOCUMENTS_DIR if set
//   - XDG_DOCUMENTS_DIR from $XDG_CONFIG_HOME/user-dirs.dirs (~/.config when unset)
//   - ~/Documents
func DocumentsDir() (string, error) {
	if dir := os.Getenv("TEXCLI_ROOT"); dir != "" {
		return dir, nil
	}
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoDocumentsDir
	}

	if dir := userDirsDocuments(home); dir != "" {
		return dir, nil
	}
	return filepath.Join(home, "Documents"), nil
}

// userDirsDocuments reads XDG_DOCUMENTS_DIR from user-dirs.dirs.
// Entries pointing at $HOME itself are ignored, matching xdg-user-dir.
func userDirsDocuments(home string) string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	vars, err := envfile.Read(filepath.Join(configHome, "user-dirs.dirs"))
	if err != nil {
		return ""
	}
	value := vars["XDG_DOCUMENTS_DIR"]
	if value == "" {
		return ""
	}

	value = strings.Replace(value, "$HOME", home, 1)
	if !filepath.IsAbs(value) {
		return ""
	}
	value = filepath.Clean(value)
	if value == filepath.Clean(home) {
		return ""
	}
	return value
}

// RealName returns the invoking user's display name, falling back to the
// login name and then $USER.
func RealName() string {
	if u, err := user.Current(); err == nil {
		// GECOS fields are comma separated: "Full Name,Room,Phone,..."
		name, _, _ := strings.Cut(u.Name, ",")
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
		if u.Username != "" {
			return u.Username
		}
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}

// Today formats now as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

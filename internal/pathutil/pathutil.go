// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const envName = "LOCKTFIN_ENV"

// Paths holds the locations of locktfin's files.
type Paths struct {
	ConfigFile string
	DBFile     string
	StatusFile string
	LogFile    string
	IconFile   string
}

type names struct {
	dir    string
	config string
	db     string
	status string
	log    string
}

func defaultNames() names {
	return names{
		dir:    "locktfin",
		config: "config.yml",
		db:     "locktfin.db",
		status: "status.json",
		log:    "locktfin.log",
	}
}

// applyEnvironmentOverrides keeps separate files per LOCKTFIN_ENV value so a
// development build never touches the real history.
func (n *names) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env == "" {
		return
	}

	n.config = fmt.Sprintf("config_%s.yml", env)
	n.db = fmt.Sprintf("locktfin_%s.db", env)
	n.status = fmt.Sprintf("status_%s.json", env)
	n.log = fmt.Sprintf("locktfin_%s.log", env)
}

// Resolve computes the file locations under the XDG base directories,
// creating parent directories as needed.
func Resolve() (*Paths, error) {
	n := defaultNames()
	n.applyEnvironmentOverrides()

	configFile, err := xdg.ConfigFile(filepath.Join(n.dir, n.config))
	if err != nil {
		return nil, err
	}

	dataDir, err := xdg.DataFile(filepath.Join(n.dir, n.db))
	if err != nil {
		return nil, err
	}

	dataDir = filepath.Dir(dataDir)

	return &Paths{
		ConfigFile: configFile,
		DBFile:     filepath.Join(dataDir, n.db),
		StatusFile: filepath.Join(dataDir, n.status),
		LogFile:    filepath.Join(dataDir, "log", n.log),
		IconFile:   filepath.Join(dataDir, "icon.png"),
	}, nil
}

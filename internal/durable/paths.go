package durable

import (
	"os"
	"path/filepath"
)

const appName = "uttt-solve"

// dataDirEnv, when set, overrides the resolved base directory entirely
// (handy for containers and CI, where the per-OS user-config location
// may not exist or may not be writable).
const dataDirEnv = "UTTT_SOLVE_DATA_DIR"

// DefaultDir returns the directory the durable database opens in when
// no -db flag is given: $UTTT_SOLVE_DATA_DIR/uttt-solve/db if set,
// otherwise os.UserConfigDir()/uttt-solve/db. os.UserConfigDir already
// implements the per-OS resolution (XDG_CONFIG_HOME or ~/.config on
// Linux, ~/Library/Application Support on macOS, %AppData% on
// Windows), so there is no reason to hand-roll that switch a second
// time the way the teacher's storage package does.
func DefaultDir() (string, error) {
	base := os.Getenv(dataDirEnv)
	if base == "" {
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		base = cfg
	}

	dbDir := filepath.Join(base, appName, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}

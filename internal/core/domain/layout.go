package domain

import "path/filepath"

const (
	// StateDirName is the default directory for makerun state, relative to the working directory.
	StateDirName = ".makerun"

	// LastRunFileName is the file holding the latest run record.
	LastRunFileName = "last_run.json"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "makerun.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LastRunPath returns the path of the latest run record inside stateDir.
func LastRunPath(stateDir string) string {
	return filepath.Join(stateDir, LastRunFileName)
}

package qmake

// DefaultBackupSuffix is used when Options.BackupSuffix is empty.
const DefaultBackupSuffix = "bak"

// Options controls PatchFile behavior.
type Options struct {
	// CreateBackup copies the original file before writing it back.
	// The backup is created at <path>.<BackupSuffix>.<timestamp>, and only
	// once every rewrite has succeeded in memory.
	CreateBackup bool

	// BackupSuffix names the backup file. Default: "bak".
	BackupSuffix string

	// DryRun performs every rewrite in memory but neither backs up nor
	// writes the file.
	DryRun bool
}

// Result describes a completed PatchFile run.
type Result struct {
	Path       string `json:"path"`
	Size       int    `json:"size"`
	Version    string `json:"version,omitempty"`
	Variables  int    `json:"variables"`
	BackupPath string `json:"backup,omitempty"`
	Written    bool   `json:"written"`
}

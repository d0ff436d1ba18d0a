//go:build !linux && !darwin && !windows

package image

import "os"

// datasync falls back to File.Sync where no finer-grained call is available.
func datasync(f *os.File) error {
	return f.Sync()
}

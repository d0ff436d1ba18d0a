//go:build darwin

package image

import (
	"os"

	"golang.org/x/sys/unix"
)

// datasync flushes file data to the physical disk. Plain fsync on macOS only
// reaches the drive cache, so F_FULLFSYNC is used instead.
func datasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}

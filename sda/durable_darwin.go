//go:build darwin

package sda

import "golang.org/x/sys/unix"

// fdatasync flushes fd's data to disk. macOS has no fdatasync syscall and
// its fsync does not guarantee the drive's write cache was flushed;
// F_FULLFSYNC is the actual durability guarantee, falling back to fsync
// if the filesystem doesn't support it.
func fdatasync(fd int) error {
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(fd)
}

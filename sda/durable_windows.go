//go:build windows

package sda

import "golang.org/x/sys/windows"

// fdatasync flushes fd's data to disk via FlushFileBuffers, the nearest
// Windows equivalent to fdatasync/F_FULLFSYNC.
func fdatasync(fd int) error {
	return windows.FlushFileBuffers(windows.Handle(fd))
}

//go:build linux || freebsd

package sda

import "golang.org/x/sys/unix"

// fdatasync flushes fd's data to disk before the atomic rename that
// publishes a rebuilt archive. Linux/FreeBSD's fdatasync is sufficient:
// it need not flush metadata that doesn't affect a subsequent read.
func fdatasync(fd int) error {
	return unix.Fdatasync(fd)
}

//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// blockCounts returns total and free block counts for the filesystem
// containing path. Free includes blocks reserved for root (f_bfree).
func blockCounts(path string) (total, free uint64, err error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	return uint64(stat.Blocks), uint64(stat.Bfree), nil
}

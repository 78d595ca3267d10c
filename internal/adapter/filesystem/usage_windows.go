//go:build windows

package filesystem

import (
	"golang.org/x/sys/windows"
)

// blockCounts returns total and free bytes for the volume containing path.
// Bytes stand in for blocks; only the ratio matters.
func blockCounts(path string) (total, free uint64, err error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}

	var freeAvailable, totalBytes, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeAvailable, &totalBytes, &totalFree); err != nil {
		return 0, 0, err
	}
	return totalBytes, totalFree, nil
}

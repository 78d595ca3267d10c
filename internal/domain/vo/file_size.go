package vo

import (
	"fmt"
)

// FileSize is a byte count with human-readable formatting, used for
// reporting how much a cleanup run reclaimed.
type FileSize struct {
	bytes int64
}

const (
	KB int64 = 1024
	MB int64 = 1024 * KB
	GB int64 = 1024 * MB
	TB int64 = 1024 * GB
)

// NewFileSize creates a FileSize. Negative values are clamped to zero.
func NewFileSize(bytes int64) FileSize {
	if bytes < 0 {
		bytes = 0
	}
	return FileSize{bytes: bytes}
}

// Bytes returns the size in bytes.
func (fs FileSize) Bytes() int64 {
	return fs.bytes
}

// Add returns a new FileSize with the given size added.
func (fs FileSize) Add(other FileSize) FileSize {
	return FileSize{bytes: fs.bytes + other.bytes}
}

// String returns a human-readable string representation.
func (fs FileSize) String() string {
	b := fs.bytes
	switch {
	case b < KB:
		return fmt.Sprintf("%d B", b)
	case b < MB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	case b < GB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b < TB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	default:
		return fmt.Sprintf("%.2f TB", float64(b)/float64(TB))
	}
}

package fsutil

import "fmt"

const (
	B  = 1
	KB = 1024 * B
	MB = 1024 * KB
	GB = 1024 * MB
	TB = 1024 * GB
	PB = 1024 * TB
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanSize converts bytes to a human-readable string: one decimal
// place, a single space, then the first unit for which the scaled value
// drops below 1024. PB is the terminal fallback with no further bound.
//
//	HumanSize(0)    = "0.0 B"
//	HumanSize(1023) = "1023.0 B"
//	HumanSize(1024) = "1.0 KB"
//
// The exact table and rounding are a formatting contract; golden tests
// pin them.
func HumanSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range sizeUnits[:len(sizeUnits)-1] {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f PB", size)
}

// ParseSize converts a human-readable size like "10MB" to bytes
func ParseSize(size string) (int64, error) {
	var value float64
	var unit string

	_, err := fmt.Sscanf(size, "%f%s", &value, &unit)
	if err != nil {
		return 0, fmt.Errorf("invalid size format: %s", size)
	}

	switch unit {
	case "B", "b":
		return int64(value), nil
	case "KB", "kb", "K", "k":
		return int64(value * KB), nil
	case "MB", "mb", "M", "m":
		return int64(value * MB), nil
	case "GB", "gb", "G", "g":
		return int64(value * GB), nil
	case "TB", "tb", "T", "t":
		return int64(value * TB), nil
	case "PB", "pb", "P", "p":
		return int64(value * PB), nil
	default:
		return 0, fmt.Errorf("unknown unit: %s", unit)
	}
}

package report

import "fmt"

// Size unit thresholds, 1024-based.
const (
	KB uint64 = 1 << 10
	MB uint64 = KB << 10
	GB uint64 = MB << 10
)

// FormatSize renders size using the largest unit whose threshold it reaches,
// to two decimal places, with the exact byte count in parenthesis:
// 1024 -> "1.00KB (1024 bytes)". Below 1KB the count is printed bare:
// 100 -> "100 bytes".
func FormatSize(size uint64) string {
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2fGB (%d bytes)", float64(size)/float64(GB), size)
	case size >= MB:
		return fmt.Sprintf("%.2fMB (%d bytes)", float64(size)/float64(MB), size)
	case size >= KB:
		return fmt.Sprintf("%.2fKB (%d bytes)", float64(size)/float64(KB), size)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}

package report_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idelchi/depsize/internal/report"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size uint64
		want string
	}{
		{0, "0 bytes"},
		{100, "100 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.00KB (1024 bytes)"},
		{1025, "1.00KB (1025 bytes)"},
		{1536, "1.50KB (1536 bytes)"},
		{1048575, "1024.00KB (1048575 bytes)"},
		{1048576, "1.00MB (1048576 bytes)"},
		{1073741824, "1.00GB (1073741824 bytes)"},
		{3221225472, "3.00GB (3221225472 bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, report.FormatSize(tt.size))
		})
	}
}

// The parenthetical always carries the exact input, never the divided value.
func TestFormatSizeExactByteCount(t *testing.T) {
	for _, size := range []uint64{1024, 123456789, 9876543210} {
		assert.Contains(t, report.FormatSize(size), fmt.Sprintf("(%d bytes)", size))
	}
}

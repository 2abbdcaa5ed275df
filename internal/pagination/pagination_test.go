package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peopleops/employee-registry/internal/pagination"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults for zero values", 0, 0, 1, 10},
		{"negative page clamps to first", -3, 10, 1, 10},
		{"limit above max clamps", 1, 250, 1, 100},
		{"limit at max passes", 1, 100, 1, 100},
		{"valid values pass through", 3, 25, 3, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := pagination.NewParams(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.NewParams(1, 10).Offset())
	assert.Equal(t, 10, pagination.NewParams(2, 10).Offset())
	assert.Equal(t, 20, pagination.NewParams(3, 10).Offset())
	assert.Equal(t, 75, pagination.NewParams(4, 25).Offset())
}

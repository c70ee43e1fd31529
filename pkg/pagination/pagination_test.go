package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 24, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantPer    int
		wantOffset int
	}{
		{"defaults", "", 1, 24, 0},
		{"explicit page", "?page=3", 3, 24, 48},
		{"explicit per_page", "?per_page=10", 1, 10, 0},
		{"both", "?page=2&per_page=5", 2, 5, 5},
		{"zero page ignored", "?page=0", 1, 24, 0},
		{"negative page ignored", "?page=-1", 1, 24, 0},
		{"per_page over cap ignored", "?per_page=500", 1, 24, 0},
		{"non-numeric ignored", "?page=abc&per_page=xyz", 1, 24, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/products"+tt.query, nil)
			p := FromRequest(r)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPer, p.PerPage)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestNewResult(t *testing.T) {
	data := []string{"a", "b", "c"}
	res := NewResult(data, 50, Params{Page: 2, PerPage: 3})

	assert.Equal(t, data, res.Data)
	assert.Equal(t, 50, res.TotalCount)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.PerPage)
	assert.Equal(t, 17, res.TotalPages)
	assert.True(t, res.HasNext)
	assert.True(t, res.HasPrev)
}

func TestNewResult_LastPage(t *testing.T) {
	res := NewResult([]int{1, 2}, 20, Params{Page: 1, PerPage: 24})
	assert.Equal(t, 1, res.TotalPages)
	assert.False(t, res.HasNext)
	assert.False(t, res.HasPrev)
}

// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memora-app/memora/pkg/pagination"
)

/*
TestParams_Offset verifies the page to SQL offset conversion.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{"first_page", pagination.Params{Page: 1, Limit: 20}, 0},
		{"second_page", pagination.Params{Page: 2, Limit: 20}, 20},
		{"large_page", pagination.Params{Page: 10, Limit: 50}, 450},
		{"zero_page", pagination.Params{Page: 0, Limit: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Offset())
		})
	}
}

/*
TestNewMeta verifies the total page calculation (ceiling division).
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		total     int
		wantPages int
	}{
		{"exact_fit", 20, 40, 2},
		{"partial_last_page", 20, 41, 3},
		{"empty_result", 20, 0, 0},
		{"single_item", 20, 1, 1},
		{"zero_limit", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

/*
TestFromRequest verifies query parsing and clamping of invalid values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit_values", "page=3&limit=50", 3, 50},
		{"negative_page", "page=-1", 1, 20},
		{"zero_limit", "limit=0", 1, 20},
		{"excessive_limit_clamped", "limit=9999", 1, 500},
		{"max_limit_allowed", "limit=500", 1, 500},
		{"non_numeric", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/?"+tt.query, nil)
			params := pagination.FromRequest(request)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

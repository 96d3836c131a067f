// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memora-app/memora/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline: accent folding,
lowercasing, hyphenation and trimming.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Voices of the Harbour", "voices-of-the-harbour"},
		{"accents_folded", "Café au Lait", "cafe-au-lait"},
		{"scandinavian", "Ångström", "angstrom"},
		{"punctuation", "Hello, World!", "hello-world"},
		{"digits_kept", "100% Pure", "100-pure"},
		{"collapsed_hyphens", "a -- b", "a-b"},
		{"trimmed_edges", "  --Hello--  ", "hello"},
		{"already_slug", "open-water", "open-water"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

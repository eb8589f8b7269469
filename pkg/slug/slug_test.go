// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmarchetti/fiscora/pkg/slug"
)

/*
TestFrom covers the normalization pipeline across representative inputs.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Payroll", "payroll"},
		{"spaces", "Cloud Hosting", "cloud-hosting"},
		{"accents", "Café & Catering", "cafe-catering"},
		{"mixed_symbols", "R&D // Prototyping!", "r-d-prototyping"},
		{"numbers", "Q3 2026 Audit", "q3-2026-audit"},
		{"leading_trailing_junk", "  --Travel--  ", "travel"},
		{"collapses_hyphens", "a -- b", "a-b"},
		{"only_symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

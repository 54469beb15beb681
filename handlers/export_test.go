package handlers

import "testing"

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"plain name", "Kotkankatu_1.xlsx", `attachment; filename="Kotkankatu_1.xlsx"`},
		{"fallback name", "unnamed.xlsx", `attachment; filename="unnamed.xlsx"`},
		{"embedded quote escaped", `a"b.xlsx`, `attachment; filename="a\"b.xlsx"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contentDisposition(tt.filename); got != tt.expected {
				t.Errorf("contentDisposition(%q) = %q, expected %q", tt.filename, got, tt.expected)
			}
		})
	}
}

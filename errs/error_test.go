package errs

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{InvalidData, "invalid data"},
		{InvalidCategories, "invalid categories"},
		{DataCategoryMismatch, "data category mismatch"},
		{InvalidColorFormat, "invalid color format"},
		{InvalidColorRange, "invalid color range"},
		{InvalidGradientSpec, "invalid gradient spec"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("invalid kind string: got=%q, want=%q", got, tt.want)
		}
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := New(InvalidData, "values must be numbers")
	if !errors.Is(err, InvalidData) {
		t.Errorf("invalid kind match: got=false, want=true for %v", err)
	}
	if errors.Is(err, InvalidColorFormat) {
		t.Errorf("invalid kind match: got=true, want=false for %v", err)
	}
}

func TestNewJoinsArguments(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"strings", []any{"value", "out of range"}, "invalid data: value out of range"},
		{"mixed", []any{"bar", 3, "rejected"}, "invalid data: bar 3 rejected"},
		{"float", []any{"got", 1.5}, "invalid data: got 1.5"},
		{"empty", nil, "invalid data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(InvalidData, tt.args...).Error(); got != tt.want {
				t.Errorf("invalid message: got=%q, want=%q", got, tt.want)
			}
		})
	}
}

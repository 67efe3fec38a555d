// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestDescriptionText_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text DescriptionText
		ok   bool
	}{
		{name: "empty", text: "", ok: true},
		{name: "plain", text: "Compile the project", ok: true},
		{name: "spaces only", text: "   ", ok: false},
		{name: "tabs and newlines", text: "\t\n", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.text.IsValid()
			if isValid != tt.ok {
				t.Fatalf("DescriptionText(%q).IsValid() = %v, want %v", tt.text, isValid, tt.ok)
			}
			if !tt.ok && !errors.Is(errs[0], ErrInvalidDescriptionText) {
				t.Errorf("expected ErrInvalidDescriptionText, got %v", errs[0])
			}
		})
	}
}

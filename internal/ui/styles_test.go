package ui

import (
	"strings"
	"testing"
)

func TestFormatCheck(t *testing.T) {
	tests := []struct {
		name  string
		ok    bool
		label string
		icon  string
	}{
		{
			name:  "present",
			ok:    true,
			label: "wl_seat",
			icon:  IconSuccess,
		},
		{
			name:  "absent",
			ok:    false,
			label: "ext_idle_notifier_v1",
			icon:  IconError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCheck(tt.ok, tt.label)
			if !strings.Contains(got, tt.label) {
				t.Errorf("FormatCheck() missing label %q", tt.label)
			}
			if !strings.Contains(got, tt.icon) {
				t.Errorf("FormatCheck() missing icon %q", tt.icon)
			}
		})
	}
}

func TestCreateSeparator(t *testing.T) {
	if got := CreateSeparator(5, "="); !strings.Contains(got, "=====") {
		t.Errorf("CreateSeparator() = %q, want five '='", got)
	}
	if got := CreateSeparator(3, ""); !strings.Contains(got, "───") {
		t.Errorf("CreateSeparator() with empty char = %q, want default line", got)
	}
}

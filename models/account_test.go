package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserKind(t *testing.T) {
	tests := []struct {
		in     string
		want   UserKind
		wantOK bool
	}{
		{"student", KindStudent, true},
		{"professional", KindProfessional, true},
		{"admin", KindAdmin, true},
		{"Student", KindStudent, true},
		{" PROFESSIONAL ", KindProfessional, true},
		{"", "", false},
		{"doctor", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseUserKind(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestAccountNameSplit(t *testing.T) {
	tests := []struct {
		fullName  string
		wantFirst string
		wantLast  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"Mary Jane Watson", "Mary", "Jane Watson"},
		{"", "", ""},
	}

	for _, tt := range tests {
		a := Account{FullName: tt.fullName}
		assert.Equal(t, tt.wantFirst, a.FirstName(), "full name %q", tt.fullName)
		assert.Equal(t, tt.wantLast, a.LastName(), "full name %q", tt.fullName)
	}
}

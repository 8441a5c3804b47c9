package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPathStaysInsideRoot(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name         string
		originalName string
		wantExt      string
	}{
		{"plain filename", "license.pdf", ".pdf"},
		{"no extension", "license", ""},
		{"traversal in name", "../../etc/passwd", ""},
		{"nested traversal", "docs/../../secret.png", ".png"},
		{"absolute path", "/etc/shadow", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := DocumentPath(root, 42, tt.originalName)
			require.NoError(t, err)

			absRoot, err := filepath.Abs(root)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(path, absRoot+string(filepath.Separator)),
				"path %q escapes root %q", path, absRoot)

			base := filepath.Base(path)
			assert.True(t, strings.HasPrefix(base, "professional_42_"))
			assert.Equal(t, tt.wantExt, filepath.Ext(base))
		})
	}
}

func TestDocumentPathIsUniquePerCall(t *testing.T) {
	root := t.TempDir()

	first, err := DocumentPath(root, 7, "proof.pdf")
	require.NoError(t, err)
	second, err := DocumentPath(root, 7, "proof.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateOTP()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in OTP %q", r, code)
		}
	}
}

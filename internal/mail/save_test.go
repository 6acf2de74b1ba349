package mail

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "invoice_2024.pdf", SanitizeFilename("invoice 2024.pdf"))
	assert.Equal(t, "etc_passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "inv.pdf", SanitizeFilename(`C:\Users\x\inv.pdf`))
	assert.Equal(t, "attachment", SanitizeFilename("///"))
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()
	first := UniquePath(dir, "inv.pdf")
	assert.Equal(t, filepath.Join(dir, "inv.pdf"), first)

	require.NoError(t, os.WriteFile(first, []byte("x"), 0o644))
	second := UniquePath(dir, "inv.pdf")
	assert.Equal(t, filepath.Join(dir, "inv-1.pdf"), second)
}

func TestSaveAttachment(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveAttachment(dir, "msg-001", Attachment{Filename: "inv oice.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "msg-001_inv_oice.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
}

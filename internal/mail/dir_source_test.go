package mail

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	root := t.TempDir()
	sender := filepath.Join(root, "billing@acme.com")
	require.NoError(t, os.MkdirAll(sender, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sender, "inv1.pdf"), []byte("%PDF-1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sender, "notes.txt"), []byte("skip"), 0o644))
	// Files outside a sender directory carry no address and are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.pdf"), []byte("%PDF"), 0o644))

	src := NewDirSource(root, nil)
	ctx := context.Background()

	msgs, next, err := src.List(ctx, "", "", 50)
	require.NoError(t, err)
	assert.Empty(t, next)
	require.Len(t, msgs, 1)
	assert.Equal(t, "billing@acme.com/inv1.pdf", msgs[0].ID)
	assert.Equal(t, "billing@acme.com", msgs[0].From)

	atts, err := src.Attachments(ctx, msgs[0].ID)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, "inv1.pdf", atts[0].Filename)
	assert.Equal(t, "%PDF-1", string(atts[0].Data))

	_, err = src.Attachments(ctx, "../etc/passwd")
	assert.Error(t, err)
}

package mail

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/invoicerd/invoicerd/constants"
)

// DirSource serves a local directory as a mailbox for setups without a mail
// API. Layout: <root>/<sender-address>/<attachment>.pdf — each file is one
// message whose From is the directory name and whose ID is the relative
// path.
type DirSource struct {
	root   string
	logger *slog.Logger
}

func NewDirSource(root string, logger *slog.Logger) *DirSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirSource{root: root, logger: logger}
}

func (d *DirSource) List(ctx context.Context, _, pageToken string, _ int32) ([]Message, string, error) {
	if pageToken != "" {
		return nil, "", nil
	}

	var msgs []Message
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			d.logger.Warn("mail.dir.walk_error", "path", path, "error", walkErr)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !constants.IsAllowedExtension(entry.Name()) {
			return nil
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return nil
		}
		from := filepath.Dir(rel)
		if from == "." || !strings.Contains(from, "@") {
			d.logger.Warn("mail.dir.no_sender", "path", rel)
			return nil
		}
		msg := Message{ID: filepath.ToSlash(rel), From: from}
		if info, err := entry.Info(); err == nil {
			msg.Received = info.ModTime()
		} else {
			msg.Received = time.Now()
		}
		msgs = append(msgs, msg)
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("walk %s: %w", d.root, err)
	}

	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })
	return msgs, "", nil
}

func (d *DirSource) Attachments(_ context.Context, messageID string) ([]Attachment, error) {
	rel := filepath.FromSlash(messageID)
	if strings.Contains(rel, "..") {
		return nil, fmt.Errorf("invalid message id %q", messageID)
	}
	data, err := os.ReadFile(filepath.Join(d.root, rel))
	if err != nil {
		return nil, fmt.Errorf("read message %s: %w", messageID, err)
	}
	return []Attachment{{Filename: filepath.Base(rel), Data: data}}, nil
}

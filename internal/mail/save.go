package mail

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename reduces an attachment name to a safe basename: path
// components dropped, anything outside [a-zA-Z0-9._-] collapsed to a single
// underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "attachment"
	}
	return name
}

// UniquePath returns a path under dir for name that does not collide with an
// existing file, appending -1, -2, ... before the extension when needed.
func UniquePath(dir, name string) string {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// SaveAttachment writes an attachment under dir, prefixing the sanitized
// name with the message ID so reruns of the same message are traceable.
func SaveAttachment(dir, messageID string, att Attachment) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create attachment dir: %w", err)
	}
	name := SanitizeFilename(messageID) + "_" + SanitizeFilename(att.Filename)
	path := UniquePath(dir, name)
	if err := os.WriteFile(path, att.Data, 0o644); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}
	return path, nil
}

package vendors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "acme-corp", NameFromEmail("billing@acme-corp.com.au"))
	assert.Equal(t, "example", NameFromEmail("a@example.org"))
	assert.Equal(t, "noatsign", NameFromEmail("noatsign"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "billing@acme.com", normalizeEmail("Acme Billing <Billing@Acme.com>"))
	assert.Equal(t, "a@b.co", normalizeEmail("  A@B.CO "))
	assert.Equal(t, "", normalizeEmail("not an address"))
}

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryApply(t *testing.T) {
	r := DefaultRegistry()
	r.Register("redact_codes", func(column, value string) string {
		if column == ColID {
			return strings.Repeat("*", len(value))
		}
		return value
	})

	item := LineItem{ColID: "A1", ColDesc: "Widget"}
	r.apply("redact_codes", item)
	assert.Equal(t, "**", item[ColID])
	assert.Equal(t, "Widget", item[ColDesc])
}

func TestRegistryBuiltins(t *testing.T) {
	item := LineItem{ColDesc: "Widget   small ", ColUnitPrice: "$5.00"}
	DefaultRegistry().apply("normalize_whitespace", item)
	assert.Equal(t, "Widget small", item[ColDesc])

	DefaultRegistry().apply("strip_currency_symbols", item)
	assert.Equal(t, "5.00", item[ColUnitPrice])
}

func TestRegistryUnknownIsNoop(t *testing.T) {
	item := LineItem{ColID: "A1"}
	DefaultRegistry().apply("nope", item)
	assert.Equal(t, "A1", item[ColID])
}

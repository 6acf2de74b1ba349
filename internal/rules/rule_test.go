package rules

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/pdfio"
)

func TestRuleValidate(t *testing.T) {
	t.Run("keyword rule needs keyword", func(t *testing.T) {
		r := Rule{
			FieldName:    "invoice_number",
			DataType:     constants.DataTypeText,
			LocationType: constants.LocationTypeKeyword,
		}
		assert.Error(t, r.Validate())
		r.Keyword = "Invoice No."
		assert.NoError(t, r.Validate())
	})

	t.Run("coordinates rule needs bbox", func(t *testing.T) {
		r := Rule{
			FieldName:    "vendor_name",
			DataType:     constants.DataTypeText,
			LocationType: constants.LocationTypeCoordinates,
		}
		assert.Error(t, r.Validate())
		r.Coordinates = &pdfio.BBox{X: 10, Y: 700, Width: 200, Height: 30}
		assert.NoError(t, r.Validate())
	})

	t.Run("bad regex rejected", func(t *testing.T) {
		r := Rule{
			FieldName:    "ref",
			DataType:     constants.DataTypeText,
			LocationType: constants.LocationTypeRegex,
			RegexPattern: "([",
		}
		assert.Error(t, r.Validate())
	})

	t.Run("line items without table_config allowed", func(t *testing.T) {
		r := Rule{
			FieldName:    "line_items",
			DataType:     constants.DataTypeLineItems,
			LocationType: constants.LocationTypeTable,
		}
		assert.NoError(t, r.Validate())
	})

	t.Run("unknown enum values rejected", func(t *testing.T) {
		r := Rule{FieldName: "x", DataType: "blob", LocationType: constants.LocationTypeKeyword, Keyword: "X"}
		assert.Error(t, r.Validate())
	})
}

func TestColumnRefJSON(t *testing.T) {
	var byIndex, byLabel ColumnRef
	require.NoError(t, json.Unmarshal([]byte(`2`), &byIndex))
	require.NoError(t, json.Unmarshal([]byte(`"Unit Price"`), &byLabel))
	assert.True(t, byIndex.ByIndex)
	assert.Equal(t, 2, byIndex.Index)
	assert.False(t, byLabel.ByIndex)
	assert.Equal(t, "Unit Price", byLabel.Label)

	out, err := json.Marshal(map[string]ColumnRef{"a": byIndex, "b": byLabel})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2,"b":"Unit Price"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`true`), &byIndex))
}

func TestParseRuleSet(t *testing.T) {
	data := []byte(`[
		{
			"field_name": "invoice_number",
			"data_type": "text",
			"location_type": "keyword",
			"keyword": "Invoice No.",
			"required": true
		},
		{
			"field_name": "line_items",
			"data_type": "line_items",
			"location_type": "table",
			"table_config": {
				"header_text": "code",
				"item_columns": {"id": 0, "description": "Description"}
			}
		}
	]`)

	rs, err := ParseRuleSet(data)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.True(t, rs[0].Required)
	assert.Equal(t, constants.DataTypeLineItems, rs[1].DataType)
	assert.True(t, rs[1].TableConfig.ItemColumns["id"].ByIndex)
	assert.Equal(t, "Description", rs[1].TableConfig.ItemColumns["description"].Label)
}

func TestParseRuleSetRejectsUnknownKeys(t *testing.T) {
	_, err := ParseRuleSet([]byte(`[{"field_name":"x","data_type":"text","location_type":"keyword","keyord":"typo"}]`))
	assert.Error(t, err)
}

func TestParseRuleSetRejectsBadEnum(t *testing.T) {
	_, err := ParseRuleSet([]byte(`[{"field_name":"x","data_type":"blob","location_type":"keyword","keyword":"X"}]`))
	assert.Error(t, err)
}

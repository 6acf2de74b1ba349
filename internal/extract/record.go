package extract

import "github.com/shopspring/decimal"

// Amount is a fixed-point currency value. It marshals as a bare JSON number
// keeping its decimal places, so 1234.50 stays the number 1234.50 instead
// of the string "1234.5" shopspring emits by default.
type Amount struct {
	decimal.Decimal
	places int32
}

func NewAmount(d decimal.Decimal, places int32) Amount {
	return Amount{Decimal: d.Round(places), places: places}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(a.places)), nil
}

func (a Amount) String() string {
	return a.StringFixed(a.places)
}

// LineItem is one extracted row mapped to canonical column names.
type LineItem map[string]string

// LineItemSet is the value stored for a line_items field: the header row as
// it appeared in the source table plus the mapped body rows, in page order.
type LineItemSet struct {
	HeaderRow []string   `json:"header_row"`
	Items     []LineItem `json:"items"`
}

// Empty reports whether the set carries no rows at all.
func (s *LineItemSet) Empty() bool {
	return s == nil || (len(s.HeaderRow) == 0 && len(s.Items) == 0)
}

// Record maps field names to extracted values. Scalar fields hold a string,
// Amount or float64 depending on the rule's data type; line_items fields
// hold a *LineItemSet. The whole record serializes to JSON.
type Record map[string]any

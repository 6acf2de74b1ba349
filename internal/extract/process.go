package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/rules"
)

var (
	specialChars = regexp.MustCompile(`[^a-zA-Z0-9\s.,:/$%-]`)
	nonNumeric   = regexp.MustCompile(`[^0-9.-]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// PreProcess normalizes raw matched text before type conversion. Steps run
// in a fixed order so that rule authors get the same result regardless of
// the order keys appear in the rule JSON: special characters are removed
// first, then casing, then whitespace collapsing, then trimming.
func PreProcess(text string, pre *rules.PreProcessing) string {
	if pre == nil {
		return strings.TrimSpace(text)
	}
	if pre.RemoveSpecialChars {
		text = specialChars.ReplaceAllString(text, "")
	}
	if pre.ToUppercase {
		text = strings.ToUpper(text)
	}
	if pre.RemoveSpaces {
		text = multiSpace.ReplaceAllString(text, " ")
	}
	if pre.RemoveWhitespace {
		text = strings.TrimSpace(text)
	}
	return strings.TrimSpace(text)
}

// PostProcess converts the pre-processed text into the rule's target type.
// Conversion never fails hard: when the text does not parse, the string is
// returned as-is and the caller records a post-processing issue via ok=false.
func PostProcess(text string, dataType constants.DataType, post *rules.PostProcessing) (any, bool) {
	switch dataType {
	case constants.DataTypeDate:
		return postProcessDate(text, post)
	case constants.DataTypeCurrency:
		return postProcessCurrency(text, post)
	case constants.DataTypeNumber:
		return postProcessNumber(text, post)
	default:
		return text, true
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

func postProcessDate(text string, post *rules.PostProcessing) (any, bool) {
	layouts := dateLayouts
	if post != nil && post.InputFormat != "" {
		layouts = []string{post.InputFormat}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			out := "2006-01-02"
			if post != nil && post.FormatDate != "" {
				out = post.FormatDate
			}
			return t.Format(out), true
		}
	}
	return text, false
}

func postProcessCurrency(text string, post *rules.PostProcessing) (any, bool) {
	cleaned := nonNumeric.ReplaceAllString(text, "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return text, false
	}
	places := int32(2)
	if post != nil && post.RoundDecimals != nil {
		places = int32(*post.RoundDecimals)
	}
	return NewAmount(d, places), true
}

func postProcessNumber(text string, post *rules.PostProcessing) (any, bool) {
	cleaned := nonNumeric.ReplaceAllString(text, "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return text, false
	}
	if post != nil && post.RoundDecimals != nil {
		p := math.Pow10(*post.RoundDecimals)
		f = math.Round(f*p) / p
	}
	return f, true
}

// ValidateField applies the rule's validation block to the raw extracted
// text. A nil return means the value passed; the error message names the
// constraint that failed.
func ValidateField(text string, v *rules.Validation) error {
	if v == nil {
		return nil
	}
	if v.Regex != "" {
		re, err := regexp.Compile("^(?:" + v.Regex + ")$")
		if err != nil {
			return &validationError{constraint: "regex", detail: err.Error()}
		}
		if !re.MatchString(text) {
			return &validationError{constraint: "regex", detail: "value does not match pattern"}
		}
	}
	if v.MinValue != nil || v.MaxValue != nil {
		cleaned := nonNumeric.ReplaceAllString(text, "")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return &validationError{constraint: "range", detail: "value is not numeric"}
		}
		if v.MinValue != nil && f < *v.MinValue {
			return &validationError{constraint: "min_value", detail: "value below minimum"}
		}
		if v.MaxValue != nil && f > *v.MaxValue {
			return &validationError{constraint: "max_value", detail: "value above maximum"}
		}
	}
	return nil
}

type validationError struct {
	constraint string
	detail     string
}

func (e *validationError) Error() string {
	return e.constraint + ": " + e.detail
}

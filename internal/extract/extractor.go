package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/pdfio"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/tabular"
)

// Config tunes orchestration behavior.
type Config struct {
	// StrictRequiredFields discards partial results when required fields
	// fail; otherwise the partial record is returned alongside the error.
	StrictRequiredFields bool
	// DefaultParsingMethod applies to table rules that leave parsing_method
	// unset. Zero value means hybrid.
	DefaultParsingMethod constants.ParsingMethod
}

// Extractor runs a rule set against a PDF and assembles the record.
type Extractor struct {
	cfg      Config
	tables   *tabular.Engine
	registry *Registry
	logger   *slog.Logger
}

func NewExtractor(cfg Config, registry *Registry, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Extractor{
		cfg:      cfg,
		tables:   tabular.NewEngine(logger),
		registry: registry,
		logger:   logger,
	}
}

// ExtractFile opens the PDF at path and runs the rule set against it.
func (e *Extractor) ExtractFile(ctx context.Context, path string, ruleSet []rules.Rule) (Record, []FieldIssue, error) {
	doc, err := pdfio.Open(path, e.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()

	pages := make([]pdfio.Page, 0, doc.NumPages())
	for n := 1; n <= doc.NumPages(); n++ {
		page, err := doc.Page(n)
		if err != nil {
			e.logger.Warn("extract.page.skip", "path", path, "page", n, "error", err)
			continue
		}
		pages = append(pages, page)
	}
	return e.Extract(ctx, pages, ruleSet)
}

// Extract runs the rule set against already-parsed pages. Each rule scans
// pages in ascending order and the first page with a match wins; line_items
// rules instead aggregate matches across every page. Per-field failures are
// recorded, never raised mid-scan; a single aggregate error covering every
// failed required field is returned after the full pass.
func (e *Extractor) Extract(ctx context.Context, pages []pdfio.Page, ruleSet []rules.Rule) (Record, []FieldIssue, error) {
	record := make(Record, len(ruleSet))
	var issues []FieldIssue
	var failed []string
	cache := newTableCache(e.tables)

	for _, rule := range ruleSet {
		if err := ctx.Err(); err != nil {
			return nil, issues, err
		}
		if rule.DataType == constants.DataTypeLineItems {
			issues = e.extractLineItems(cache, record, &failed, issues, pages, rule)
			continue
		}
		issues = e.extractScalar(cache, record, &failed, issues, pages, rule)
	}

	if len(failed) > 0 {
		err := &RequiredFieldsError{Fields: failed}
		e.logger.Warn("extract.required.failed", "fields", failed)
		if e.cfg.StrictRequiredFields {
			return nil, issues, err
		}
		return record, issues, err
	}
	e.logger.Debug("extract.ok", "fields", len(record))
	return record, issues, nil
}

func (e *Extractor) extractScalar(cache *tableCache, record Record, failed *[]string, issues []FieldIssue, pages []pdfio.Page, rule rules.Rule) []FieldIssue {
	raw, found := e.findScalar(cache, pages, rule)
	if !found {
		issues = append(issues, FieldIssue{Field: rule.FieldName, Kind: IssueFieldNotFound})
		if rule.Required {
			issues = append(issues, FieldIssue{Field: rule.FieldName, Kind: IssueRequiredFieldMissing})
			*failed = append(*failed, rule.FieldName)
		}
		return issues
	}

	text := PreProcess(raw, rule.PreProcessing)
	if err := ValidateField(text, rule.Validation); err != nil {
		issues = append(issues, FieldIssue{Field: rule.FieldName, Kind: IssueValidationFailed, Detail: err.Error()})
		if rule.Required {
			*failed = append(*failed, rule.FieldName)
		}
		return issues
	}

	value, ok := PostProcess(text, rule.DataType, rule.PostProcess)
	if !ok {
		issues = append(issues, FieldIssue{Field: rule.FieldName, Kind: IssuePostProcessing, Detail: "value did not parse as " + string(rule.DataType)})
	}
	record[rule.FieldName] = value
	return issues
}

// findScalar walks pages in ascending order; the first match wins and later
// pages are not consulted for this rule.
func (e *Extractor) findScalar(cache *tableCache, pages []pdfio.Page, rule rules.Rule) (string, bool) {
	tableRule := rule.LocationType == constants.LocationTypeTable ||
		rule.LocationType == constants.LocationTypeHeader
	for _, page := range pages {
		if tableRule {
			if v, ok := FieldFromTables(e.pageTables(cache, page, rule), rule); ok {
				return v, true
			}
			continue
		}
		if v, ok := FieldFromPage(page, rule); ok {
			return v, true
		}
	}
	return "", false
}

func (e *Extractor) extractLineItems(cache *tableCache, record Record, failed *[]string, issues []FieldIssue, pages []pdfio.Page, rule rules.Rule) []FieldIssue {
	var set LineItemSet
	for _, page := range pages {
		pageSet := LineItemsFromTables(e.pageTables(cache, page, rule), rule)
		if len(set.HeaderRow) == 0 {
			set.HeaderRow = pageSet.HeaderRow
		}
		set.Items = append(set.Items, pageSet.Items...)
	}
	if set.Empty() {
		issues = append(issues, FieldIssue{Field: rule.FieldName, Kind: IssueFieldNotFound})
		if rule.Required {
			issues = append(issues, FieldIssue{Field: rule.FieldName, Kind: IssueRequiredFieldMissing})
			*failed = append(*failed, rule.FieldName)
		}
		return issues
	}
	if rule.PostProcessor != "" {
		for _, item := range set.Items {
			e.registry.apply(rule.PostProcessor, item)
		}
	}
	record[rule.FieldName] = &set
	return issues
}

type tableKey struct {
	page   int
	flavor constants.ParsingMethod
	area   pdfio.BBox
}

// tableCache memoizes table detection per page and option set for one
// document pass, so rules sharing a flavor do not redetect the same page.
type tableCache struct {
	engine *tabular.Engine
	memo   map[tableKey][]tabular.Table
}

func newTableCache(engine *tabular.Engine) *tableCache {
	return &tableCache{engine: engine, memo: make(map[tableKey][]tabular.Table)}
}

func (c *tableCache) tables(page pdfio.Page, opts tabular.Options) []tabular.Table {
	key := tableKey{page: page.Number, flavor: opts.Flavor, area: opts.Area}
	if got, ok := c.memo[key]; ok {
		return got
	}
	got := c.engine.Tables(page, opts)
	c.memo[key] = got
	return got
}

// pageTables runs table detection with the rule's flavor and area, falling
// back to the configured default flavor when the rule leaves it unset.
func (e *Extractor) pageTables(cache *tableCache, page pdfio.Page, rule rules.Rule) []tabular.Table {
	opts := tabular.Options{Flavor: e.flavorFor(rule.TableConfig), Area: rule.TableConfig.Area()}
	return cache.tables(page, opts)
}

func (e *Extractor) flavorFor(tc *rules.TableConfig) constants.ParsingMethod {
	if (tc == nil || tc.ParsingMethod == "") && e.cfg.DefaultParsingMethod != "" {
		return e.cfg.DefaultParsingMethod
	}
	return tc.Flavor()
}

package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"trfts/internal/analyzer"
	"trfts/internal/common"
	"trfts/internal/document"
	"trfts/internal/index"
	"trfts/internal/types"
)

var (
	ErrNotFound = errors.New("not found keys")
	ErrEmptyID  = errors.New("document id must be positive")
)

// Engine indexes documents and answers term queries. Documents and queries
// go through the same analyzer, so a query matches whatever surface form of
// a word was indexed as long as both reduce to the same root.
type Engine struct {
	analyzer *analyzer.TurkishAnalyzer
	docm     *document.DocumentManager
	indexm   *index.Index
}

type QueryResult struct {
	Docs  []types.Document
	Terms []string
	Field string
}

func NewFTSEngine(a *analyzer.TurkishAnalyzer) *Engine {
	return &Engine{
		analyzer: a,
		docm:     document.NewDocumentManager(),
		indexm:   index.New(),
	}
}

// Add analyzes every field of doc and makes it searchable. Adding a document
// id again replaces the earlier version.
func (e *Engine) Add(doc types.Document) error {
	if doc.ID <= 0 {
		return errors.Wrapf(ErrEmptyID, "got %d", doc.ID)
	}
	fields := make([]string, 0, len(doc.Fields))
	for f := range doc.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	analyzed := make(map[string][]index.Occurrence, len(fields))
	for _, field := range fields {
		occs, err := e.analyze(field, doc.Fields[field])
		if err != nil {
			return errors.Wrapf(err, "document %d field %s", doc.ID, field)
		}
		analyzed[field] = occs
	}

	if e.docm.AddDoc(doc) {
		e.indexm.Remove(doc.ID)
	}
	for _, field := range fields {
		e.indexm.AddField(doc.ID, field, analyzed[field])
	}
	common.DINFO("Document %v,Include %v", doc.ID, fields)
	return nil
}

func (e *Engine) analyze(field, text string) ([]index.Occurrence, error) {
	var occs []index.Occurrence
	pos := -1
	err := e.analyzer.Walk(field, strings.NewReader(text), func(tok *types.Token) error {
		pos += tok.PositionIncrement
		occs = append(occs, index.Occurrence{Term: tok.String(), Position: pos})
		return nil
	})
	return occs, err
}

// BatchAdd indexes docs with at most workers goroutines. It stops at the
// first failure or when ctx is done and returns that error.
func (e *Engine) BatchAdd(ctx context.Context, docs []types.Document, workers int) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return e.Add(doc)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	common.INFO("indexed %d documents", len(docs))
	return nil
}

func (e *Engine) Remove(id int64) bool {
	if !e.docm.RemoveDoc(id) {
		return false
	}
	e.indexm.Remove(id)
	return true
}

func (e *Engine) Docs() int64 {
	return e.docm.Docs()
}

// *** query ***

// QueryOr returns the documents whose field contains any query term.
func (e *Engine) QueryOr(text string, field string) (QueryResult, error) {
	return e.query(text, field, types.AT_OR)
}

// QueryAnd returns the documents whose field contains every query term.
func (e *Engine) QueryAnd(text string, field string) (QueryResult, error) {
	return e.query(text, field, types.AT_AND)
}

func (e *Engine) query(text, field string, level types.QueryLevel) (QueryResult, error) {
	terms, err := e.analyzer.Terms(field, text)
	if err != nil {
		return QueryResult{}, errors.Wrap(err, "analyzing query")
	}
	terms = dedup(terms)
	qr := QueryResult{Terms: terms, Field: field}
	if len(terms) == 0 {
		return qr, errors.Wrapf(ErrNotFound, "query %q has no terms", text)
	}

	var ids []int64
	switch level {
	case types.AT_AND:
		ids = e.indexm.Intersect(field, terms)
	default:
		ids = e.indexm.Union(field, terms)
	}
	if len(ids) == 0 {
		return qr, errors.Wrapf(ErrNotFound, "%v in %s", terms, field)
	}
	qr.Docs = e.docm.GetDocuments(ids)
	common.DINFO("query %q -> %v matched %d docs", text, terms, len(qr.Docs))
	return qr, nil
}

// Suggest lists indexed terms of field starting with the lowercased prefix.
// The prefix is not stemmed.
func (e *Engine) Suggest(prefix, field string) []string {
	return e.indexm.Terms(field, strings.ToLower(prefix))
}

func dedup(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	r := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		r = append(r, t)
	}
	return r
}

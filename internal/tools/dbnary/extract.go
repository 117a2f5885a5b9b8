package dbnary

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/hanzitab/hanzitab/internal/tools/dbnary")

// Options tunes how written forms are resolved against noun entries.
type Options struct {
	// DeferUnresolved keeps written-form blocks whose subject has not been
	// declared by a noun entry yet and resolves them once the input ends.
	// Without it a written form that precedes its noun entry is dropped.
	DeferUnresolved bool
}

// Stats counts what one extraction saw.
type Stats struct {
	Blocks       int
	NounEntries  int
	WrittenForms int
	// Matched is the number of written-form blocks attributed to a noun.
	Matched int
	// Unresolved is the number of written-form blocks whose subject was
	// never (or, in forward-only mode, not yet) declared by a noun entry.
	Unresolved int
}

// Extractor accumulates noun entries and their written forms over a single
// pass. The zero value is not ready for use; call NewExtractor.
type Extractor struct {
	opts     Options
	entries  map[string]struct{}
	nouns    map[string]struct{}
	deferred map[string][]string
	stats    Stats
}

// NewExtractor returns an empty Extractor.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{
		opts:     opts,
		entries:  make(map[string]struct{}),
		nouns:    make(map[string]struct{}),
		deferred: make(map[string][]string),
	}
}

// AddBlock classifies block and folds it into the extractor state.
func (e *Extractor) AddBlock(block string) {
	e.stats.Blocks++
	rec := Classify(block)
	switch rec.Kind {
	case KindNounEntry:
		e.stats.NounEntries++
		e.entries[rec.ID] = struct{}{}
	case KindWrittenForm:
		e.stats.WrittenForms++
		if _, ok := e.entries[rec.ID]; ok {
			e.stats.Matched++
			e.nouns[rec.WrittenRep] = struct{}{}
			return
		}
		if e.opts.DeferUnresolved {
			e.deferred[rec.ID] = append(e.deferred[rec.ID], rec.WrittenRep)
			return
		}
		e.stats.Unresolved++
	}
}

// Nouns resolves any deferred written forms and returns the distinct nouns
// in ascending code point order.
func (e *Extractor) Nouns() []string {
	for id, reps := range e.deferred {
		if _, ok := e.entries[id]; !ok {
			e.stats.Unresolved += len(reps)
			continue
		}
		e.stats.Matched += len(reps)
		for _, rep := range reps {
			e.nouns[rep] = struct{}{}
		}
	}
	clear(e.deferred)

	out := make([]string, 0, len(e.nouns))
	for noun := range e.nouns {
		out = append(out, noun)
	}
	// Byte order on valid UTF-8 is code point order.
	sort.Strings(out)
	return out
}

// Stats returns the counters gathered so far.
func (e *Extractor) Stats() Stats {
	return e.stats
}

// Extract reads Turtle text from r and returns the sorted nouns.
func Extract(ctx context.Context, r io.Reader, opts Options) ([]string, Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ex := NewExtractor(opts)
	sc := NewBlockScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, ex.Stats(), err
		}
		ex.AddBlock(sc.Block())
	}
	if err := sc.Err(); err != nil {
		return nil, ex.Stats(), fmt.Errorf("read dump: %w", err)
	}
	nouns := ex.Nouns()
	return nouns, ex.Stats(), nil
}

// ExtractFile streams the bzip2-compressed dump at path.
func ExtractFile(ctx context.Context, path string, opts Options) (nouns []string, stats Stats, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "dbnary.ExtractFile")
	defer func() {
		span.SetAttributes(
			attribute.String("dbnary.path", path),
			attribute.Int("dbnary.blocks", stats.Blocks),
			attribute.Int("dbnary.noun_entries", stats.NounEntries),
			attribute.Int("dbnary.nouns", len(nouns)),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()

	return Extract(ctx, NewDumpReader(f), opts)
}

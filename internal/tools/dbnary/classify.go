package dbnary

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Language is the only written-representation language the extractor keeps.
var Language = language.Chinese

// Markers that together identify a noun lexical entry block.
const (
	markerLexicalEntry  = "ontolex:LexicalEntry"
	markerPartOfSpeech  = "lexinfo:partOfSpeech"
	markerNoun          = "lexinfo:noun"
	markerCanonicalForm = "ontolex:canonicalForm"
	markerWrittenRep    = "ontolex:writtenRep"
)

var (
	canonicalFormRE = regexp.MustCompile(`ontolex:canonicalForm\s+([\p{L}\p{N}_:.\-]+)`)
	subjectRE       = regexp.MustCompile(`^(\S+)\s`)
	langTag         = "@" + Language.String()
	writtenRepRE    = regexp.MustCompile(`ontolex:writtenRep\s+"([^"]+)"` + regexp.QuoteMeta(langTag))
)

// Kind is the classification of a record block.
type Kind int

const (
	// KindOther is a block the extractor ignores.
	KindOther Kind = iota
	// KindNounEntry declares a noun and names its canonical form.
	KindNounEntry
	// KindWrittenForm has a subject and a Chinese written representation.
	KindWrittenForm
)

func (k Kind) String() string {
	switch k {
	case KindNounEntry:
		return "noun-entry"
	case KindWrittenForm:
		return "written-form"
	default:
		return "other"
	}
}

// Record is a classified block.
type Record struct {
	Kind Kind
	// ID is the canonical form a noun entry points at, or the subject of a
	// written-form block.
	ID string
	// WrittenRep is set for KindWrittenForm.
	WrittenRep string
}

// Classify inspects one block. A block carrying all noun-entry markers is
// never treated as a written-form block, even when the canonical-form
// identifier cannot be extracted.
func Classify(block string) Record {
	if isNounEntry(block) {
		m := canonicalFormRE.FindStringSubmatch(block)
		if m == nil {
			return Record{Kind: KindOther}
		}
		return Record{Kind: KindNounEntry, ID: m[1]}
	}

	m := subjectRE.FindStringSubmatch(block)
	if m == nil {
		return Record{Kind: KindOther}
	}
	if !strings.Contains(block, markerWrittenRep) || !strings.Contains(block, langTag) {
		return Record{Kind: KindOther}
	}
	rep := writtenRepRE.FindStringSubmatch(block)
	if rep == nil {
		return Record{Kind: KindOther}
	}
	return Record{Kind: KindWrittenForm, ID: m[1], WrittenRep: rep[1]}
}

func isNounEntry(block string) bool {
	return strings.Contains(block, markerLexicalEntry) &&
		strings.Contains(block, markerPartOfSpeech) &&
		strings.Contains(block, markerNoun) &&
		strings.Contains(block, markerCanonicalForm)
}

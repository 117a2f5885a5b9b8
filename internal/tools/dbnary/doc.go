// Package dbnary extracts Chinese nouns from a DBnary Turtle dump.
//
// DBnary publishes Wiktionary data as OntoLex Turtle. A noun is recognised
// in two steps: a lexical entry block declares part of speech lexinfo:noun
// and names its canonical form, and a later block for that canonical form
// carries ontolex:writtenRep "..."@zh. The dump is read once, forward only.
package dbnary

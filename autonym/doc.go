// Package autonym maps ISO 639-1 and ISO 639-3 language tags to the English
// name of the language and to its autonym, the name the language uses for
// itself.
//
// The table is compiled from data/iso639-autonyms.tsv by iso639-tablegen and
// lives in read-only package data; lookups never allocate and are safe for
// concurrent use.
package autonym

//go:generate go run ../cmd/iso639-tablegen --config ../data/tablegen.yaml

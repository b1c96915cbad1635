package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AudioExt is the only file extension the remapper accepts.
const AudioExt = ".wav"

// Sentinel errors. Each is wrapped with the offending code and filename.
var (
	ErrMalformedName       = errors.New("malformed filename")
	ErrUnknownVocalChannel = errors.New("unknown vocal channel code")
	ErrUnknownEmotion      = errors.New("unknown emotion code")
	ErrUnknownSubcategory  = errors.New("unknown emotion subcategory code")
)

// Schema identifies which dataset a filename came from.
type Schema int

const (
	SchemaUnknown   Schema = iota
	SchemaUnified          // RAVDESS, 7 fields.
	SchemaSecondary        // ASVP-ESD, 9 or 10 fields.
)

func (s Schema) String() string {
	switch s {
	case SchemaUnified:
		return "ravdess"
	case SchemaSecondary:
		return "asvp-esd"
	}
	return "unknown"
}

// Field positions within a parsed stem.
const (
	fieldModality = iota
	fieldVocalChannel
	fieldEmotion
	fieldIntensity
	fieldStatement
	fieldRepetition
	fieldActor
	fieldSubcategory // ASVP-ESD only.
	fieldLanguage    // ASVP-ESD only.
	fieldQuality     // ASVP-ESD only, optional.
)

// Record is a filename stem split into its hyphen-delimited fields.
type Record struct {
	Name   string
	Fields []string
	Schema Schema
}

// ParseRecord splits basename (with .wav suffix) into fields and classifies
// the schema by field count.
func ParseRecord(basename string) (Record, error) {
	base := filepath.Base(basename)
	if !strings.HasSuffix(base, AudioExt) {
		return Record{}, fmt.Errorf("%w: %s: missing %s suffix", ErrMalformedName, base, AudioExt)
	}
	fields := strings.Split(strings.TrimSuffix(base, AudioExt), "-")

	r := Record{Name: base, Fields: fields}
	switch len(fields) {
	case 7:
		r.Schema = SchemaUnified
	case 9, 10:
		r.Schema = SchemaSecondary
	default:
		return Record{}, fmt.Errorf("%w: %s: %d fields, want 7, 9 or 10", ErrMalformedName, base, len(fields))
	}
	return r, nil
}

// field returns the i-th field, or "" if the record is shorter.
func (r Record) field(i int) string {
	if i < len(r.Fields) {
		return r.Fields[i]
	}
	return ""
}

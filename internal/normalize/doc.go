// Package normalize cleans individual fields of scraped flight records.
//
// Every exported parser is total: malformed input yields a documented
// default (0, nil, false or the trimmed input) instead of an error. The
// lower-case variants return an error alongside the default so that the
// Normalizer can record a ParseWarning for the defaulted field.
package normalize

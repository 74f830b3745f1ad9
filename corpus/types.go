package corpus

import (
	stderrors "errors"

	"golang.org/x/text/unicode/norm"
)

// ErrMalformedRow indicates a token line that is not a valid CoNLL-U row.
var ErrMalformedRow = stderrors.New("corpus: malformed CoNLL-U row")

const (
	fieldSeparator = "\t"
	numFields      = 10
	emptyField     = "_"
	maxLineBytes   = 1 << 20
)

// Column indices of a CoNLL-U row.
const (
	colID = iota
	colForm
	colLemma
	colUPOS
	colXPOS
)

// TagField selects the column used as the tag.
type TagField int

const (
	// UPOS is the universal part-of-speech column.
	UPOS TagField = iota

	// XPOS is the language-specific part-of-speech column.
	XPOS
)

// String implements fmt.Stringer.
func (f TagField) String() string {
	if f == XPOS {
		return "xpos"
	}

	return "upos"
}

// Option configures Read.
type Option func(*options)

type options struct {
	tagField  TagField
	normalize bool
	form      norm.Form
	lowercase bool
}

// WithTagField selects the tag column. Default UPOS.
func WithTagField(f TagField) Option {
	return func(o *options) { o.tagField = f }
}

// WithNormalization applies Unicode normalization f to every word form.
func WithNormalization(f norm.Form) Option {
	return func(o *options) {
		o.normalize = true
		o.form = f
	}
}

// WithLowercase lower-cases every word form (after normalization).
func WithLowercase() Option {
	return func(o *options) { o.lowercase = true }
}

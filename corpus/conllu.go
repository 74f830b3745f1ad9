package corpus

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hmmtag/hmm"
)

// ReadFile reads the CoNLL-U file at path. See Read.
func ReadFile(path string, opts ...Option) ([]hmm.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "corpus")
	}
	defer f.Close()

	seqs, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus: %s", path)
	}

	return seqs, nil
}

// Read parses CoNLL-U sentences from r.
//
// A sentence ends at a blank line or at EOF. A sentence whose every token
// was skipped is still returned (empty), so sentence indices match the
// source file.
//
// Errors: ErrMalformedRow (wrapped with the line number) for rows without
// exactly ten tab-separated fields or with a non-numeric ID.
func Read(r io.Reader, opts ...Option) ([]hmm.Sequence, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		seqs    []hmm.Sequence
		cur     hmm.Sequence
		started bool
		lineNo  int
	)
	flush := func() {
		if started {
			seqs = append(seqs, cur)
		}
		cur, started = nil, false
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		started = true

		tok, ok, err := parseRow(line, &o)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		if ok {
			cur = append(cur, tok)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "corpus: read")
	}
	flush()

	return seqs, nil
}

// parseRow extracts (form, tag) from one token line. ok is false for rows
// that are valid but carry no taggable token.
func parseRow(line string, o *options) (hmm.Token, bool, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != numFields {
		return hmm.Token{}, false, errors.Wrapf(ErrMalformedRow, "%d fields, want %d", len(fields), numFields)
	}

	id := fields[colID]
	if strings.ContainsAny(id, "-.") {
		return hmm.Token{}, false, nil // multiword range or empty node
	}
	if _, err := strconv.Atoi(id); err != nil {
		return hmm.Token{}, false, errors.Wrapf(ErrMalformedRow, "ID %q", id)
	}

	tag := fields[colUPOS]
	if o.tagField == XPOS {
		tag = fields[colXPOS]
	}
	if tag == "" || tag == emptyField {
		return hmm.Token{}, false, nil
	}

	form := fields[colForm]
	if o.normalize {
		form = o.form.String(form)
	}
	if o.lowercase {
		form = strings.ToLower(form)
	}

	return hmm.Token{Word: hmm.Word(form), Tag: hmm.Tag(tag)}, true, nil
}

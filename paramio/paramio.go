package paramio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/probtable"
)

// ErrBadRecord indicates a row with the wrong number of fields or an unparsable number.
var ErrBadRecord = errors.New("paramio: bad record")

// File names inside a model directory.
const (
	StartFile  = "start_probs.csv"
	TransFile  = "trans_probs.csv"
	EmitFile   = "emit_probs.csv"
	TotalsFile = "tag_totals.csv"
)

// Save writes m into dir, creating dir if needed.
func Save(dir string, m *hmm.Model) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("paramio: %w", err)
	}

	var start [][]string
	for _, tag := range probtable.SortedKeys(m.StartTable()) {
		start = append(start, []string{string(tag), formatProb(m.StartTable()[tag])})
	}

	var trans [][]string
	for _, from := range m.TransitionSources() {
		row := m.TransitionsFrom(from)
		for _, to := range probtable.SortedKeys(row) {
			trans = append(trans, []string{string(from), string(to), formatProb(row[to])})
		}
	}

	var emit [][]string
	for _, tag := range m.EmissionSources() {
		row := m.EmissionsOf(tag)
		for _, w := range probtable.SortedKeys(row) {
			emit = append(emit, []string{string(tag), string(w), formatProb(row[w])})
		}
	}

	var totals [][]string
	for _, tag := range probtable.SortedKeys(m.TagTotals()) {
		totals = append(totals, []string{string(tag), strconv.Itoa(m.TagTotals()[tag])})
	}

	for name, recs := range map[string][][]string{
		StartFile:  start,
		TransFile:  trans,
		EmitFile:   emit,
		TotalsFile: totals,
	} {
		if err := writeRecords(filepath.Join(dir, name), recs); err != nil {
			return err
		}
	}

	return nil
}

// Load reads a model directory written by Save.
//
// Errors: fs.ErrNotExist (wrapped) for a missing file, ErrBadRecord for
// malformed rows, hmm.ErrInvalidInput for out-of-range values.
func Load(dir string) (*hmm.Model, error) {
	start := map[hmm.Tag]float64{}
	if err := each(filepath.Join(dir, StartFile), 2, func(rec []string) error {
		p, err := parseProb(rec[1])
		start[hmm.Tag(rec[0])] = p

		return err
	}); err != nil {
		return nil, err
	}

	trans := map[hmm.Tag]map[hmm.Tag]float64{}
	if err := each(filepath.Join(dir, TransFile), 3, func(rec []string) error {
		p, err := parseProb(rec[2])
		from := hmm.Tag(rec[0])
		if trans[from] == nil {
			trans[from] = map[hmm.Tag]float64{}
		}
		trans[from][hmm.Tag(rec[1])] = p

		return err
	}); err != nil {
		return nil, err
	}

	emit := map[hmm.Tag]map[hmm.Word]float64{}
	if err := each(filepath.Join(dir, EmitFile), 3, func(rec []string) error {
		p, err := parseProb(rec[2])
		tag := hmm.Tag(rec[0])
		if emit[tag] == nil {
			emit[tag] = map[hmm.Word]float64{}
		}
		emit[tag][hmm.Word(rec[1])] = p

		return err
	}); err != nil {
		return nil, err
	}

	totals := map[hmm.Tag]int{}
	if err := each(filepath.Join(dir, TotalsFile), 2, func(rec []string) error {
		n, err := strconv.Atoi(rec[1])
		if err != nil {
			return fmt.Errorf("count %q: %w", rec[1], ErrBadRecord)
		}
		totals[hmm.Tag(rec[0])] = n

		return nil
	}); err != nil {
		return nil, err
	}

	m, err := hmm.NewModel(start, trans, emit, totals)
	if err != nil {
		return nil, fmt.Errorf("paramio: %s: %w", dir, err)
	}

	return m, nil
}

func writeRecords(path string, recs [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(recs); err != nil {
		return fmt.Errorf("paramio: %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("paramio: %w", err)
	}

	return nil
}

// each memory-maps path and calls fn for every record of exactly fields columns.
func each(path string, fields int, fn func([]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("paramio: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("paramio: %w", err)
	}
	if st.Size() == 0 {
		return nil // nothing to map
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("paramio: mmap %s: %w", path, err)
	}
	defer func() { _ = data.Unmap() }()

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = fields
	recs, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("paramio: %s: %w: %v", path, ErrBadRecord, err)
	}
	for i, rec := range recs {
		if err = fn(rec); err != nil {
			return fmt.Errorf("paramio: %s row %d: %w", path, i+1, err)
		}
	}

	return nil
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

func parseProb(s string) (float64, error) {
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("probability %q: %w", s, ErrBadRecord)
	}

	return p, nil
}

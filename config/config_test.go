package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmtag/config"
	"github.com/katalvlaran/hmmtag/corpus"
	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/viterbi"
)

// TestParse_EmptyIsDefault verifies an empty document changes nothing.
func TestParse_EmptyIsDefault(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, viterbi.DefaultOptions(), c.DecoderOptions())
}

// TestParse_Overrides keeps unspecified keys at their defaults.
func TestParse_Overrides(t *testing.T) {
	c, err := config.Parse([]byte(`
train: a.conllu
tag_field: xpos
normalize: nfc
lowercase: true
workers: 4
decoder:
  space: log
  memory: tworows
curve:
  step: 100
`))
	require.NoError(t, err)

	assert.Equal(t, "a.conllu", c.Train)
	assert.Equal(t, config.Default().Test, c.Test)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 100, c.Curve.Step)
	assert.Equal(t, "learning_curve.png", c.Curve.Plot)

	opts := c.DecoderOptions()
	assert.Equal(t, viterbi.Log, opts.Space)
	assert.Equal(t, viterbi.TwoRows, opts.MemoryMode)
	assert.Equal(t, hmm.DefaultTransitionFloor, opts.TransitionFloor)

	co := c.CurveOptions(nil)
	assert.Equal(t, 100, co.Step)
	assert.Equal(t, 4, co.Workers)
	require.NotNil(t, co.Decoder)
	assert.Equal(t, viterbi.Log, co.Decoder.Space)
}

// TestCorpusOptions applies tag column, normalization and lowercasing.
func TestCorpusOptions(t *testing.T) {
	c, err := config.Parse([]byte("tag_field: xpos\nnormalize: nfc\nlowercase: true\n"))
	require.NoError(t, err)

	row := "1\tHAUS\t_\tNOUN\tNN\t_\t0\troot\t_\t_\n"
	seqs, err := corpus.Read(strings.NewReader(row), c.CorpusOptions()...)
	require.NoError(t, err)
	require.Len(t, seqs, 1)
	assert.Equal(t, hmm.Sequence{{Word: "haus", Tag: "NN"}}, seqs[0])
}

// TestParse_Invalid reports the offending field.
func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"tag_field":                "tag_field: lemma",
		"normalize":                "normalize: nfx",
		"workers":                  "workers: -1",
		"decoder.space":            "decoder: {space: complex}",
		"decoder.memory":           "decoder: {memory: one}",
		"decoder.transition_floor": "decoder: {transition_floor: 2}",
		"curve.step":               "curve: {step: 0}",
		"diagnostics.top":          "diagnostics: {top: -3}",
	}
	for field, doc := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrBadConfig)
			assert.Contains(t, err.Error(), field+"=")
		})
	}
}

// TestParse_Syntax rejects unknown keys and malformed YAML.
func TestParse_Syntax(t *testing.T) {
	_, err := config.Parse([]byte("trian: x\n"))
	assert.Error(t, err)

	_, err = config.Parse([]byte("train: [\n"))
	assert.Error(t, err)
}

// TestLoad reads a file and wraps errors with its path.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hmmtag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_dir: out\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", c.ModelDir)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("workers: -2\n"), 0o644))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrBadConfig)
	assert.Contains(t, err.Error(), path)
}

// TestNormalizeWord matches the corpus reader's rewriting.
func TestNormalizeWord(t *testing.T) {
	c := config.Default()
	assert.Equal(t, "HAUS", c.NormalizeWord("HAUS"))

	c.Normalize, c.Lowercase = "nfc", true
	assert.Equal(t, "sche\u00fct", c.NormalizeWord("SCHEU\u0308T"))
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hmmtag/corpus"
	"github.com/katalvlaran/hmmtag/curve"
	"github.com/katalvlaran/hmmtag/eval"
	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/viterbi"
)

// ErrBadConfig indicates an invalid configuration value.
var ErrBadConfig = errors.New("config: invalid value")

// Config is the full run configuration.
type Config struct {
	Train       string      `yaml:"train"`
	Test        string      `yaml:"test"`
	ModelDir    string      `yaml:"model_dir"`
	TagField    string      `yaml:"tag_field"`
	Normalize   string      `yaml:"normalize"`
	Lowercase   bool        `yaml:"lowercase"`
	Workers     int         `yaml:"workers"`
	Decoder     Decoder     `yaml:"decoder"`
	Curve       Curve       `yaml:"curve"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
}

// Decoder mirrors viterbi.Options.
type Decoder struct {
	Space           string  `yaml:"space"`
	Memory          string  `yaml:"memory"`
	TransitionFloor float64 `yaml:"transition_floor"`
	FailOnUnderflow bool    `yaml:"fail_on_underflow"`
}

// Curve configures the learning-curve subcommand.
type Curve struct {
	Step int    `yaml:"step"`
	Plot string `yaml:"plot"` // empty: no image
}

// Diagnostics configures the confusion report.
type Diagnostics struct {
	Top int `yaml:"top"`
}

var (
	spaces   = map[string]viterbi.Space{"linear": viterbi.Linear, "log": viterbi.Log}
	memories = map[string]viterbi.MemoryMode{"full": viterbi.FullMatrix, "tworows": viterbi.TwoRows}
	fields   = map[string]corpus.TagField{"upos": corpus.UPOS, "xpos": corpus.XPOS}
	forms    = map[string]norm.Form{"nfc": norm.NFC, "nfd": norm.NFD, "nfkc": norm.NFKC, "nfkd": norm.NFKD}
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Train:    "de_gsd-ud-train.conllu",
		Test:     "de_gsd-ud-test.conllu",
		ModelDir: "model",
		TagField: "upos",
		Decoder: Decoder{
			Space:           "linear",
			Memory:          "full",
			TransitionFloor: hmm.DefaultTransitionFloor,
		},
		Curve:       Curve{Step: curve.DefaultStep, Plot: "learning_curve.png"},
		Diagnostics: Diagnostics{Top: eval.DefaultTopN},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes data over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports the first invalid field as ErrBadConfig.
func (c Config) Validate() error {
	bad := func(field string, v any) error {
		return fmt.Errorf("%w: %s=%v", ErrBadConfig, field, v)
	}

	if _, ok := fields[c.TagField]; !ok {
		return bad("tag_field", c.TagField)
	}
	if _, ok := forms[c.Normalize]; !ok && c.Normalize != "" {
		return bad("normalize", c.Normalize)
	}
	if c.Workers < 0 {
		return bad("workers", c.Workers)
	}
	if _, ok := spaces[c.Decoder.Space]; !ok {
		return bad("decoder.space", c.Decoder.Space)
	}
	if _, ok := memories[c.Decoder.Memory]; !ok {
		return bad("decoder.memory", c.Decoder.Memory)
	}
	if f := c.Decoder.TransitionFloor; math.IsNaN(f) || f < 0 || f > 1 {
		return bad("decoder.transition_floor", f)
	}
	if c.Curve.Step <= 0 {
		return bad("curve.step", c.Curve.Step)
	}
	if c.Diagnostics.Top < 0 {
		return bad("diagnostics.top", c.Diagnostics.Top)
	}

	return nil
}

// DecoderOptions converts the decoder section. c must be valid.
func (c Config) DecoderOptions() viterbi.Options {
	return viterbi.Options{
		Space:           spaces[c.Decoder.Space],
		MemoryMode:      memories[c.Decoder.Memory],
		TransitionFloor: c.Decoder.TransitionFloor,
		FailOnUnderflow: c.Decoder.FailOnUnderflow,
	}
}

// CorpusOptions converts the reader settings. c must be valid.
func (c Config) CorpusOptions() []corpus.Option {
	opts := []corpus.Option{corpus.WithTagField(fields[c.TagField])}
	if f, ok := forms[c.Normalize]; ok {
		opts = append(opts, corpus.WithNormalization(f))
	}
	if c.Lowercase {
		opts = append(opts, corpus.WithLowercase())
	}

	return opts
}

// NormalizeWord rewrites a raw token the way CorpusOptions rewrites word forms.
func (c Config) NormalizeWord(w string) string {
	if f, ok := forms[c.Normalize]; ok {
		w = f.String(w)
	}
	if c.Lowercase {
		w = strings.ToLower(w)
	}

	return w
}

// CurveOptions converts the curve section; progress may be nil.
func (c Config) CurveOptions(progress io.Writer) curve.Options {
	dec := c.DecoderOptions()

	return curve.Options{
		Step:     c.Curve.Step,
		Decoder:  &dec,
		Workers:  c.Workers,
		Progress: progress,
	}
}

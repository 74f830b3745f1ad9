package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/hmmtag/config"
	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/paramio"
	"github.com/katalvlaran/hmmtag/viterbi"
)

var decodeModel string

func cmdDecode() *commander.Command {
	cmd := &commander.Command{
		Run:       runDecode,
		UsageLine: "decode [-model dir] < sentences.txt",
		Short:     "tags whitespace-tokenized sentences read from stdin",
		Long: `
reads one sentence per line, tags it with saved tables and prints word/TAG pairs

	$ echo "Die Katze schläft ." | hmmtag decode -model model

`,
		Flag: *flag.NewFlagSet("decode", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&decodeModel, "model", "", "tables directory (default from config)")

	return cmd
}

func runDecode(_ *commander.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := paramio.Load(pick(decodeModel, cfg.ModelDir))
	if err != nil {
		return err
	}

	return decodeLines(context.Background(), stdin, stdout, m, cfg)
}

// decodeLines tags every line of r and writes one output line per input line.
func decodeLines(ctx context.Context, r io.Reader, w io.Writer, m *hmm.Model, cfg config.Config) error {
	var (
		raw       [][]string
		sentences [][]hmm.Word
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		words := make([]hmm.Word, len(fields))
		for i, f := range fields {
			words[i] = hmm.Word(cfg.NormalizeWord(f))
		}
		raw = append(raw, fields)
		sentences = append(sentences, words)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	var (
		idx     []int
		nonzero [][]hmm.Word
	)
	for i, s := range sentences {
		if len(s) > 0 {
			idx = append(idx, i)
			nonzero = append(nonzero, s)
		}
	}
	opts := cfg.DecoderOptions()
	results, err := viterbi.DecodeAll(ctx, nonzero, m, &opts, cfg.Workers)
	if err != nil {
		return err
	}
	tags := make([][]hmm.Tag, len(sentences))
	for k, res := range results {
		tags[idx[k]] = res.Tags
	}

	bw := bufio.NewWriter(w)
	for i, fields := range raw {
		for j, f := range fields {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%s/%s", f, tags[i][j])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

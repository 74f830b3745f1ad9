package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/viterbi"
)

func cmdDemo() *commander.Command {
	return &commander.Command{
		Run:       runDemo,
		UsageLine: "demo",
		Short:     "decodes the hot/cold ice-cream example",
		Flag:      *flag.NewFlagSet("demo", flag.ExitOnError),
	}
}

func runDemo(_ *commander.Command, _ []string) error {
	return demo(stdout)
}

// weatherModel is the two-state ice-cream HMM.
func weatherModel() (*hmm.Model, error) {
	return hmm.NewModel(
		map[hmm.Tag]float64{"HOT": 0.8, "COLD": 0.2},
		map[hmm.Tag]map[hmm.Tag]float64{
			"HOT":  {"HOT": 0.7, "COLD": 0.3},
			"COLD": {"HOT": 0.4, "COLD": 0.6},
		},
		map[hmm.Tag]map[hmm.Word]float64{
			"HOT":  {"1": 0.2, "2": 0.4, "3": 0.4},
			"COLD": {"1": 0.5, "2": 0.4, "3": 0.1},
		},
		map[hmm.Tag]int{"HOT": 3, "COLD": 3},
	)
}

func demo(w io.Writer) error {
	m, err := weatherModel()
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := viterbi.Decode([]hmm.Word{"3", "1", "3"}, m, nil)
	if err != nil {
		return err
	}
	took := time.Since(start)

	fmt.Fprintln(w, "Best sequence:", res.Tags)
	fmt.Fprintf(w, "Probability: %.6f\n", res.Prob)
	fmt.Fprintf(w, "Time taken: %.6f seconds\n", took.Seconds())

	return nil
}

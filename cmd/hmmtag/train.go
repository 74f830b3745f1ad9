package main

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/hmmtag/corpus"
	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/paramio"
)

var (
	trainFile string
	modelDir  string
)

func cmdTrain() *commander.Command {
	cmd := &commander.Command{
		Run:       runTrain,
		UsageLine: "train [-train file] [-model dir]",
		Short:     "estimates HMM tables from a CoNLL-U corpus and saves them",
		Long: `
estimates start, transition and emission tables and writes them as CSV

	$ hmmtag train -train de_gsd-ud-train.conllu -model model

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainFile, "train", "", "training corpus (default from config)")
	cmd.Flag.StringVar(&modelDir, "model", "", "output directory (default from config)")

	return cmd
}

func runTrain(_ *commander.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	train := pick(trainFile, cfg.Train)
	dir := pick(modelDir, cfg.ModelDir)

	start := time.Now()
	fmt.Fprintf(stdout, "Parsing training data from %s...\n", train)
	seqs, err := corpus.ReadFile(train, cfg.CorpusOptions()...)
	if err != nil {
		return err
	}
	glog.V(1).Infof("train: %d sentences", len(seqs))

	fmt.Fprintln(stdout, "Training HMM...")
	m, err := hmm.Estimate(seqs)
	if err != nil {
		return err
	}
	trained := time.Now()

	fmt.Fprintln(stdout, "Saving parameters...")
	if err = paramio.Save(dir, m); err != nil {
		return err
	}
	saved := time.Now()

	fmt.Fprintf(stdout, "Training and saving completed: %d tags, %d word types in %s\n", m.NumTags(), m.Vocabulary(), dir)
	fmt.Fprintln(stdout, "\nExecution Times:")
	fmt.Fprintf(stdout, "  Training time: %.6f seconds\n", trained.Sub(start).Seconds())
	fmt.Fprintf(stdout, "  Saving time: %.6f seconds\n", saved.Sub(trained).Seconds())
	fmt.Fprintf(stdout, "  Total time: %.6f seconds\n", saved.Sub(start).Seconds())

	return nil
}

// pick returns flagValue unless it is empty.
func pick(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}

	return fallback
}

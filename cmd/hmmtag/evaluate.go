package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/hmmtag/corpus"
	"github.com/katalvlaran/hmmtag/eval"
	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/paramio"
)

var (
	evalTrain string
	evalTest  string
	evalModel string
	evalTop   int
)

func cmdEval() *commander.Command {
	cmd := &commander.Command{
		Run:       runEval,
		UsageLine: "eval [-train file | -model dir] [-test file] [-top n]",
		Short:     "tags a test corpus and reports accuracy and frequent errors",
		Long: `
trains on -train (or loads tables from -model), tags -test and prints token
accuracy, the most frequent (gold, predicted) confusions and timings

	$ hmmtag eval -train de_gsd-ud-train.conllu -test de_gsd-ud-test.conllu

`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&evalTrain, "train", "", "training corpus (default from config)")
	cmd.Flag.StringVar(&evalTest, "test", "", "test corpus (default from config)")
	cmd.Flag.StringVar(&evalModel, "model", "", "load saved tables instead of training")
	cmd.Flag.IntVar(&evalTop, "top", -1, "confusion pairs to print (default from config)")

	return cmd
}

func runEval(_ *commander.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	top := cfg.Diagnostics.Top
	if evalTop >= 0 {
		top = evalTop
	}

	start := time.Now()
	var m *hmm.Model
	if evalModel != "" {
		fmt.Fprintf(stdout, "Loading HMM from %s...\n", evalModel)
		m, err = paramio.Load(evalModel)
	} else {
		fmt.Fprintln(stdout, "Training HMM...")
		var seqs []hmm.Sequence
		if seqs, err = corpus.ReadFile(pick(evalTrain, cfg.Train), cfg.CorpusOptions()...); err == nil {
			m, err = hmm.Estimate(seqs)
		}
	}
	if err != nil {
		return err
	}
	trained := time.Now()

	fmt.Fprintln(stdout, "Loading test data...")
	test, err := corpus.ReadFile(pick(evalTest, cfg.Test), cfg.CorpusOptions()...)
	if err != nil {
		return err
	}
	loaded := time.Now()

	fmt.Fprintln(stdout, "Predicting POS tags...")
	opts := cfg.DecoderOptions()
	pred, err := eval.Predict(context.Background(), test, m, &opts, cfg.Workers)
	if err != nil {
		return err
	}
	predicted := time.Now()

	fmt.Fprintln(stdout, "Evaluating predictions...")
	rep, err := eval.Evaluate(pred, eval.GoldTags(test))
	if err != nil {
		return err
	}
	evaluated := time.Now()

	fmt.Fprintf(stdout, "\nAccuracy: %.4f\n\n", rep.Accuracy)
	if top > 0 {
		if err = eval.WriteDiagnostics(stdout, rep.Confusions, top); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, "\nExecution Times:")
	fmt.Fprintf(stdout, "  Training: %.6f seconds\n", trained.Sub(start).Seconds())
	fmt.Fprintf(stdout, "  Loading Test Data: %.6f seconds\n", loaded.Sub(trained).Seconds())
	fmt.Fprintf(stdout, "  Prediction: %.6f seconds\n", predicted.Sub(loaded).Seconds())
	fmt.Fprintf(stdout, "  Evaluation: %.6f seconds\n", evaluated.Sub(predicted).Seconds())
	fmt.Fprintf(stdout, "  Total Time: %.6f seconds\n", evaluated.Sub(start).Seconds())

	return nil
}

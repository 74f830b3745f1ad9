package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/hmmtag/corpus"
	"github.com/katalvlaran/hmmtag/curve"
)

var (
	curveTrain    string
	curveTest     string
	curveStep     int
	curvePlot     string
	curveProgress bool
)

func cmdCurve() *commander.Command {
	cmd := &commander.Command{
		Run:       runCurve,
		UsageLine: "curve [-train file] [-test file] [-step n] [-plot file] [-progress]",
		Short:     "measures accuracy for growing training prefixes",
		Long: `
trains on the first step, 2*step, ... sentences of the training corpus,
evaluates each model on the test corpus and plots accuracy against size

	$ hmmtag curve -step 500 -plot learning_curve.png

`,
		Flag: *flag.NewFlagSet("curve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&curveTrain, "train", "", "training corpus (default from config)")
	cmd.Flag.StringVar(&curveTest, "test", "", "test corpus (default from config)")
	cmd.Flag.IntVar(&curveStep, "step", 0, "sentences added per point (default from config)")
	cmd.Flag.StringVar(&curvePlot, "plot", "", "image to write (default from config)")
	cmd.Flag.BoolVar(&curveProgress, "progress", false, "draw a progress bar on stderr")

	return cmd
}

func runCurve(_ *commander.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if curveStep != 0 {
		cfg.Curve.Step = curveStep
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Loading datasets...")
	train, err := corpus.ReadFile(pick(curveTrain, cfg.Train), cfg.CorpusOptions()...)
	if err != nil {
		return err
	}
	test, err := corpus.ReadFile(pick(curveTest, cfg.Test), cfg.CorpusOptions()...)
	if err != nil {
		return err
	}

	opts := cfg.CurveOptions(nil)
	if curveProgress {
		opts.Progress = os.Stderr
	}
	fmt.Fprintln(stdout, "\nGenerating the learning curve...")
	res, err := curve.Sweep(context.Background(), train, test, opts)
	if err != nil {
		return err
	}
	for _, pt := range res.Points {
		fmt.Fprintf(stdout, "  %6d sentences: accuracy %.4f\n", pt.Size, pt.Accuracy)
	}
	fmt.Fprintf(stdout, "\nTotal Training Time: %.6f seconds\n", res.TrainTime.Seconds())
	fmt.Fprintf(stdout, "Total Evaluation Time: %.6f seconds\n", res.EvalTime.Seconds())

	if path := pick(curvePlot, cfg.Curve.Plot); path != "" && len(res.Points) > 0 {
		if err = curve.Plot(res.Points, path); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Learning curve written to %s\n", path)
	}

	return nil
}

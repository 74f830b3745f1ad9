package curve

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/hmmtag/eval"
	"github.com/katalvlaran/hmmtag/hmm"
)

// Sweep runs the learning-curve experiment. A remainder of train smaller
// than Step is never used on its own, so the last point may be below len(train).
//
// Errors: ErrBadStep, ErrEmptyInput, context errors, and anything from
// estimation or decoding (wrapped with the training size).
func Sweep(ctx context.Context, train, test []hmm.Sequence, opts Options) (Result, error) {
	if opts.Step <= 0 {
		return Result{}, ErrBadStep
	}
	if len(train) == 0 || len(test) == 0 {
		return Result{}, ErrEmptyInput
	}

	gold := eval.GoldTags(test)
	steps := len(train) / opts.Step

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(steps,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("learning curve"),
			progressbar.OptionShowCount(),
		)
	}

	var res Result
	for size := opts.Step; size <= len(train); size += opts.Step {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		t0 := time.Now()
		m, err := hmm.Estimate(train[:size])
		if err != nil {
			return res, fmt.Errorf("curve: size %d: %w", size, err)
		}
		trainTime := time.Since(t0)

		t1 := time.Now()
		pred, err := eval.Predict(ctx, test, m, opts.Decoder, opts.Workers)
		if err != nil {
			return res, fmt.Errorf("curve: size %d: %w", size, err)
		}
		rep, err := eval.Evaluate(pred, gold)
		if err != nil {
			return res, fmt.Errorf("curve: size %d: %w", size, err)
		}
		evalTime := time.Since(t1)

		res.Points = append(res.Points, Point{
			Size:      size,
			Accuracy:  rep.Accuracy,
			TrainTime: trainTime,
			EvalTime:  evalTime,
		})
		res.TrainTime += trainTime
		res.EvalTime += evalTime
		glog.V(1).Infof("curve: size=%d accuracy=%.4f train=%s eval=%s", size, rep.Accuracy, trainTime, evalTime)

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return res, nil
}

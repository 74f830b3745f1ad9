// Package curve measures how tagging accuracy grows with training data.
//
// 🚀 What it does
//
//	Sweep trains on the first step, 2·step, 3·step, … sentences of a
//	training corpus (never more than the corpus holds), tags the test
//	corpus with each model and records one Point per size.
//
// ✨ Outputs
//
//   - Result.Points: size, accuracy, training and evaluation wall time.
//   - Result.TrainTime / Result.EvalTime: totals over the sweep.
//   - Plot: "Learning Curve: Training Size vs. Accuracy" rendered with
//     gonum.org/v1/plot; the image format follows the file extension
//     (.png, .svg, .pdf, …).
//
// ⚙️ Reporting
//
//	Per-size accuracy is logged at glog verbosity 1. Setting
//	Options.Progress draws a terminal progress bar
//	(github.com/schollz/progressbar/v3) on that writer.
package curve

// Package eval scores predicted tag sequences against gold annotations:
// token accuracy plus a tally of (gold, predicted) confusion pairs.
//
// ⚙️ Usage:
//
//	preds, err := eval.Predict(ctx, test, model, &opts, 0)
//	rep, err := eval.Evaluate(preds, eval.GoldTags(test))
//	fmt.Printf("accuracy=%.4f\n", rep.Accuracy)
//	_ = eval.WriteDiagnostics(os.Stdout, rep.Confusions, 10)
//
// Length policy:
//
//	By default sentences are compared over their overlapping prefix and
//	surplus sentences on either side are ignored. WithStrictLengths turns
//	any mismatch into ErrLengthMismatch.
package eval

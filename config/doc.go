// Package config loads the YAML run configuration of the hmmtag command.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Unknown keys are rejected so typos surface early.
//
//	train: de_gsd-ud-train.conllu
//	test: de_gsd-ud-test.conllu
//	model_dir: model
//	tag_field: upos        # upos | xpos
//	normalize: ""          # "" | nfc | nfd | nfkc | nfkd
//	lowercase: false
//	workers: 0             # 0: GOMAXPROCS
//	decoder:
//	  space: linear        # linear | log
//	  memory: full         # full | tworows
//	  transition_floor: 1e-10
//	  fail_on_underflow: false
//	curve:
//	  step: 500
//	  plot: learning_curve.png
//	diagnostics:
//	  top: 10
package config

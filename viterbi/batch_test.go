package viterbi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/viterbi"
)

// TestDecodeAll_PreservesOrder verifies batch results line up with input
// and equal sequential decoding, for several pool sizes.
func TestDecodeAll_PreservesOrder(t *testing.T) {
	m := trainedModel(t)
	sentences := [][]hmm.Word{
		words("the cat sleeps"),
		words("dogs bark"),
		words("a old dog barks loudly"),
		words("cats"),
		words("the unicorn sleeps quietly"),
	}

	for _, workers := range []int{0, 1, 2, 16} {
		got, err := viterbi.DecodeAll(context.Background(), sentences, m, nil, workers)
		require.NoError(t, err)
		require.Len(t, got, len(sentences))
		for i, obs := range sentences {
			want, err := viterbi.Decode(obs, m, nil)
			require.NoError(t, err)
			assert.Equal(t, want, got[i], "workers=%d sentence=%d", workers, i)
		}
	}
}

// TestDecodeAll_Empty verifies an empty batch is not an error.
func TestDecodeAll_Empty(t *testing.T) {
	got, err := viterbi.DecodeAll(context.Background(), nil, weatherModel(t), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestDecodeAll_FailsOnEmptySentence verifies the failing index is reported.
func TestDecodeAll_FailsOnEmptySentence(t *testing.T) {
	sentences := [][]hmm.Word{words("3 1"), {}, words("2")}

	_, err := viterbi.DecodeAll(context.Background(), sentences, weatherModel(t), nil, 1)
	require.ErrorIs(t, err, viterbi.ErrEmptyInput)
	assert.Contains(t, err.Error(), "sentence 1")
}

// TestDecodeAll_BadInputs verifies validation happens before any work.
func TestDecodeAll_BadInputs(t *testing.T) {
	_, err := viterbi.DecodeAll(context.Background(), [][]hmm.Word{words("1")}, nil, nil, 1)
	assert.ErrorIs(t, err, viterbi.ErrNilModel)

	opts := viterbi.DefaultOptions()
	opts.MemoryMode = viterbi.MemoryMode(5)
	_, err = viterbi.DecodeAll(context.Background(), [][]hmm.Word{words("1")}, weatherModel(t), &opts, 1)
	assert.ErrorIs(t, err, viterbi.ErrBadOption)
}

// TestDecodeAll_Cancelled verifies a cancelled context stops the batch.
func TestDecodeAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := viterbi.DecodeAll(ctx, [][]hmm.Word{words("3 1 3")}, weatherModel(t), nil, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

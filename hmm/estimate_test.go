package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/probtable"
)

// EstimatorSuite exercises Estimate on small hand-checkable corpora.
type EstimatorSuite struct {
	suite.Suite
	corpus []hmm.Sequence
}

func (s *EstimatorSuite) SetupTest() {
	s.corpus = []hmm.Sequence{
		seq(s.T(), "the cat sleeps", "DET NOUN VERB"),
		seq(s.T(), "a dog barks", "DET NOUN VERB"),
		seq(s.T(), "dogs bark", "NOUN VERB"),
		{}, // empty sentences contribute nothing
	}
}

// TestSingleSentence checks the one-sentence scenario by hand.
func (s *EstimatorSuite) TestSingleSentence() {
	m, err := hmm.Estimate([]hmm.Sequence{seq(s.T(), "the cat", "DET NOUN")})
	require.NoError(s.T(), err)

	require.Equal(s.T(), []hmm.Tag{"DET"}, m.Tags(), "tag set is the start table keys")
	require.Equal(s.T(), 1.0, m.StartProb("DET"))
	// (1 + 1) / (1 + 2 distinct tags)
	require.InDelta(s.T(), 2.0/3.0, m.TransitionsFrom("DET")["NOUN"], 1e-12)
	require.Equal(s.T(), 1, m.TransitionsFrom("DET").Len())
	require.Equal(s.T(), 1.0, m.EmissionsOf("DET")["the"])
	require.Equal(s.T(), 1.0, m.EmissionsOf("NOUN")["cat"])
	require.Equal(s.T(), 1, m.TagTotals()["DET"])
	require.Equal(s.T(), 1, m.TagTotals()["NOUN"])
}

// TestStartIsPlainNormalization verifies no smoothing on the start table.
func (s *EstimatorSuite) TestStartIsPlainNormalization() {
	m, err := hmm.Estimate(s.corpus)
	require.NoError(s.T(), err)

	start := m.StartTable()
	require.InDelta(s.T(), 2.0/3.0, start["DET"], 1e-12)
	require.InDelta(s.T(), 1.0/3.0, start["NOUN"], 1e-12)
	require.False(s.T(), start.Has("VERB"), "VERB never starts a sentence")
	require.InDelta(s.T(), 1.0, start.Sum(), 1e-12)
}

// TestTransitionsUseGlobalTagCount verifies the add-one denominator uses
// every distinct tag, not only targets reachable from the source.
func (s *EstimatorSuite) TestTransitionsUseGlobalTagCount() {
	m, err := hmm.Estimate(s.corpus)
	require.NoError(s.T(), err)

	// DET→NOUN seen twice; 2 outgoing from DET; 3 distinct tags.
	require.InDelta(s.T(), 3.0/5.0, m.TransitionsFrom("DET")["NOUN"], 1e-12)
	// NOUN→VERB seen three times; 3 outgoing; 3 tags.
	require.InDelta(s.T(), 4.0/6.0, m.TransitionsFrom("NOUN")["VERB"], 1e-12)
	require.Nil(s.T(), m.TransitionsFrom("VERB"), "VERB is always sentence-final")
	require.Equal(s.T(), []hmm.Tag{"DET", "NOUN"}, m.TransitionSources())

	// Unseen targets come back as the floor.
	require.Equal(s.T(), hmm.DefaultTransitionFloor, m.Transition("DET", "VERB", hmm.DefaultTransitionFloor))
	require.Equal(s.T(), hmm.DefaultTransitionFloor, m.Transition("VERB", "DET", hmm.DefaultTransitionFloor))
}

// TestTransitionsImpliedMassSumsToOne adds the smoothed mass of every
// unobserved target to the explicit entries of each transition row.
func (s *EstimatorSuite) TestTransitionsImpliedMassSumsToOne() {
	corpus := append(s.corpus,
		seq(s.T(), "the big dog", "DET ADJ NOUN"),
		seq(s.T(), "dogs bark loudly", "NOUN VERB ADV"),
	)
	m, err := hmm.Estimate(corpus)
	require.NoError(s.T(), err)

	outgoing := probtable.Counts[hmm.Tag]{}
	for _, sq := range corpus {
		for i := 1; i < len(sq); i++ {
			outgoing.Add(sq[i-1].Tag)
		}
	}
	numTags := len(m.TagTotals())
	require.Equal(s.T(), 5, numTags)

	for _, from := range m.TransitionSources() {
		row := m.TransitionsFrom(from)
		unseen := probtable.Unseen(outgoing[from], 1, numTags)
		total := row.Sum() + float64(numTags-row.Len())*unseen
		require.InDelta(s.T(), 1.0, total, 1e-12, "from %s", from)
	}
	require.Equal(s.T(), []hmm.Tag{"ADJ", "DET", "NOUN", "VERB"}, m.TransitionSources())
}

// TestEmissionsArePlainNormalization verifies per-tag relative frequencies.
func (s *EstimatorSuite) TestEmissionsArePlainNormalization() {
	m, err := hmm.Estimate(s.corpus)
	require.NoError(s.T(), err)

	noun := m.EmissionsOf("NOUN")
	require.InDelta(s.T(), 1.0/3.0, noun["cat"], 1e-12)
	require.InDelta(s.T(), 1.0/3.0, noun["dog"], 1e-12)
	require.InDelta(s.T(), 1.0/3.0, noun["dogs"], 1e-12)
	for _, tag := range m.EmissionSources() {
		require.InDelta(s.T(), 1.0, m.EmissionsOf(tag).Sum(), 1e-12, "emission row %s", tag)
	}
	require.Equal(s.T(), 8, m.Vocabulary())
}

// TestEmissionFallback verifies 1 / (Σ totals + |tags|).
func (s *EstimatorSuite) TestEmissionFallback() {
	m, err := hmm.Estimate(s.corpus)
	require.NoError(s.T(), err)

	// 8 tokens; the tag set is the start keys {DET, NOUN}.
	want := 1.0 / (8.0 + 2.0)
	require.InDelta(s.T(), want, m.EmissionFallback(), 1e-15)
	require.Equal(s.T(), m.EmissionFallback(), m.Emission("DET", "unicorn"))
	require.Equal(s.T(), m.EmissionFallback(), m.Emission("VERB", "cat"))
	require.Equal(s.T(), m.EmissionFallback(), m.Emission("ADJ", "cat"), "unknown tags fall back too")
}

// TestIdempotent verifies two runs on identical input give identical tables.
func (s *EstimatorSuite) TestIdempotent() {
	a, err := hmm.Estimate(s.corpus)
	require.NoError(s.T(), err)
	b, err := hmm.Estimate(s.corpus)
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.StartTable(), b.StartTable())
	for _, tag := range a.TransitionSources() {
		require.Equal(s.T(), a.TransitionsFrom(tag), b.TransitionsFrom(tag))
	}
	for _, tag := range a.EmissionSources() {
		require.Equal(s.T(), a.EmissionsOf(tag), b.EmissionsOf(tag))
	}
	require.Equal(s.T(), a.TagTotals(), b.TagTotals())
}

// TestEmptyCorpus ensures a corpus without tokens is rejected.
func (s *EstimatorSuite) TestEmptyCorpus() {
	_, err := hmm.Estimate(nil)
	require.ErrorIs(s.T(), err, hmm.ErrEmptyInput)

	_, err = hmm.Estimate([]hmm.Sequence{{}, {}})
	require.ErrorIs(s.T(), err, hmm.ErrEmptyInput)
}

// TestEmptyTag ensures an untagged token is reported, not counted.
func (s *EstimatorSuite) TestEmptyTag() {
	bad := hmm.Sequence{{Word: "x", Tag: "NOUN"}, {Word: "y"}}
	_, err := hmm.Estimate([]hmm.Sequence{s.corpus[0], bad})
	require.ErrorIs(s.T(), err, hmm.ErrInvalidInput)
	require.Contains(s.T(), err.Error(), "sequence 1")
}

func TestEstimatorSuite(t *testing.T) {
	suite.Run(t, new(EstimatorSuite))
}

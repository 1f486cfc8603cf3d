package jobgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jobsched/jobgen"
	"github.com/katalvlaran/jobsched/scheduler"
)

// TestRandom_Errors covers the size and RNG preconditions.
func TestRandom_Errors(t *testing.T) {
	_, err := jobgen.Random(-1, jobgen.WithSeed(1))
	assert.ErrorIs(t, err, jobgen.ErrBadSize)

	_, err = jobgen.Random(3)
	assert.ErrorIs(t, err, jobgen.ErrNeedRandSource)

	_, err = jobgen.Disjoint(-2)
	assert.ErrorIs(t, err, jobgen.ErrBadSize)

	_, err = jobgen.Overlapping(-2)
	assert.ErrorIs(t, err, jobgen.ErrBadSize)

	_, err = jobgen.Shuffle(nil)
	assert.ErrorIs(t, err, jobgen.ErrNeedRandSource)
}

// TestRandom_BoundsAndDeterminism checks generated ranges and seed reproducibility.
func TestRandom_BoundsAndDeterminism(t *testing.T) {
	opts := []jobgen.Option{
		jobgen.WithSeed(42),
		jobgen.WithHorizon(30),
		jobgen.WithMaxDuration(4),
		jobgen.WithProfitRange(5, 9),
	}
	a, err := jobgen.Random(500, opts...)
	require.NoError(t, err)
	b, err := jobgen.Random(500, opts...)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must give the same jobs")

	for _, j := range a {
		assert.GreaterOrEqual(t, j.Start, 0)
		assert.Less(t, j.Start, 30)
		assert.GreaterOrEqual(t, j.End-j.Start, 1)
		assert.LessOrEqual(t, j.End-j.Start, 4)
		assert.GreaterOrEqual(t, j.Profit, 5)
		assert.LessOrEqual(t, j.Profit, 9)
	}

	empty, err := jobgen.Random(0, jobgen.WithSeed(1))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// TestDisjoint ensures consecutive jobs touch without overlapping.
func TestDisjoint(t *testing.T) {
	jobs, err := jobgen.Disjoint(4, jobgen.WithMaxDuration(3), jobgen.WithProfitRange(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []scheduler.Job{
		{Start: 0, End: 3, Profit: 2},
		{Start: 3, End: 6, Profit: 2},
		{Start: 6, End: 9, Profit: 2},
		{Start: 9, End: 12, Profit: 2},
	}, jobs)

	seeded, err := jobgen.Disjoint(100, jobgen.WithSeed(5))
	require.NoError(t, err)
	for i := 1; i < len(seeded); i++ {
		assert.Equal(t, seeded[i-1].End, seeded[i].Start)
		assert.False(t, scheduler.Overlaps(seeded[i-1], seeded[i]))
	}
}

// TestOverlapping ensures every pair of generated jobs overlaps.
func TestOverlapping(t *testing.T) {
	jobs, err := jobgen.Overlapping(40, jobgen.WithSeed(9), jobgen.WithHorizon(50))
	require.NoError(t, err)
	for i := range jobs {
		assert.Less(t, jobs[i].Start, jobs[i].End)
		for j := i + 1; j < len(jobs); j++ {
			assert.True(t, scheduler.Overlaps(jobs[i], jobs[j]), "jobs %d and %d", i, j)
		}
	}
}

// TestShuffle checks that Shuffle permutes a copy.
func TestShuffle(t *testing.T) {
	jobs, err := jobgen.Disjoint(20, jobgen.WithSeed(1))
	require.NoError(t, err)
	orig := append([]scheduler.Job(nil), jobs...)

	out, err := jobgen.Shuffle(jobs, jobgen.WithRand(rand.New(rand.NewSource(2))))
	require.NoError(t, err)
	assert.ElementsMatch(t, orig, out)
	assert.Equal(t, orig, jobs, "input must not be modified")
}

// TestOptions_Panic covers option constructors rejecting meaningless values.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { jobgen.WithRand(nil) })
	assert.Panics(t, func() { jobgen.WithHorizon(0) })
	assert.Panics(t, func() { jobgen.WithMaxDuration(0) })
	assert.Panics(t, func() { jobgen.WithProfitRange(0, 5) })
	assert.Panics(t, func() { jobgen.WithProfitRange(6, 5) })
	assert.NotPanics(t, func() { jobgen.WithProfitRange(3, 3) })
}

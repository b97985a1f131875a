package melody

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// anyNote matches every note of any duration.
func anyNote() Rule {
	return Rule{
		Intervals: []IntervalRule{AnyInterval()},
		Durations: []DurationRule{AnyDuration()},
	}
}

// quarterUp builds a rule for an upward interval on a quarter note.
func quarterUp(i Interval) Rule {
	return Rule{
		Intervals: []IntervalRule{Up(i)},
		Durations: []DurationRule{Exactly(Quarter)},
	}
}

// matchMelody compiles p and matches it against the notes.
func matchMelody(t *testing.T, p *Pattern, notes []Note) bool {
	t.Helper()
	return p.Compile().Match(context.Background(), notes)
}

// TestPattern_SingleNote verifies one-note patterns.
func TestPattern_SingleNote(t *testing.T) {
	p := Single(quarterUp(MajorThird))

	assert.True(t, matchMelody(t, p, []Note{{Event: IntervalOf(4), Ticks: 48}}))
	assert.False(t, matchMelody(t, p, []Note{{Event: IntervalOf(4), Ticks: 24}}))
	assert.False(t, matchMelody(t, p, nil))
}

// TestPattern_ArpeggioMotif verifies an exact motif: two rising major
// thirds then a falling fifth, all quarters.
func TestPattern_ArpeggioMotif(t *testing.T) {
	p := Seq(
		Single(quarterUp(MajorThird)),
		Single(quarterUp(MinorThird)),
		Single(Rule{
			Intervals: []IntervalRule{Down(PerfectFifth)},
			Durations: []DurationRule{Exactly(Quarter)},
		}),
	)

	motif := []Note{
		{Event: IntervalOf(4), Ticks: 48},
		{Event: IntervalOf(3), Ticks: 48},
		{Event: IntervalOf(-7), Ticks: 48},
	}
	assert.True(t, matchMelody(t, p, motif))

	// Same contour, wrong final direction
	wrong := []Note{
		{Event: IntervalOf(4), Ticks: 48},
		{Event: IntervalOf(3), Ticks: 48},
		{Event: IntervalOf(7), Ticks: 48},
	}
	assert.False(t, matchMelody(t, p, wrong))
}

// TestPattern_TrailingRestsAndLast verifies a motif allowed to end with
// any run of rests before the final note.
func TestPattern_TrailingRestsAndLast(t *testing.T) {
	rest := Rule{
		Intervals: []IntervalRule{OnRest()},
		Durations: []DurationRule{AnyDuration()},
	}
	last := Rule{
		Intervals: []IntervalRule{OnLast()},
		Durations: []DurationRule{AnyDuration()},
	}
	p := Seq(
		Single(quarterUp(MajorSecond)),
		Star(Single(rest)),
		Single(last),
	)

	assert.True(t, matchMelody(t, p, []Note{
		{Event: IntervalOf(2), Ticks: 48},
		{Event: RestEvent(), Ticks: 24},
		{Event: RestEvent(), Ticks: 24},
		{Event: LastEvent(), Ticks: 96},
	}))
	assert.True(t, matchMelody(t, p, []Note{
		{Event: IntervalOf(2), Ticks: 48},
		{Event: LastEvent(), Ticks: 96},
	}))
	assert.False(t, matchMelody(t, p, []Note{
		{Event: IntervalOf(2), Ticks: 48},
		{Event: RestEvent(), Ticks: 24},
	}))
}

// TestPattern_RepeatedFigure verifies group repetition over note pairs.
func TestPattern_RepeatedFigure(t *testing.T) {
	upDown := Seq(
		Single(Rule{
			Intervals: []IntervalRule{Up(MajorSecond)},
			Durations: []DurationRule{AnyDuration()},
		}),
		Single(Rule{
			Intervals: []IntervalRule{Down(MajorSecond)},
			Durations: []DurationRule{AnyDuration()},
		}),
	)
	p := OneOrMore(upDown)

	pair := []Note{
		{Event: IntervalOf(2), Ticks: 48},
		{Event: IntervalOf(-2), Ticks: 48},
	}
	assert.True(t, matchMelody(t, p, pair))
	assert.True(t, matchMelody(t, p, append(append([]Note{}, pair...), pair...)))
	assert.False(t, matchMelody(t, p, pair[:1]))
	assert.False(t, matchMelody(t, p, nil))
}

// TestPattern_AltAndZeroOrOne verifies alternation and optional notes.
func TestPattern_AltAndZeroOrOne(t *testing.T) {
	step := Alt(
		Single(quarterUp(MinorSecond)),
		Single(quarterUp(MajorSecond)),
	)
	p := Seq(step, ZeroOrOne(Single(anyNote())))

	assert.True(t, matchMelody(t, p, []Note{{Event: IntervalOf(1), Ticks: 48}}))
	assert.True(t, matchMelody(t, p, []Note{
		{Event: IntervalOf(2), Ticks: 48},
		{Event: IntervalOf(-9), Ticks: 3},
	}))
	assert.False(t, matchMelody(t, p, []Note{{Event: IntervalOf(3), Ticks: 48}}))
}

// TestPattern_Empty verifies the empty melody pattern.
func TestPattern_Empty(t *testing.T) {
	p := Empty()

	assert.True(t, matchMelody(t, p, nil))
	assert.False(t, matchMelody(t, p, []Note{{Event: LastEvent(), Ticks: 48}}))
}

// TestPattern_NilChild_Panics tests that nil children panic.
func TestPattern_NilChild_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "melody: pattern child cannot be nil", func() {
		Seq(Single(anyNote()), nil)
	})
}

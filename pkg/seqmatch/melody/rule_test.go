package melody

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIntervalRule_Any verifies AnyInterval accepts every event kind.
func TestIntervalRule_Any(t *testing.T) {
	r := AnyInterval()

	assert.True(t, r.matches(IntervalOf(4)))
	assert.True(t, r.matches(IntervalOf(-7)))
	assert.True(t, r.matches(RestEvent()))
	assert.True(t, r.matches(LastEvent()))
}

// TestIntervalRule_Up verifies upward movement matches the exact interval
// with positive sign.
func TestIntervalRule_Up(t *testing.T) {
	r := Up(MajorThird)

	assert.True(t, r.matches(IntervalOf(4)))
	assert.False(t, r.matches(IntervalOf(-4)))
	assert.False(t, r.matches(IntervalOf(3)))
	assert.False(t, r.matches(RestEvent()))
	assert.False(t, r.matches(LastEvent()))
}

// TestIntervalRule_Down verifies downward movement matches the negated
// semitone count.
func TestIntervalRule_Down(t *testing.T) {
	r := Down(PerfectFifth)

	assert.True(t, r.matches(IntervalOf(-7)))
	assert.False(t, r.matches(IntervalOf(7)))
	assert.False(t, r.matches(RestEvent()))
}

// TestIntervalRule_UpUnison verifies a repeated pitch reads as Up(Unison).
func TestIntervalRule_UpUnison(t *testing.T) {
	r := Up(Unison)

	assert.True(t, r.matches(IntervalOf(0)))
	assert.False(t, r.matches(IntervalOf(1)))
}

// TestIntervalRule_OnRest verifies rest matching.
func TestIntervalRule_OnRest(t *testing.T) {
	r := OnRest()

	assert.True(t, r.matches(RestEvent()))
	assert.False(t, r.matches(IntervalOf(0)))
	assert.False(t, r.matches(LastEvent()))
}

// TestIntervalRule_OnLast verifies last-note matching.
func TestIntervalRule_OnLast(t *testing.T) {
	r := OnLast()

	assert.True(t, r.matches(LastEvent()))
	assert.False(t, r.matches(RestEvent()))
	assert.False(t, r.matches(IntervalOf(12)))
}

// TestDurationRule_Any verifies AnyDuration accepts every tick count.
func TestDurationRule_Any(t *testing.T) {
	r := AnyDuration()

	assert.True(t, r.matches(1))
	assert.True(t, r.matches(int(Whole)))
}

// TestDurationRule_Exactly verifies exact tick matching.
func TestDurationRule_Exactly(t *testing.T) {
	r := Exactly(Quarter)

	assert.True(t, r.matches(48))
	assert.False(t, r.matches(47))
	assert.False(t, r.matches(96))
}

// TestDurationRule_MultipleOf verifies whole-multiple matching.
func TestDurationRule_MultipleOf(t *testing.T) {
	r := MultipleOf(Eighth)

	assert.True(t, r.matches(24))
	assert.True(t, r.matches(48))
	assert.True(t, r.matches(192))
	assert.False(t, r.matches(36))
	assert.False(t, r.matches(16))
}

// TestDurationRule_DoublingOf verifies multiples of twice the base.
func TestDurationRule_DoublingOf(t *testing.T) {
	r := DoublingOf(Eighth)

	assert.True(t, r.matches(48))
	assert.True(t, r.matches(96))
	assert.False(t, r.matches(24))
	assert.False(t, r.matches(36))
}

// TestDurationRule_ExactPlusMultipleOf verifies the union form.
func TestDurationRule_ExactPlusMultipleOf(t *testing.T) {
	r := ExactPlusMultipleOf(Sixteenth, Quarter)

	assert.True(t, r.matches(12))
	assert.True(t, r.matches(48))
	assert.True(t, r.matches(96))
	assert.False(t, r.matches(24))
}

// TestRule_Matches verifies the any-interval AND any-duration combination.
func TestRule_Matches(t *testing.T) {
	rule := Rule{
		Intervals: []IntervalRule{Up(MajorThird), Down(MinorThird)},
		Durations: []DurationRule{Exactly(Quarter), Exactly(Eighth)},
	}

	assert.True(t, rule.Matches(Note{Event: IntervalOf(4), Ticks: 48}))
	assert.True(t, rule.Matches(Note{Event: IntervalOf(-3), Ticks: 24}))
	// Interval matches but duration does not
	assert.False(t, rule.Matches(Note{Event: IntervalOf(4), Ticks: 96}))
	// Duration matches but interval does not
	assert.False(t, rule.Matches(Note{Event: IntervalOf(5), Ticks: 48}))
}

// TestRule_EmptySlicesMatchNothing verifies that a rule with no interval
// rules or no duration rules rejects every note.
func TestRule_EmptySlicesMatchNothing(t *testing.T) {
	noIntervals := Rule{Durations: []DurationRule{AnyDuration()}}
	noDurations := Rule{Intervals: []IntervalRule{AnyInterval()}}

	note := Note{Event: IntervalOf(0), Ticks: 48}
	assert.False(t, noIntervals.Matches(note))
	assert.False(t, noDurations.Matches(note))
	assert.False(t, Rule{}.Matches(note))
}

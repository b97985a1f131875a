package melody

import "github.com/randalmurphal/seqmatch/pkg/seqmatch"

// intervalRuleKind identifies how an IntervalRule matches an event.
type intervalRuleKind int

const (
	intervalAny intervalRuleKind = iota
	intervalUp
	intervalDown
	intervalRest
	intervalLast
)

// IntervalRule matches the event part of a note.
type IntervalRule struct {
	kind     intervalRuleKind
	interval Interval
}

// AnyInterval matches every event, including rests and the last-note marker.
func AnyInterval() IntervalRule {
	return IntervalRule{kind: intervalAny}
}

// Up matches an upward pitch movement of exactly the given interval.
func Up(interval Interval) IntervalRule {
	return IntervalRule{kind: intervalUp, interval: interval}
}

// Down matches a downward pitch movement of exactly the given interval.
func Down(interval Interval) IntervalRule {
	return IntervalRule{kind: intervalDown, interval: interval}
}

// OnRest matches a rest event.
func OnRest() IntervalRule {
	return IntervalRule{kind: intervalRest}
}

// OnLast matches the last-note marker.
func OnLast() IntervalRule {
	return IntervalRule{kind: intervalLast}
}

func (r IntervalRule) matches(e Event) bool {
	switch r.kind {
	case intervalAny:
		return true
	case intervalUp:
		return e.Kind == EventInterval && e.Semitones == int(r.interval)
	case intervalDown:
		return e.Kind == EventInterval && e.Semitones == -int(r.interval)
	case intervalRest:
		return e.Kind == EventRest
	case intervalLast:
		return e.Kind == EventLast
	}
	return false
}

// durationRuleKind identifies how a DurationRule matches a tick count.
type durationRuleKind int

const (
	durationAny durationRuleKind = iota
	durationExact
	durationMultipleOf
	durationDoublingOf
	durationExactPlusMultipleOf
)

// DurationRule matches the duration part of a note.
type DurationRule struct {
	kind durationRuleKind
	base Duration
	step Duration
}

// AnyDuration matches every duration.
func AnyDuration() DurationRule {
	return DurationRule{kind: durationAny}
}

// Exactly matches exactly the given duration.
func Exactly(d Duration) DurationRule {
	return DurationRule{kind: durationExact, base: d}
}

// MultipleOf matches any whole multiple of the given duration.
func MultipleOf(d Duration) DurationRule {
	return DurationRule{kind: durationMultipleOf, base: d}
}

// DoublingOf matches any whole multiple of twice the given duration.
func DoublingOf(d Duration) DurationRule {
	return DurationRule{kind: durationDoublingOf, base: d}
}

// ExactPlusMultipleOf matches the exact duration d, or any whole
// multiple of step.
func ExactPlusMultipleOf(d, step Duration) DurationRule {
	return DurationRule{kind: durationExactPlusMultipleOf, base: d, step: step}
}

func (r DurationRule) matches(ticks int) bool {
	switch r.kind {
	case durationAny:
		return true
	case durationExact:
		return ticks == int(r.base)
	case durationMultipleOf:
		return ticks%int(r.base) == 0
	case durationDoublingOf:
		return ticks%(int(r.base)*2) == 0
	case durationExactPlusMultipleOf:
		return ticks == int(r.base) || ticks%int(r.step) == 0
	}
	return false
}

// Rule matches a single note: ANY of its interval rules must accept the
// note's event AND ANY of its duration rules must accept the note's
// duration. A Rule with an empty Intervals or Durations slice matches
// nothing.
//
// Rule implements seqmatch.Matcher[Note].
type Rule struct {
	Intervals []IntervalRule
	Durations []DurationRule
}

// Compile-time interface check.
var _ seqmatch.Matcher[Note] = Rule{}

// Matches reports whether the note satisfies the rule.
func (r Rule) Matches(terminal Note) bool {
	intervalOK := false
	for _, ir := range r.Intervals {
		if ir.matches(terminal.Event) {
			intervalOK = true
			break
		}
	}
	if !intervalOK {
		return false
	}
	for _, dr := range r.Durations {
		if dr.matches(terminal.Ticks) {
			return true
		}
	}
	return false
}

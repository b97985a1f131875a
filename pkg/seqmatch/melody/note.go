// Package melody is a musical front-end for seqmatch.
//
// Terminals are Notes: a melodic event (an interval from the previous
// note in semitones, a rest, or the last-note marker) paired with a
// duration in MIDI ticks. Rules match a single note by combining
// interval rules and duration rules; a note matches when ANY interval
// rule and ANY duration rule accept it.
//
// Example, a rising major third on a quarter or eighth note:
//
//	rule := melody.Rule{
//	    Intervals: []melody.IntervalRule{melody.Up(melody.MajorThird)},
//	    Durations: []melody.DurationRule{melody.Exactly(melody.Quarter), melody.Exactly(melody.Eighth)},
//	}
//	p := melody.OneOrMore(melody.Single(rule))
package melody

// EventKind discriminates what happened at one step of a melody.
type EventKind int

const (
	// EventInterval is a pitch movement relative to the previous note.
	EventInterval EventKind = iota
	// EventRest is a silence.
	EventRest
	// EventLast marks the final note of the melody.
	EventLast
)

// Event is one melodic event. Semitones is meaningful only for
// EventInterval; negative values move down.
type Event struct {
	Kind      EventKind
	Semitones int
}

// IntervalOf returns an interval event of the given signed semitone count.
func IntervalOf(semitones int) Event {
	return Event{Kind: EventInterval, Semitones: semitones}
}

// RestEvent returns a rest event.
func RestEvent() Event {
	return Event{Kind: EventRest}
}

// LastEvent returns the last-note marker event.
func LastEvent() Event {
	return Event{Kind: EventLast}
}

// Note is one terminal of a melodic input sequence.
type Note struct {
	Event Event
	// Ticks is the duration in MIDI ticks; a quarter note is 48.
	Ticks int
}

// Interval is an unsigned musical interval in half steps.
// Direction is supplied by the Up/Down interval rules.
type Interval int

// Standard intervals within one octave.
const (
	Unison        Interval = 0
	MinorSecond   Interval = 1
	MajorSecond   Interval = 2
	MinorThird    Interval = 3
	MajorThird    Interval = 4
	PerfectFourth Interval = 5
	Tritone       Interval = 6
	PerfectFifth  Interval = 7
	MinorSixth    Interval = 8
	MajorSixth    Interval = 9
	MinorSeventh  Interval = 10
	MajorSeventh  Interval = 11
	Octave        Interval = 12
)

// Duration is a note length in MIDI ticks, quarter note = 48.
type Duration int

const (
	Whole        Duration = 192
	Half         Duration = 96
	Third        Duration = 64
	Quarter      Duration = 48
	Sixth        Duration = 32
	Eighth       Duration = 24
	Twelfth      Duration = 16
	Sixteenth    Duration = 12
	TwentyFourth Duration = 8
	ThirtySecond Duration = 6
	FortyEighth  Duration = 4
	SixtyFourth  Duration = 3
)

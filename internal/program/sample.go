package program

import (
	"math/rand/v2"

	"github.com/javiermolinar/tvguide/internal/grid"
)

// SampleTitles is the demo lineup used when no schedule is configured.
var SampleTitles = []string{
	"2017 NASCAR on FOX: NASCAR Camping World Truck Series - Pre-Race (Talladega Superspeedway) (LIVE) - FOX",
	"People's Court : 21030",
	"Divorce Court",
	"King of Queens",
	"Local News",
	"Maury",
	"Two Broke Girls",
	"College Football",
	"Paid Programming",
	"Jerry Springer",
}

// Slots that get longer programs in the demo lineup.
const (
	sampleLongSlot     = 10
	sampleLongSpan     = 3
	sampleMovieWeekday = 1 // Tuesday
	sampleMovieSlot    = 20
	sampleMovieSpan    = 8
)

// SampleProvider fills every slot with a random demo title. Slot 10 runs for
// three rows on every day and Tuesday's slot 20 runs to the end of the grid.
// The same seed always yields the same lineup for the same call order.
type SampleProvider struct {
	rng    *rand.Rand
	titles []string
}

// NewSampleProvider creates a SampleProvider seeded with seed.
func NewSampleProvider(seed uint64) *SampleProvider {
	s := &SampleProvider{titles: SampleTitles}
	s.Reseed(seed)
	return s
}

// Reseed restarts the title sequence.
func (s *SampleProvider) Reseed(seed uint64) {
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NextProgram implements grid.ProgramLengthProvider.
func (s *SampleProvider) NextProgram(weekday, slot int) (grid.Program, bool) {
	span := 1
	switch {
	case slot == sampleLongSlot:
		span = sampleLongSpan
	case weekday == sampleMovieWeekday && slot == sampleMovieSlot:
		span = sampleMovieSpan
	}
	return grid.Program{Label: s.titles[s.rng.IntN(len(s.titles))], Span: span}, true
}

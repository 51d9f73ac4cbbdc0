package grid

// Program is what a provider returns for a fresh slot.
type Program struct {
	Label string
	Span  int // rows, normalized by the builder
}

// ProgramLengthProvider supplies the program starting at a free slot.
// It is only asked for slots not already covered by an earlier span.
// Returning false means no program is defined there; the builder then
// emits a one-row empty cell.
type ProgramLengthProvider interface {
	NextProgram(weekday, slot int) (Program, bool)
}

// ProviderFunc adapts a function to ProgramLengthProvider.
type ProviderFunc func(weekday, slot int) (Program, bool)

// NextProgram calls f.
func (f ProviderFunc) NextProgram(weekday, slot int) (Program, bool) {
	return f(weekday, slot)
}

package grid

// OccupancyMap tracks, per weekday, how many content rows are already
// claimed. A row r (1-based) is covered once the count reaches r.
type OccupancyMap [DaysPerWeek]int

// Reset clears all weekdays.
func (m *OccupancyMap) Reset() {
	*m = OccupancyMap{}
}

// Covered reports whether row on weekday w belongs to an earlier span.
func (m *OccupancyMap) Covered(w, row int) bool {
	return m[w] > row-1
}

// Claim records span more rows for weekday w.
func (m *OccupancyMap) Claim(w, span int) {
	m[w] += span
}

// Filled returns the number of claimed rows for weekday w.
func (m *OccupancyMap) Filled(w int) int {
	return m[w]
}

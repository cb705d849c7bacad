package series

// Store is the ordered set of series plotted on one chart.
type Store struct {
	series []*Series
}

// Add appends series to the store.
func (st *Store) Add(s ...*Series) {
	st.series = append(st.series, s...)
}

// Get returns the first series with the given name, or nil.
func (st *Store) Get(name string) *Series {
	for _, s := range st.series {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Len returns the number of series.
func (st *Store) Len() int { return len(st.series) }

// All returns the series in insertion order. The slice is a copy; the
// series themselves are shared.
func (st *Store) All() []*Series {
	return append([]*Series(nil), st.series...)
}

// Values returns every value of every series, series by series.
func (st *Store) Values() []float64 {
	var values []float64
	for _, s := range st.series {
		values = append(values, s.data...)
	}
	return values
}

// Clear removes all series.
func (st *Store) Clear() {
	st.series = nil
}

package query

// Command is a state transition produced by one user interaction.
type Command interface {
	apply(s *State)
}

// SetQuery replaces the free-text query.
type SetQuery struct{ Query string }

// SetType replaces the active archetype filter.
type SetType struct{ Type string }

// SetSort replaces the sort mode.
type SetSort struct{ Mode SortMode }

// LoadMore grows the visible count by one page.
type LoadMore struct{}

// ToggleFilters flips the filter panel visibility.
type ToggleFilters struct{}

func (c SetQuery) apply(s *State)    { s.SetQuery(c.Query) }
func (c SetType) apply(s *State)     { s.SetType(c.Type) }
func (c SetSort) apply(s *State)     { s.SetSort(c.Mode) }
func (LoadMore) apply(s *State)      { s.LoadMore() }
func (ToggleFilters) apply(s *State) { s.ToggleFilters() }

// Dispatch applies each command to s in order.
func (s *State) Dispatch(cmds ...Command) {
	for _, c := range cmds {
		if c != nil {
			c.apply(s)
		}
	}
}

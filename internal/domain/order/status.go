package order

// Status is the persisted order lifecycle state. Values double as the
// protocol's order.state strings. A quote produced by select is never
// persisted, so it has no Status of its own.
type Status string

const (
	StatusCreated   Status = "Created"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

var transitions = map[Status][]Status{
	StatusCreated:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// Cancelled is terminal; no transition regresses an order.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

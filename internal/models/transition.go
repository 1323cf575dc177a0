package models

// TransitionOutcome tells how far a status transition got. A transition is
// applied with one mutating call and then confirmed with one re-fetch of the
// full order; when the re-fetch fails the mutation may still have landed, so
// the result is reported as unconfirmed instead of pretending full success.
type TransitionOutcome string

const (
	// TransitionConfirmed means the mutation was accepted and the re-fetched
	// order reflects the authoritative state.
	TransitionConfirmed TransitionOutcome = "confirmed"
	// TransitionUnconfirmed means the mutation was accepted but the
	// confirmation re-fetch failed or returned no order; displayed state is
	// stale until the next fetch.
	TransitionUnconfirmed TransitionOutcome = "unconfirmed"
)

// TransitionResult is the outcome of a single status-changing action.
// Message is the operator-facing notification text. Order carries the
// re-fetched resource and is nil when the outcome is unconfirmed.
type TransitionResult struct {
	Outcome TransitionOutcome `json:"outcome"`
	Message string            `json:"message"`
	Order   *Order            `json:"order,omitempty"`
}

// FilterAll is the filter value that matches every order.
const FilterAll = "all"

// OrderFilter holds the list view's display filters. Status and Payment are
// kept as plain strings because FilterAll is a valid value alongside the
// status enumerations.
type OrderFilter struct {
	Search  string
	Status  string
	Payment string
}

// ItemActions lists the status targets currently offerable for one item.
type ItemActions struct {
	ItemID  int64         `json:"item_id"`
	Targets []OrderStatus `json:"targets"`
}

// OrderActions lists every transition the detail view may offer for an order
// in its present state. The backend remains the final arbiter; these are the
// transitions worth attempting.
type OrderActions struct {
	Order   []OrderStatus   `json:"order"`
	Payment []PaymentStatus `json:"payment"`
	Items   []ItemActions   `json:"items"`
}

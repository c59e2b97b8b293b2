package warehouse

// Event tells subscribers which collection changed and how. Delivery is
// best-effort: a subscriber that stopped draining its channel misses events
// instead of blocking the writer.
type Event struct {
	Collection string `json:"collection"` // Catalog, Stock or Shipment
	Action     string `json:"action"`     // create, update, delete, clean
}

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionClean  = "clean"
)

// Subscribe registers a change listener. Must be called before mutations of
// interest; there is no unsubscribe, listeners live as long as the warehouse.
func (w *Warehouse) Subscribe() <-chan Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan Event, 16)
	w.subscribers = append(w.subscribers, ch)
	return ch
}

func (w *Warehouse) notify(collection, action string) {
	for _, ch := range w.subscribers {
		select {
		case ch <- Event{Collection: collection, Action: action}:
		default:
		}
	}
}

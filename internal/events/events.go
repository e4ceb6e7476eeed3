package events

// Event is one realtime message pushed to connected consoles.
type Event struct {
	Name string                 `json:"event"`
	Data map[string]interface{} `json:"data"`
}

// Event names. order_created is the only one the console listens for today.
const OrderCreated = "order_created"

// Publisher delivers an event to whoever is listening. The websocket hub
// implements it for a single server instance; the rabbit publisher
// implements it when a broker fans events out across instances.
type Publisher interface {
	Publish(ev Event)
}

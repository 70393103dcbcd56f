package messaging

// Topics names the relay channel for each command shape. Channel names are
// configuration, not constants: two deployments may route the same command
// types over differently named topics.
type Topics struct {
	OrderCreate  string
	OrderUpdate  string
	StatusChange string
	OrderDelete  string
}

// For returns the topic carrying the given command type.
func (t Topics) For(commandType string) (string, bool) {
	topics := t.All()
	topic, ok := topics[commandType]
	return topic, ok
}

// All maps every command type to its topic.
func (t Topics) All() map[string]string {
	return map[string]string{
		CommandOrderCreate:  t.OrderCreate,
		CommandOrderUpdate:  t.OrderUpdate,
		CommandStatusChange: t.StatusChange,
		CommandOrderDelete:  t.OrderDelete,
	}
}

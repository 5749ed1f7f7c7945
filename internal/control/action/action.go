// Package action holds the actions input can be bound to.
package action

// Action is something input can trigger, along with an explanation of what it
// does, e.g. for a help display.
type Action interface {
	Do()
	Explain() string
}

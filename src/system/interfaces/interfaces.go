package interfaces

// ProcessorInterface is the one canonical shape a response processor has
// to satisfy. the loop only ever talks to processors through this
// interface, no matter which dispatcher (cli, api, test) registered them.
type ProcessorInterface interface {
	Execute(input string) (string, error)
	GetName() string
}

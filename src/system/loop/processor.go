package loop

// EchoProcessor is the default response processor. it deterministically
// wraps the input into the processed response message.
type EchoProcessor struct {
}

func NewEchoProcessor() *EchoProcessor {
	return &EchoProcessor{}
}

func (p *EchoProcessor) GetName() string {
	return "echo"
}

func (p *EchoProcessor) Execute(input string) (string, error) {
	return "PMLL processed: " + input, nil
}

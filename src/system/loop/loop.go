package loop

import (
	"errors"

	"github.com/bearycool11/pmll/src/system/interfaces"
	"github.com/voodooEntity/archivist"
)

// Loop derives the response for each recorded input. processors are held
// in a register by name, one of them is marked active and gets applied on
// every Process call.
type Loop struct {
	register map[string]interfaces.ProcessorInterface
	active   string
}

func New() *Loop {
	instance := &Loop{
		register: make(map[string]interfaces.ProcessorInterface),
	}

	// the echo processor is always available as default
	instance.RegisterProcessor(NewEchoProcessor())

	return instance
}

// RegisterProcessor places the given processor inside the register. the
// first registered processor automatically becomes the active one.
func (l *Loop) RegisterProcessor(processor interfaces.ProcessorInterface) {
	l.register[processor.GetName()] = processor
	if "" == l.active {
		l.active = processor.GetName()
	}
	archivist.Debug("Registered processor " + processor.GetName())
}

func (l *Loop) SetActive(name string) error {
	if _, ok := l.register[name]; !ok {
		return errors.New("Processor '" + name + "' not found in loop register")
	}
	l.active = name
	return nil
}

func (l *Loop) GetActive() string {
	return l.active
}

func (l *Loop) GetProcessor(name string) (interfaces.ProcessorInterface, error) {
	if val, ok := l.register[name]; ok {
		return val, nil
	}
	return nil, errors.New("Processor '" + name + "' not found in loop register")
}

// Process runs the given input through the active processor and returns
// the derived response.
func (l *Loop) Process(input string) (string, error) {
	processor, err := l.GetProcessor(l.active)
	if nil != err {
		return "", err
	}
	return processor.Execute(input)
}

package pmll

import (
	"errors"

	"github.com/bearycool11/pmll/src/system/contextlog"
	"github.com/bearycool11/pmll/src/system/integrity"
	"github.com/bearycool11/pmll/src/system/interfaces"
	"github.com/bearycool11/pmll/src/system/loop"
	"github.com/bearycool11/pmll/src/system/util"
	"github.com/voodooEntity/gits"
	"github.com/voodooEntity/gits/src/query"
	"github.com/voodooEntity/gits/src/transport"
)

// Pmll is the persistent memory logic loop. it owns the in-memory gits
// storage, the append only context log living inside it, the integrity
// checker and the response loop. all state is bound to this instance -
// there is no package level memory, construct as many as you like.
type Pmll struct {
	ident     string
	isRunning bool
	gits      *gits.Gits
	log       *contextlog.ContextLog
	checker   *integrity.Checker
	loop      *loop.Loop
}

type Settings struct {
	Gits  *gits.Gits
	Ident string
}

func New(cfg Settings) *Pmll {
	// setup the instance
	instance := &Pmll{
		ident:     cfg.Ident,
		isRunning: false,
	}
	if "" == instance.ident {
		instance.ident = "pmll"
	}

	// first we prepare the memory
	instance.setupMemory(cfg.Gits)

	// with memory setup we can bootstrap the loop
	instance.loop = loop.New()

	return instance
}

func (p *Pmll) GetGitsInstance() *gits.Gits {
	return p.gits
}

func (p *Pmll) Start() error {
	// make sure we dont start the same
	// pmll instance twice
	if p.isRunning {
		return errors.New("pmll already running")
	}
	p.isRunning = true

	// set the "alive" dataset
	p.bringToLife()

	return nil
}

func (p *Pmll) Shutdown() error {
	if !p.isRunning {
		return errors.New("pmll is not running")
	}
	p.isRunning = false
	util.Terminate(p.gits)
	return nil
}

func (p *Pmll) IsAlive() bool {
	return util.IsAlive(p.gits)
}

// RegisterProcessor adds a custom response processor to the loop. like
// all register operations this has to happen before Start.
func (p *Pmll) RegisterProcessor(processor interfaces.ProcessorInterface) error {
	if p.isRunning {
		return errors.New("pmll already running, cant register new processors")
	}
	p.loop.RegisterProcessor(processor)
	return nil
}

// SetProcessor marks a previously registered processor as the active one.
func (p *Pmll) SetProcessor(name string) error {
	if p.isRunning {
		return errors.New("pmll already running, cant switch processors")
	}
	return p.loop.SetActive(name)
}

// Record appends the given input to the context log and returns the
// response derived by the active processor. every input value is
// accepted, the only error source is a failing custom processor.
func (p *Pmll) Record(input string) (string, error) {
	p.log.Append(input)
	return p.loop.Process(input)
}

// History returns all recorded inputs in insertion order.
func (p *Pmll) History() []string {
	return p.log.History()
}

// Records returns the full context log including sequence numbers and
// the fingerprint stamped on each record.
func (p *Pmll) Records() []contextlog.Record {
	return p.log.Records()
}

// Fingerprint returns the content fingerprint of the given payload.
func (p *Pmll) Fingerprint(data string) string {
	return p.checker.Fingerprint(data)
}

// Verify checks the given payload against a previously issued fingerprint.
func (p *Pmll) Verify(data string, signature string) bool {
	return p.checker.Verify(data, signature)
}

// Audit verifies every context log record against its stored fingerprint.
func (p *Pmll) Audit() bool {
	return p.log.Audit()
}

// Reset wipes the context log. explicit lifecycle operation, see
// contextlog.Reset.
func (p *Pmll) Reset() {
	p.log.Reset()
}

func (p *Pmll) setupMemory(customGits *gits.Gits) {
	// dispatch gits instance and autocreate
	// if not given
	gitsInstance := customGits
	if nil == gitsInstance {
		gitsInstance = gits.NewInstance(p.ident)
	}
	p.gits = gitsInstance

	// the checker is needed by the log to
	// stamp fingerprints on new records
	p.checker = integrity.New()
	p.log = contextlog.New(gitsInstance, p.checker)
}

func (p *Pmll) bringToLife() {
	// get-or-create the lifecycle entity ...
	p.gits.MapData(transport.TransportEntity{
		ID:         0,
		Type:       "System",
		Value:      "PMLL",
		Context:    "System",
		Properties: map[string]string{"State": "Alive"},
	})

	// ... and flip its state in case it survived an earlier shutdown
	qry := query.New().Update("System").Match(
		"Value",
		"==",
		"PMLL",
	).Set(
		"Properties.State",
		"Alive",
	)
	p.gits.Query().Execute(qry)
}

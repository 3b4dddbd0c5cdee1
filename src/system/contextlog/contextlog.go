package contextlog

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/bearycool11/pmll/src/system/integrity"
	"github.com/bearycool11/pmll/src/system/util"
	"github.com/voodooEntity/archivist"
	"github.com/voodooEntity/gits"
	"github.com/voodooEntity/gits/src/query"
	"github.com/voodooEntity/gits/src/storage"
	"github.com/voodooEntity/gits/src/transport"
)

const (
	ENTITY_TYPE    = "Record"
	ENTITY_CONTEXT = "Memory"
)

// Record is the transport representation of a single context log entry.
type Record struct {
	Sequence    int
	Payload     string
	Fingerprint string
	Created     int64
}

// ContextLog is the ordered append only history of every input the
// system has processed. the actual entries live as Record entities
// inside the gits memory, the log itself only keeps the sequence
// counter. appends are serialized by the logs mutex so the sequence
// stays gapless even with concurrent writers.
type ContextLog struct {
	gits     *gits.Gits
	checker  *integrity.Checker
	sequence int
	mutex    sync.Mutex
}

func New(gitsInstance *gits.Gits, checker *integrity.Checker) *ContextLog {
	return &ContextLog{
		gits:    gitsInstance,
		checker: checker,
	}
}

// Append stores the given input as a new Record entity at the end of the
// log. every input is accepted, empty ones and duplicates included - each
// call grows the log by exactly one. the records content fingerprint is
// stamped onto the entity so it can be audited for tampering later on.
func (cl *ContextLog) Append(input string) Record {
	cl.mutex.Lock()
	cl.sequence++
	record := Record{
		Sequence:    cl.sequence,
		Payload:     input,
		Fingerprint: cl.checker.Fingerprint(input),
		Created:     time.Now().Unix(),
	}

	// force create so identical payloads dont get deduplicated onto
	// the same entity
	cl.gits.MapData(transport.TransportEntity{
		ID:      storage.MAP_FORCE_CREATE,
		Type:    ENTITY_TYPE,
		Value:   util.UniqueID(),
		Context: ENTITY_CONTEXT,
		Properties: map[string]string{
			"Sequence":    strconv.Itoa(record.Sequence),
			"Payload":     record.Payload,
			"Fingerprint": record.Fingerprint,
			"Created":     strconv.FormatInt(record.Created, 10),
		},
	})
	cl.mutex.Unlock()

	archivist.Debug("Appended record to context log", record.Sequence)
	return record
}

// History returns all payloads recorded so far in insertion order.
func (cl *ContextLog) History() []string {
	var history []string
	for _, record := range cl.Records() {
		history = append(history, record.Payload)
	}
	return history
}

// Records returns the full log in insertion order. the gits query result
// comes back unordered so we sort by the sequence property.
func (cl *ContextLog) Records() []Record {
	qry := query.New().Read(ENTITY_TYPE).Match("Context", "==", ENTITY_CONTEXT)
	ret := cl.gits.Query().Execute(qry)

	var records []Record
	for _, entity := range ret.Entities {
		sequence, err := strconv.Atoi(entity.Properties["Sequence"])
		if nil != err {
			// should be rather impossible since we stamp the property on append
			archivist.Error("Record entity with broken sequence property", entity.ID)
			continue
		}
		created, _ := strconv.ParseInt(entity.Properties["Created"], 10, 64)
		records = append(records, Record{
			Sequence:    sequence,
			Payload:     entity.Properties["Payload"],
			Fingerprint: entity.Properties["Fingerprint"],
			Created:     created,
		})
	}

	sort.Slice(records, func(i int, j int) bool {
		return records[i].Sequence < records[j].Sequence
	})

	return records
}

func (cl *ContextLog) Size() int {
	qry := query.New().Read(ENTITY_TYPE).Match("Context", "==", ENTITY_CONTEXT)
	ret := cl.gits.Query().Execute(qry)
	return ret.Amount
}

// Audit recomputes the fingerprint of every stored record and compares it
// against the one stamped on append. returns false on the first record
// whose payload doesnt match its fingerprint anymore.
func (cl *ContextLog) Audit() bool {
	for _, record := range cl.Records() {
		if !cl.checker.Verify(record.Payload, record.Fingerprint) {
			archivist.Error("Context log record failed integrity audit", record.Sequence)
			return false
		}
	}
	return true
}

// Reset wipes all records and restarts the sequence. this is the explicit
// lifecycle operation - during normal operation the log only ever grows.
func (cl *ContextLog) Reset() {
	cl.mutex.Lock()
	qry := query.New().Delete(ENTITY_TYPE).Match("Context", "==", ENTITY_CONTEXT)
	cl.gits.Query().Execute(qry)
	cl.sequence = 0
	cl.mutex.Unlock()
	archivist.Info("Context log has been reset")
}

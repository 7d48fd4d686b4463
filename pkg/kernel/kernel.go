package kernel

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// RecordID identifies a record inside one entity collection
type RecordID int64

func (id RecordID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id RecordID) IsZero() bool {
	return id == 0
}

// ParseRecordID parses a path parameter into a RecordID
func ParseRecordID(s string) (RecordID, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return RecordID(n), true
}

// Sequence hands out monotonically increasing identifiers.
// An identifier is never handed out twice, even after the record is deleted.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

// NewSequence starts a sequence whose first Next() is start+1
func NewSequence(start int64) *Sequence {
	return &Sequence{last: start}
}

// Next returns the next identifier
func (s *Sequence) Next() RecordID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return RecordID(s.last)
}

// Observe moves the sequence past an identifier assigned elsewhere (seeding)
func (s *Sequence) Observe(id RecordID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int64(id) > s.last {
		s.last = int64(id)
	}
}

// Last returns the most recently issued or observed identifier
func (s *Sequence) Last() RecordID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RecordID(s.last)
}

// DateLayout is the layout of every date-like field exposed by records
const DateLayout = "2006-01-02"

// Today formats t as a record date
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// Audit tracks who created and last changed a record
type Audit struct {
	CreatedBy string `json:"createdBy"`
	CreatedOn string `json:"createdOn"`
	UpdatedBy string `json:"updatedBy"`
	UpdatedOn string `json:"updatedOn"`
}

// AuditInfo returns the audit block; promoted into every entity embedding Audit
func (a Audit) AuditInfo() Audit {
	return a
}

// Created returns a fresh audit block for a new record
func Created(actor string, at time.Time) Audit {
	day := Today(at)
	return Audit{CreatedBy: actor, CreatedOn: day, UpdatedBy: actor, UpdatedOn: day}
}

// Touched returns a copy of the audit block marked as updated
func (a Audit) Touched(actor string, at time.Time) Audit {
	a.UpdatedBy = actor
	a.UpdatedOn = Today(at)
	return a
}

// Fields exposes the audit block as record fields
func (a Audit) Fields() map[string]any {
	return map[string]any{
		"createdBy": a.CreatedBy,
		"createdOn": a.CreatedOn,
		"updatedBy": a.UpdatedBy,
		"updatedOn": a.UpdatedOn,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus is the outreach-progress state of a Lead. Transitions are
// unrestricted: any status may move to any other, including itself.
type LeadStatus string

const (
	StatusPending       LeadStatus = "pending"
	StatusContacted     LeadStatus = "contacted"
	StatusResponded     LeadStatus = "responded"
	StatusInterested    LeadStatus = "interested"
	StatusNotInterested LeadStatus = "not-interested"
	StatusFollowUp      LeadStatus = "follow-up"
)

var AllStatuses = []LeadStatus{
	StatusPending,
	StatusContacted,
	StatusResponded,
	StatusInterested,
	StatusNotInterested,
	StatusFollowUp,
}

func (s LeadStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// LogEntry is one line of a Lead's status history. Append-only: entries are
// never mutated or removed except by deleting the owning Lead.
type LogEntry struct {
	Date     time.Time `json:"date"`
	Action   string    `json:"action"`
	Feedback string    `json:"feedback"`
	Notes    string    `json:"notes"`
}

type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	WhatsApp      string     `json:"whatsapp,omitempty"`
	Institution   string     `json:"institution,omitempty"`
	Product       Product    `json:"product"`
	District      string     `json:"district,omitempty"`
	State         string     `json:"state,omitempty"`
	Country       string     `json:"country,omitempty"`
	PinCode       string     `json:"pinCode,omitempty"`
	DateOfBirth   string     `json:"dateOfBirth,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	Qualification string     `json:"qualification,omitempty"`
	Profession    string     `json:"profession,omitempty"`
	Status        LeadStatus `json:"status"`
	Logs          []LogEntry `json:"logs"`
	LastUpdated   *time.Time `json:"lastUpdated"`
}

// Factory
func NewLead(name, email string, product Product) (*Lead, error) {
	now := time.Now()
	lead := &Lead{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		Product:     product,
		Status:      StatusPending,
		Logs:        []LogEntry{},
		LastUpdated: &now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return ValidationError{Field: "name", Message: "is required"}
	}
	if l.Email == "" {
		return ValidationError{Field: "email", Message: "is required"}
	}
	if !l.Product.Valid() {
		return ValidationError{Field: "product", Message: "must be one of the offered products"}
	}
	return nil
}

// Normalize coerces a loosely-shaped imported record into a full Lead.
// Missing or invalid fields get defaults, never rejected: imports from old
// exports and hand-edited JSON must always load.
func (l *Lead) Normalize() {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Name == "" {
		l.Name = "N/A"
	}
	if !l.Status.Valid() {
		l.Status = StatusPending
	}
	if l.Logs == nil {
		l.Logs = []LogEntry{}
	}
}

// Clone returns a deep copy so callers can't reach into registry state.
func (l *Lead) Clone() *Lead {
	dup := *l
	dup.Logs = make([]LogEntry, len(l.Logs))
	copy(dup.Logs, l.Logs)
	if l.LastUpdated != nil {
		t := *l.LastUpdated
		dup.LastUpdated = &t
	}
	return &dup
}

// Touch stamps the last-updated timestamp.
func (l *Lead) Touch(now time.Time) {
	l.LastUpdated = &now
}

// AppendLog records one immutable status-history entry.
func (l *Lead) AppendLog(now time.Time, action, notes string) {
	l.Logs = append(l.Logs, LogEntry{
		Date:   now,
		Action: action,
		Notes:  notes,
	})
}

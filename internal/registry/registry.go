package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/focusin/hub/internal/entity"
)

// SnapshotStore is the durable home of the whole registry: one serialized
// blob under one fixed key, rewritten after every mutation.
type SnapshotStore interface {
	Get(ctx context.Context) (string, error) // "" when no snapshot exists
	Set(ctx context.Context, data string) error
	Remove(ctx context.Context) error
}

// Registry owns the authoritative in-memory set of Leads. All mutations end
// by rewriting the full snapshot through the store; all reads return clones.
// A single mutex guards both the lead set and the snapshot write, so
// concurrent HTTP callers cannot interleave a read-modify-write.
type Registry struct {
	mu        sync.Mutex
	leads     []*entity.Lead
	store     SnapshotStore
	log       *zap.Logger
	now       func() time.Time
	onPersist func(err error)
}

func New(store SnapshotStore, log *zap.Logger) *Registry {
	return &Registry{
		leads: []*entity.Lead{},
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// OnPersist registers an observer called after every snapshot write
// attempt, with the write's outcome. Set it before serving traffic.
func (r *Registry) OnPersist(fn func(err error)) {
	r.onPersist = fn
}

// Load initializes the registry from the persisted snapshot. A missing or
// unparsable snapshot means "no data", not a fatal error: availability over
// strict correctness for an internal tool.
func (r *Registry) Load(ctx context.Context) {
	data, err := r.store.Get(ctx)
	if err != nil {
		r.log.Warn("snapshot load failed, starting empty", zap.Error(err))
		return
	}
	if data == "" {
		return
	}

	var leads []*entity.Lead
	if err := json.Unmarshal([]byte(data), &leads); err != nil {
		r.log.Warn("snapshot unparsable, starting empty", zap.Error(err))
		return
	}

	for _, lead := range leads {
		lead.Normalize()
	}

	r.mu.Lock()
	r.leads = leads
	r.mu.Unlock()

	r.log.Info("registry loaded", zap.Int("leads", len(leads)))
}

// Replace discards the entire prior registry and substitutes the given set.
// Duplicate ids within the incoming set keep the first occurrence only.
func (r *Registry) Replace(ctx context.Context, leads []*entity.Lead) error {
	seen := make(map[string]bool, len(leads))
	deduped := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		lead.Normalize()
		if seen[lead.ID] {
			continue
		}
		seen[lead.ID] = true
		deduped = append(deduped, lead)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = deduped
	return r.persistLocked(ctx)
}

// Combine appends pre-shaped lead records from a prior export. Records whose
// id already exists are dropped, never overwritten; malformed individual
// records are coerced to defaults, not rejected. Returns the count added.
func (r *Registry) Combine(ctx context.Context, payload []byte) (int, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(payload, &raws); err != nil {
		return 0, entity.ErrInvalidFormat
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, raw := range raws {
		var lead entity.Lead
		if err := json.Unmarshal(raw, &lead); err != nil {
			lead = entity.Lead{}
		}
		lead.Normalize()
		if r.findLocked(lead.ID) >= 0 {
			continue
		}
		r.leads = append(r.leads, &lead)
		added++
	}

	if err := r.persistLocked(ctx); err != nil {
		return added, err
	}
	return added, nil
}

type CreateLeadInput struct {
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	WhatsApp      string         `json:"whatsapp"`
	Institution   string         `json:"institution"`
	Product       entity.Product `json:"product"`
	District      string         `json:"district"`
	State         string         `json:"state"`
	Country       string         `json:"country"`
	PinCode       string         `json:"pinCode"`
	DateOfBirth   string         `json:"dateOfBirth"`
	Gender        string         `json:"gender"`
	Qualification string         `json:"qualification"`
	Profession    string         `json:"profession"`
}

func (r *Registry) CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	lead, err := entity.NewLead(input.Name, input.Email, input.Product)
	if err != nil {
		return nil, err
	}
	lead.Phone = input.Phone
	lead.WhatsApp = input.WhatsApp
	lead.Institution = input.Institution
	lead.District = input.District
	lead.State = input.State
	lead.Country = input.Country
	lead.PinCode = input.PinCode
	lead.DateOfBirth = input.DateOfBirth
	lead.Gender = input.Gender
	lead.Qualification = input.Qualification
	lead.Profession = input.Profession
	lead.Touch(r.now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}
	return lead.Clone(), nil
}

// UpdateLeadInput carries a partial edit: nil fields are left untouched.
// Status and logs are never editable through here.
type UpdateLeadInput struct {
	Name          *string         `json:"name"`
	Email         *string         `json:"email"`
	Phone         *string         `json:"phone"`
	WhatsApp      *string         `json:"whatsapp"`
	Institution   *string         `json:"institution"`
	Product       *entity.Product `json:"product"`
	District      *string         `json:"district"`
	State         *string         `json:"state"`
	Country       *string         `json:"country"`
	PinCode       *string         `json:"pinCode"`
	DateOfBirth   *string         `json:"dateOfBirth"`
	Gender        *string         `json:"gender"`
	Qualification *string         `json:"qualification"`
	Profession    *string         `json:"profession"`
}

func (r *Registry) UpdateLead(ctx context.Context, id string, patch UpdateLeadInput) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.findLocked(id)
	if idx < 0 {
		return nil, entity.ErrLeadNotFound
	}

	lead := r.leads[idx]
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&lead.Name, patch.Name)
	applyString(&lead.Email, patch.Email)
	applyString(&lead.Phone, patch.Phone)
	applyString(&lead.WhatsApp, patch.WhatsApp)
	applyString(&lead.Institution, patch.Institution)
	applyString(&lead.District, patch.District)
	applyString(&lead.State, patch.State)
	applyString(&lead.Country, patch.Country)
	applyString(&lead.PinCode, patch.PinCode)
	applyString(&lead.DateOfBirth, patch.DateOfBirth)
	applyString(&lead.Gender, patch.Gender)
	applyString(&lead.Qualification, patch.Qualification)
	applyString(&lead.Profession, patch.Profession)
	if patch.Product != nil {
		if !patch.Product.Valid() {
			return nil, entity.ValidationError{Field: "product", Message: "must be one of the offered products"}
		}
		lead.Product = *patch.Product
	}
	lead.Touch(r.now())

	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}
	return lead.Clone(), nil
}

// SetStatus moves a lead to a new status and appends exactly one log entry.
// Setting the same status again is legal and still logs.
func (r *Registry) SetStatus(ctx context.Context, id string, status entity.LeadStatus, notes string) (*entity.Lead, error) {
	if !status.Valid() {
		return nil, entity.ValidationError{Field: "status", Message: "unknown status " + string(status)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.findLocked(id)
	if idx < 0 {
		return nil, entity.ErrLeadNotFound
	}

	now := r.now()
	lead := r.leads[idx]
	lead.AppendLog(now, "Status change to "+string(status), notes)
	lead.Status = status
	lead.Touch(now)

	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}
	return lead.Clone(), nil
}

// BulkSetStatus applies SetStatus semantics to every id that exists; unknown
// ids are silently skipped. Each affected record gets its own timestamp but
// all share the same action text for the batch.
func (r *Registry) BulkSetStatus(ctx context.Context, ids []string, status entity.LeadStatus, notes string) (int, error) {
	if !status.Valid() {
		return 0, entity.ValidationError{Field: "status", Message: "unknown status " + string(status)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	action := "Bulk status change to " + string(status)
	updated := 0
	for _, id := range ids {
		idx := r.findLocked(id)
		if idx < 0 {
			continue
		}
		now := r.now()
		lead := r.leads[idx]
		lead.AppendLog(now, action, notes)
		lead.Status = status
		lead.Touch(now)
		updated++
	}

	if updated == 0 {
		return 0, nil
	}
	if err := r.persistLocked(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteLead removes a lead permanently. Unknown ids are a no-op, not an
// error.
func (r *Registry) DeleteLead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.findLocked(id)
	if idx < 0 {
		return nil
	}
	r.leads = append(r.leads[:idx], r.leads[idx+1:]...)
	return r.persistLocked(ctx)
}

func (r *Registry) BulkDelete(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		idx := r.findLocked(id)
		if idx < 0 {
			continue
		}
		r.leads = append(r.leads[:idx], r.leads[idx+1:]...)
		deleted++
	}

	if deleted == 0 {
		return 0, nil
	}
	if err := r.persistLocked(ctx); err != nil {
		return deleted, err
	}
	return deleted, nil
}

// Reset empties the registry and erases the persisted snapshot.
func (r *Registry) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads = []*entity.Lead{}
	if err := r.store.Remove(ctx); err != nil {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}

// Export serializes the current lead set, logs included, as a pretty-printed
// JSON array. The shape round-trips through Combine and Replace.
func (r *Registry) Export() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return json.MarshalIndent(r.leads, "", "  ")
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.leads)
}

// Get returns a clone of one lead by id.
func (r *Registry) Get(id string) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.findLocked(id)
	if idx < 0 {
		return nil, entity.ErrLeadNotFound
	}
	return r.leads[idx].Clone(), nil
}

func (r *Registry) findLocked(id string) int {
	for i, lead := range r.leads {
		if lead.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(r.leads)
	if err != nil {
		err = fmt.Errorf("failed to serialize snapshot: %w", err)
	} else if setErr := r.store.Set(ctx, string(data)); setErr != nil {
		err = fmt.Errorf("failed to write snapshot: %w", setErr)
	}
	if r.onPersist != nil {
		r.onPersist(err)
	}
	return err
}

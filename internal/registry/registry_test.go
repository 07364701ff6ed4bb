package registry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/infra/store/memory"
)

func newTestRegistry(t *testing.T) (*Registry, *memory.Store) {
	t.Helper()
	store := memory.New()
	return New(store, zap.NewNop()), store
}

func mustCreate(t *testing.T, r *Registry, name, email string, product entity.Product) *entity.Lead {
	t.Helper()
	lead, err := r.CreateLead(context.Background(), CreateLeadInput{
		Name:    name,
		Email:   email,
		Product: product,
	})
	require.NoError(t, err)
	return lead
}

func TestCreateLeadAssignsUniqueIDs(t *testing.T) {
	r, _ := newTestRegistry(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		lead := mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
		assert.False(t, seen[lead.ID], "duplicate id %s", lead.ID)
		seen[lead.ID] = true
	}
	assert.Equal(t, 50, r.Count())
}

func TestCreateLeadValidation(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := r.CreateLead(ctx, CreateLeadInput{Email: "a@x.com", Product: entity.ProductFocusAI})
	assert.True(t, entity.IsValidationError(err))

	_, err = r.CreateLead(ctx, CreateLeadInput{Name: "A", Product: entity.ProductFocusAI})
	assert.True(t, entity.IsValidationError(err))

	_, err = r.CreateLead(ctx, CreateLeadInput{Name: "A", Email: "a@x.com", Product: "Focus Banking"})
	assert.True(t, entity.IsValidationError(err))

	assert.Equal(t, 0, r.Count())
}

func TestCombineIsIdempotent(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"x","name":"Lead X","email":"x@x.com","product":"Focus AI"}]`)

	added, err := r.Combine(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = r.Combine(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	assert.Equal(t, 1, r.Count())
}

func TestCombineCoercesMalformedRecords(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	payload := []byte(`[{"email":"anon@x.com"}, "not an object", {"id":"y","name":"Y","email":"y@x.com","status":"bogus"}]`)
	added, err := r.Combine(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	first := r.Filter(FilterCriteria{Search: "anon"})
	require.Len(t, first, 1)
	assert.Equal(t, "N/A", first[0].Name)

	coerced, err := r.Get("y")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, coerced.Status)
	assert.NotNil(t, coerced.Logs)
}

func TestCombineRejectsNonListPayload(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.Combine(context.Background(), []byte(`{"name":"not a list"}`))
	assert.ErrorIs(t, err, entity.ErrInvalidFormat)

	_, err = r.Combine(context.Background(), []byte(`garbage`))
	assert.ErrorIs(t, err, entity.ErrInvalidFormat)

	assert.Equal(t, 0, r.Count())
}

func TestExportRoundTrip(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	lead := mustCreate(t, r, "Asha", "asha@uni.edu", entity.ProductFocusClinic)
	_, err := r.SetStatus(ctx, lead.ID, entity.StatusContacted, "intro call")
	require.NoError(t, err)
	_, err = r.SetStatus(ctx, lead.ID, entity.StatusInterested, "wants a demo")
	require.NoError(t, err)

	exported, err := r.Export()
	require.NoError(t, err)

	fresh, _ := newTestRegistry(t)
	added, err := fresh.Combine(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	restored, err := fresh.Get(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInterested, restored.Status)
	require.Len(t, restored.Logs, 2)
	assert.Equal(t, "Status change to contacted", restored.Logs[0].Action)
	assert.Equal(t, "intro call", restored.Logs[0].Notes)
	assert.Equal(t, "Status change to interested", restored.Logs[1].Action)
}

func TestStatsTotalMatchesUnfilteredView(t *testing.T) {
	r, _ := newTestRegistry(t)

	mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	mustCreate(t, r, "B", "b@x.com", entity.ProductFocusCast)
	mustCreate(t, r, "C", "c@x.com", entity.ProductFocusCase)

	assert.Equal(t, r.Stats().Total, len(r.Filter(FilterCriteria{})))
}

func TestSetStatusAlwaysAppendsOneLogEntry(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	lead := mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)

	updated, err := r.SetStatus(ctx, lead.ID, entity.StatusContacted, "called them")
	require.NoError(t, err)
	assert.Len(t, updated.Logs, 1)

	// self-transition still logs
	updated, err = r.SetStatus(ctx, lead.ID, entity.StatusContacted, "called again")
	require.NoError(t, err)
	assert.Len(t, updated.Logs, 2)
	assert.Equal(t, entity.StatusContacted, updated.Status)
}

func TestSetStatusUnknownLead(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.SetStatus(context.Background(), "nope", entity.StatusContacted, "")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestBulkSetStatusSkipsUnknownIDs(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	a := mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	b := mustCreate(t, r, "B", "b@x.com", entity.ProductFocusAI)

	updated, err := r.BulkSetStatus(ctx, []string{a.ID, "ghost", b.ID}, entity.StatusFollowUp, "batch sweep")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	for _, id := range []string{a.ID, b.ID} {
		lead, err := r.Get(id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFollowUp, lead.Status)
		require.Len(t, lead.Logs, 1)
		assert.Equal(t, "Bulk status change to follow-up", lead.Logs[0].Action)
		assert.Equal(t, "batch sweep", lead.Logs[0].Notes)
	}
}

func TestDeleteUnknownLeadIsNoop(t *testing.T) {
	r, _ := newTestRegistry(t)
	mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)

	require.NoError(t, r.DeleteLead(context.Background(), "ghost"))
	assert.Equal(t, 1, r.Count())
}

func TestBulkDeleteCountsOnlyKnownIDs(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	a := mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	b := mustCreate(t, r, "B", "b@x.com", entity.ProductFocusAI)
	c := mustCreate(t, r, "C", "c@x.com", entity.ProductFocusAI)

	deleted, err := r.BulkDelete(ctx, []string{a.ID, c.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, 1, r.Count())

	deleted, err = r.BulkDelete(ctx, []string{b.ID, "ghost-1", "ghost-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, 0, r.Count())
}

func TestUpdateLeadPatchesFieldsOnly(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	lead := mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	_, err := r.SetStatus(ctx, lead.ID, entity.StatusContacted, "")
	require.NoError(t, err)

	institution := "Acme University"
	updated, err := r.UpdateLead(ctx, lead.ID, UpdateLeadInput{Institution: &institution})
	require.NoError(t, err)

	assert.Equal(t, "Acme University", updated.Institution)
	assert.Equal(t, "A", updated.Name)
	// edits never touch status or logs
	assert.Equal(t, entity.StatusContacted, updated.Status)
	assert.Len(t, updated.Logs, 1)
	assert.NotNil(t, updated.LastUpdated)

	_, err = r.UpdateLead(ctx, "ghost", UpdateLeadInput{Institution: &institution})
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestScenarioFreshLeadStats(t *testing.T) {
	r, _ := newTestRegistry(t)

	mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)

	stats := r.Stats()
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 0, stats.ProgressPercent)
}

func TestScenarioProgressAfterFirstContact(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	lead := mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	updated, err := r.SetStatus(ctx, lead.ID, entity.StatusContacted, "called them")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusContacted, updated.Status)
	assert.Len(t, updated.Logs, 1)
	assert.Equal(t, 100, r.Stats().ProgressPercent)
}

func TestFilterSearchMatchesInstitution(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	target, err := r.CreateLead(ctx, CreateLeadInput{
		Name:        "Priya",
		Email:       "priya@x.com",
		Product:     entity.ProductFocusAI,
		Institution: "Acme University",
	})
	require.NoError(t, err)
	mustCreate(t, r, "Ravi", "ravi@x.com", entity.ProductFocusCast)
	mustCreate(t, r, "Kiran", "kiran@x.com", entity.ProductFocusCase)

	matched := r.Filter(FilterCriteria{Search: "acme"})
	require.Len(t, matched, 1)
	assert.Equal(t, target.ID, matched[0].ID)
}

func TestFilterCriteriaAreANDed(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	a, err := r.CreateLead(ctx, CreateLeadInput{Name: "Asha", Email: "asha@x.com", Product: entity.ProductFocusAI})
	require.NoError(t, err)
	_, err = r.CreateLead(ctx, CreateLeadInput{Name: "Asha Rao", Email: "rao@x.com", Product: entity.ProductFocusCast})
	require.NoError(t, err)

	_, err = r.SetStatus(ctx, a.ID, entity.StatusResponded, "")
	require.NoError(t, err)

	matched := r.Filter(FilterCriteria{Search: "asha", Status: "responded", Product: "Focus AI"})
	require.Len(t, matched, 1)
	assert.Equal(t, a.ID, matched[0].ID)

	// "all" sentinel behaves like no criterion
	assert.Len(t, r.Filter(FilterCriteria{Status: "all", Product: "all"}), 2)
}

func TestReplaceSwapsWholeRegistry(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	mustCreate(t, r, "Old", "old@x.com", entity.ProductFocusAI)

	incoming := []*entity.Lead{
		{ID: "n1", Name: "New One", Email: "n1@x.com", Product: entity.ProductFocusCast},
		{ID: "n2", Name: "New Two", Email: "n2@x.com", Product: entity.ProductFocusCase},
		{ID: "n1", Name: "Duplicate", Email: "dup@x.com", Product: entity.ProductFocusAI},
	}
	require.NoError(t, r.Replace(ctx, incoming))

	assert.Equal(t, 2, r.Count())
	kept, err := r.Get("n1")
	require.NoError(t, err)
	assert.Equal(t, "New One", kept.Name)
}

func TestResetErasesSnapshot(t *testing.T) {
	r, store := newTestRegistry(t)
	ctx := context.Background()

	mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	require.NoError(t, r.Reset(ctx))
	assert.Equal(t, 0, r.Count())

	data, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadRestoresPersistedState(t *testing.T) {
	r, store := newTestRegistry(t)
	ctx := context.Background()

	lead := mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	_, err := r.SetStatus(ctx, lead.ID, entity.StatusContacted, "first touch")
	require.NoError(t, err)

	reloaded := New(store, zap.NewNop())
	reloaded.Load(ctx)

	restored, err := reloaded.Get(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, restored.Status)
	require.Len(t, restored.Logs, 1)
	assert.Equal(t, "first touch", restored.Logs[0].Notes)
}

func TestLoadUnparsableSnapshotStartsEmpty(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Set(context.Background(), "{{{definitely not json"))

	r := New(store, zap.NewNop())
	r.Load(context.Background())
	assert.Equal(t, 0, r.Count())
}

func TestExportIsPrettyPrintedLeadArray(t *testing.T) {
	r, _ := newTestRegistry(t)
	mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)

	exported, err := r.Export()
	require.NoError(t, err)

	var leads []entity.Lead
	require.NoError(t, json.Unmarshal(exported, &leads))
	assert.Len(t, leads, 1)
	assert.Contains(t, string(exported), "\n  ")
}

type failingStore struct{}

func (failingStore) Get(context.Context) (string, error) { return "", nil }
func (failingStore) Set(context.Context, string) error   { return errors.New("store down") }
func (failingStore) Remove(context.Context) error        { return errors.New("store down") }

func TestOnPersistObservesWriteOutcomes(t *testing.T) {
	r, _ := newTestRegistry(t)

	var outcomes []error
	r.OnPersist(func(err error) { outcomes = append(outcomes, err) })

	mustCreate(t, r, "A", "a@x.com", entity.ProductFocusAI)
	require.Len(t, outcomes, 1)
	assert.NoError(t, outcomes[0])

	broken := New(failingStore{}, zap.NewNop())
	broken.OnPersist(func(err error) { outcomes = append(outcomes, err) })
	_, err := broken.CreateLead(context.Background(), CreateLeadInput{
		Name:    "B",
		Email:   "b@x.com",
		Product: entity.ProductFocusAI,
	})
	require.Error(t, err)
	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[1])
}

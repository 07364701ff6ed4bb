package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/infra/integration/gemini"
	"github.com/focusin/hub/internal/infra/store/memory"
	"github.com/focusin/hub/internal/registry"
)

type mockEnricher struct {
	mock.Mock
}

func (m *mockEnricher) EnrichLeads(ctx context.Context, contacts []entity.Contact) ([]gemini.EnrichedLead, error) {
	args := m.Called(ctx, contacts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gemini.EnrichedLead), args.Error(1)
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.New(&memory.Store{}, zap.NewNop())
}

func TestImportReplacesRegistry(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	// Pre-existing leads get wiped by a fresh import.
	seed, err := entity.NewLead("Old Lead", "old@clinic.in", entity.ProductFocusAI)
	require.NoError(t, err)
	require.NoError(t, reg.Replace(ctx, []*entity.Lead{seed}))

	enricher := new(mockEnricher)
	enricher.On("EnrichLeads", mock.Anything, mock.Anything).Return([]gemini.EnrichedLead{
		{Name: "Dr. Rao", Email: "rao@dental.in", Phone: "+91 98765", Institution: "Rao Dental", ProductInterest: "Focus Clinic"},
		{Name: "Priya", Email: "priya@college.edu", ProductInterest: "Focus Cast"},
	}, nil)

	uc := NewImportLeadsUseCase(reg, enricher, zap.NewNop())
	leads, err := uc.Execute(ctx, entity.SampleContacts)
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, 2, reg.Count())
	for _, lead := range leads {
		assert.Equal(t, entity.StatusPending, lead.Status)
		assert.Empty(t, lead.Logs)
	}

	first, err := reg.Get(leads[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Rao Dental", first.Institution)
}

func TestImportFailureLeavesRegistryUntouched(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	seed, err := entity.NewLead("Keeper", "keep@me.in", entity.ProductFocusCase)
	require.NoError(t, err)
	require.NoError(t, reg.Replace(ctx, []*entity.Lead{seed}))

	enricher := new(mockEnricher)
	enricher.On("EnrichLeads", mock.Anything, mock.Anything).Return(nil, errors.New("model unavailable"))

	uc := NewImportLeadsUseCase(reg, enricher, zap.NewNop())
	_, err = uc.Execute(ctx, entity.SampleContacts)

	var enrichErr entity.EnrichmentError
	require.ErrorAs(t, err, &enrichErr)
	assert.Equal(t, 1, reg.Count())
}

func TestImportRejectsEmptyContactList(t *testing.T) {
	uc := NewImportLeadsUseCase(newTestRegistry(t), new(mockEnricher), zap.NewNop())

	_, err := uc.Execute(context.Background(), nil)
	assert.True(t, IsDomainError(err))
}

func TestImportKeepsEnrichedIDs(t *testing.T) {
	reg := newTestRegistry(t)

	enricher := new(mockEnricher)
	enricher.On("EnrichLeads", mock.Anything, mock.Anything).Return([]gemini.EnrichedLead{
		{ID: "enriched-1", Name: "Dr. Rao", Email: "rao@dental.in", ProductInterest: "Focus Clinic"},
		{Name: "Priya", Email: "priya@college.edu", ProductInterest: "Focus Cast"},
	}, nil)

	uc := NewImportLeadsUseCase(reg, enricher, zap.NewNop())
	leads, err := uc.Execute(context.Background(), entity.SampleContacts)
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, "enriched-1", leads[0].ID)
	assert.NotEmpty(t, leads[1].ID)

	kept, err := reg.Get("enriched-1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Rao", kept.Name)
}

func TestImportDefaultsUnknownProduct(t *testing.T) {
	reg := newTestRegistry(t)

	enricher := new(mockEnricher)
	enricher.On("EnrichLeads", mock.Anything, mock.Anything).Return([]gemini.EnrichedLead{
		{Name: "Anand", Email: "anand@lab.in", ProductInterest: "Focus Everything"},
	}, nil)

	uc := NewImportLeadsUseCase(reg, enricher, zap.NewNop())
	leads, err := uc.Execute(context.Background(), entity.SampleContacts)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, entity.ProductFocusClinic, leads[0].Product)
}

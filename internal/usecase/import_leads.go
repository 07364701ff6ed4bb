package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/registry"
)

// ImportLeadsUseCase runs the enrichment pipeline: raw contacts go out
// to the model, structured leads come back and replace the registry.
// When enrichment fails the registry is left exactly as it was.
type ImportLeadsUseCase struct {
	Registry *registry.Registry
	Enricher LeadEnricher
	Log      *zap.Logger
}

func NewImportLeadsUseCase(reg *registry.Registry, enricher LeadEnricher, log *zap.Logger) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{
		Registry: reg,
		Enricher: enricher,
		Log:      log,
	}
}

func (uc *ImportLeadsUseCase) Execute(ctx context.Context, contacts []entity.Contact) ([]*entity.Lead, error) {
	if len(contacts) == 0 {
		return nil, &DomainError{
			Code:    "NO_CONTACTS",
			Message: "no contacts to import",
		}
	}

	enriched, err := uc.Enricher.EnrichLeads(ctx, contacts)
	if err != nil {
		return nil, entity.EnrichmentError{Cause: err}
	}

	leads := make([]*entity.Lead, 0, len(enriched))
	for _, e := range enriched {
		product := entity.Product(e.ProductInterest)
		if !product.Valid() {
			uc.Log.Warn("enrichment suggested unknown product, defaulting",
				zap.String("contact", e.Name),
				zap.String("product", e.ProductInterest))
			product = entity.ProductFocusClinic
		}

		lead, err := entity.NewLead(e.Name, e.Email, product)
		if err != nil {
			uc.Log.Warn("skipping unusable enriched contact",
				zap.String("contact", e.Name), zap.Error(err))
			continue
		}
		// The model generates the id; correlation with the returned set
		// happens by that id, so keep it. A fresh uuid is the fallback.
		if e.ID != "" {
			lead.ID = e.ID
		}
		lead.Phone = e.Phone
		lead.Institution = e.Institution
		leads = append(leads, lead)
	}

	if err := uc.Registry.Replace(ctx, leads); err != nil {
		return nil, &TechnicalError{
			Code:    "SNAPSHOT_WRITE_FAILED",
			Message: "failed to persist imported leads: " + err.Error(),
		}
	}

	uc.Log.Info("leads imported", zap.Int("count", len(leads)))
	return leads, nil
}

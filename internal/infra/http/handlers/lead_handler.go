package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/infra/http/middleware"
	"github.com/focusin/hub/internal/registry"
	"github.com/focusin/hub/internal/usecase"
)

type LeadHandler struct {
	Registry *registry.Registry
	ImportUC *usecase.ImportLeadsUseCase
	DigestUC *usecase.DigestUseCase
}

func NewLeadHandler(reg *registry.Registry, importUC *usecase.ImportLeadsUseCase, digestUC *usecase.DigestUseCase) *LeadHandler {
	return &LeadHandler{
		Registry: reg,
		ImportUC: importUC,
		DigestUC: digestUC,
	}
}

// List (GET /leads?search=&status=&product=)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := registry.FilterCriteria{
		Search:  r.URL.Query().Get("search"),
		Status:  r.URL.Query().Get("status"),
		Product: r.URL.Query().Get("product"),
	}
	writeJSON(w, http.StatusOK, h.Registry.Filter(criteria))
}

// Create (POST /leads)
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input registry.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	lead, err := h.Registry.CreateLead(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

// Get (GET /leads/{id})
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Update (PATCH /leads/{id})
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch registry.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	lead, err := h.Registry.UpdateLead(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Delete (DELETE /leads/{id}). Deleting an unknown id succeeds.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Registry.DeleteLead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// SetStatus (POST /leads/{id}/status)
func (h *LeadHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	lead, err := h.Registry.SetStatus(r.Context(), chi.URLParam(r, "id"), entity.LeadStatus(req.Status), req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
	Notes  string   `json:"notes"`
}

// BulkSetStatus (POST /leads/bulk/status). Unknown ids are skipped.
func (h *LeadHandler) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Registry.BulkSetStatus(r.Context(), req.IDs, entity.LeadStatus(req.Status), req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDelete (POST /leads/bulk/delete)
func (h *LeadHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.Registry.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

type importRequest struct {
	Contacts []entity.Contact `json:"contacts"`
}

// Import (POST /leads/import) runs the enrichment pipeline and replaces
// the registry with the result.
func (h *LeadHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	leads, err := h.ImportUC.Execute(r.Context(), req.Contacts)
	if err != nil {
		var enrichErr entity.EnrichmentError
		if errors.As(err, &enrichErr) {
			middleware.RecordIntegrationError("gemini")
		}
		writeError(w, err)
		return
	}

	middleware.RecordLeadsImported(len(leads))
	writeJSON(w, http.StatusOK, leads)
}

// Combine (POST /leads/combine) merges a raw JSON array into the
// registry, skipping records whose id already exists.
func (h *LeadHandler) Combine(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}

	added, err := h.Registry.Combine(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": added})
}

// Export (GET /leads/export) downloads the registry as pretty JSON.
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.Registry.Export()
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("focus-in-leads-%s.json", time.Now().Format("2006-01-02T15-04-05"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(data)
}

// Sample (GET /leads/sample) downloads the import template.
func (h *LeadHandler) Sample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="sample-leads.json"`)
	writeJSON(w, http.StatusOK, entity.SampleContacts)
}

// Stats (GET /leads/stats)
func (h *LeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Registry.Stats())
}

// Reset (POST /leads/reset) wipes the registry and its snapshot.
func (h *LeadHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Registry.Reset(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Digest (POST /leads/digest) emails the registry summary.
func (h *LeadHandler) Digest(w http.ResponseWriter, r *http.Request) {
	if err := h.DigestUC.Execute(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

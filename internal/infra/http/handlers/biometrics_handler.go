package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/focusin/hub/internal/usecase"
)

type BiometricsHandler struct {
	CheckInUC  *usecase.CheckInUseCase
	CheckOutUC *usecase.CheckOutUseCase
	LogUC      *usecase.AttendanceLogUseCase
}

func NewBiometricsHandler(checkIn *usecase.CheckInUseCase, checkOut *usecase.CheckOutUseCase, logUC *usecase.AttendanceLogUseCase) *BiometricsHandler {
	return &BiometricsHandler{
		CheckInUC:  checkIn,
		CheckOutUC: checkOut,
		LogUC:      logUC,
	}
}

// CheckIn (POST /biometrics/check-in)
func (h *BiometricsHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var input usecase.CheckInInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.CheckInUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// CheckOut (POST /biometrics/check-out)
func (h *BiometricsHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var input usecase.CheckOutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.CheckOutUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// TodayLog (GET /biometrics/today)
func (h *BiometricsHandler) TodayLog(w http.ResponseWriter, r *http.Request) {
	records, err := h.LogUC.TodayLog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Tasks (GET /tasks)
func (h *BiometricsHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.LogUC.Tasks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

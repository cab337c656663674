package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/stridelog/stridelog/internal/rest"
)

type ActivityDTO struct {
	Id             int64   `json:"id"`
	ExternalId     int64   `json:"externalId,omitempty"`
	Name           string  `json:"name"`
	Sport          string  `json:"sport"`
	Distance       float64 `json:"distance"`
	MovingTime     int     `json:"movingTime"`
	StartDateLocal string  `json:"startDateLocal"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	activities, err := h.service.ListAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ActivityDTO, 0, len(activities))
	for _, a := range activities {
		dtos = append(dtos, ActivityToDTO(a))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto ActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	startDate, err := time.Parse(time.RFC3339, dto.StartDateLocal)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Incorrect startDateLocal format",
			Details: "startDateLocal must be in RFC3339 format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.service.Record(r.Context(), Activity{
		Name:           dto.Name,
		Sport:          dto.Sport,
		Distance:       dto.Distance,
		MovingTime:     time.Duration(dto.MovingTime) * time.Second,
		StartDateLocal: startDate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ActivityToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	activityIdString := mux.Vars(r)["activityId"]
	activityId, err := strconv.ParseInt(activityIdString, 10, 64)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.service.Delete(r.Context(), activityId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SyncActivities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	count, err := h.service.Sync(r.Context())
	if err != nil {
		if errors.Is(err, ErrSourceUnauthenticated) {
			http.Error(w, "athlete is not connected to the tracking source", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	response := struct {
		Synced int `json:"synced"`
	}{Synced: count}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ActivityToDTO(a Activity) ActivityDTO {
	return ActivityDTO{
		Id:             a.Id,
		ExternalId:     a.ExternalId,
		Name:           a.Name,
		Sport:          a.Sport,
		Distance:       a.Distance,
		MovingTime:     int(a.MovingTime.Seconds()),
		StartDateLocal: a.StartDateLocal.Format(time.RFC3339),
	}
}

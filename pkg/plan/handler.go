package plan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/stridelog/stridelog/internal/rest"
)

const dayFormat = "2006-01-02"

type PlannedWorkoutDTO struct {
	Id int `json:"id"`
	// Day is a calendar date in YYYY-MM-DD format.
	Day            string  `json:"day"`
	Distance       float64 `json:"distance"`
	TargetDuration int     `json:"targetDuration,omitempty"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	Position       int     `json:"position"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	workouts, err := h.service.GetPlan(r.Context())
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// No plan is a neutral empty state, not an error.
	dtos := make([]PlannedWorkoutDTO, 0, len(workouts))
	for _, workout := range workouts {
		dtos = append(dtos, WorkoutToDTO(workout))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) AddWorkout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	workout, ok := h.decodeWorkout(w, r)
	if !ok {
		return
	}
	created, err := h.service.AddWorkout(r.Context(), workout)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(WorkoutToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	workoutId, ok := h.workoutIdFromPath(w, r)
	if !ok {
		return
	}
	workout, ok := h.decodeWorkout(w, r)
	if !ok {
		return
	}
	workout.Id = workoutId

	updated, err := h.service.UpdateWorkout(r.Context(), workout)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(WorkoutToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	workoutId, ok := h.workoutIdFromPath(w, r)
	if !ok {
		return
	}
	deleted, err := h.service.DeleteWorkout(r.Context(), workoutId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "planned workout not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeWorkout(w http.ResponseWriter, r *http.Request) (PlannedWorkout, bool) {
	var dto PlannedWorkoutDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return PlannedWorkout{}, false
	}
	day, err := time.Parse(dayFormat, dto.Day)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Incorrect day format",
			Details: "Day must be a date in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return PlannedWorkout{}, false
	}
	return PlannedWorkout{
		Day:            day,
		Distance:       dto.Distance,
		TargetDuration: time.Duration(dto.TargetDuration) * time.Second,
		Title:          dto.Title,
		Description:    dto.Description,
	}, true
}

func (h *Handler) workoutIdFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	workoutId, err := strconv.Atoi(vars["workoutId"])
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid workoutId format",
			Details: "Parameter workoutId must be a number",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return 0, false
	}
	return workoutId, true
}

func WorkoutToDTO(w PlannedWorkout) PlannedWorkoutDTO {
	return PlannedWorkoutDTO{
		Id:             w.Id,
		Day:            w.Day.Format(dayFormat),
		Distance:       w.Distance,
		TargetDuration: int(w.TargetDuration.Seconds()),
		Title:          w.Title,
		Description:    w.Description,
		Position:       w.Position,
	}
}

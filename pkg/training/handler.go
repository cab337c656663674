package training

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/stridelog/stridelog/internal/rest"
	"github.com/stridelog/stridelog/pkg/activity"
)

type MatchedWorkoutDTO struct {
	Id             int                   `json:"id"`
	Day            string                `json:"day"`
	Distance       float64               `json:"distance"`
	TargetDuration int                   `json:"targetDuration,omitempty"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	Completed      bool                  `json:"completed"`
	Activity       *activity.ActivityDTO `json:"activity,omitempty"`
}

type WeeklySummaryDTO struct {
	WeekStart         string                 `json:"weekStart"`
	WeekEnd           string                 `json:"weekEnd"`
	Workouts          []MatchedWorkoutDTO    `json:"workouts"`
	PlannedDistance   float64                `json:"plannedDistance"`
	ActivityDistance  float64                `json:"activityDistance"`
	CompletionPercent float64                `json:"completionPercent"`
	Unmatched         []activity.ActivityDTO `json:"unmatched"`
	UnmatchedDistance float64                `json:"unmatchedDistance"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetWeeklySummary handles GET /api/training/week?offset=n. Offset 0 is the current
// week, negative offsets are past weeks.
func (h *Handler) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	offset := 0
	if offsetString := r.URL.Query().Get("offset"); offsetString != "" {
		parsed, err := strconv.Atoi(offsetString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid offset format",
				Details: "Parameter offset must be an integer number of weeks",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		offset = parsed
	}

	summary, err := h.service.GetWeeklySummary(r.Context(), offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func summaryToDTO(s WeeklySummary) WeeklySummaryDTO {
	workouts := make([]MatchedWorkoutDTO, 0, len(s.Workouts))
	for _, w := range s.Workouts {
		dto := MatchedWorkoutDTO{
			Id:             w.Id,
			Day:            w.Day.Format("2006-01-02"),
			Distance:       w.Distance,
			TargetDuration: int(w.TargetDuration.Seconds()),
			Title:          w.Title,
			Description:    w.Description,
			Completed:      w.Completed,
		}
		if w.Matched != nil {
			matched := activity.ActivityToDTO(*w.Matched)
			dto.Activity = &matched
		}
		workouts = append(workouts, dto)
	}

	unmatched := make([]activity.ActivityDTO, 0, len(s.Unmatched))
	for _, a := range s.Unmatched {
		unmatched = append(unmatched, activity.ActivityToDTO(a))
	}

	return WeeklySummaryDTO{
		WeekStart:         s.Week.Start.Format(time.RFC3339),
		WeekEnd:           s.Week.End.Format(time.RFC3339),
		Workouts:          workouts,
		PlannedDistance:   s.PlannedDistance,
		ActivityDistance:  s.ActivityDistance,
		CompletionPercent: s.CompletionPercent,
		Unmatched:         unmatched,
		UnmatchedDistance: s.UnmatchedDistance,
	}
}

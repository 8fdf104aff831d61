package stats

import (
	"encoding/json"
	"net/http"
)

type CategoryBreakdownDTO struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

type MonthlySummaryDTO struct {
	Month        string                 `json:"month"`
	Salary       float64                `json:"salary"`
	TotalExpense float64                `json:"totalExpense"`
	Remaining    float64                `json:"remaining"`
	Categories   []CategoryBreakdownDTO `json:"categories"`
}

type StatsHandler struct {
	service StatsService
}

func NewStatsHandler(service StatsService) *StatsHandler {
	return &StatsHandler{service}
}

func (handler *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	month := r.URL.Query().Get("month")

	summary, err := handler.service.MonthlySummary(r.Context(), month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categories := make([]CategoryBreakdownDTO, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		categories = append(categories, CategoryBreakdownDTO(c))
	}

	dto := MonthlySummaryDTO{
		Month:        summary.Month,
		Salary:       summary.Salary,
		TotalExpense: summary.TotalExpense,
		Remaining:    summary.Remaining,
		Categories:   categories,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *StatsHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	draft := r.URL.Query().Get("q")

	suggestions, err := handler.service.Suggestions(r.Context(), draft)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(suggestions); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings/salary", deps.SettingsHandler.UpdateSalary).Methods("PUT")

	// Stats
	r.HandleFunc("/api/stats", deps.StatsHandler.GetSummary).Queries("month", "{month}").Methods("GET")
	r.HandleFunc("/api/stats", deps.StatsHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/suggestions", deps.StatsHandler.GetSuggestions).Methods("GET")

	// Reset history
	r.HandleFunc("/api/reset", deps.ResetHandler.Reset).Methods("POST")

	// Live session
	r.HandleFunc("/api/live", deps.LiveHandler.Live).Methods("GET")
}

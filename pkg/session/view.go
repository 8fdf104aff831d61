package session

import (
	"github.com/expenzo/expenzo/pkg/expense"
	"github.com/expenzo/expenzo/pkg/stats"
)

type CategoryView struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

type ConfirmView struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ConfirmLabel string `json:"confirmLabel"`
	CancelLabel  string `json:"cancelLabel"`
}

// View is the full render snapshot pushed to the client after every change.
type View struct {
	Month           string               `json:"month"`
	Salary          float64              `json:"salary"`
	TotalExpense    float64              `json:"totalExpense"`
	Remaining       float64              `json:"remaining"`
	Categories      []CategoryView       `json:"categories"`
	Expenses        []expense.ExpenseDTO `json:"expenses"`
	NameDraft       string               `json:"nameDraft"`
	AmountDraft     string               `json:"amountDraft"`
	Type            string               `json:"type"`
	Suggestions     []string             `json:"suggestions"`
	ShowSuggestions bool                 `json:"showSuggestions"`
	Confirm         *ConfirmView         `json:"confirm,omitempty"`
}

// View returns the current render snapshot.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildView()
}

// buildView runs the derivation engine over the cached snapshots.
// Callers must hold s.mu.
func (s *Session) buildView() View {
	summary := stats.Summarize(s.expenses, s.salary, s.selectedMonth)

	categories := make([]CategoryView, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		categories = append(categories, CategoryView(c))
	}
	// The subscription delivers expenses by date descending; no re-sorting here.
	expenses := make([]expense.ExpenseDTO, 0, len(summary.Expenses))
	for _, e := range summary.Expenses {
		expenses = append(expenses, expense.ExpenseToDTO(e))
	}
	suggestions := stats.FilterSuggestions(stats.Suggestions(s.expenses), s.nameDraft)
	if suggestions == nil {
		suggestions = []string{}
	}

	view := View{
		Month:           s.selectedMonth,
		Salary:          s.salary,
		TotalExpense:    summary.TotalExpense,
		Remaining:       summary.Remaining,
		Categories:      categories,
		Expenses:        expenses,
		NameDraft:       s.nameDraft,
		AmountDraft:     s.amountDraft,
		Type:            string(s.selectedType),
		Suggestions:     suggestions,
		ShowSuggestions: s.showSuggestions,
	}
	if s.confirm.IsOpen() {
		view.Confirm = &ConfirmView{
			Title:        s.confirm.title,
			Description:  s.confirm.description,
			ConfirmLabel: s.confirm.confirmLabel,
			CancelLabel:  s.confirm.cancelLabel,
		}
	}
	return view
}

// Package session holds the interaction shell: per-connection UI state
// (drafts, selected month, confirm gate) mediating between user actions and
// the stores. The authoritative data always comes back through the change
// subscriptions; local copies are caches refreshed on every snapshot.
package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/expenzo/expenzo/internal/event_bus"
	"github.com/expenzo/expenzo/internal/utils"
	"github.com/expenzo/expenzo/pkg/expense"
	"github.com/expenzo/expenzo/pkg/reset"
	"github.com/expenzo/expenzo/pkg/settings"
	"github.com/expenzo/expenzo/pkg/stats"
	log "github.com/sirupsen/logrus"
)

const defaultSuggestionHideDelay = 200 * time.Millisecond

type Option func(*Session)

// WithSuggestionHideDelay overrides the grace period between the name field
// losing focus and the suggestion list hiding. The delay exists so a pointer
// click on a suggestion lands before the list disappears.
func WithSuggestionHideDelay(d time.Duration) Option {
	return func(s *Session) { s.hideDelay = d }
}

// WithNotify registers a callback invoked with a fresh View after every state
// change, including snapshot arrivals.
func WithNotify(fn func(View)) Option {
	return func(s *Session) { s.notifyFn = fn }
}

type Session struct {
	mu     sync.Mutex
	closed bool

	ctx             context.Context
	expenseService  expense.Service
	settingsService settings.Service
	resetService    reset.Service
	clock           utils.Clock
	hideDelay       time.Duration
	notifyFn        func(View)

	unsubscribe []func()

	// live snapshots, refreshed by subscription pushes
	expenses []expense.Expense
	salary   float64

	nameDraft     string
	amountDraft   string
	selectedType  expense.ExpenseType
	selectedMonth string

	showSuggestions bool
	hideTimer       *time.Timer

	confirm Confirm
}

// New builds a session, loads the initial snapshots, and subscribes to both
// change streams. The two subscriptions stay live until Close.
func New(
	ctx context.Context,
	expenseService expense.Service,
	settingsService settings.Service,
	resetService reset.Service,
	bus *event_bus.EventBus,
	clock utils.Clock,
	opts ...Option,
) *Session {
	s := &Session{
		ctx:             ctx,
		expenseService:  expenseService,
		settingsService: settingsService,
		resetService:    resetService,
		clock:           clock,
		hideDelay:       defaultSuggestionHideDelay,
		selectedType:    expense.TypeMine,
		selectedMonth:   stats.MonthName(clock.Now()),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Immediate snapshot, then live updates. A failed initial read degrades to
	// an empty snapshot until the next push.
	if expenses, err := expenseService.List(ctx); err != nil {
		log.Errorf("failed to load initial expenses: %v", err)
	} else {
		s.expenses = expenses
	}
	if currentSettings, err := settingsService.Get(ctx); err != nil {
		log.Errorf("failed to load initial settings: %v", err)
	} else {
		s.salary = currentSettings.Salary
	}

	unsubExpenses := event_bus.SubscribeTyped[[]expense.Expense](bus, expense.EventExpensesChanged,
		func(e event_bus.EventT[[]expense.Expense]) error {
			s.onExpenses(e.Data)
			return nil
		})
	unsubSettings := event_bus.SubscribeTyped[settings.Settings](bus, settings.EventSettingsChanged,
		func(e event_bus.EventT[settings.Settings]) error {
			s.onSettings(e.Data)
			return nil
		})
	s.unsubscribe = append(s.unsubscribe, unsubExpenses, unsubSettings)

	return s
}

// Close releases both subscriptions and stops any pending timer. No state
// update happens after Close, even if the bus emits afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	for _, unsub := range unsubscribe {
		unsub()
	}
}

func (s *Session) onExpenses(expenses []expense.Expense) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.expenses = expenses
	s.mu.Unlock()
	s.notify()
}

func (s *Session) onSettings(current settings.Settings) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.salary = current.Salary
	s.mu.Unlock()
	s.notify()
}

// SetNameDraft updates the category draft and shows the suggestion list.
func (s *Session) SetNameDraft(name string) {
	s.mu.Lock()
	s.nameDraft = name
	s.showSuggestions = true
	s.mu.Unlock()
	s.notify()
}

func (s *Session) SetAmountDraft(amount string) {
	s.mu.Lock()
	s.amountDraft = amount
	s.mu.Unlock()
	s.notify()
}

// SetType switches the selected category type. Values outside the closed set
// are ignored at this boundary.
func (s *Session) SetType(raw string) {
	expenseType, err := expense.ParseExpenseType(raw)
	if err != nil {
		log.Debugf("ignoring invalid expense type: %v", err)
		return
	}
	s.mu.Lock()
	s.selectedType = expenseType
	s.mu.Unlock()
	s.notify()
}

// SetSalary updates the local salary value only; nothing is written until
// CommitSalary. This keeps a keystroke from becoming a storage write.
func (s *Session) SetSalary(salary float64) {
	s.mu.Lock()
	s.salary = salary
	s.mu.Unlock()
	s.notify()
}

// CommitSalary persists the current local salary, merge-style. Called when the
// salary field loses focus.
func (s *Session) CommitSalary() {
	s.mu.Lock()
	salary := s.salary
	s.mu.Unlock()

	if err := s.settingsService.SetSalary(s.ctx, salary); err != nil {
		log.Errorf("failed to persist salary: %v", err)
	}
}

// SelectMonth changes which subset the derivation runs over. Purely local.
func (s *Session) SelectMonth(month string) {
	s.mu.Lock()
	s.selectedMonth = month
	s.mu.Unlock()
	s.notify()
}

// AddExpense submits the current drafts. It is inert unless both the name and
// amount drafts are present. On success the name and amount drafts clear; the
// type selection stays for rapid repeated entry. On a write failure the drafts
// stay untouched so the user can retry.
func (s *Session) AddExpense() {
	s.mu.Lock()
	if s.closed || s.nameDraft == "" || s.amountDraft == "" {
		s.mu.Unlock()
		return
	}
	name := s.nameDraft
	amount := coerceNumber(s.amountDraft)
	expenseType := s.selectedType
	s.mu.Unlock()

	if _, err := s.expenseService.Create(s.ctx, name, amount, expenseType); err != nil {
		log.Errorf("failed to add expense: %v", err)
		return
	}

	s.mu.Lock()
	s.nameDraft = ""
	s.amountDraft = ""
	s.mu.Unlock()
	s.notify()
}

// RemoveExpense deletes one expense. A failure is only logged; the list is
// driven by the next snapshot either way.
func (s *Session) RemoveExpense(id string) {
	if err := s.expenseService.Remove(s.ctx, id); err != nil {
		log.Errorf("failed to remove expense %s: %v", id, err)
	}
}

// FocusName shows the suggestion list and cancels a pending hide.
func (s *Session) FocusName() {
	s.mu.Lock()
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	s.showSuggestions = true
	s.mu.Unlock()
	s.notify()
}

// BlurName schedules the suggestion list to hide after the grace period.
func (s *Session) BlurName() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.hideTimer != nil {
		s.hideTimer.Stop()
	}
	s.hideTimer = time.AfterFunc(s.hideDelay, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		s.showSuggestions = false
		s.hideTimer = nil
		s.mu.Unlock()
		s.notify()
	})
	s.mu.Unlock()
}

// ChooseSuggestion overwrites the name draft and hides the list immediately.
func (s *Session) ChooseSuggestion(name string) {
	s.mu.Lock()
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	s.nameDraft = name
	s.showSuggestions = false
	s.mu.Unlock()
	s.notify()
}

// OpenResetDialog arms the confirm gate for the destructive history reset.
func (s *Session) OpenResetDialog() {
	s.mu.Lock()
	s.confirm.Open(
		"Reset History",
		"Are you sure you want to delete ALL expense history? This action cannot be undone.",
		"Delete Everything",
		"Cancel",
		func() {
			if err := s.resetService.Reset(s.ctx); err != nil {
				log.Errorf("failed to reset history: %v", err)
			}
		},
	)
	s.mu.Unlock()
	s.notify()
}

// ConfirmReset fires the armed reset at most once and closes the gate.
// Running it again requires reopening the dialog.
func (s *Session) ConfirmReset() {
	s.mu.Lock()
	action, ok := s.confirm.Take()
	s.mu.Unlock()

	if ok {
		action()
	}
	s.notify()
}

// CancelReset closes the gate without firing the reset.
func (s *Session) CancelReset() {
	s.mu.Lock()
	s.confirm.Cancel()
	s.mu.Unlock()
	s.notify()
}

func (s *Session) notify() {
	s.mu.Lock()
	if s.closed || s.notifyFn == nil {
		s.mu.Unlock()
		return
	}
	view := s.buildView()
	fn := s.notifyFn
	s.mu.Unlock()

	fn(view)
}

// coerceNumber mirrors the numeric coercion of the input fields: anything that
// does not parse is 0.
func coerceNumber(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// Package live pushes render snapshots to the browser over a websocket and
// feeds user actions back into a per-connection session.
package live

import (
	"net/http"
	"strconv"

	"github.com/expenzo/expenzo/internal/event_bus"
	"github.com/expenzo/expenzo/internal/utils"
	"github.com/expenzo/expenzo/pkg/expense"
	"github.com/expenzo/expenzo/pkg/reset"
	"github.com/expenzo/expenzo/pkg/session"
	"github.com/expenzo/expenzo/pkg/settings"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	expenseService  expense.Service
	settingsService settings.Service
	resetService    reset.Service
	bus             *event_bus.EventBus
	clock           utils.Clock
	upgrader        websocket.Upgrader
}

func NewHandler(
	expenseService expense.Service,
	settingsService settings.Service,
	resetService reset.Service,
	bus *event_bus.EventBus,
	clock utils.Clock,
) *Handler {
	return &Handler{
		expenseService:  expenseService,
		settingsService: settingsService,
		resetService:    resetService,
		bus:             bus,
		clock:           clock,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// actionMessage is the inbound wire frame. Value carries the action argument
// as a string; numeric actions coerce it (non-numeric becomes 0).
type actionMessage struct {
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
}

// Live upgrades the connection and runs the session until the client
// disconnects. Disconnecting closes the session, which releases both live
// subscriptions.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	log.Debug("live session connected")

	views := make(chan session.View, 16)
	sess := session.New(
		r.Context(),
		h.expenseService,
		h.settingsService,
		h.resetService,
		h.bus,
		h.clock,
		session.WithNotify(func(view session.View) {
			select {
			case views <- view:
			default:
				// Writer is lagging; the next change carries the full state anyway.
				log.Debug("dropping view snapshot for slow client")
			}
		}),
	)
	defer sess.Close()

	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			select {
			case view := <-views:
				if err := conn.WriteJSON(view); err != nil {
					log.Debugf("live session write failed: %v", err)
					conn.Close()
					return
				}
			case <-quit:
				return
			}
		}
	}()

	// Immediate snapshot on connect, then one per change.
	views <- sess.View()

	for {
		var msg actionMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debugf("live session closed: %v", err)
			return
		}
		dispatch(sess, msg)
	}
}

func dispatch(sess *session.Session, msg actionMessage) {
	switch msg.Action {
	case "setNameDraft":
		sess.SetNameDraft(msg.Value)
	case "setAmountDraft":
		sess.SetAmountDraft(msg.Value)
	case "setType":
		sess.SetType(msg.Value)
	case "setSalary":
		sess.SetSalary(coerceNumber(msg.Value))
	case "commitSalary":
		sess.CommitSalary()
	case "addExpense":
		sess.AddExpense()
	case "removeExpense":
		sess.RemoveExpense(msg.Value)
	case "selectMonth":
		sess.SelectMonth(msg.Value)
	case "focusName":
		sess.FocusName()
	case "blurName":
		sess.BlurName()
	case "chooseSuggestion":
		sess.ChooseSuggestion(msg.Value)
	case "openReset":
		sess.OpenResetDialog()
	case "confirmReset":
		sess.ConfirmReset()
	case "cancelReset":
		sess.CancelReset()
	default:
		log.Debugf("ignoring unknown action %q", msg.Action)
	}
}

func coerceNumber(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

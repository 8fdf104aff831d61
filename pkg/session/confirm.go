package session

// Confirm is a modal gate for a destructive action. It renders nothing while
// closed, and guarantees the armed action fires at most once per Open.
// It is not safe for concurrent use on its own; the owning Session guards it.
type Confirm struct {
	title        string
	description  string
	confirmLabel string
	cancelLabel  string
	action       func()
	open         bool
	fired        bool
}

// Open arms the gate with the given labels and action. Reopening re-arms it.
func (c *Confirm) Open(title, description, confirmLabel, cancelLabel string, action func()) {
	c.title = title
	c.description = description
	c.confirmLabel = confirmLabel
	c.cancelLabel = cancelLabel
	c.action = action
	c.open = true
	c.fired = false
}

// Take closes the gate and hands back the armed action exactly once.
// It returns false when the gate is closed or the action already fired;
// the caller runs the action outside any lock.
func (c *Confirm) Take() (func(), bool) {
	if !c.open || c.fired {
		return nil, false
	}
	c.fired = true
	c.open = false
	action := c.action
	c.action = nil
	return action, true
}

// Cancel closes the gate without firing the action. Dismissing via backdrop
// click or explicit close goes through here as well.
func (c *Confirm) Cancel() {
	c.open = false
	c.action = nil
}

func (c *Confirm) IsOpen() bool {
	return c.open
}

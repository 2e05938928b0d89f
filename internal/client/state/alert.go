package state

import "sync"

type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
)

// Alert is the current notification. The zero value means "no alert".
type Alert struct {
	Type     AlertType
	Messages []string
}

func (a Alert) Empty() bool {
	return a.Type == ""
}

// Alerts holds at most one Alert at a time; each call replaces the previous.
type Alerts struct {
	mu      sync.RWMutex
	current Alert
	subs    observers[Alert]
}

func NewAlerts() *Alerts {
	return &Alerts{}
}

func (a *Alerts) Success(messages ...string) { a.set(Alert{Type: AlertSuccess, Messages: messages}) }

func (a *Alerts) Warning(messages ...string) { a.set(Alert{Type: AlertWarning, Messages: messages}) }

func (a *Alerts) Error(messages ...string) { a.set(Alert{Type: AlertError, Messages: messages}) }

func (a *Alerts) Clear() { a.set(Alert{}) }

func (a *Alerts) Current() Alert {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copyAlert(a.current)
}

// Subscribe registers fn for every change and returns its unsubscribe func.
func (a *Alerts) Subscribe(fn func(Alert)) func() {
	return a.subs.add(fn)
}

func (a *Alerts) set(al Alert) {
	al = copyAlert(al)
	a.mu.Lock()
	a.current = al
	a.mu.Unlock()
	a.subs.notify(copyAlert(al))
}

func copyAlert(a Alert) Alert {
	if a.Messages != nil {
		a.Messages = append([]string(nil), a.Messages...)
	}
	return a
}

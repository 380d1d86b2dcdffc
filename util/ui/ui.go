// Package ui holds the presentation ports shared by the view controllers:
// error reporting, confirmation prompts and navigation.
package ui

import (
	"log/slog"
	"sync"
	"time"
)

type Route string

const (
	RouteBooks         Route = "/books"
	RouteAddBook       Route = "/add-book"
	RouteRentBook      Route = "/rent-book"
	RouteRentalHistory Route = "/rental-history"
)

// Reporter surfaces outcomes to the user. Report is called on every failure path.
type Reporter interface {
	Report(err error)
	Notify(msg string)
}

type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always answers every prompt with v.
func Always(v bool) Confirmer {
	return ConfirmFunc(func(string) bool { return v })
}

type Navigator interface {
	Navigate(to Route)
}

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notices is a Reporter that queues messages until the view drains them.
type Notices struct {
	mu   sync.Mutex
	log  *slog.Logger
	list []Notice
}

func NewNotices(log *slog.Logger) *Notices {
	if log == nil {
		log = slog.Default()
	}
	return &Notices{log: log}
}

func (n *Notices) Report(err error) {
	if err == nil {
		return
	}
	n.log.Error("action failed", "err", err)
	n.push(LevelError, err.Error())
}

func (n *Notices) Notify(msg string) {
	n.log.Info("notice", "msg", msg)
	n.push(LevelInfo, msg)
}

func (n *Notices) push(l Level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.list = append(n.list, Notice{Level: l, Message: msg, At: time.Now().UTC()})
}

// Drain returns the queued notices oldest first and empties the queue.
func (n *Notices) Drain() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.list
	n.list = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

// Redirect is a Navigator that remembers the last requested route.
type Redirect struct {
	mu sync.Mutex
	to Route
}

func (r *Redirect) Navigate(to Route) {
	r.mu.Lock()
	r.to = to
	r.mu.Unlock()
}

// Take returns the pending route, if any, and clears it.
func (r *Redirect) Take() (Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	to := r.to
	r.to = ""
	return to, to != ""
}

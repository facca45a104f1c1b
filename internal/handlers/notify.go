package handlers

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// The store emits user-facing notifications; the web layer turns them into
// session flashes shown on the next rendered page. A notice sink travels in
// the request context so the one store instance can notify whichever browser
// session triggered the operation.

type noticesKey struct{}

type notices struct {
	successes []string
	errors    []string
}

// withNotices installs a notice sink into the request context and returns
// the derived context.
func withNotices(c *gin.Context) (context.Context, *notices) {
	n := &notices{}
	return context.WithValue(c.Request.Context(), noticesKey{}, n), n
}

func noticesFrom(ctx context.Context) *notices {
	n, _ := ctx.Value(noticesKey{}).(*notices)
	return n
}

// flush moves collected notices into session flashes.
func (n *notices) flush(c *gin.Context) {
	if len(n.successes) == 0 && len(n.errors) == 0 {
		return
	}
	sess := sessions.Default(c)
	for _, msg := range n.successes {
		sess.AddFlash(msg, "success")
	}
	for _, msg := range n.errors {
		sess.AddFlash(msg, "error")
	}
	if err := sess.Save(); err != nil {
		log.Printf("failed to save session flashes: %v", err)
	}
}

// SessionNotifier implements store.Notifier over the request-scoped notice
// sink, logging as well so headless callers still see outcomes.
type SessionNotifier struct{}

func (SessionNotifier) Success(ctx context.Context, msg string) {
	log.Printf("notify: %s", msg)
	if n := noticesFrom(ctx); n != nil {
		n.successes = append(n.successes, msg)
	}
}

func (SessionNotifier) Error(ctx context.Context, msg string) {
	log.Printf("notify: %s", msg)
	if n := noticesFrom(ctx); n != nil {
		n.errors = append(n.errors, msg)
	}
}

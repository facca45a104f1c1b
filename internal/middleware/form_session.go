package middleware

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "form_session_id"

// FormSession guarantees every browser session an id, used to key the open
// forms of that session.
func FormSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		id, _ := sess.Get(sessionIDKey).(string)
		if id == "" {
			id = uuid.NewString()
			sess.Set(sessionIDKey, id)
			if err := sess.Save(); err != nil {
				log.Printf("failed to save form session: %v", err)
			}
		}
		c.Set("FormSessionID", id)

		c.Next()
	}
}

// SessionID returns the id FormSession assigned to this request's browser.
func SessionID(c *gin.Context) string {
	id, _ := c.Get("FormSessionID")
	s, _ := id.(string)
	return s
}

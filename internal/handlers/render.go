package handlers

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and feeds pending flash notifications into every
// template. Reading flashes consumes them, hence the Save.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	successes := sess.Flashes("success")
	errors := sess.Flashes("error")
	if len(successes) > 0 || len(errors) > 0 {
		if err := sess.Save(); err != nil {
			log.Printf("failed to clear flashes: %v", err)
		}
	}
	data["FlashSuccesses"] = successes
	data["FlashErrors"] = errors

	c.HTML(status, tmpl, data)
}

package middleware

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const flashKey = "_flashes"

func init() {
	// The cookie store gob-encodes session values.
	gob.Register([]string{})
}

// Flash queues a one-shot message for the next rendered page.
func Flash(c *gin.Context, message string) {
	sess := sessions.Default(c)
	messages, _ := sess.Get(flashKey).([]string)
	sess.Set(flashKey, append(messages, message))
	sess.Save()
}

// TakeFlashes returns the queued messages and clears them.
func TakeFlashes(c *gin.Context) []string {
	sess := sessions.Default(c)
	messages, _ := sess.Get(flashKey).([]string)
	if len(messages) > 0 {
		sess.Delete(flashKey)
		sess.Save()
	}
	return messages
}

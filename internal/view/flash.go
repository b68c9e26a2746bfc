package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages shown above the next rendered page.
type FlashData struct {
	Error []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Error) == 0
}

// SetFlashError queues an error message for the next rendered page.
func SetFlashError(c echo.Context, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, flashKeyError)
	_ = sess.Save(c.Request(), c.Response())
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	sess, _ := session.Get(flashSessionName, c)

	// Flashes() clears what it returns.
	errorFlashes := sess.Flashes(flashKeyError)

	data := FlashData{Error: toStrings(errorFlashes)}
	if len(errorFlashes) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "kanael_flash"

// Flash stores a one-shot notice for the next rendered page.
// Level is one of success, info, warning, danger.
func Flash(c *gin.Context, level, message string) {
	c.SetCookie(flashCookie, level+"|"+message, 60, "/", "", false, true)
}

type notice struct {
	Level   string
	Message string
}

// popFlash reads and clears the pending notice, if any.
func popFlash(c *gin.Context) *notice {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	level, msg, ok := strings.Cut(raw, "|")
	if !ok {
		return &notice{Level: "info", Message: raw}
	}
	return &notice{Level: level, Message: msg}
}

// render wraps c.HTML, injecting any pending flash notice into the page data.
// A notice already present in data (set by a handler re-showing a form in the
// same response) takes precedence over the cookie.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		if n := popFlash(c); n != nil {
			data["Flash"] = n
		}
	}
	c.HTML(status, tmpl, data)
}

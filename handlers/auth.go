package handlers

import (
	"net/http"

	"kanael-cafe/config"
	"kanael-cafe/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginForm struct {
	Password string `form:"password" binding:"required"`
}

// LoginPage renders the admin login form.
func LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "admin_login.html", nil)
}

// Login checks the admin password and issues the signed session cookie.
func Login(c *gin.Context) {
	var req loginForm
	if err := c.ShouldBind(&req); err != nil {
		Flash(c, "danger", "Password is required.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword(config.AdminPasswordHash, []byte(req.Password)); err != nil {
		Flash(c, "danger", "Wrong password.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	token, err := middleware.GenerateAdminToken()
	if err != nil {
		Flash(c, "danger", "Could not start an admin session.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(middleware.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout clears the admin session.
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	Flash(c, "info", "Logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}

package handlers

import (
	"net/http"
	"strings"

	"kanael-cafe/config"
	"kanael-cafe/models"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page.
func Home(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

// Menu lists menu items, filtered by exact category match and/or a substring
// search over name and description.
func Menu(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("q")

	query := config.DB.Model(&models.MenuItem{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("(name LIKE ? OR description LIKE ?)", like, like)
	}

	var items []models.MenuItem
	query.Order("category, name").Find(&items)

	var categories []string
	config.DB.Model(&models.MenuItem{}).
		Where("category <> ''").
		Distinct().
		Order("category").
		Pluck("category", &categories)

	render(c, http.StatusOK, "menu.html", gin.H{
		"Items":            items,
		"Categories":       categories,
		"SelectedCategory": category,
		"Search":           search,
	})
}

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email"`
	Message string `form:"message" binding:"required"`
}

// ContactPage renders the contact form.
func ContactPage(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", nil)
}

// SubmitContact stores a contact message after checking the required fields.
func SubmitContact(c *gin.Context) {
	var req contactForm
	if err := c.ShouldBind(&req); err != nil {
		Flash(c, "danger", "Name and message are required.")
		c.Redirect(http.StatusSeeOther, "/contact")
		return
	}
	name := strings.TrimSpace(req.Name)
	body := strings.TrimSpace(req.Message)
	if name == "" || body == "" {
		Flash(c, "danger", "Name and message are required.")
		c.Redirect(http.StatusSeeOther, "/contact")
		return
	}

	msg := models.Message{
		Name:  name,
		Email: strings.TrimSpace(req.Email),
		Body:  body,
	}
	if err := config.DB.Create(&msg).Error; err != nil {
		Flash(c, "danger", "Could not save your message. Please try again.")
		c.Redirect(http.StatusSeeOther, "/contact")
		return
	}

	Flash(c, "success", "Thank you for contacting us. We'll get back to you soon.")
	c.Redirect(http.StatusSeeOther, "/contact")
}

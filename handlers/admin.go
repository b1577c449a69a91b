package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"kanael-cafe/config"
	"kanael-cafe/models"

	"github.com/gin-gonic/gin"
)

// Dashboard shows store counts for the admin landing page.
func Dashboard(c *gin.Context) {
	var menuCount, orderCount, messageCount int64
	config.DB.Model(&models.MenuItem{}).Count(&menuCount)
	config.DB.Model(&models.Order{}).Count(&orderCount)
	config.DB.Model(&models.Message{}).Count(&messageCount)

	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"MenuCount":    menuCount,
		"OrderCount":   orderCount,
		"MessageCount": messageCount,
	})
}

// AdminMenu lists the catalog for management.
func AdminMenu(c *gin.Context) {
	var items []models.MenuItem
	config.DB.Order("category, name").Find(&items)
	render(c, http.StatusOK, "admin_menu.html", gin.H{"Items": items})
}

type menuItemForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Category    string `form:"category"`
}

// AddMenuItem inserts a catalog item from the admin form. The name must be
// non-empty and the price must parse as a non-negative number; duplicate
// names are allowed.
func AddMenuItem(c *gin.Context) {
	var req menuItemForm
	if err := c.ShouldBind(&req); err != nil {
		Flash(c, "danger", "Name and valid price are required.")
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}

	name := strings.TrimSpace(req.Name)
	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price), 64)
	if name == "" || err != nil || price < 0 {
		Flash(c, "danger", "Name and valid price are required.")
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}

	item := models.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       price,
		Category:    strings.TrimSpace(req.Category),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		Flash(c, "danger", "Failed to add menu item.")
	} else {
		Flash(c, "success", "Menu item added.")
	}
	c.Redirect(http.StatusSeeOther, "/admin/menu")
}

// DeleteMenuItem removes a catalog item unconditionally. Placed orders keep
// their own name/price snapshots, and carts still holding the id drop it at
// pricing time.
func DeleteMenuItem(c *gin.Context) {
	if err := config.DB.Delete(&models.MenuItem{}, "id = ?", c.Param("id")).Error; err != nil {
		Flash(c, "danger", "Failed to delete menu item.")
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}
	Flash(c, "info", "Menu item deleted.")
	c.Redirect(http.StatusSeeOther, "/admin/menu")
}

// AdminOrders lists all orders newest-first with a running revenue total.
func AdminOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items").Order("created_at desc, id desc").Find(&orders)

	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	render(c, http.StatusOK, "admin_orders.html", gin.H{
		"Orders":  orders,
		"Count":   len(orders),
		"Revenue": revenue,
	})
}

// AdminMessages lists contact submissions newest-first.
func AdminMessages(c *gin.Context) {
	var messages []models.Message
	config.DB.Order("created_at desc, id desc").Find(&messages)
	render(c, http.StatusOK, "admin_messages.html", gin.H{"Messages": messages})
}

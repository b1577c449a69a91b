package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"kanael-cafe/cart"
	"kanael-cafe/config"
	"kanael-cafe/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type checkoutForm struct {
	Name    string `form:"name"`
	Phone   string `form:"phone"`
	Address string `form:"address"`
	Notes   string `form:"notes"`
}

// CheckoutPage shows the priced cart alongside the order form.
func CheckoutPage(c *gin.Context) {
	ct := currentCart(c)
	if len(ct) == 0 {
		Flash(c, "warning", "Your cart is empty. Please add some items first.")
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}
	lines, total := cart.Price(config.DB, ct)
	render(c, http.StatusOK, "checkout.html", checkoutData(lines, total, checkoutForm{}))
}

// retryCheckout re-shows the checkout form with an inline notice and no
// state change.
func retryCheckout(c *gin.Context, lines []cart.Line, total float64, req checkoutForm, msg string) {
	data := checkoutData(lines, total, req)
	data["Flash"] = &notice{Level: "danger", Message: msg}
	render(c, http.StatusOK, "checkout.html", data)
}

// checkoutData builds the template data for the checkout page, keeping any
// fields the customer already typed when the form is re-shown.
func checkoutData(lines []cart.Line, total float64, req checkoutForm) gin.H {
	return gin.H{
		"Lines":   lines,
		"Total":   total,
		"Name":    strings.TrimSpace(req.Name),
		"Phone":   strings.TrimSpace(req.Phone),
		"Address": strings.TrimSpace(req.Address),
		"Notes":   strings.TrimSpace(req.Notes),
	}
}

// PlaceOrder commits the cart into a durable order. Pricing is recomputed
// from the live catalog here, not taken from the page the customer saw, so
// any catalog change since the cart was built lands in the stored total.
// The order header and its item snapshots are written in one transaction.
func PlaceOrder(c *gin.Context) {
	ct := currentCart(c)
	lines, total := cart.Price(config.DB, ct)
	if len(lines) == 0 {
		Flash(c, "warning", "Your cart is empty. Please add some items first.")
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}

	var req checkoutForm
	if err := c.ShouldBind(&req); err != nil {
		retryCheckout(c, lines, total, req, "Name and phone are required.")
		return
	}
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		retryCheckout(c, lines, total, req, "Name and phone are required.")
		return
	}

	order := models.Order{
		CustomerName: name,
		Phone:        phone,
		Address:      strings.TrimSpace(req.Address),
		Notes:        strings.TrimSpace(req.Notes),
		Total:        total,
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ItemName: line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		retryCheckout(c, lines, total, req, "Could not place your order. Please try again.")
		return
	}

	saveCart(c, cart.Cart{})
	Flash(c, "success", "Thank you! Your order has been placed.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/confirm/%d", order.ID))
}

// Confirm shows a placed order with its line-item snapshot.
func Confirm(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		Flash(c, "danger", "Order not found.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	render(c, http.StatusOK, "confirm.html", gin.H{"Order": order})
}

package handlers

import (
	"net/http"

	"kanael-cafe/cart"
	"kanael-cafe/config"

	"github.com/gin-gonic/gin"
)

const cartCookie = "kanael_cart"

// currentCart reads the signed cart cookie. A missing or unreadable cookie
// is an empty cart.
func currentCart(c *gin.Context) cart.Cart {
	tokenStr, err := c.Cookie(cartCookie)
	if err != nil {
		return cart.Cart{}
	}
	return cart.FromToken(tokenStr, config.JWTSecret)
}

// saveCart re-signs the cart and writes it back to the client.
func saveCart(c *gin.Context, ct cart.Cart) {
	tokenStr, err := cart.Token(ct, config.JWTSecret)
	if err != nil {
		// Signing only fails on a broken secret; drop the cookie so the
		// client at least falls back to an empty cart.
		c.SetCookie(cartCookie, "", -1, "/", "", false, true)
		return
	}
	c.SetCookie(cartCookie, tokenStr, int(cart.TokenTTL.Seconds()), "/", "", false, true)
}

// AddToCart puts one unit of a menu item in the session cart and returns to
// the menu.
func AddToCart(c *gin.Context) {
	ct := currentCart(c)
	ct.Add(c.Param("id"))
	saveCart(c, ct)
	Flash(c, "success", "Item added to your order.")
	c.Redirect(http.StatusSeeOther, "/menu")
}

// ShowCart renders the cart priced against the current catalog.
func ShowCart(c *gin.Context) {
	ct := currentCart(c)
	lines, total := cart.Price(config.DB, ct)
	render(c, http.StatusOK, "cart.html", gin.H{"Lines": lines, "Total": total})
}

// UpdateCart applies quantity changes from the cart form, or empties the
// cart when the clear action is present. Clear wins over any quantity fields
// submitted alongside it.
func UpdateCart(c *gin.Context) {
	ct := currentCart(c)
	if _, clear := c.GetPostForm("clear"); clear {
		ct = cart.Cart{}
	} else {
		ct.SetQuantities(c.PostFormMap("qty"))
	}
	saveCart(c, ct)
	c.Redirect(http.StatusSeeOther, "/cart")
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/internal/storefront/session"
)

type Deps struct {
	Handler   *StorefrontHTTP
	Sessions  *session.Manager
	StaticDir string
}

// RequireLogin admits any authenticated principal, user or admin.
// Unauthenticated visitors are redirected to the user login form.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := session.FromContext(c)
		if sess == nil || !sess.LoggedIn() {
			return c.Redirect(http.StatusFound, "/user-login")
		}
		return next(c)
	}
}

// RequireAdmin admits only the admin principal; other visitors are sent
// to the admin login form.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := session.FromContext(c)
		if sess == nil || !sess.IsAdmin() {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

func Register(e *echo.Echo, d *Deps) {
	e.Use(d.Sessions.Middleware)
	e.Static("/images", d.StaticDir+"/images")
	e.Static("/css", d.StaticDir+"/css")
	e.Static("/js", d.StaticDir+"/js")

	h := d.Handler

	// Public surface: catalog, search and the login/registration forms.
	e.GET("/", h.Home)
	e.GET("/home", h.Home)
	e.GET("/search", h.Search)

	e.GET("/login", h.AdminLoginPage)
	e.POST("/authenticate", h.AuthenticateAdmin)
	e.GET("/logout", h.AdminLogout)
	e.POST("/logout", h.AdminLogout)

	e.GET("/register", h.RegisterPage)
	e.POST("/register", h.Register)
	e.GET("/user-login", h.UserLoginPage)
	e.POST("/user-authenticate", h.AuthenticateUser)
	e.GET("/user-logout", h.UserLogout)

	// Cart and checkout need some authenticated principal.
	e.POST("/cart/add", h.AddToCart, RequireLogin)
	e.POST("/cart/remove", h.RemoveFromCart, RequireLogin)
	e.GET("/cart", h.ViewCart, RequireLogin)
	e.POST("/cart/checkout", h.CartCheckout, RequireLogin)
	e.GET("/checkout", h.ShowCheckoutForm, RequireLogin)
	e.POST("/checkout", h.Checkout, RequireLogin)

	// Admin-only surface.
	e.GET("/laptops/new", h.NewLaptopForm, RequireAdmin)
	e.POST("/laptops", h.CreateLaptop, RequireAdmin)

	admin := e.Group("/admin/orders", RequireAdmin)
	admin.GET("", h.ListOrders)
	admin.GET("/:id", h.ViewOrder)
	admin.POST("/:id/delete", h.DeleteOrder)
}

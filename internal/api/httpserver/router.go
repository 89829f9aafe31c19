package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	Auth    *AuthHTTP
	Laptops *LaptopHTTP
}

// Register wires the REST surface. Static segments like /search and
// /stats/count are registered alongside /:id; echo resolves the static
// path first.
func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler

	auth := e.Group("/api/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/validate", d.Auth.ValidateToken)
	auth.POST("/logout", d.Auth.Logout)
	auth.GET("/user/:username", d.Auth.GetUser)
	auth.GET("/user/:userId/tokens", d.Auth.GetUserTokens)
	auth.GET("/health", d.Auth.Health)

	laptops := e.Group("/api/laptops")
	laptops.POST("", d.Laptops.CreateLaptop)
	laptops.GET("", d.Laptops.GetLaptops)
	laptops.GET("/:id", d.Laptops.GetLaptop)
	laptops.PUT("/:id", d.Laptops.UpdateLaptop)
	laptops.PATCH("/:id/stock", d.Laptops.UpdateLaptopStock)
	laptops.PATCH("/:id/price", d.Laptops.UpdateLaptopPrice)
	laptops.DELETE("/:id", d.Laptops.DeleteLaptop)
	laptops.DELETE("", d.Laptops.DeleteAllLaptops)

	laptops.GET("/brand/:brand", d.Laptops.GetLaptopsByBrand)
	laptops.GET("/model/:model", d.Laptops.GetLaptopsByModel)
	laptops.GET("/price/under/:price", d.Laptops.GetLaptopsUnderPrice)
	laptops.GET("/price/above/:price", d.Laptops.GetLaptopsAbovePrice)
	laptops.GET("/price/range", d.Laptops.GetLaptopsInPriceRange)
	laptops.GET("/search", d.Laptops.SearchLaptops)
	laptops.GET("/in-stock", d.Laptops.GetLaptopsInStock)
	laptops.GET("/out-of-stock", d.Laptops.GetLaptopsOutOfStock)

	laptops.GET("/stats/total-count", d.Laptops.GetTotalCount)
	laptops.GET("/stats/average-price", d.Laptops.GetAveragePrice)
	laptops.GET("/stats/most-expensive", d.Laptops.GetMostExpensive)
	laptops.GET("/stats/least-expensive", d.Laptops.GetLeastExpensive)

	laptops.GET("/health", d.Laptops.Health)
}

package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resort-backend/controllers"
	"resort-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the API surface.
func SetupRouter(
	dc *controllers.DraftController,
	cc *controllers.CartController,
	cat *controllers.CatalogController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		catalog := api.Group("/catalog")
		{
			catalog.GET("/rooms", cat.GetRoomOfferings)
			catalog.GET("/events", cat.GetEventOfferings)
			catalog.GET("/menu", cat.GetMenuItems)
		}

		api.POST("/pricing/event-estimate", cat.EstimateEvent)

		drafts := api.Group("/drafts")
		{
			drafts.POST("", dc.CreateDraft)
			drafts.GET("/:id", dc.GetDraft)
			drafts.PUT("/:id/stay", dc.SetStay)
			drafts.PUT("/:id/room", dc.SelectRoom)
			drafts.PUT("/:id/guest-count", dc.SetGuestCount)
			drafts.PUT("/:id/extra-bed", dc.SetExtraBed)
			drafts.PUT("/:id/contact", dc.SetContact)
			drafts.PUT("/:id/roster/:index", dc.UpdateRosterEntry)
			drafts.POST("/:id/advance", dc.Advance)
			drafts.POST("/:id/retreat", dc.Retreat)
			drafts.GET("/:id/quote", dc.Quote)
			drafts.POST("/:id/confirm", dc.Confirm)
			drafts.DELETE("/:id", dc.Abandon)
		}

		carts := api.Group("/carts")
		{
			carts.POST("", cc.CreateCart)
			carts.GET("/:id", cc.GetCart)
			carts.POST("/:id/items", cc.AddItem)
			carts.PUT("/:id/items/:itemId", cc.SetQuantity)
			carts.DELETE("/:id/items/:itemId", cc.RemoveItem)
			carts.DELETE("/:id", cc.DiscardCart)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:reference", bc.GetBookingByReference)
			bookings.GET("/:reference/payments", bc.GetBookingPayments)
			bookings.POST("/:reference/payments", bc.Pay)
		}
	}

	return r
}

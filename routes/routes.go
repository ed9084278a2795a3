package routes

import (
	"foodhub/configs"
	"foodhub/controllers"
	"foodhub/entity"
	"foodhub/middlewares"
	"foodhub/repository"
	"foodhub/services"
	"foodhub/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	cartSvc := services.NewCartService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, userRepo, loyaltyRepo, notifRepo, cartSvc, cfg.TaxRate)
	restSvc := services.NewRestaurantService(restRepo, menuRepo)
	menuSvc := services.NewMenuService(db, menuRepo, restRepo)
	loyaltySvc := services.NewLoyaltyService(db, loyaltyRepo)
	favSvc := services.NewFavoriteService(favRepo, restRepo, menuRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, restRepo, userRepo)
	notifSvc := services.NewNotificationService(notifRepo)

	// Tracking hub — push สถานะออเดอร์แบบ realtime
	hub := ws.NewTrackingHub()
	orderSvc.Publisher = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	restCtrl := controllers.NewRestaurantController(restSvc, reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cfg)
	ownerCtrl := controllers.NewOwnerController(restSvc, menuSvc)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc)
	driverCtrl := controllers.NewDriverController(orderSvc)
	loyaltyCtrl := controllers.NewLoyaltyController(loyaltySvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)

	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public browse
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/search", restCtrl.Search)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)
	r.GET("/restaurants/:id/reviews", restCtrl.Reviews)

	// Cart (customer)
	cart := r.Group("/cart", auth(entity.RoleCustomer))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	orders := r.Group("/orders", auth(entity.RoleCustomer))
	{
		orders.POST("", orderCtrl.Checkout)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.GET("/:id/qr", orderCtrl.TrackingQR)
	}

	// Loyalty (customer)
	loyalty := r.Group("/loyalty", auth(entity.RoleCustomer))
	{
		loyalty.GET("", loyaltyCtrl.Points)
		loyalty.GET("/history", loyaltyCtrl.History)
		loyalty.POST("/redeem", loyaltyCtrl.Redeem)
	}

	// Favorites (customer)
	fav := r.Group("/favorites", auth(entity.RoleCustomer))
	{
		fav.GET("", favCtrl.List)
		fav.POST("/toggle", favCtrl.Toggle)
	}

	// Reviews (customer)
	r.POST("/reviews", auth(entity.RoleCustomer), reviewCtrl.Create)

	// Notifications (ทุก role)
	notif := r.Group("/notifications", auth())
	{
		notif.GET("", notifCtrl.List)
		notif.PATCH("/read-all", notifCtrl.MarkAllRead)
		notif.PATCH("/:id/read", notifCtrl.MarkRead)
	}

	// Partner Restaurant (owner)
	partnerRest := r.Group("/partner/restaurant", auth(entity.RoleRestaurant))
	{
		partnerRest.GET("", ownerCtrl.MyRestaurant)
		partnerRest.POST("", ownerCtrl.CreateRestaurant)
		partnerRest.PATCH("/:id", ownerCtrl.UpdateRestaurant)
		partnerRest.GET("/:id/menu", ownerCtrl.Menus)
		partnerRest.POST("/:id/menu", ownerCtrl.CreateMenu)
		partnerRest.GET("/:id/orders", ownerOrderCtrl.Orders)
		partnerRest.GET("/:id/orders/:orderId", ownerOrderCtrl.Detail)
	}
	partnerMenu := r.Group("/partner/menu", auth(entity.RoleRestaurant))
	{
		partnerMenu.PATCH("/:id", ownerCtrl.UpdateMenu)
		partnerMenu.DELETE("/:id", ownerCtrl.DeleteMenu)
	}
	partnerOrders := r.Group("/partner/orders", auth(entity.RoleRestaurant))
	{
		partnerOrders.PATCH("/:orderId/confirm", ownerOrderCtrl.Confirm)
		partnerOrders.PATCH("/:orderId/cancel", ownerOrderCtrl.Cancel)
		partnerOrders.PATCH("/:orderId/preparing", ownerOrderCtrl.StartPreparing)
		partnerOrders.PATCH("/:orderId/ready", ownerOrderCtrl.MarkReady)
		partnerOrders.PATCH("/:orderId/handoff", ownerOrderCtrl.Handoff)
	}

	// Partner Driver
	partnerDriver := r.Group("/partner/driver", auth(entity.RoleDriver))
	{
		partnerDriver.GET("/jobs", driverCtrl.Jobs)
		partnerDriver.GET("/deliveries", driverCtrl.MyDeliveries)
		partnerDriver.PATCH("/jobs/:orderId/accept", driverCtrl.Accept)
		partnerDriver.PATCH("/jobs/:orderId/location", driverCtrl.UpdateLocation)
		partnerDriver.PATCH("/jobs/:orderId/complete", driverCtrl.Complete)
	}

	// Live tracking (browser เปิด ws ใส่ header ไม่ได้ → รับ ?token= ด้วย)
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWS)
}

package httpt

func (h *Handler) setupRoutes() {
	h.router.GET("/health", h.healthHandler)
	h.router.GET("/health/detailed", h.detailedHealthHandler)
	h.router.GET("/", h.rootHandler)

	api := h.router.Group("/api")
	api.Use(h.limiter.Global())
	{
		api.GET("", h.apiInfoHandler)

		orders := api.Group("/orders")
		{
			orders.GET("", h.listOrdersHandler)
			orders.GET("/:orderId", h.getOrderHandler)
			orders.POST("/checkout", h.limiter.Checkout(), h.checkoutHandler)
		}

		api.GET("/products", h.productsHandler)

		api.POST("/newsletter/subscribe", h.limiter.Newsletter(), h.subscribeHandler)

		api.POST("/test/email", h.testEmailHandler)
	}

	h.router.NoRoute(h.notFoundHandler)
}

package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Leases(r *gin.RouterGroup, lc *controller.LeaseController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/leases")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cachePage, lc.GetLeases)
		v1.POST("", lc.CreateLease)
		v1.GET("/:leaseId", cachePage, lc.GetLeaseById)
		v1.PUT("/:leaseId", lc.UpdateLease)
		v1.PATCH("/:leaseId/status", lc.UpdateLeaseStatus)
		v1.DELETE("/:leaseId", lc.DeleteLease)
		v1.GET("/:leaseId/payments", cachePage, lc.GetPaymentsByLease)
		v1.POST("/:leaseId/payments", lc.RecordPayment)
	}
}

func V1_Payments(r *gin.RouterGroup, lc *controller.LeaseController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/payments")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.PATCH("/:paymentId/status", lc.UpdatePaymentStatus)
	}
}

package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Documents(r *gin.RouterGroup, dc *controller.DocumentController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/documents")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cachePage, dc.GetDocuments)
		v1.POST("", dc.CreateDocument)
		v1.GET("/:documentId", cachePage, dc.GetDocumentById)
		v1.PUT("/:documentId", dc.UpdateDocument)
		v1.DELETE("/:documentId", dc.DeleteDocument)
	}
}

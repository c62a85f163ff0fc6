package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/metrics"
	"github.com/gin-gonic/gin"
)

func Index(r *gin.Engine, ic *controller.IndexController) {
	r.GET("/", ic.Index)
	r.GET("/healthz", ic.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "Welcome to the " + util.GetAppName() + " api",
	})
}

// Healthz pings the database, and MinIO when it is configured
func (ic IndexController) Healthz(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	sqlDB, err := ic.app.Repository.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(pingCtx)
	}
	if err != nil {
		ic.app.Logger.Errorf("Health check failed, database: %v", err)
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "Database unavailable", nil, nil)
		return
	}

	storage := "disabled"
	if ic.app.S3 != nil {
		storage = "up"
		if _, err := ic.app.S3.BucketExists(pingCtx, ic.app.Config.Minio.BUCKET); err != nil {
			ic.app.Logger.Warnf("Health check, object storage: %v", err)
			storage = "down"
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"database": "up",
		"storage":  storage,
	})
}

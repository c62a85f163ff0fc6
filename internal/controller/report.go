package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	*baseController
}

func (rc ReportController) GetFinancialReports(ctx *gin.Context) {
	report, err := rc.app.Service.Report.GetFinancialReports(ctx, rc.requestContext(ctx))
	rc.respond(ctx, "report", report, err)
}

func (rc ReportController) GetPropertiesReport(ctx *gin.Context) {
	report, err := rc.app.Service.Report.GetPropertiesReport(ctx, rc.requestContext(ctx))
	rc.respond(ctx, "report", report, err)
}

func (rc ReportController) GetDashboardStats(ctx *gin.Context) {
	stats, err := rc.app.Service.Report.GetDashboardStats(ctx, rc.requestContext(ctx))
	rc.respond(ctx, "stats", stats, err)
}

// Streams the financial report as an xlsx download
func (rc ReportController) ExportFinancialReport(ctx *gin.Context) {
	exported, err := rc.app.Service.Report.ExportFinancialReport(ctx, rc.requestContext(ctx))
	if err != nil {
		rc.respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exported.FileName))
	ctx.Data(http.StatusOK, exported.ContentType, exported.Data)
}

func (rc ReportController) ArchiveFinancialReport(ctx *gin.Context) {
	archived, err := rc.app.Service.Report.ArchiveFinancialReport(ctx, rc.requestContext(ctx))
	rc.respond(ctx, "archive", archived, err)
}

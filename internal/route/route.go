package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Register mounts every v1 group under rApi. cachePage is applied to list and detail pages only.
func Register(rApi *gin.RouterGroup, c *controller.Controller, m *middleware.Middleware, cachePage gin.HandlerFunc) {
	V1_Properties(rApi, c.Property, c.Unit, m, cachePage)
	V1_Units(rApi, c.Unit, m)
	V1_Tenants(rApi, c.Tenant, m, cachePage)
	V1_Leases(rApi, c.Lease, m, cachePage)
	V1_Payments(rApi, c.Lease, m)
	V1_PropertyTaxes(rApi, c.Expense, m, cachePage)
	V1_Utilities(rApi, c.Expense, m, cachePage)
	V1_MaintenanceRequests(rApi, c.Maintenance, m, cachePage)
	V1_Documents(rApi, c.Document, m, cachePage)
	V1_Projects(rApi, c.Project, m, cachePage)
	V1_Tasks(rApi, c.Task, m, cachePage)
	V1_Notifications(rApi, c.Notification, m)
	V1_AuditLogs(rApi, c.AuditLog, m)
	V1_Reports(rApi, c.Report, m)
}

package controller

import (
	"errors"
	"net/http"

	appcontext "github.com/SeakMengs/PropDesk/internal/app_context"
	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index        *IndexController
	Property     *PropertyController
	Unit         *UnitController
	Tenant       *TenantController
	Lease        *LeaseController
	Expense      *ExpenseController
	Maintenance  *MaintenanceController
	Document     *DocumentController
	Project      *ProjectController
	Task         *TaskController
	Notification *NotificationController
	AuditLog     *AuditLogController
	Report       *ReportController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:        &IndexController{baseController: bc},
		Property:     &PropertyController{baseController: bc},
		Unit:         &UnitController{baseController: bc},
		Tenant:       &TenantController{baseController: bc},
		Lease:        &LeaseController{baseController: bc},
		Expense:      &ExpenseController{baseController: bc},
		Maintenance:  &MaintenanceController{baseController: bc},
		Document:     &DocumentController{baseController: bc},
		Project:      &ProjectController{baseController: bc},
		Task:         &TaskController{baseController: bc},
		Notification: &NotificationController{baseController: bc},
		AuditLog:     &AuditLogController{baseController: bc},
		Report:       &ReportController{baseController: bc},
	}
}

type PageRequest struct {
	Page     uint `json:"page" form:"page" binding:"omitempty"`
	PageSize uint `json:"pageSize" form:"pageSize" binding:"omitempty"`
}

// Nil when the request did not pass the auth middleware, the services reject that
func (b *baseController) requestContext(ctx *gin.Context) *auth.RequestContext {
	return auth.GetRequestContext(ctx)
}

func (b *baseController) bind(ctx *gin.Context, body any) bool {
	if err := ctx.ShouldBind(body); err != nil {
		b.app.Logger.Debugf("Failed to bind request body: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return false
	}
	return true
}

func (b *baseController) bindQuery(ctx *gin.Context, params ...any) bool {
	for _, p := range params {
		if err := ctx.ShouldBindQuery(p); err != nil {
			b.app.Logger.Debugf("Failed to bind query: %v", err)
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
			return false
		}
	}
	return true
}

// Maps a service error onto a status code. The message is already safe to show.
func (b *baseController) respondError(ctx *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", nil, nil)
	case errors.As(err, &ve):
		util.ResponseFailed(ctx, http.StatusBadRequest, ve.Message, ve.Fields, nil)
	case errors.Is(err, service.ErrNotFound):
		util.ResponseFailed(ctx, http.StatusNotFound, err.Error(), nil, nil)
	default:
		util.ResponseFailed(ctx, http.StatusInternalServerError, err.Error(), nil, nil)
	}
}

func (b *baseController) respond(ctx *gin.Context, key string, data any, err error) {
	if err != nil {
		b.respondError(ctx, err)
		return
	}
	util.ResponseSuccess(ctx, gin.H{key: data})
}

func respondPage[T any](b *baseController, ctx *gin.Context, key string, page service.Page[T], err error) {
	if err != nil {
		b.respondError(ctx, err)
		return
	}
	util.ResponseSuccess(ctx, gin.H{
		key:         page.Items,
		"total":     page.Total,
		"page":      page.Page,
		"pageSize":  page.PageSize,
		"totalPage": page.TotalPage,
	})
}

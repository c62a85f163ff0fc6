package controller

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-gonic/gin"
)

type TenantController struct {
	*baseController
}

// Larger uploads are rejected before parsing
const maxTenantImportSize = 5 << 20

var ErrImportFileRequired = errors.New("csv file is required")

func (tc TenantController) CreateTenant(ctx *gin.Context) {
	var body service.TenantInput
	if !tc.bind(ctx, &body) {
		return
	}

	tenant, err := tc.app.Service.Tenant.CreateTenant(ctx, tc.requestContext(ctx), body)
	tc.respond(ctx, "tenant", tenant, err)
}

func (tc TenantController) UpdateTenant(ctx *gin.Context) {
	var body service.TenantInput
	if !tc.bind(ctx, &body) {
		return
	}

	tenant, err := tc.app.Service.Tenant.UpdateTenant(ctx, tc.requestContext(ctx), ctx.Params.ByName("tenantId"), body)
	tc.respond(ctx, "tenant", tenant, err)
}

func (tc TenantController) DeleteTenant(ctx *gin.Context) {
	tenant, err := tc.app.Service.Tenant.DeleteTenant(ctx, tc.requestContext(ctx), ctx.Params.ByName("tenantId"))
	tc.respond(ctx, "tenant", tenant, err)
}

func (tc TenantController) BulkDeleteTenants(ctx *gin.Context) {
	var body service.BulkDeleteInput
	if !tc.bind(ctx, &body) {
		return
	}

	result, err := tc.app.Service.Tenant.BulkDeleteTenants(ctx, tc.requestContext(ctx), body)
	tc.respond(ctx, "result", result, err)
}

func (tc TenantController) GetTenants(ctx *gin.Context) {
	var page PageRequest
	var filter service.TenantFilter
	if !tc.bindQuery(ctx, &page, &filter) {
		return
	}

	tenants, err := tc.app.Service.Tenant.GetTenants(ctx, tc.requestContext(ctx), filter, page.Page, page.PageSize)
	respondPage(tc.baseController, ctx, "tenants", tenants, err)
}

func (tc TenantController) GetTenantById(ctx *gin.Context) {
	tenant, err := tc.app.Service.Tenant.GetTenantByID(ctx, tc.requestContext(ctx), ctx.Params.ByName("tenantId"))
	tc.respond(ctx, "tenant", tenant, err)
}

// Accepts the csv as a multipart "file" field or as the raw request body
func (tc TenantController) ImportTenants(ctx *gin.Context) {
	data, err := tc.readImportFile(ctx)
	if err != nil {
		tc.app.Logger.Debugf("Failed to read tenant import: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid import file", util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	result, err := tc.app.Service.Tenant.ImportTenantsFromCSV(ctx, tc.requestContext(ctx), data)
	tc.respond(ctx, "result", result, err)
}

func (tc TenantController) readImportFile(ctx *gin.Context) (string, error) {
	var src io.Reader

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		fh, err := ctx.FormFile("file")
		if err != nil {
			return "", ErrImportFileRequired
		}
		if fh.Size > maxTenantImportSize {
			return "", errors.New("csv file is too large")
		}

		file, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()
		src = file
	} else {
		src = ctx.Request.Body
	}

	b, err := io.ReadAll(io.LimitReader(src, maxTenantImportSize+1))
	if err != nil {
		return "", err
	}
	if len(b) > maxTenantImportSize {
		return "", errors.New("csv file is too large")
	}
	return string(b), nil
}

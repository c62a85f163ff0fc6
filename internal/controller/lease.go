package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

type LeaseController struct {
	*baseController
}

func (lc LeaseController) CreateLease(ctx *gin.Context) {
	var body service.LeaseInput
	if !lc.bind(ctx, &body) {
		return
	}

	lease, err := lc.app.Service.Lease.CreateLease(ctx, lc.requestContext(ctx), body)
	lc.respond(ctx, "lease", lease, err)
}

func (lc LeaseController) UpdateLease(ctx *gin.Context) {
	var body service.LeaseInput
	if !lc.bind(ctx, &body) {
		return
	}

	lease, err := lc.app.Service.Lease.UpdateLease(ctx, lc.requestContext(ctx), ctx.Params.ByName("leaseId"), body)
	lc.respond(ctx, "lease", lease, err)
}

func (lc LeaseController) UpdateLeaseStatus(ctx *gin.Context) {
	var body service.LeaseStatusInput
	if !lc.bind(ctx, &body) {
		return
	}

	lease, err := lc.app.Service.Lease.UpdateLeaseStatus(ctx, lc.requestContext(ctx), ctx.Params.ByName("leaseId"), body)
	lc.respond(ctx, "lease", lease, err)
}

func (lc LeaseController) DeleteLease(ctx *gin.Context) {
	lease, err := lc.app.Service.Lease.DeleteLease(ctx, lc.requestContext(ctx), ctx.Params.ByName("leaseId"))
	lc.respond(ctx, "lease", lease, err)
}

func (lc LeaseController) GetLeases(ctx *gin.Context) {
	var page PageRequest
	var filter service.LeaseFilter
	if !lc.bindQuery(ctx, &page, &filter) {
		return
	}

	leases, err := lc.app.Service.Lease.GetLeases(ctx, lc.requestContext(ctx), filter, page.Page, page.PageSize)
	respondPage(lc.baseController, ctx, "leases", leases, err)
}

func (lc LeaseController) GetLeaseById(ctx *gin.Context) {
	lease, err := lc.app.Service.Lease.GetLeaseByID(ctx, lc.requestContext(ctx), ctx.Params.ByName("leaseId"))
	lc.respond(ctx, "lease", lease, err)
}

func (lc LeaseController) RecordPayment(ctx *gin.Context) {
	var body service.PaymentInput
	if !lc.bind(ctx, &body) {
		return
	}

	payment, err := lc.app.Service.Lease.RecordPayment(ctx, lc.requestContext(ctx), ctx.Params.ByName("leaseId"), body)
	lc.respond(ctx, "payment", payment, err)
}

func (lc LeaseController) UpdatePaymentStatus(ctx *gin.Context) {
	var body service.PaymentStatusInput
	if !lc.bind(ctx, &body) {
		return
	}

	payment, err := lc.app.Service.Lease.UpdatePaymentStatus(ctx, lc.requestContext(ctx), ctx.Params.ByName("paymentId"), body)
	lc.respond(ctx, "payment", payment, err)
}

func (lc LeaseController) GetPaymentsByLease(ctx *gin.Context) {
	payments, err := lc.app.Service.Lease.GetPaymentsByLease(ctx, lc.requestContext(ctx), ctx.Params.ByName("leaseId"))
	lc.respond(ctx, "payments", payments, err)
}

package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	*baseController
}

func (dc DocumentController) CreateDocument(ctx *gin.Context) {
	var body service.DocumentInput
	if !dc.bind(ctx, &body) {
		return
	}

	document, err := dc.app.Service.Document.CreateDocument(ctx, dc.requestContext(ctx), body)
	dc.respond(ctx, "document", document, err)
}

func (dc DocumentController) UpdateDocument(ctx *gin.Context) {
	var body service.DocumentInput
	if !dc.bind(ctx, &body) {
		return
	}

	document, err := dc.app.Service.Document.UpdateDocument(ctx, dc.requestContext(ctx), ctx.Params.ByName("documentId"), body)
	dc.respond(ctx, "document", document, err)
}

func (dc DocumentController) DeleteDocument(ctx *gin.Context) {
	document, err := dc.app.Service.Document.DeleteDocument(ctx, dc.requestContext(ctx), ctx.Params.ByName("documentId"))
	dc.respond(ctx, "document", document, err)
}

func (dc DocumentController) GetDocuments(ctx *gin.Context) {
	var filter service.DocumentFilter
	if !dc.bindQuery(ctx, &filter) {
		return
	}

	documents, err := dc.app.Service.Document.GetDocuments(ctx, dc.requestContext(ctx), filter)
	dc.respond(ctx, "documents", documents, err)
}

func (dc DocumentController) GetDocumentById(ctx *gin.Context) {
	document, err := dc.app.Service.Document.GetDocumentByID(ctx, dc.requestContext(ctx), ctx.Params.ByName("documentId"))
	dc.respond(ctx, "document", document, err)
}

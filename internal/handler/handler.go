// Package handler exposes the export service over HTTP.
package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"will-engine/internal/export"
	"will-engine/internal/model"
	"will-engine/internal/template"
)

type Handler struct {
	service *export.Service
}

func New(service *export.Service) *Handler {
	return &Handler{service: service}
}

// Route dispatches by path. fasthttp has no mux; two endpoints do not
// need one.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/export":
		h.Export(ctx)
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString(`{"status":"ok"}`)
		ctx.SetContentType("application/json")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (h *Handler) Export(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	started := time.Now()
	exportID := uuid.New().String()

	var req model.ExportRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		log.Printf("export %s: bad request body: %v", exportID, err)
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.service.Export(req.Will, req.Options)
	if err != nil {
		var nfe *template.NotFoundError
		var ufe *export.UnsupportedFormatError
		switch {
		case errors.As(err, &nfe), errors.As(err, &ufe):
			log.Printf("export %s tenant=%s: rejected: %v", exportID, req.TenantID, err)
			writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("export %s tenant=%s: failed: %v", exportID, req.TenantID, err)
			writeError(ctx, fasthttp.StatusInternalServerError, "export failed")
		}
		return
	}

	completed := time.Now()
	resp := model.ExportResponse{
		ExportMetadata: model.ExportMetadata{
			ExportID:          exportID,
			TenantID:          req.TenantID,
			ExportStartedAt:   started.UTC().Format(time.RFC3339Nano),
			ExportCompletedAt: completed.UTC().Format(time.RFC3339Nano),
			ExportDurationMs:  completed.Sub(started).Milliseconds(),
			ExportOutcome:     model.OutcomeSuccess,
		},
		ExportResult: model.ExportResult{
			Filename:  doc.Filename,
			MediaType: doc.MediaType,
			SizeBytes: len(doc.Content),
			Content:   base64.StdEncoding.EncodeToString(doc.Content),
		},
	}

	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("export %s: marshal response: %v", exportID, err)
		writeError(ctx, fasthttp.StatusInternalServerError, "export failed")
		return
	}

	log.Printf("export %s tenant=%s: %s (%d bytes, %dms)",
		exportID, req.TenantID, doc.Filename, len(doc.Content), resp.ExportMetadata.ExportDurationMs)

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: msg})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

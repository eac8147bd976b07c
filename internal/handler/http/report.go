package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/config"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
	"github.com/shramsetu/rozgar-backend-go/internal/handler/http/response"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/document"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/storage"
)

type ReportHandler interface {
	MusterRollExcel(w http.ResponseWriter, r *http.Request)
	MusterRollPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	fileStorage   storage.FileStorage
	reportConfig  config.ReportConfig
}

func NewReportHandler(reportService report.ReportService, fileStorage storage.FileStorage, reportConfig config.ReportConfig) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		fileStorage:   fileStorage,
		reportConfig:  reportConfig,
	}
}

// MusterRollExcel implements ReportHandler.
func (h *reportHandlerImpl) MusterRollExcel(w http.ResponseWriter, r *http.Request) {
	data, err := h.buildData(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := document.WriteMusterRollExcel(data, &buf); err != nil {
		slog.Error("Failed to render muster roll spreadsheet", "error", err)
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	filename := data.Filename("xlsx")
	h.archive(r, filename, buf.Bytes(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	response.Attachment(w, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// MusterRollPDF implements ReportHandler.
func (h *reportHandlerImpl) MusterRollPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.buildData(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writer := document.NewPDFWriter(data)
	document.RenderMusterRoll(data, writer, h.reportConfig.SignatureAssetPath)

	var buf bytes.Buffer
	if err := writer.Save(&buf); err != nil {
		slog.Error("Failed to render muster roll pdf", "error", err)
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	filename := data.Filename("pdf")
	h.archive(r, filename, buf.Bytes(), "application/pdf")
	response.Attachment(w, filename, "application/pdf", buf.Bytes())
}

func (h *reportHandlerImpl) buildData(r *http.Request) (report.MusterRollData, error) {
	req := report.MusterRollRequest{
		ProjectID: chi.URLParam(r, "projectID"),
		Date:      r.URL.Query().Get("date"),
		Search:    r.URL.Query().Get("search"),
	}
	return h.reportService.BuildMusterRoll(r.Context(), req)
}

// archive keeps a copy of the export in storage. Failures are logged, not
// surfaced, so archival never blocks the download.
func (h *reportHandlerImpl) archive(r *http.Request, filename string, content []byte, contentType string) {
	path := fmt.Sprintf("muster-rolls/%s", filename)
	if _, err := h.fileStorage.Upload(r.Context(), bytes.NewReader(content), path, contentType); err != nil {
		slog.Error("Failed to archive muster roll export", "path", path, "error", err)
	}
}

package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"github.com/stockflow/backend/pkg/auth"
	"github.com/stockflow/backend/pkg/errhttp"
	"github.com/stockflow/backend/pkg/httpx"
	appsvcs "github.com/stockflow/backend/services/report/application/services"
	reportworkflows "github.com/stockflow/backend/services/report/workflows"
)

// EfficiencyReportHandler handles POST /reports/efficiency requests.
type EfficiencyReportHandler struct {
	svc *appsvcs.Services
}

// NewEfficiencyReportHandler returns an EfficiencyReportHandler backed by the given services.
func NewEfficiencyReportHandler(svc *appsvcs.Services) *EfficiencyReportHandler {
	return &EfficiencyReportHandler{svc: svc}
}

// Execute generates the Markdown efficiency report. Runs as a Temporal
// workflow when a cluster is configured, in-process otherwise.
//
//	@Summary		Efficiency report
//	@Description	Generates a Markdown inventory optimization report for the authenticated user
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	EfficiencyReportResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/reports/efficiency [post]
func (h *EfficiencyReportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	report, err := h.generate(r, userID)
	if err != nil {
		// Serve the last cached report when regeneration fails.
		if cached, cacheErr := h.svc.Cache.Get(r.Context(), userID); cacheErr == nil {
			httpx.JSON(w, http.StatusOK, EfficiencyReportResponse{Report: cached})
			return
		}
		errhttp.WriteError(w, err)
		return
	}

	_ = h.svc.Cache.Set(r.Context(), userID, report) // best-effort; a miss just means regeneration next time

	httpx.JSON(w, http.StatusOK, EfficiencyReportResponse{Report: report})
}

func (h *EfficiencyReportHandler) generate(r *http.Request, userID uuid.UUID) (string, error) {
	if h.svc.Temporal == nil {
		return h.svc.Report.Efficiency(r.Context(), userID)
	}

	run, err := h.svc.Temporal.Client.ExecuteWorkflow(r.Context(), client.StartWorkflowOptions{
		ID:        "efficiency-report-" + userID.String(),
		TaskQueue: reportworkflows.TaskQueue,
	}, reportworkflows.EfficiencyReportWorkflowName, reportworkflows.EfficiencyReportInput{UserID: userID})
	if err != nil {
		return "", err
	}

	var report string
	if err := run.Get(r.Context(), &report); err != nil {
		return "", err
	}
	return report, nil
}

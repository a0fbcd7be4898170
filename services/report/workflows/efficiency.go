// Package workflows runs report generation on Temporal when a cluster is
// configured. The HTTP handler falls back to in-process generation when the
// Temporal client is absent, so the workflow path is an operational upgrade,
// not a hard dependency.
package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	invrepos "github.com/stockflow/backend/services/inventory/domain/repositories"
	domainsvcs "github.com/stockflow/backend/services/report/domain/services"
)

// TaskQueue is the Temporal task queue for report workflows.
const TaskQueue = "stockflow-reports"

// EfficiencyReportWorkflowName identifies the workflow for client starts.
const EfficiencyReportWorkflowName = "EfficiencyReportWorkflow"

// EfficiencyReportInput is the workflow argument.
type EfficiencyReportInput struct {
	UserID uuid.UUID
}

// EfficiencyReportWorkflow generates the Markdown efficiency report for one
// tenant via a single activity with bounded retries.
func EfficiencyReportWorkflow(ctx workflow.Context, in EfficiencyReportInput) (string, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})

	var report string
	err := workflow.ExecuteActivity(ctx, (*Activities)(nil).GenerateEfficiencyReport, in).Get(ctx, &report)
	if err != nil {
		return "", fmt.Errorf("generate efficiency report: %w", err)
	}
	return report, nil
}

// Activities holds the dependencies of report activities.
type Activities struct {
	Products invrepos.ProductRepository
}

// NewActivities returns report activities reading from the given repository.
func NewActivities(products invrepos.ProductRepository) *Activities {
	return &Activities{Products: products}
}

// GenerateEfficiencyReport loads the tenant's inventory and renders the report.
func (a *Activities) GenerateEfficiencyReport(ctx context.Context, in EfficiencyReportInput) (string, error) {
	products, err := a.Products.FindByUserID(ctx, in.UserID)
	if err != nil {
		return "", fmt.Errorf("list products: %w", err)
	}
	return domainsvcs.RenderEfficiencyReport(products, time.Now().UTC()), nil
}

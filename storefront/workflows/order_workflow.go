package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"sport-store/storefront/activities"
	"sport-store/storefront/pipeline"
	"sport-store/storefront/types"
)

// StatusQuery is the query type answered with types.OrderWorkflowStatus
const StatusQuery = "get-status"

// OrderStages are the activities run for every order, in order
var OrderStages = []string{
	pipeline.StageValidateStock,
	pipeline.StageProcessPayment,
	pipeline.StageFulfillOrder,
}

// OrderWorkflow runs an order through stock validation, payment and
// fulfillment, one activity per stage, and records it once every stage passed.
// A halted stage ends the workflow successfully with Passed == false.
func OrderWorkflow(ctx workflow.Context, snapshot types.OrderSnapshot) (types.OrderResult, error) {
	logger := workflow.GetLogger(ctx)

	if snapshot.Status == "" {
		snapshot.Status = types.StatusPending
	}
	status := types.OrderWorkflowStatus{
		OrderID: snapshot.OrderID,
		Stage:   "start",
		Status:  snapshot.Status,
	}

	retryPolicy := &temporal.RetryPolicy{
		InitialInterval:        1 * time.Second,
		BackoffCoefficient:     2.0,
		MaximumInterval:        30 * time.Second,
		MaximumAttempts:        5,
		NonRetryableErrorTypes: []string{"PermanentError", "ValidationError"},
	}

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy:         retryPolicy,
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	err := workflow.SetQueryHandler(ctx, StatusQuery, func() (types.OrderWorkflowStatus, error) {
		return status, nil
	})
	if err != nil {
		return types.OrderResult{}, err
	}

	logger.Info("Order workflow started", "orderID", snapshot.OrderID, "equipmentID", snapshot.EquipmentID, "quantity", snapshot.Quantity)

	for _, stage := range OrderStages {
		status.Stage = stage
		var res types.StageResult
		if err := workflow.ExecuteActivity(ctx, stage, snapshot).Get(ctx, &res); err != nil {
			status.LastError = fmt.Sprintf("%s failed: %v", stage, err)
			logger.Error("Stage failed", "stage", stage, "orderID", snapshot.OrderID, "error", err)
			return types.OrderResult{}, err
		}
		snapshot.Status = res.Status
		status.Status = res.Status
		if !res.Passed {
			status.Stage = "halted"
			logger.Warn("Order processing halted", "stage", stage, "orderID", snapshot.OrderID, "status", res.Status)
			return types.OrderResult{
				OrderID:  snapshot.OrderID,
				Passed:   false,
				Status:   res.Status,
				HaltedAt: stage,
			}, nil
		}
		status.Completed = append(status.Completed, stage)
	}

	status.Stage = "record"
	if err := workflow.ExecuteActivity(ctx, activities.RecordOrderActivity, snapshot).Get(ctx, nil); err != nil {
		status.LastError = fmt.Sprintf("record failed: %v", err)
		logger.Error("Record failed", "orderID", snapshot.OrderID, "error", err)
		return types.OrderResult{}, err
	}
	status.Recorded = true

	status.Stage = "completed"
	logger.Info("Workflow completed", "orderID", snapshot.OrderID, "status", snapshot.Status)
	return types.OrderResult{OrderID: snapshot.OrderID, Passed: true, Status: snapshot.Status}, nil
}

package workflows

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"

	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// Checkout places orders by running OrderWorkflow on Temporal and waiting
// for its result
type Checkout struct {
	client    client.Client
	taskQueue string
}

func NewCheckout(c client.Client, taskQueue string) *Checkout {
	return &Checkout{client: c, taskQueue: taskQueue}
}

// WorkflowID is the id OrderWorkflow runs under for an order
func WorkflowID(orderID string) string {
	return "order-workflow-" + orderID
}

// PlaceOrder blocks until the workflow finishes and copies the final status onto o
func (c *Checkout) PlaceOrder(ctx context.Context, o *order.Order) (bool, error) {
	opts := client.StartWorkflowOptions{
		ID:        WorkflowID(o.ID),
		TaskQueue: c.taskQueue,
	}
	we, err := c.client.ExecuteWorkflow(ctx, opts, OrderWorkflow, o.Snapshot())
	if err != nil {
		return false, fmt.Errorf("start order workflow: %w", err)
	}

	var res types.OrderResult
	if err := we.Get(ctx, &res); err != nil {
		return false, fmt.Errorf("order workflow %s: %w", we.GetID(), err)
	}
	o.Advance(res.Status)
	return res.Passed, nil
}

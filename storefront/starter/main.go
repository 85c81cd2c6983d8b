package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.temporal.io/sdk/client"

	"sport-store/storefront/types"
	"sport-store/storefront/workflows"
)

func main() {
	// Create Temporal client
	c, err := client.Dial(client.Options{
		HostPort: getEnv("TEMPORAL_HOST", "localhost:7233"),
	})
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	taskQueue := getEnv("ORDER_TASK_QUEUE", "order-task-queue")

	equipmentID := os.Getenv("EQUIPMENT_ID")
	quantity, err := strconv.Atoi(getEnv("QUANTITY", "1"))
	if err != nil {
		log.Fatalln("Invalid QUANTITY", err)
	}
	if equipmentID == "" {
		// placeholder orders carry no line item
		quantity = 0
	}

	orderID := getEnv("ORDER_ID", fmt.Sprintf("ORDER-%d", time.Now().Unix()))
	workflowID := workflows.WorkflowID(orderID)
	snapshot := types.OrderSnapshot{
		OrderID:       orderID,
		EquipmentID:   equipmentID,
		Quantity:      quantity,
		CustomerID:    getEnv("CUSTOMER_ID", "customer-123"),
		CustomerEmail: os.Getenv("CUSTOMER_EMAIL"),
		Status:        types.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	log.Printf("Starting OrderWorkflow: %s\n", workflowID)
	we, err := c.ExecuteWorkflow(context.Background(), workflowOptions, workflows.OrderWorkflow, snapshot)
	if err != nil {
		log.Fatalln("Unable to start workflow", err)
	}
	log.Printf("Started workflow - WorkflowID: %s, RunID: %s\n", we.GetID(), we.GetRunID())
	log.Printf("  Query status: tctl workflow query -w %s -qt %s\n", workflowID, workflows.StatusQuery)

	if getEnv("ASYNC", "false") == "true" {
		return
	}

	var result types.OrderResult
	if err := we.Get(context.Background(), &result); err != nil {
		log.Fatalf("Workflow execution failed: %v\n", err)
	}
	if result.Passed {
		log.Printf("Order %s completed with status %s\n", result.OrderID, result.Status)
	} else {
		log.Printf("Order %s halted at %s with status %s\n", result.OrderID, result.HaltedAt, result.Status)
	}

	queryResp, err := c.QueryWorkflow(context.Background(), workflowID, "", workflows.StatusQuery)
	if err != nil {
		log.Printf("Failed to query status: %v\n", err)
		return
	}
	var status types.OrderWorkflowStatus
	if err := queryResp.Get(&status); err == nil {
		log.Printf("Final status:\n")
		log.Printf("  Stage: %s\n", status.Stage)
		log.Printf("  Completed: %v\n", status.Completed)
		log.Printf("  Recorded: %v\n", status.Recorded)
		if status.LastError != "" {
			log.Printf("  Last error: %s\n", status.LastError)
		}
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

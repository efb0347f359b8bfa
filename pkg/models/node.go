// Package models defines the value types shared by nodes, the registry and the API.
package models

import (
	"time"
)

// NodeStatus defines the possible outcomes of a node execution.
type NodeStatus string

const (
	NodeStatusSuccess NodeStatus = "success"
	NodeStatusError   NodeStatus = "error"
)

// NodeResult represents the result of one batch execution of a node.
type NodeResult struct {
	NodeID      string         `json:"node_id"`
	ExecutionID string         `json:"execution_id"`
	Records     []OutputRecord `json:"records"`
	Status      NodeStatus     `json:"status"`
	FailedItems int            `json:"failed_items"`
	Duration    time.Duration  `json:"duration"`
	Timestamp   time.Time      `json:"timestamp"`
	Error       string         `json:"error,omitempty"`
}

// CountFailed returns how many records stand for failed items.
func CountFailed(records []OutputRecord) int {
	n := 0

	for _, r := range records {
		if r.IsError() {
			n++
		}
	}

	return n
}

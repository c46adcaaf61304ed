// Package action defines the work item exchanged between producers, the work
// queue and workers, together with the outcome envelope a worker produces.
// Both serialize to a self-describing tagged form so that external
// collaborators can persist or transport them unchanged.
package action

package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a user-scoped record: visible and mutable only by its owner.
type Task struct {
	TaskID      int       `json:"task_id"`
	UserID      int       `json:"user_id"`
	TaskName    string    `json:"task_name"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
}

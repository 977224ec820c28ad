package jsonstore

import "github.com/questlog/questlog/internal/core/domain"

// NextIDs holds one monotonic counter per collection. A counter is read, used
// as the new record's ID and incremented inside a single Update cycle, and is
// never decremented or reused after a delete.
type NextIDs struct {
	User      int `json:"user"`
	Task      int `json:"task"`
	Character int `json:"character"`
}

// Document is the entire on-disk state. Every mutation deserializes it whole,
// changes it in memory, and writes it back whole.
type Document struct {
	Users      []domain.User      `json:"users"`
	Tasks      []domain.Task      `json:"tasks"`
	Characters []domain.Character `json:"characters"`
	NextIDs    NextIDs            `json:"nextIds"`
}

// NewDocument returns an empty document with all counters at 1. The store
// itself never creates one on disk; seeding the file is the caller's job.
func NewDocument() *Document {
	return &Document{
		Users:      []domain.User{},
		Tasks:      []domain.Task{},
		Characters: []domain.Character{},
		NextIDs:    NextIDs{User: 1, Task: 1, Character: 1},
	}
}

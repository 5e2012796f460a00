package models

import "time"

type Session struct {
	ID                   string     `json:"id"`
	Level                string     `json:"level"`
	Domain               string     `json:"domain"`
	CurrentQuestionIndex int        `json:"currentQuestionIndex"`
	Answers              []Answer   `json:"answers"`
	TotalScore           int        `json:"totalScore"`
	StartTime            time.Time  `json:"startTime"`
	EndTime              *time.Time `json:"endTime"`
}

// SessionUpdate carries the client-updatable subset of a session. Score and
// progress fields are derived from submitted answers and cannot be set here.
// Nil fields are left untouched.
type SessionUpdate struct {
	Level   *string    `json:"level"`
	Domain  *string    `json:"domain"`
	EndTime *time.Time `json:"endTime"`
}

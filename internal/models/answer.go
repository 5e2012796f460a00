package models

type Answer struct {
	QuestionID int     `json:"questionId"`
	UserAnswer string  `json:"userAnswer"`
	IsCorrect  bool    `json:"isCorrect"`
	Points     int     `json:"points"`
	TimeSpent  float64 `json:"timeSpent"`
}

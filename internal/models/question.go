package models

type Question struct {
	ID            int    `json:"id"`
	Question      string `json:"question"`
	Domain        string `json:"domain"`
	Level         string `json:"level"`
	CorrectAnswer string `json:"correctAnswer"`
	Points        int    `json:"points"`
}

const (
	LevelFresher     = "fresher"
	LevelExperienced = "experienced"
)

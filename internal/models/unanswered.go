package models

import "time"

// UnansweredQuestion logs a user question that produced no match,
// kept until an operator resolves it into a knowledge entry.
type UnansweredQuestion struct {
	ID       int       `gorm:"primaryKey" json:"id"`
	Question string    `gorm:"type:text;not null" json:"question"`
	AskedAt  time.Time `gorm:"autoCreateTime" json:"askedAt"`
}

// TableName specifies the table name
func (UnansweredQuestion) TableName() string {
	return "unanswered_questions"
}

package models

import "strings"

// DefaultConfidence is assigned to entries whose author did not set an
// explicit confidence override.
const DefaultConfidence = 100

// Knowledge represents a stored question/answer pair with its metadata.
// AlternativeAnswers keeps the original "variant1||variant2" text format.
type Knowledge struct {
	ID                 int    `gorm:"primaryKey" json:"id"`
	Question           string `gorm:"type:text;not null;uniqueIndex" json:"question"`
	Answer             string `gorm:"type:text;not null" json:"answer"`
	AlternativeAnswers string `gorm:"type:text" json:"alternativeAnswers,omitempty"`
	Intention          string `gorm:"type:text" json:"intention,omitempty"`
	Ton                string `gorm:"type:text" json:"ton,omitempty"` // joyeux, triste, affectif, serieux, neutre
	Confidence         int    `gorm:"default:100" json:"confidence"`
	CategoryID         int    `gorm:"not null;index" json:"categoryId"`

	// Relationship
	Category Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (Knowledge) TableName() string {
	return "knowledge_base"
}

// Variants returns the primary answer followed by the alternative answers.
func (k *Knowledge) Variants() []string {
	variants := []string{k.Answer}
	if k.AlternativeAnswers != "" {
		variants = append(variants, strings.Split(k.AlternativeAnswers, "||")...)
	}
	return variants
}

package models

// Category groups knowledge entries by theme (Salutations, Sport, ...)
type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex" json:"name"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

package policy

import "time"

// Policy stores the primary-language content plus an optional Arabic variant.
// Tags are persisted comma-joined to stay portable across postgres and the
// sqlite test driver.
type Policy struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"column:title;not null"`
	Category    string    `json:"category" gorm:"column:category;index;not null"`
	Content     string    `json:"content" gorm:"column:content;not null"`
	ContentAr   string    `json:"content_ar" gorm:"column:content_ar"`
	Tags        string    `json:"tags" gorm:"column:tags"`
	LastUpdated time.Time `json:"last_updated" gorm:"column:last_updated"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (Policy) TableName() string {
	return "policies"
}

package model

// Exercise is a single interactive lesson step. The slug is globally unique
// because progress updates resolve exercises by slug alone. XPValue is
// nullable in the schema; consumers treat nil as zero.
// swagger:model Exercise
type Exercise struct {
	UUIDBase
	ChapterID      string `gorm:"type:varchar(36);index;not null" json:"chapterId"`
	Title          string `gorm:"size:200;not null" json:"title"`
	Slug           string `gorm:"size:200;unique;not null" json:"slug"`
	Order          int    `gorm:"column:sort_order;default:0" json:"order"`
	Content        string `gorm:"type:text" json:"content"`
	InitialCode    string `gorm:"type:text" json:"initialCode"`
	ExpectedOutput string `gorm:"type:text" json:"expectedOutput"`
	XPValue        *int   `gorm:"column:xp_value" json:"xpValue"`
}

func (Exercise) TableName() string {
	return "exercises"
}

package model

// StaticPage is CMS-managed markdown content served by slug (about, terms, ...).
type StaticPage struct {
	UUIDBase
	Slug    string `gorm:"size:200;unique;not null" json:"slug"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
}

func (StaticPage) TableName() string {
	return "static_pages"
}

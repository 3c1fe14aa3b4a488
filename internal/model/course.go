package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title       string    `gorm:"size:200;unique;not null" json:"title"`
	Slug        string    `gorm:"size:200;unique;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:255" json:"imageUrl"`
	Chapters    []Chapter `gorm:"constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Chapter slugs only need to be unique inside their course.
// swagger:model Chapter
type Chapter struct {
	UUIDBase
	CourseID  string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_chapter_course_slug" json:"courseId"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Slug      string     `gorm:"size:200;not null;uniqueIndex:idx_chapter_course_slug" json:"slug"`
	Order     int        `gorm:"column:sort_order;default:0" json:"order"`
	Exercises []Exercise `gorm:"constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

func (Chapter) TableName() string {
	return "chapters"
}

package model

// Setting is a key/value row for site-wide configuration editable from the
// admin CMS (site name, logo, maintenance mode, ...).
type Setting struct {
	UUIDBase
	Key   string `gorm:"size:100;unique;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

package model

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// swagger:model User
type User struct {
	UUIDBase
	Name         string   `gorm:"size:100" json:"name"`
	Email        string   `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"type:enum('USER','ADMIN');default:'USER'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// UserXP is the per-user additive experience ledger. TotalXP only ever grows;
// increments happen inside the completion transaction as a single atomic
// update.
type UserXP struct {
	UUIDBase
	UserID  string `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	TotalXP int    `gorm:"default:0" json:"totalXp"`
}

func (UserXP) TableName() string {
	return "user_xp"
}

package model

type User struct {
	BaseModel
	Email     string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FirstName string `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(50);not null" json:"lastName"`
}

func (u User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

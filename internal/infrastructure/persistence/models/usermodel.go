package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null;uniqueIndex"`
	Email        string `gorm:"size:254;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:500;not null;default:''"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

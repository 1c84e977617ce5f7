package models

import "time"

// Catalog entities are keyed by a stable slug and maintained by the
// bootstrap seeder, never by request handlers. Display fields carry
// default, Dutch and Arabic variants.

type Service struct {
	ID            string  `gorm:"size:64;primaryKey" json:"id"`
	Name          string  `gorm:"size:120;not null" json:"name"`
	NameNL        string  `gorm:"size:120" json:"nameNL"`
	NameAR        string  `gorm:"size:120" json:"nameAR"`
	Description   string  `gorm:"type:text" json:"description"`
	DescriptionNL string  `gorm:"type:text" json:"descriptionNL"`
	DescriptionAR string  `gorm:"type:text" json:"descriptionAR"`
	Price         float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration      int     `gorm:"not null" json:"duration"`
	Category      string  `gorm:"size:40" json:"category"`
	ImageURL      string  `gorm:"size:255" json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Staff struct {
	ID          string `gorm:"size:64;primaryKey" json:"id"`
	Name        string `gorm:"size:120;not null" json:"name"`
	Email       string `gorm:"size:120" json:"email"`
	Phone       string `gorm:"size:40" json:"phone"`
	Role        string `gorm:"size:80" json:"role"`
	Bio         string `gorm:"type:text" json:"bio"`
	ImageURL    string `gorm:"size:255" json:"imageUrl"`
	Languages   string `gorm:"type:text" json:"languages"`
	Specialties string `gorm:"type:text" json:"specialties"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type GalleryItem struct {
	ID            string `gorm:"size:64;primaryKey" json:"id"`
	Title         string `gorm:"size:160;not null" json:"title"`
	TitleNL       string `gorm:"size:160" json:"titleNL"`
	TitleAR       string `gorm:"size:160" json:"titleAR"`
	Description   string `gorm:"type:text" json:"description"`
	DescriptionNL string `gorm:"type:text" json:"descriptionNL"`
	DescriptionAR string `gorm:"type:text" json:"descriptionAR"`
	ImageURL      string `gorm:"size:255" json:"imageUrl"`
	Category      string `gorm:"size:40" json:"category"`
	DisplayOrder  int    `gorm:"column:display_order" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

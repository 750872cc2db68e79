package models

import "gorm.io/gorm"

// BlogPost statuses
const (
	PostDraft     = "DRAFT"
	PostPublished = "PUBLISHED"
	PostArchived  = "ARCHIVED"
)

type BlogCategory struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
	Slug string `json:"slug" gorm:"unique;not null"`
}

type BlogPost struct {
	gorm.Model
	Title          string `json:"title" gorm:"not null"`
	Content        string `json:"content"`
	AuthorID       uint   `json:"authorId" gorm:"index;not null"`
	BlogCategoryID *uint  `json:"blogCategoryId"`
	Status         string `json:"status" gorm:"type:varchar(20);default:'DRAFT'"` // DRAFT, PUBLISHED, ARCHIVED
	CoverImageURL  string `json:"coverImageUrl"`
	IsDeleted      bool   `json:"-" gorm:"default:false"`

	Author       *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	BlogCategory *BlogCategory `json:"blogCategory,omitempty" gorm:"foreignKey:BlogCategoryID"`
}

// BlogComment is moderated; only approved comments show publicly.
type BlogComment struct {
	gorm.Model
	PostID     uint   `json:"postId" gorm:"index;not null"`
	UserID     uint   `json:"userId" gorm:"index;not null"`
	Content    string `json:"content" gorm:"not null"`
	IsApproved bool   `json:"isApproved" gorm:"default:false"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")
var ErrMissingTitle = errors.New("title is required")
var ErrEmptyFilename = errors.New("no selected file")
var ErrFileTypeNotAllowed = errors.New("file type not allowed, only pdf")

// NewsArticle is the published unit of the news feed. Slug is generated at
// creation and acts as the stable external identifier; it is never
// user-supplied. PDFFilename references a file in the upload store — the row
// and the file are not transactionally coupled, so consumers must tolerate
// one existing without the other.
type NewsArticle struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:400;not null"`
	Excerpt     string    `json:"excerpt" gorm:"type:text"`
	Content     string    `json:"content" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:120"`
	PDFFilename string    `json:"pdf_filename" gorm:"column:pdf_filename;size:500"`
	// ReadTime is stored in whole minutes; the API renders it as "N min read".
	ReadTime  int       `json:"read_time"`
	CreatedAt time.Time `json:"created_at"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:512"`
}

func (NewsArticle) TableName() string { return "news_articles" }

// HasAttachment reports whether the article references an uploaded PDF.
func (a *NewsArticle) HasAttachment() bool {
	return a.PDFFilename != ""
}

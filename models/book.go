package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusAvailable  = "available"
	StatusCheckedOut = "checked-out"
	StatusInQueue    = "in-queue"
	StatusLost       = "lost"
)

// Book is a library record. Isbn is assigned by the store on save; Status is
// the only field the store mutates afterwards.
type Book struct {
	Isbn           int64   `json:"isbn"`
	Title          string  `json:"title" binding:"required"`
	AuthorName     string  `json:"author_name"`
	Language       string  `json:"language,omitempty"`
	NumPages       int     `json:"num_pages,omitempty"`
	Price          float64 `json:"price"`
	EbookAvailable bool    `json:"ebook_available"`
	PublishDate    Date    `json:"publish_date"`
	Status         string  `json:"status"`
}

const PUBLISH_DATE_TIME_FORMAT = "2006-01-02"

type Date time.Time

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// UnmarshalJSON Parses the json string in the custom format
func (ct *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*ct = Date{}
		return nil
	}

	nt, err := time.Parse(PUBLISH_DATE_TIME_FORMAT, s)
	if err != nil {
		return fmt.Errorf("publish_date %q: %w", s, err)
	}
	*ct = Date(nt)
	return nil
}

// MarshalJSON writes a quoted string in the custom format
func (ct Date) MarshalJSON() ([]byte, error) {
	return []byte(ct.String()), nil
}

// String returns the time in the custom format
func (ct Date) String() string {
	t := time.Time(ct)
	return fmt.Sprintf("%q", t.Format(PUBLISH_DATE_TIME_FORMAT))
}

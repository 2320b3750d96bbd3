package models

// LibraryStats summarises the books currently held by the store.
type LibraryStats struct {
	NumberOfBooks   int `json:"number_of_books"`
	NumberOfAuthors int `json:"number_of_authors"`
}

package db

import (
	"strconv"

	"github.com/patrickmn/go-cache"

	"library/models"
)

// Backing is the container a BookStore keeps its records in. Books are held
// by value so callers never share memory with stored records. BookStore
// serializes all access, so implementations need not be safe on their own.
type Backing interface {
	PutIfAbsent(isbn int64, book models.Book) bool
	Get(isbn int64) (models.Book, bool)
	Replace(isbn int64, book models.Book) bool
	Remove(isbn int64) bool
	Len() int
	// Range calls fn for each record until fn returns false.
	Range(fn func(isbn int64, book models.Book) bool)
}

type mapBacking struct {
	books map[int64]models.Book
}

func NewMapBacking() Backing {
	return &mapBacking{books: make(map[int64]models.Book, 128)}
}

func (m *mapBacking) PutIfAbsent(isbn int64, book models.Book) bool {
	if _, ok := m.books[isbn]; ok {
		return false
	}
	m.books[isbn] = book
	return true
}

func (m *mapBacking) Get(isbn int64) (models.Book, bool) {
	book, ok := m.books[isbn]
	return book, ok
}

func (m *mapBacking) Replace(isbn int64, book models.Book) bool {
	if _, ok := m.books[isbn]; !ok {
		return false
	}
	m.books[isbn] = book
	return true
}

func (m *mapBacking) Remove(isbn int64) bool {
	if _, ok := m.books[isbn]; !ok {
		return false
	}
	delete(m.books, isbn)
	return true
}

func (m *mapBacking) Len() int {
	return len(m.books)
}

func (m *mapBacking) Range(fn func(isbn int64, book models.Book) bool) {
	for isbn, book := range m.books {
		if !fn(isbn, book) {
			return
		}
	}
}

// cacheBacking stores books in a go-cache instance keyed by the decimal ISBN.
// Items never expire.
type cacheBacking struct {
	c *cache.Cache
}

// NewCacheBacking wraps c. A nil c gets a fresh cache with no expiration and
// no janitor.
func NewCacheBacking(c *cache.Cache) Backing {
	if c == nil {
		c = cache.New(cache.NoExpiration, 0)
	}
	return &cacheBacking{c: c}
}

func cacheKey(isbn int64) string {
	return strconv.FormatInt(isbn, 10)
}

func (b *cacheBacking) PutIfAbsent(isbn int64, book models.Book) bool {
	return b.c.Add(cacheKey(isbn), book, cache.NoExpiration) == nil
}

func (b *cacheBacking) Get(isbn int64) (models.Book, bool) {
	v, ok := b.c.Get(cacheKey(isbn))
	if !ok {
		return models.Book{}, false
	}
	book, ok := v.(models.Book)
	return book, ok
}

func (b *cacheBacking) Replace(isbn int64, book models.Book) bool {
	return b.c.Replace(cacheKey(isbn), book, cache.NoExpiration) == nil
}

func (b *cacheBacking) Remove(isbn int64) bool {
	key := cacheKey(isbn)
	if _, ok := b.c.Get(key); !ok {
		return false
	}
	b.c.Delete(key)
	return true
}

func (b *cacheBacking) Len() int {
	return b.c.ItemCount()
}

func (b *cacheBacking) Range(fn func(isbn int64, book models.Book) bool) {
	for key, item := range b.c.Items() {
		isbn, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		book, ok := item.Object.(models.Book)
		if !ok {
			continue
		}
		if !fn(isbn, book) {
			return
		}
	}
}

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"library/cache"
	"library/db"
	"library/models"
)

// Handler serves the book routes over one BookStore. The indexer mirror and
// the activity cacher are best effort: their failures are logged, never
// returned to the client.
type Handler struct {
	Books   *db.BookStore
	Indexer db.BookIndexer
	Cacher  cache.RequestCacher
	Logger  *zap.Logger
}

func NewHandler(books *db.BookStore, indexer db.BookIndexer, cacher cache.RequestCacher, logger *zap.Logger) *Handler {
	if indexer == nil {
		indexer = db.NopIndexer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Books:   books,
		Indexer: indexer,
		Cacher:  cacher,
		Logger:  logger,
	}
}

type statusUpdate struct {
	Status string `json:"status" binding:"required"`
}

func parseIsbn(c *gin.Context) (int64, bool) {
	id := c.Param("id")
	isbn, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("isbn '%v' is not a number", id)})
		return 0, false
	}
	return isbn, true
}

func notFound(c *gin.Context, isbn int64) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("book with isbn: '%v' not found", isbn)})
}

func (h *Handler) CreateBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if book.Status == "" {
		book.Status = models.StatusAvailable
	}

	saved, err := h.Books.Save(&book)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := h.Indexer.Index(c.Request.Context(), saved); err != nil {
		h.Logger.Warn("index book", zap.Int64("isbn", saved.Isbn), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "created",
		"isbn":   saved.Isbn,
	})
}

func (h *Handler) UpdateBookStatusById(c *gin.Context) {
	isbn, ok := parseIsbn(c)
	if !ok {
		return
	}

	var update statusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !h.Books.UpdateStatusByID(isbn, update.Status) {
		notFound(c, isbn)
		return
	}

	if err := h.Indexer.UpdateStatus(c.Request.Context(), isbn, update.Status); err != nil {
		h.Logger.Warn("index book status", zap.Int64("isbn", isbn), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) GetBookById(c *gin.Context) {
	isbn, ok := parseIsbn(c)
	if !ok {
		return
	}

	book, err := h.Books.GetByID(isbn)

	switch {
	case errors.Is(err, db.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	case errors.Is(err, db.ErrNotFound):
		notFound(c, isbn)
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBookById(c *gin.Context) {
	isbn, ok := parseIsbn(c)
	if !ok {
		return
	}

	if !h.Books.DeleteByID(isbn) {
		notFound(c, isbn)
		return
	}

	if err := h.Indexer.Delete(c.Request.Context(), isbn); err != nil {
		h.Logger.Warn("unindex book", zap.Int64("isbn", isbn), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) Store(c *gin.Context) {
	c.JSON(http.StatusOK, h.Books.Stats())
}

func (h *Handler) Activity(c *gin.Context) {
	username := c.Param("username")

	userRequests, err := h.Cacher.Read(username)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	userRequestsRaw := make([]models.UserRequest, 0, len(userRequests))
	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			h.Logger.Warn("skip malformed activity entry", zap.String("username", username), zap.Error(err))
			continue
		}
		userRequestsRaw = append(userRequestsRaw, userRequest)
	}

	c.JSON(http.StatusOK, userRequestsRaw)
}

// CacheUserRequest records the request in the activity log of the user named
// by the username query parameter, if any.
func (h *Handler) CacheUserRequest(c *gin.Context) {
	username, ok := c.GetQuery("username")
	if !ok || username == "" {
		c.Next()
		return
	}

	userRequest := models.UserRequest{
		Id:     requestId(c),
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
		Time:   time.Now().UTC(),
	}

	request, err := json.Marshal(userRequest)
	if err == nil {
		err = h.Cacher.Write(username, request)
	}
	// Not failing a request if there's a problem caching it
	if err != nil {
		h.Logger.Warn("cache user request", zap.String("username", username), zap.Error(err))
	}

	c.Next()
}

func requestId(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(requestIdKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.New()
}

package db

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"

	"library/models"
)

const INDEX_NAME = "books"

// BookIndexer mirrors store mutations into a search index. It is write-only;
// lookups always go to the BookStore.
type BookIndexer interface {
	Index(ctx context.Context, book *models.Book) error
	UpdateStatus(ctx context.Context, isbn int64, status string) error
	Delete(ctx context.Context, isbn int64) error
}

type ElasticBookIndexer struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func CreateElasticBookIndexer(indexName string, client *elastic.Client) *ElasticBookIndexer {
	if indexName == "" {
		indexName = INDEX_NAME
	}
	return &ElasticBookIndexer{indexName, client}
}

func docId(isbn int64) string {
	return strconv.FormatInt(isbn, 10)
}

func (indexer *ElasticBookIndexer) Index(ctx context.Context, book *models.Book) error {
	_, err := indexer.ElasticClient.
		Index().
		Index(indexer.IndexName).
		Id(docId(book.Isbn)).
		BodyJson(book).
		Do(ctx)

	return err
}

func (indexer *ElasticBookIndexer) UpdateStatus(ctx context.Context, isbn int64, status string) error {
	_, err := indexer.ElasticClient.
		Update().
		Index(indexer.IndexName).
		Id(docId(isbn)).
		Doc(gin.H{"status": status}).
		Do(ctx)

	return err
}

// Delete removes the document; a document that is already gone is not an
// error.
func (indexer *ElasticBookIndexer) Delete(ctx context.Context, isbn int64) error {
	_, err := indexer.ElasticClient.
		Delete().
		Index(indexer.IndexName).
		Id(docId(isbn)).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

// NopIndexer is used when no search cluster is configured.
type NopIndexer struct{}

func (NopIndexer) Index(context.Context, *models.Book) error { return nil }

func (NopIndexer) UpdateStatus(context.Context, int64, string) error { return nil }

func (NopIndexer) Delete(context.Context, int64) error { return nil }

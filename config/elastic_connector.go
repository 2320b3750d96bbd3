package config

import (
	"fmt"

	"github.com/olivere/elastic/v7"
)

func SetupElasticSearch(elasticUrl string, options ...elastic.ClientOptionFunc) (*elastic.Client, error) {
	client, err := elastic.NewClient(append([]elastic.ClientOptionFunc{elastic.SetURL(elasticUrl)}, options...)...)
	if err != nil {
		return nil, fmt.Errorf("elastic %s: %w", elasticUrl, err)
	}
	return client, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/redis/converter"
	"github.com/DRSN-tech/food-delivery/pkg/clients"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "catalog:search:"

// SearchCacheRepo кэширует результаты фильтрации каталога.
// Каталог не меняется после загрузки, поэтому запись инвалидируется только по TTL.
type SearchCacheRepo struct {
	client *clients.RedisClient
	conv   converter.SearchResultConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewSearchCacheRepo(client *clients.RedisClient, conv converter.SearchResultConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *SearchCacheRepo {
	return &SearchCacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetSearch возвращает закэшированный результат. Промах: (nil, false, nil).
func (r *SearchCacheRepo) GetSearch(ctx context.Context, query string) ([]domain.CategoryGroup, bool, error) {
	key := searchKey(query)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil // cache miss
		}
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := unmarshalSearchFromCache(data)
	if err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		r.deleteKey(key)
		return nil, false, nil
	}

	if model.Query != query {
		r.logger.Warnf("Cache query mismatch: key_query: %q, model_query: %q", query, model.Query)
		r.deleteKey(key)
		return nil, false, nil // cache miss
	}

	return r.conv.ToDomain(model), true, nil
}

// SetSearch кэширует результат поиска с TTL из конфигурации.
func (r *SearchCacheRepo) SetSearch(ctx context.Context, query string, groups []domain.CategoryGroup) error {
	data, err := marshalSearchForCache(r.conv.ToRedisModel(query, groups))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, searchKey(query), data, r.cfg.SearchTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *SearchCacheRepo) deleteKey(key string) {
	if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
		r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// searchKey возвращает Redis-ключ для ключа поиска (отпечаток каталога и нормализованный запрос)
func searchKey(query string) string {
	return searchKeyPrefix + query
}

func marshalSearchForCache(model *converter.SearchResultRedisModel) ([]byte, error) {
	return json.Marshal(model)
}

func unmarshalSearchFromCache(data []byte) (*converter.SearchResultRedisModel, error) {
	var model converter.SearchResultRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

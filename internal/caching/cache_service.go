package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"acmedash/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService holds the rendered invoice-list view and the dashboard
// cards. Mutations invalidate the invoice views so the next list fetch
// sees fresh data.
type CacheService interface {
	GetInvoicePage(ctx context.Context, query string, page int) ([]*models.InvoiceWithCustomer, error)
	SetInvoicePage(ctx context.Context, query string, page int, invoices []*models.InvoiceWithCustomer, ttl time.Duration) error
	GetCardData(ctx context.Context) (*models.CardData, error)
	SetCardData(ctx context.Context, cards *models.CardData, ttl time.Duration) error
	InvalidateInvoiceViews(ctx context.Context) error
	Close() error
}

type redisCacheService struct {
	client *redis.Client
}

// redisOptions accepts both bare host:port addresses and full
// redis:// / rediss:// URLs. A URL carries its own credentials and db
// number, so the separate password/db settings apply only to the bare
// form.
func redisOptions(addr, password string, db int) *redis.Options {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if opts, err := redis.ParseURL(addr); err == nil {
			return opts
		}
		log.Printf("WARN: could not parse redis URL %q, treating it as a plain address", addr)
	}
	return &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	opts := redisOptions(addr, password, db)
	client := redis.NewClient(opts)

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, opts.Addr)
	}

	return &redisCacheService{client: client}
}

func invoicePageKey(query string, page int) string {
	return fmt.Sprintf("acmedash:invoices:%s:%d", query, page)
}

const cardDataKey = "acmedash:cards"

func (r *redisCacheService) GetInvoicePage(ctx context.Context, query string, page int) ([]*models.InvoiceWithCustomer, error) {
	data, err := r.client.Get(ctx, invoicePageKey(query, page)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var invoices []*models.InvoiceWithCustomer
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *redisCacheService) SetInvoicePage(ctx context.Context, query string, page int, invoices []*models.InvoiceWithCustomer, ttl time.Duration) error {
	// A nil slice would marshal to JSON null, which reads back as a
	// miss; store an empty array so empty pages stay cached.
	if invoices == nil {
		invoices = []*models.InvoiceWithCustomer{}
	}
	data, err := json.Marshal(invoices)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, invoicePageKey(query, page), data, ttl).Err()
}

func (r *redisCacheService) GetCardData(ctx context.Context) (*models.CardData, error) {
	data, err := r.client.Get(ctx, cardDataKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var cards models.CardData
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, err
	}
	return &cards, nil
}

func (r *redisCacheService) SetCardData(ctx context.Context, cards *models.CardData, ttl time.Duration) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cardDataKey, data, ttl).Err()
}

// InvalidateInvoiceViews drops every cached invoice page and the
// dashboard cards. Called after each invoice mutation.
func (r *redisCacheService) InvalidateInvoiceViews(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "acmedash:invoices:*").Result()
	if err != nil {
		return err
	}
	keys = append(keys, cardDataKey)
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisCacheService) Close() error {
	return r.client.Close()
}

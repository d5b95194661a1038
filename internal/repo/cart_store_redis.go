package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/redissvc"
)

const maxCartUpdateAttempts = 20

var ErrCartContention = errors.New("cart changed concurrently too many times")

// RedisCartStore keeps each cart as a JSON document that expires after ttl
// without activity. A zero ttl keeps carts forever.
type RedisCartStore struct {
	rs  *redissvc.RedisService
	ttl time.Duration
}

func NewRedisCartStore(rs *redissvc.RedisService, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{rs: rs, ttl: ttl}
}

func cartKey(owner string) string {
	return "webstore:cart:" + owner
}

func decodeCart(data []byte, err error) (models.Cart, error) {
	if errors.Is(err, redis.Nil) {
		return models.Cart{Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("read cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return models.Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (s *RedisCartStore) Get(owner string) (models.Cart, error) {
	return decodeCart(s.rs.Rdb().Get(s.rs.Ctx(), cartKey(owner)).Bytes())
}

func (s *RedisCartStore) Save(owner string, cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.rs.Rdb().Set(s.rs.Ctx(), cartKey(owner), data, s.ttl).Err()
}

// Update runs fn inside WATCH/MULTI and retries when another client changed
// the cart in between.
func (s *RedisCartStore) Update(owner string, fn func(models.Cart) models.Cart) error {
	ctx := s.rs.Ctx()
	key := cartKey(owner)

	txf := func(tx *redis.Tx) error {
		cart, err := decodeCart(tx.Get(ctx, key).Bytes())
		if err != nil {
			return err
		}
		data, err := json.Marshal(fn(cart))
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxCartUpdateAttempts; i++ {
		err := s.rs.Rdb().Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update cart of %s: %w", owner, ErrCartContention)
}

func (s *RedisCartStore) Delete(owner string) error {
	return s.rs.Rdb().Del(s.rs.Ctx(), cartKey(owner)).Err()
}

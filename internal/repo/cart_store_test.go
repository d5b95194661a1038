package repo

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/redissvc"
)

func TestInMemoryCartStore(t *testing.T) {
	store := NewInMemoryCartStore()

	empty, err := store.Get("alice")
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)

	cart := models.Cart{Items: []models.CartItem{{ProductID: 1, Quantity: 2}}}
	require.NoError(t, store.Save("alice", cart))

	cart.Items[0].Quantity = 99
	saved, err := store.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Items[0].Quantity)

	require.NoError(t, store.Delete("alice"))
	again, err := store.Get("alice")
	require.NoError(t, err)
	assert.Empty(t, again.Items)
}

func addOne(productID int) func(models.Cart) models.Cart {
	return func(c models.Cart) models.Cart {
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				c.Items[i].Quantity++
				return c
			}
		}
		c.Items = append(c.Items, models.CartItem{ProductID: productID, Quantity: 1})
		return c
	}
}

// concurrentUpdates runs workers*perWorker increments of product 1 for owner.
func concurrentUpdates(t *testing.T, store CartStore, owner string, workers, perWorker int) {
	t.Helper()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				assert.NoError(t, store.Update(owner, addOne(1)))
			}
		}()
	}
	wg.Wait()
}

func TestInMemoryCartStore_ConcurrentUpdates(t *testing.T) {
	store := NewInMemoryCartStore()

	concurrentUpdates(t, store, "alice", 50, 40)

	cart, err := store.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{ProductID: 1, Quantity: 2000}}, cart.Items)
}

// redisService connects to REDIS_ADDR and skips the test when it is unset.
func redisService(t *testing.T) *redissvc.RedisService {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })
	return redissvc.NewRedisService(rdb, ctx)
}

func TestRedisCartStore(t *testing.T) {
	store := NewRedisCartStore(redisService(t), time.Minute)
	owner := "cart-test-owner"
	t.Cleanup(func() { store.Delete(owner) })

	require.NoError(t, store.Delete(owner))
	empty, err := store.Get(owner)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)

	require.NoError(t, store.Save(owner, models.Cart{Items: []models.CartItem{{ProductID: 3, Quantity: 1}}}))
	saved, err := store.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{ProductID: 3, Quantity: 1}}, saved.Items)
}

func TestRedisCartStore_ConcurrentUpdates(t *testing.T) {
	store := NewRedisCartStore(redisService(t), time.Minute)
	owner := "cart-test-concurrent"
	require.NoError(t, store.Delete(owner))
	t.Cleanup(func() { store.Delete(owner) })

	concurrentUpdates(t, store, owner, 4, 10)

	cart, err := store.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{ProductID: 1, Quantity: 40}}, cart.Items)
}

type countingProductData struct {
	ProductData
	sectionCalls int
	brandCalls   int
}

func (c *countingProductData) GetSections() ([]models.Section, error) {
	c.sectionCalls++
	return c.ProductData.GetSections()
}

func (c *countingProductData) GetBrands() ([]models.Brand, error) {
	c.brandCalls++
	return c.ProductData.GetBrands()
}

func TestCachedProductData(t *testing.T) {
	rs := redisService(t)
	inner := &countingProductData{ProductData: NewInMemoryProductData(testSeed())}
	cached := NewCachedProductData(inner, rs, time.Minute)
	require.NoError(t, cached.Invalidate())
	t.Cleanup(func() { cached.Invalidate() })

	first, err := cached.GetSections()
	require.NoError(t, err)
	second, err := cached.GetSections()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.sectionCalls)

	brands, err := cached.GetBrands()
	require.NoError(t, err)
	brandsAgain, err := cached.GetBrands()
	require.NoError(t, err)
	assert.Equal(t, 1, inner.brandCalls)
	require.Len(t, brandsAgain, len(brands))
	assert.Equal(t, brands[1].ProductsCount(), brandsAgain[1].ProductsCount())

	page, err := cached.GetProducts(nil)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalCount)
}

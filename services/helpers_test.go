package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"storefront/configs"
	"storefront/entity"
	"storefront/giftwrap"
	"storefront/hooks"
	"storefront/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	hooks    *hooks.Registry
	giftwrap *giftwrap.Module
	products *ProductService
	carts    *CartService
	orders   *OrderService
	feed     *recordingFeed
}

type recordingFeed struct{ orders []*OrderView }

func (f *recordingFeed) Publish(o *OrderView) { f.orders = append(f.orders, o) }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := configs.ConnectionDB(&configs.Config{
		DBDriver: "sqlite",
		DBSource: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openTestDB(t)
	log := zap.NewNop()

	registry := hooks.NewRegistry()
	gw := giftwrap.New(repository.NewProductMetaRepository(db), giftwrap.Options{Logger: log})
	gw.Register(registry)

	productRepo := repository.NewProductRepository(db)
	carts := NewCartService(db, repository.NewCartRepository(db), productRepo, registry, log)
	feed := &recordingFeed{}
	return &fixture{
		db:       db,
		hooks:    registry,
		giftwrap: gw,
		products: NewProductService(db, productRepo, registry, log),
		carts:    carts,
		orders:   NewOrderService(db, repository.NewOrderRepository(db), carts, registry, feed, log),
		feed:     feed,
	}
}

// product creates a simple product and configures its gift wrap.
func (f *fixture) product(t *testing.T, name, price string, enabled bool, fee string) *entity.Product {
	t.Helper()
	fields := map[string]string{giftwrap.MetaPrice: fee}
	if enabled {
		fields[giftwrap.MetaEnabled] = "yes"
	}
	p, err := f.products.Create(context.Background(), &ProductIn{Name: name, Price: price, Fields: fields})
	require.NoError(t, err)
	return p
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

const token = "0b6b9f6a-3c1e-4f55-9d2e-3a4c7a5b8e11"

package factories_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/database/factories"
	"github.com/shashiranjanraj/opsdash/pkg/fake"
)

var (
	skuPattern         = regexp.MustCompile(`^[A-Z]{2}[0-9]{3}[A-Z]{2}$`)
	orderNumberPattern = regexp.MustCompile(`^ORD-[A-Z]{2}[0-9]{3}[A-Z]{2}$`)
)

func TestSupplier_Fields(t *testing.T) {
	f := factories.New(fake.NewSource(7))

	for i := 0; i < 50; i++ {
		s, err := f.Supplier()
		require.NoError(t, err)

		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Email)
		assert.NotEmpty(t, s.Phone)
		assert.NotEmpty(t, s.ContactPerson)
		assert.Contains(t,
			[]models.SupplierStatus{models.SupplierActive, models.SupplierInactive},
			s.Status)
	}
}

func TestProduct_Constraints(t *testing.T) {
	f := factories.New(fake.NewSource(7))

	for i := 0; i < 100; i++ {
		p, err := f.Product(1)
		require.NoError(t, err)

		assert.Regexp(t, skuPattern, p.SKU)
		assert.GreaterOrEqual(t, p.Price, 5.0)
		assert.LessOrEqual(t, p.Price, 500.0)
		assert.GreaterOrEqual(t, p.StockQuantity, 0)
		assert.LessOrEqual(t, p.StockQuantity, 1000)
		assert.Contains(t, factories.Categories, p.Category)
		assert.Equal(t, uint(1), p.SupplierID)
	}
}

func TestProduct_RequiresSupplier(t *testing.T) {
	f := factories.New(fake.NewSource(7))

	_, err := f.Product(0)
	assert.ErrorIs(t, err, factories.ErrReferential)
}

func TestOrder_ShippedAtMatchesStatus(t *testing.T) {
	f := factories.New(fake.NewSource(7))

	for i := 0; i < 200; i++ {
		o, err := f.Order(1)
		require.NoError(t, err)

		assert.Regexp(t, orderNumberPattern, o.OrderNumber)
		assert.Zero(t, o.TotalAmount, "total must stay 0 until finalised")

		if o.Status.Shipped() {
			assert.NotNil(t, o.ShippedAt, "status %s needs shipped_at", o.Status)
		} else {
			assert.Nil(t, o.ShippedAt, "status %s must not have shipped_at", o.Status)
		}
	}
}

func TestOrderItem_LineTotal(t *testing.T) {
	f := factories.New(fake.NewSource(7))
	product := &models.Product{Price: 19.99}
	product.ID = 3

	item, err := f.OrderItem(5, product, 4)
	require.NoError(t, err)

	assert.Equal(t, uint(5), item.OrderID)
	assert.Equal(t, uint(3), item.ProductID)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, 19.99, item.UnitPrice)
	assert.InDelta(t, 79.96, item.TotalPrice, 0.01)
}

func TestOrderItem_DefaultQuantityRange(t *testing.T) {
	f := factories.New(fake.NewSource(7))
	product := &models.Product{Price: 10}
	product.ID = 1

	for i := 0; i < 100; i++ {
		item, err := f.OrderItem(1, product, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, 10)
	}
}

func TestOrderItem_RequiresParents(t *testing.T) {
	f := factories.New(fake.NewSource(7))
	product := &models.Product{Price: 10}
	product.ID = 1

	_, err := f.OrderItem(0, product, 1)
	assert.ErrorIs(t, err, factories.ErrReferential)

	_, err = f.OrderItem(1, nil, 1)
	assert.ErrorIs(t, err, factories.ErrReferential)

	_, err = f.OrderItem(1, &models.Product{}, 1)
	assert.ErrorIs(t, err, factories.ErrReferential, "unsaved product has no ID")
}

func TestUniqueValues_AcrossRun(t *testing.T) {
	f := factories.New(fake.NewSource(7))

	skus := make(map[string]bool)
	for i := 0; i < 200; i++ {
		p, err := f.Product(1)
		require.NoError(t, err)
		assert.False(t, skus[p.SKU], "duplicate sku %s", p.SKU)
		skus[p.SKU] = true
	}

	emails := make(map[string]bool)
	for i := 0; i < 100; i++ {
		u, err := f.User()
		require.NoError(t, err)
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true
	}
}

// constantTokens always generates the same token, so the second unique draw
// must exhaust the retry budget.
type constantTokens struct {
	*fake.Source
}

func (c constantTokens) Token(string) string { return "AA111AA" }

func TestUniqueExhausted(t *testing.T) {
	f := factories.New(constantTokens{fake.NewSource(7)})

	_, err := f.Product(1)
	require.NoError(t, err)

	_, err = f.Product(1)
	assert.ErrorIs(t, err, factories.ErrUniqueExhausted)

	_, err = f.Order(1)
	require.NoError(t, err, "order numbers have their own seen-set")

	_, err = f.Order(1)
	assert.ErrorIs(t, err, factories.ErrUniqueExhausted)
}

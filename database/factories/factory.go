// Package factories produces single synthetic records with randomised but
// constrained field values, mirroring what real dashboard data looks like.
//
// A Factory is scoped to one generation run: it tracks every unique value it
// has handed out (SKUs, order numbers, emails) and retries on collision up to
// a fixed budget before giving up with ErrUniqueExhausted.
package factories

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/fake"
)

// ErrUniqueExhausted is returned when a unique field (sku, order number,
// email) cannot be generated without collision within the retry budget.
// Callers must abort the run rather than insert a duplicate.
var ErrUniqueExhausted = errors.New("factories: unique value retries exhausted")

// ErrReferential is returned when a record is asked to reference a parent
// that does not exist (zero ID, nil product).
var ErrReferential = errors.New("factories: missing parent reference")

// uniqueRetries bounds collision retries per unique value.
const uniqueRetries = 24

// Categories is the fixed product category vocabulary.
var Categories = []string{
	"Electronics", "Clothing", "Books", "Home & Garden", "Sports",
	"Toys", "Automotive", "Health & Beauty", "Food & Beverages", "Office Supplies",
}

// productPhrases is the catalogue phrase-set products are named from; a random
// word is appended so names stay varied but bounded.
var productPhrases = []string{
	"Wireless Headphones", "Cotton T-Shirt", "Programming Guide", "Garden Hose",
	"Basketball", "Puzzle Game", "Car Phone Mount", "Face Cream", "Energy Drink",
	"Notebook Set", "Bluetooth Speaker", "Jeans", "Mystery Novel", "Plant Pot",
	"Tennis Racket", "Board Game", "Tire Pressure Gauge", "Shampoo", "Coffee Beans",
	"Desk Organizer",
}

var productStatuses = []string{
	string(models.ProductActive),
	string(models.ProductInactive),
	string(models.ProductDiscontinued),
}

// Factory builds entities one at a time. Not safe for concurrent use; the
// seeder is a single linear pass so the seen-sets need no locking.
type Factory struct {
	vals fake.Values
	now  time.Time

	seenSKUs         map[string]struct{}
	seenOrderNumbers map[string]struct{}
	seenEmails       map[string]struct{}
}

// New returns a Factory drawing values from vals.
func New(vals fake.Values) *Factory {
	return &Factory{
		vals:             vals,
		now:              time.Now(),
		seenSKUs:         make(map[string]struct{}),
		seenOrderNumbers: make(map[string]struct{}),
		seenEmails:       make(map[string]struct{}),
	}
}

// unique draws values from gen until one is unseen, recording and returning
// it. Retries are bounded so a saturated value space cannot loop forever.
func (f *Factory) unique(field string, seen map[string]struct{}, gen func() string) (string, error) {
	for i := 0; i < uniqueRetries; i++ {
		v := gen()
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			return v, nil
		}
	}
	return "", fmt.Errorf("%s after %d attempts: %w", field, uniqueRetries, ErrUniqueExhausted)
}

// Supplier builds one supplier. Status is weighted toward active so seeded
// dashboards look like a healthy business.
func (f *Factory) Supplier() (*models.Supplier, error) {
	name := f.vals.CompanyName()

	email, err := f.unique("supplier email", f.seenEmails, func() string {
		return f.vals.Email(name)
	})
	if err != nil {
		return nil, err
	}

	status := models.SupplierActive
	if f.vals.Bool(0.2) {
		status = models.SupplierInactive
	}

	s := &models.Supplier{
		Name:          name,
		Email:         email,
		Phone:         f.vals.Phone(),
		Address:       f.vals.Address(),
		ContactPerson: f.vals.Name(),
		Status:        status,
	}
	s.CreatedAt = f.vals.TimeBetween(f.now.AddDate(-1, 0, 0), f.now)
	return s, nil
}

// Product builds one product owned by the given supplier.
func (f *Factory) Product(supplierID uint) (*models.Product, error) {
	if supplierID == 0 {
		return nil, fmt.Errorf("product needs a supplier: %w", ErrReferential)
	}

	sku, err := f.unique("product sku", f.seenSKUs, func() string {
		return f.vals.Token("??###??")
	})
	if err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:          f.vals.Pick(productPhrases) + " - " + f.vals.Word(),
		SKU:           sku,
		Description:   f.vals.Paragraph(f.vals.IntBetween(1, 3)),
		Price:         f.vals.DecimalBetween(5, 500),
		StockQuantity: f.vals.IntBetween(0, 1000),
		Category:      f.vals.Pick(Categories),
		Status:        models.ProductStatus(f.vals.Pick(productStatuses)),
		SupplierID:    supplierID,
	}
	p.CreatedAt = f.vals.TimeBetween(f.now.AddDate(-1, 0, 0), f.now)
	return p, nil
}

// User builds one customer. Most users are verified; some never confirmed
// their address.
func (f *Factory) User() (*models.User, error) {
	name := f.vals.Name()

	email, err := f.unique("user email", f.seenEmails, func() string {
		return f.vals.Email(name)
	})
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:  name,
		Email: email,
	}
	if f.vals.Bool(0.8) {
		verified := f.vals.TimeBetween(f.now.AddDate(0, -6, 0), f.now)
		u.EmailVerifiedAt = &verified
	}
	u.CreatedAt = f.vals.TimeBetween(f.now.AddDate(0, -6, 0), f.now)
	return u, nil
}

// Order builds one order shell for the given user. TotalAmount starts at
// zero; it is not authoritative until the seeder finalises it from the
// order's items. ShippedAt is set exactly when the status implies shipping.
func (f *Factory) Order(userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("order needs a user: %w", ErrReferential)
	}

	number, err := f.unique("order number", f.seenOrderNumbers, func() string {
		return "ORD-" + f.vals.Token("??###??")
	})
	if err != nil {
		return nil, err
	}

	status := models.OrderStatuses[f.vals.IntBetween(0, len(models.OrderStatuses)-1)]

	o := &models.Order{
		OrderNumber: number,
		UserID:      userID,
		TotalAmount: 0,
		Status:      status,
	}
	if f.vals.Bool(0.3) {
		o.Notes = f.vals.Sentence()
	}
	if status.Shipped() {
		shipped := f.vals.TimeBetween(f.now.AddDate(0, 0, -30), f.now)
		o.ShippedAt = &shipped
	}
	o.CreatedAt = f.vals.TimeBetween(f.now.AddDate(0, -6, 0), f.now)
	return o, nil
}

// OrderItem builds one line for an order, snapshotting the product's current
// price. Pass quantity 0 to draw a random quantity in [1, 10].
func (f *Factory) OrderItem(orderID uint, product *models.Product, quantity int) (*models.OrderItem, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order item needs an order: %w", ErrReferential)
	}
	if product == nil || product.ID == 0 {
		return nil, fmt.Errorf("order item needs a product: %w", ErrReferential)
	}

	if quantity <= 0 {
		quantity = f.vals.IntBetween(1, 10)
	}

	return &models.OrderItem{
		OrderID:    orderID,
		ProductID:  product.ID,
		Quantity:   quantity,
		UnitPrice:  product.Price,
		TotalPrice: fake.Round2(float64(quantity) * product.Price),
	}, nil
}

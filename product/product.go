package product

import (
	"errors"
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"github.com/shopspring/decimal"
)

var ErrAlreadySold = errors.New("product has already been sold")

type Product struct {
	id           int
	name         string
	category     auctiontypes.ProductCategory
	year         int
	minimumPrice decimal.Decimal
	attributes   map[string]string

	lock      *sync.Mutex
	salePrice *int
}

func New(info auctiontypes.ProductInfo) *Product {
	attributes := map[string]string{}
	for k, v := range info.Attributes {
		attributes[k] = v
	}

	p := &Product{
		id:           info.ID,
		name:         info.Name,
		category:     info.Category,
		year:         info.Year,
		minimumPrice: info.MinimumPrice,
		attributes:   attributes,
		lock:         &sync.Mutex{},
	}
	if info.SalePrice != nil {
		price := *info.SalePrice
		p.salePrice = &price
	}
	return p
}

func (p *Product) ID() int {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) MinimumPrice() decimal.Decimal {
	return p.minimumPrice
}

// Clears reports whether a bid beats the minimum price. Equal is not enough.
func (p *Product) Clears(bid int) bool {
	return decimal.NewFromInt(int64(bid)).GreaterThan(p.minimumPrice)
}

func (p *Product) MarkSold(price int) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.salePrice != nil {
		return ErrAlreadySold
	}
	p.salePrice = &price
	return nil
}

func (p *Product) SalePrice() (int, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.salePrice == nil {
		return 0, false
	}
	return *p.salePrice, true
}

func (p *Product) Info() auctiontypes.ProductInfo {
	p.lock.Lock()
	defer p.lock.Unlock()

	info := auctiontypes.ProductInfo{
		ID:           p.id,
		Name:         p.name,
		Category:     p.category,
		Year:         p.year,
		MinimumPrice: p.minimumPrice,
	}
	if len(p.attributes) > 0 {
		info.Attributes = map[string]string{}
		for k, v := range p.attributes {
			info.Attributes[k] = v
		}
	}
	if p.salePrice != nil {
		price := *p.salePrice
		info.SalePrice = &price
	}
	return info
}

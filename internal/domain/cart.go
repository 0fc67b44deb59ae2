package domain

// CartItem is a single menu item staged in a user's cart.
type CartItem struct {
	ItemID   int64   `json:"itemId" bson:"itemId"`
	ItemName string  `json:"itemName" bson:"itemName"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Cart is the per-user staging area for a prospective order. Total is
// derived from Items and must never be set independently.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// EmptyCart returns a cart with no items. Handlers rely on Items
// serializing as [] rather than null.
func EmptyCart() *Cart {
	return &Cart{Items: []CartItem{}, Total: 0}
}

// AddItem merges an item into the cart: an existing itemId accumulates
// quantity, a new one is appended. Total is recomputed.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ItemID == item.ItemID {
			c.Items[i].Quantity += item.Quantity
			c.recomputeTotal()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.recomputeTotal()
}

// SetItemQuantity sets the quantity of an existing item, removing it
// when quantity <= 0. Returns false if the item is not in the cart.
func (c *Cart) SetItemQuantity(itemID int64, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.recomputeTotal()
		return true
	}
	return false
}

func (c *Cart) recomputeTotal() {
	total := 0.0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	c.Total = total
}

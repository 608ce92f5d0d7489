package orderdto

type PlaceOrderInput struct {
	StoreID         string
	ClientName      string
	Total           float64
	PaymentIntentID *string
}

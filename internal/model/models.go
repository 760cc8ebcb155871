// models.go
package model

// Order is one document in the "orders" collection. createdAt and the
// per-status timestamps are exchanged with the store as ISO-8601 strings;
// a status timestamp is absent until the matching transition happens.
type Order struct {
	ID              string     `bson:"_id" json:"id"`
	Status          string     `bson:"status" json:"status"`
	Items           []LineItem `bson:"items" json:"items"`
	TotalAmount     float64    `bson:"total_amount" json:"totalAmount"`
	CreatedAt       string     `bson:"created_at" json:"createdAt"`
	ConfirmedAt     string     `bson:"confirmed_at,omitempty" json:"confirmedAt,omitempty"`
	ProcessingAt    string     `bson:"processing_at,omitempty" json:"processingAt,omitempty"`
	ShippedAt       string     `bson:"shipped_at,omitempty" json:"shippedAt,omitempty"`
	DeliveredAt     string     `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	CompletedAt     string     `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	CancelledAt     string     `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
	BuyerName       string     `bson:"buyer_name" json:"buyerName"`
	BuyerEmail      string     `bson:"buyer_email" json:"buyerEmail"`
	BuyerPhone      string     `bson:"buyer_phone" json:"buyerPhone"`
	ShippingAddress string     `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string     `bson:"payment_method" json:"paymentMethod"`
	Notes           string     `bson:"notes,omitempty" json:"notes,omitempty"`
}

type LineItem struct {
	ProductName string  `bson:"product_name" json:"productName"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
	SellerID    string  `bson:"seller_id" json:"sellerId"`
	ImageURL    string  `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

type Recipe struct {
	ID          string   `bson:"_id" json:"id"`
	SellerID    string   `bson:"seller_id" json:"sellerId"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	Ingredients []string `bson:"ingredients" json:"ingredients"`
	Steps       []string `bson:"steps" json:"steps"`
	ImageURL    string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	LikesCount  int      `bson:"likes_count" json:"likesCount"`
	CreatedAt   string   `bson:"created_at" json:"createdAt"`
	UpdatedAt   string   `bson:"updated_at" json:"updatedAt"`
}

// RecipeLike joins a user to a liked recipe. One document per
// (recipe, user) pair; likes_count on the recipe is the denormalized
// counter kept in sync transactionally.
type RecipeLike struct {
	ID        string `bson:"_id" json:"id"`
	RecipeID  string `bson:"recipe_id" json:"recipeId"`
	UserID    string `bson:"user_id" json:"userId"`
	CreatedAt string `bson:"created_at" json:"createdAt"`
}

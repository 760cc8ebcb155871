// dto.go
package dto

import (
	"smartkuliner-seller-service/internal/analytics"
	"smartkuliner-seller-service/internal/model"
)

type CreateRecipeRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Steps       []string `json:"steps" binding:"required,min=1"`
	ImageURL    string   `json:"imageUrl"`
}

type UpdateRecipeRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Steps       []string `json:"steps" binding:"required,min=1"`
	ImageURL    string   `json:"imageUrl"`
}

// SalesReportQuery binds the analytics query string. Month is 0-indexed
// and only meaningful for daily/weekly granularity.
type SalesReportQuery struct {
	Granularity string `form:"granularity" binding:"required,oneof=daily weekly monthly"`
	Year        int    `form:"year" binding:"required"`
	Month       *int   `form:"month" binding:"omitempty,min=0,max=11"`
}

type SalesReportResponse struct {
	Granularity    string             `json:"granularity"`
	Period         analytics.Window   `json:"period"`
	Buckets        []analytics.Bucket `json:"buckets"`
	Total          float64            `json:"total"`
	FormattedTotal string             `json:"formattedTotal"`
	PrevPeriod     analytics.Window   `json:"prevPeriod"`
	NextPeriod     analytics.Window   `json:"nextPeriod"`
}

// OrderView decorates an order with the workflow labels the dashboard
// renders: the current state's name and, when a forward transition
// exists, the action button label.
type OrderView struct {
	model.Order
	StatusLabel     string `json:"statusLabel"`
	NextActionLabel string `json:"nextActionLabel,omitempty"`
}

package request

// OrderFilterRequest represents order list parameters. Dates are calendar
// days in YYYY-MM-DD form.
type OrderFilterRequest struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

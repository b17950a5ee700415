package venues

type CreateVenueRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	City    string `json:"city" binding:"required,min=1,max=100"`
	Address string `json:"address" binding:"max=500"`
}

type CreateScreenRequest struct {
	Name string                   `json:"name" binding:"required,min=1,max=100"`
	Rows []CreateScreenRowRequest `json:"rows" binding:"required,min=1,dive"`
}

type CreateScreenRowRequest struct {
	RowLabel  string `json:"row_label" binding:"required,min=1,max=5"`
	SeatType  string `json:"seat_type" binding:"max=50"`
	SeatCount int    `json:"seat_count" binding:"required,min=1,max=100"`
}

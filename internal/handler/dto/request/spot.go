package request

type CreateSpotRequest struct {
	Street       string  `json:"street" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Province     string  `json:"province"`
	PostalCode   string  `json:"postal_code"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

type OperatingIntervalInput struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type SetOperatingHoursRequest struct {
	Intervals []OperatingIntervalInput `json:"intervals" binding:"required,dive"`
}

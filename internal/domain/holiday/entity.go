package holiday

import "time"

type Holiday struct {
	ID          string
	CompanyID   string
	HolidayDate time.Time
	Description string
	CreatedAt   time.Time
}

package holiday

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateHolidayRequest) (*HolidayResponse, error)
	List(ctx context.Context, from, to string) ([]*HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]UserResponse, error)
	Get(ctx context.Context, id int64) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	Delete(ctx context.Context, id int64) error
}

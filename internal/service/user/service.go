package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type CompanyLookup interface {
	GetByID(ctx context.Context, id int64) (company.Company, error)
}

type UserServiceImpl struct {
	tx database.Transactor
	user.UserRepository
	companies CompanyLookup
}

func NewUserService(tx database.Transactor, userRepository user.UserRepository, companies CompanyLookup) user.UserService {
	return &UserServiceImpl{
		tx:             tx,
		UserRepository: userRepository,
		companies:      companies,
	}
}

// HashPassword hashes password with bcrypt's default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	return s.list(ctx, auth.CompanyScope(ctx))
}

// ListByCompany implements user.UserService.
func (s *UserServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]user.UserResponse, error) {
	if !auth.InScope(ctx, companyID) {
		return []user.UserResponse{}, nil
	}
	return s.list(ctx, &companyID)
}

func (s *UserServiceImpl) list(ctx context.Context, companyID *int64) ([]user.UserResponse, error) {
	users, err := s.ListActive(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (user.UserResponse, error) {
	u, err := s.visibleUser(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	if err := s.checkAssignment(ctx, req.CompanyID, req.Role); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.ExistsByEmail(ctx, req.CompanyID, req.Email, 0)
	if err != nil {
		return user.UserResponse{}, err
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		CompanyID:    req.CompanyID,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		Active:       true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.Info("User created", "user_id", created.ID, "company_id", created.CompanyID, "role", created.Role)
	return user.ToResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if !auth.InScope(ctx, existing.CompanyID) {
		return user.ErrUserNotFound
	}
	if err := s.checkAssignment(ctx, req.CompanyID, req.Role); err != nil {
		return err
	}

	exists, err := s.ExistsByEmail(ctx, req.CompanyID, req.Email, req.ID)
	if err != nil {
		return err
	}
	if exists {
		return user.ErrUserEmailExists
	}

	existing.CompanyID = req.CompanyID
	existing.Email = req.Email
	existing.FullName = req.FullName
	existing.Role = req.Role
	if req.Active != nil {
		existing.Active = *req.Active
	}

	var hash string
	if req.Password != nil && *req.Password != "" {
		if hash, err = HashPassword(*req.Password); err != nil {
			return err
		}
	}

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.UserRepository.Update(ctx, existing); err != nil {
			return err
		}
		if hash != "" {
			return s.UpdatePassword(ctx, existing.ID, hash)
		}
		return nil
	})
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.visibleUser(ctx, id); err != nil {
		return err
	}
	return s.SoftDelete(ctx, id)
}

func (s *UserServiceImpl) visibleUser(ctx context.Context, id int64) (user.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	if !u.Active || !auth.InScope(ctx, u.CompanyID) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// checkAssignment verifies the target company and that only admins grant admin.
func (s *UserServiceImpl) checkAssignment(ctx context.Context, companyID int64, role user.Role) error {
	if p, ok := auth.PrincipalFromContext(ctx); ok && role == user.RoleAdmin && p.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	if !auth.InScope(ctx, companyID) {
		return user.ErrCompanyNotActive
	}

	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return user.ErrCompanyNotActive
		}
		return err
	}
	if !comp.Active {
		return user.ErrCompanyNotActive
	}
	return nil
}

package user

import (
	"context"
	"fmt"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context) (user.ListEmployeeResponse, error) {
	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return user.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, user.EmployeeResponse{
			ID:    employee.ID,
			Name:  employee.Name,
			Email: employee.Email,
		})
	}

	return user.ListEmployeeResponse{Employees: responses}, nil
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return fmt.Errorf("user_id claim is missing or invalid")
	}

	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.ErrUserNotFound
	}

	if userData.PasswordHash == nil {
		return user.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrCurrentPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

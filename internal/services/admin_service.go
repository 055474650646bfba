package services

import (
	"context"
	"strings"

	"modernband/internal/backend"
	"modernband/internal/domain"
	"modernband/internal/domain/models"
	"modernband/internal/utils"
)

type AdminService struct {
	Admins    AdminDirectory
	RequestID string
}

// Login checks the form, signs in against the backend and requires an admin account back.
func (s AdminService) Login(ctx context.Context, req models.LoginRequest) (models.Admin, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateForm(req); err != nil {
		return models.Admin{}, err
	}
	admin, err := s.Admins.AdminLogin(ctx, req.Username, req.Password)
	if err != nil {
		utils.LogError(s.RequestID, "admin", "login", err)
		derr := backend.AsDomain(err)
		if domain.IsUnauthorized(derr) || domain.IsNotFound(derr) {
			return models.Admin{}, domain.UnauthorizedError{Msg: err.Error(), Err: err}
		}
		return models.Admin{}, derr
	}
	if admin.Username == "" {
		return models.Admin{}, domain.UpstreamError{Msg: "Invalid response from server"}
	}
	if !admin.IsAdmin {
		return models.Admin{}, domain.UnauthorizedError{Msg: "This account is not an administrator"}
	}
	utils.LogEvent(s.RequestID, "admin", "login", "username="+admin.Username)
	return admin, nil
}

func (s AdminService) CreateAdmin(ctx context.Context, token string, req models.AdminRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateForm(req); err != nil {
		return err
	}
	if err := s.Admins.CreateAdmin(ctx, token, req); err != nil {
		utils.LogError(s.RequestID, "admin", "create_admin", err)
		return backend.AsDomain(err)
	}
	utils.LogEvent(s.RequestID, "admin", "create_admin", "username="+req.Username)
	return nil
}

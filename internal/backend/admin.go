package backend

import (
	"context"
	"net/http"
	"net/url"

	"modernband/internal/domain/models"
)

func (c *Client) AdminLogin(ctx context.Context, username, password string) (models.Admin, error) {
	var out struct {
		Admin models.Admin `json:"admin"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/signin", "", body, &out); err != nil {
		return models.Admin{}, err
	}
	return out.Admin, nil
}

func (c *Client) CreateAdmin(ctx context.Context, token string, req models.AdminRequest) error {
	req.ConfirmPassword = ""
	return c.do(ctx, http.MethodPost, "/admin", token, req, nil)
}

func (c *Client) ListEmployees(ctx context.Context, token string) ([]models.Employee, error) {
	var out struct {
		Employees []models.Employee `json:"employees"`
	}
	if err := c.do(ctx, http.MethodGet, "/employees", token, nil, &out); err != nil {
		return nil, err
	}
	if out.Employees == nil {
		out.Employees = []models.Employee{}
	}
	return out.Employees, nil
}

// GetEmployee is also used by the public statement page, where token is empty.
func (c *Client) GetEmployee(ctx context.Context, token, username string) (models.Employee, error) {
	var out models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(username), token, nil, &out); err != nil {
		return models.Employee{}, err
	}
	return out, nil
}

func (c *Client) SaveEmployee(ctx context.Context, token string, req models.EmployeeRequest) (models.Employee, error) {
	req.ConfirmPassword = ""
	var out struct {
		Employee models.Employee `json:"employee"`
	}
	if err := c.do(ctx, http.MethodPost, "/employees", token, req, &out); err != nil {
		return models.Employee{}, err
	}
	return out.Employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, token, username string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(username), token, nil, nil)
}

func (c *Client) AddPayment(ctx context.Context, token, username string, req models.PaymentRequest) (models.Payment, error) {
	var out struct {
		Payment models.Payment `json:"payment"`
	}
	endpoint := "/employees/" + url.PathEscape(username) + "/payments"
	if err := c.do(ctx, http.MethodPost, endpoint, token, req, &out); err != nil {
		return models.Payment{}, err
	}
	return out.Payment, nil
}

func (c *Client) DeletePayment(ctx context.Context, token, username, paymentID string) error {
	endpoint := "/employees/" + url.PathEscape(username) + "/payments/" + url.PathEscape(paymentID)
	return c.do(ctx, http.MethodDelete, endpoint, token, nil, nil)
}

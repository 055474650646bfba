package services

import (
	"context"
	"fmt"
	"strings"

	"modernband/internal/backend"
	"modernband/internal/domain"
	"modernband/internal/domain/models"
	"modernband/internal/utils"
)

// EmployeeTotals is what an employee has been paid and what is still owed.
type EmployeeTotals struct {
	TotalToBePaid    float64 `json:"totalToBePaid"`
	Advance          float64 `json:"advance"`
	TotalPaid        float64 `json:"totalPaid"`
	TotalWithAdvance float64 `json:"totalWithAdvance"`
	Remaining        float64 `json:"remaining"`
}

// TotalsFor sums the recorded payments; the advance counts towards what was paid.
func TotalsFor(e models.Employee) EmployeeTotals {
	var paid float64
	for _, p := range e.Payments {
		paid += p.AmountPaid.Float()
	}
	advance := e.TotalAmountPaidInAdvance.Float()
	toBePaid := e.TotalAmountToBePaid.Float()
	return EmployeeTotals{
		TotalToBePaid:    toBePaid,
		Advance:          advance,
		TotalPaid:        paid,
		TotalWithAdvance: paid + advance,
		Remaining:        toBePaid - (paid + advance),
	}
}

func SumEmployeeTotals(list []models.Employee) EmployeeTotals {
	var out EmployeeTotals
	for _, e := range list {
		t := TotalsFor(e)
		out.TotalToBePaid += t.TotalToBePaid
		out.Advance += t.Advance
		out.TotalPaid += t.TotalPaid
		out.TotalWithAdvance += t.TotalWithAdvance
		out.Remaining += t.Remaining
	}
	return out
}

type EmployeeFilter struct {
	Name     string
	Username string
	Phone    string
}

func (f EmployeeFilter) Apply(list []models.Employee) []models.Employee {
	out := make([]models.Employee, 0, len(list))
	for _, e := range list {
		if !utils.ContainsFold(e.Name, f.Name) || !utils.ContainsFold(e.Username, f.Username) {
			continue
		}
		if f.Phone != "" && !strings.Contains(e.MobileNumber, strings.TrimSpace(f.Phone)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// EmployeeView is an employee together with the derived totals.
type EmployeeView struct {
	models.Employee
	Totals EmployeeTotals `json:"totals"`
}

func NewEmployeeView(e models.Employee) EmployeeView {
	if e.Payments == nil {
		e.Payments = []models.Payment{}
	}
	return EmployeeView{Employee: e, Totals: TotalsFor(e)}
}

type EmployeeService struct {
	Employees EmployeeDirectory
	Token     string
	RequestID string
}

func (s EmployeeService) List(ctx context.Context, f EmployeeFilter) ([]EmployeeView, error) {
	list, err := s.Employees.ListEmployees(ctx, s.Token)
	if err != nil {
		utils.LogError(s.RequestID, "employees", "list", err)
		return nil, backend.AsDomain(err)
	}
	filtered := f.Apply(list)
	out := make([]EmployeeView, 0, len(filtered))
	for _, e := range filtered {
		out = append(out, NewEmployeeView(e))
	}
	return out, nil
}

func (s EmployeeService) Get(ctx context.Context, username string) (EmployeeView, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return EmployeeView{}, domain.ValidationError{Field: "username", Msg: "Please enter a username"}
	}
	e, err := s.Employees.GetEmployee(ctx, s.Token, username)
	if err != nil {
		utils.LogError(s.RequestID, "employees", "get", err)
		return EmployeeView{}, backend.AsDomain(err)
	}
	return NewEmployeeView(e), nil
}

func (s EmployeeService) Create(ctx context.Context, req models.EmployeeRequest) (models.Employee, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateForm(req); err != nil {
		return models.Employee{}, err
	}
	e, err := s.Employees.SaveEmployee(ctx, s.Token, req)
	if err != nil {
		utils.LogError(s.RequestID, "employees", "create", err)
		return models.Employee{}, backend.AsDomain(err)
	}
	utils.LogEvent(s.RequestID, "employees", "create", "username="+req.Username)
	return e, nil
}

func (s EmployeeService) Delete(ctx context.Context, username string) error {
	if err := s.Employees.DeleteEmployee(ctx, s.Token, username); err != nil {
		utils.LogError(s.RequestID, "employees", "delete", err)
		return backend.AsDomain(err)
	}
	utils.LogEvent(s.RequestID, "employees", "delete", "username="+username)
	return nil
}

func (s EmployeeService) AddPayment(ctx context.Context, username string, req models.PaymentRequest) (models.Payment, error) {
	req.Date = utils.NormalizeDate(req.Date)
	if err := validateForm(req); err != nil {
		return models.Payment{}, err
	}
	p, err := s.Employees.AddPayment(ctx, s.Token, username, req)
	if err != nil {
		utils.LogError(s.RequestID, "employees", "add_payment", err)
		return models.Payment{}, backend.AsDomain(err)
	}
	utils.LogEvent(s.RequestID, "employees", "add_payment", fmt.Sprintf("username=%s amount=%.2f", username, req.AmountPaid))
	return p, nil
}

func (s EmployeeService) DeletePayment(ctx context.Context, username, paymentID string) error {
	if err := s.Employees.DeletePayment(ctx, s.Token, username, paymentID); err != nil {
		utils.LogError(s.RequestID, "employees", "delete_payment", err)
		return backend.AsDomain(err)
	}
	utils.LogEvent(s.RequestID, "employees", "delete_payment", "username="+username+" payment_id="+paymentID)
	return nil
}

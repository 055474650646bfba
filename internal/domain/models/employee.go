package models

import "modernband/internal/domain"

type Employee struct {
	ID                       domain.Stringish `json:"id"`
	Name                     string           `json:"name"`
	Username                 string           `json:"username"`
	Email                    string           `json:"email"`
	MobileNumber             string           `json:"mobileNumber"`
	Address                  string           `json:"address"`
	TotalAmountToBePaid      domain.Amount    `json:"totalAmountToBePaid"`
	TotalAmountPaidInAdvance domain.Amount    `json:"totalAmountPaidInAdvance"`
	IsEmployee               bool             `json:"isEmployee"`
	CreatedAt                string           `json:"createdAt,omitempty"`
	UpdatedAt                string           `json:"updatedAt,omitempty"`
	Payments                 []Payment        `json:"payments"`
}

type Payment struct {
	ID         domain.Stringish `json:"id"`
	AmountPaid domain.Amount    `json:"amountPaid"`
	Date       string           `json:"date"`
	EmployeeID domain.Stringish `json:"employeeId,omitempty"`
	CreatedAt  string           `json:"createdAt,omitempty"`
}

// EmployeeRequest is the settings form for registering an employee.
type EmployeeRequest struct {
	Name                     string  `json:"name" form:"name" validate:"min=3"`
	MobileNumber             string  `json:"mobileNumber" form:"mobileNumber" validate:"phone"`
	Email                    string  `json:"email" form:"email" validate:"required,email"`
	Address                  string  `json:"address" form:"address" validate:"min=5"`
	TotalAmountToBePaid      float64 `json:"totalAmountToBePaid" form:"totalAmountToBePaid" validate:"gte=0"`
	TotalAmountPaidInAdvance float64 `json:"totalAmountPaidInAdvance" form:"totalAmountPaidInAdvance" validate:"gte=0,ltefield=TotalAmountToBePaid"`
	Username                 string  `json:"username" form:"username" validate:"min=3"`
	Password                 string  `json:"password" form:"password" validate:"min=6"`
	ConfirmPassword          string  `json:"confirmPassword,omitempty" form:"confirmPassword" validate:"eqfield=Password"`
}

// PaymentRequest records one payout to an employee.
type PaymentRequest struct {
	AmountPaid float64 `json:"amountPaid" form:"amountPaid" validate:"gte=1"`
	Date       string  `json:"date" form:"date" validate:"required,isodate"`
}

package customers

type CreateCustomerRequest struct {
	Name     string  `json:"name" validate:"max=200"`
	Code     *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Kana     *string `json:"kana,omitempty" validate:"omitempty,max=200"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,max=200"`
	Postal   *string `json:"postal,omitempty" validate:"omitempty,max=20"`
	Address1 *string `json:"address1,omitempty" validate:"omitempty,max=200"`
	Address2 *string `json:"address2,omitempty" validate:"omitempty,max=200"`
	Note     *string `json:"note,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ListOrder selects the ordering of List.
type ListOrder string

const (
	OrderCreated ListOrder = "created"
	OrderName    ListOrder = "name"
)

type ListCustomersRequest struct {
	Order  ListOrder
	Search string
}

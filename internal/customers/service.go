package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/unchin/unchin/internal/platform/httpx"
	"github.com/unchin/unchin/internal/shared"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: httpx.NewValidator()}
}

// Create registers a customer. A blank code is replaced by the next
// sequential C###### code, computed under the repository's code lock.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, httpx.ValidationError(err)
	}

	customer := Customer{
		Code:     shared.TrimToNil(req.Code),
		Name:     name,
		Kana:     shared.TrimToNil(req.Kana),
		Phone:    shared.TrimToNil(req.Phone),
		Email:    shared.TrimToNil(req.Email),
		Postal:   shared.TrimToNil(req.Postal),
		Address1: shared.TrimToNil(req.Address1),
		Address2: shared.TrimToNil(req.Address2),
		Note:     shared.TrimToNil(req.Note),
		IsActive: true,
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	var created Customer
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		if customer.Code == nil {
			if err := repo.LockCodes(ctx); err != nil {
				return fmt.Errorf("lock customer codes: %w", err)
			}
			recent, err := repo.RecentCodes(ctx, CodeLookback)
			if err != nil {
				return fmt.Errorf("load recent codes: %w", err)
			}
			code := NextCode(recent)
			customer.Code = &code
		}
		var err error
		created, err = repo.Create(ctx, customer)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &created, nil
}

// List returns every customer, optionally narrowed by a free-text query.
func (s *Service) List(ctx context.Context, req ListCustomersRequest) ([]Customer, error) {
	list, err := s.repo.List(ctx, req.Order)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if list == nil {
		list = []Customer{}
	}
	return Filter(list, req.Search), nil
}

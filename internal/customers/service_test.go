package customers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchin/unchin/internal/shared"
)

func strPtr(s string) *string { return &s }

func TestCreateRejectsBlankNameBeforeStore(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), CreateCustomerRequest{Name: name})
		require.ErrorIs(t, err, ErrNameRequired)
		assert.ErrorIs(t, err, shared.ErrValidation)
	}
	assert.Empty(t, repo.customers)
	assert.Zero(t, repo.lockCalls)
}

func TestCreateGeneratesSequentialCodes(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateCustomerRequest{Name: "山田運送"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateCustomerRequest{Name: "佐藤物流"})
	require.NoError(t, err)

	assert.Equal(t, "C000001", *first.Code)
	assert.Equal(t, "C000002", *second.Code)
	assert.Equal(t, 2, repo.lockCalls)

	codeRe := regexp.MustCompile(`^C\d{6}$`)
	assert.Regexp(t, codeRe, *first.Code)
	a, _ := strconv.Atoi((*first.Code)[1:])
	b, _ := strconv.Atoi((*second.Code)[1:])
	assert.Equal(t, a+1, b)
}

func TestCreateCodeExceedsMaxOfLookbackWindow(t *testing.T) {
	repo := newMockRepository()
	repo.seed("C000900")
	for i := 1; i <= CodeLookback; i++ {
		repo.seed(fmt.Sprintf("C%06d", i))
	}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "新規"})
	require.NoError(t, err)

	// C000900 is the 51st most recent and falls outside the window.
	assert.Equal(t, fmt.Sprintf("C%06d", CodeLookback+1), *created.Code)
}

func TestCreateUsesExplicitCodeTrimmed(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "A", Code: strPtr("  VIP-1 ")})
	require.NoError(t, err)

	assert.Equal(t, "VIP-1", *created.Code)
	assert.Zero(t, repo.lockCalls)
}

func TestCreateBlankCodeIsGenerated(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "A", Code: strPtr("   ")})
	require.NoError(t, err)
	assert.Equal(t, "C000001", *created.Code)
}

func TestCreateDuplicateCodeSurfacesWithoutRetry(t *testing.T) {
	repo := newMockRepository()
	repo.seed("C000010")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "dup", Code: strPtr("C000010")})
	require.ErrorIs(t, err, ErrDuplicateCode)
	assert.Len(t, repo.customers, 1)
}

func TestCreateNormalisesOptionalFields(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:     "  東京急便  ",
		Kana:     strPtr(" トウキョウキュウビン "),
		Phone:    strPtr("   "),
		Address1: strPtr(""),
		Note:     strPtr(" 月末締め "),
	})
	require.NoError(t, err)

	assert.Equal(t, "東京急便", created.Name)
	assert.Equal(t, "トウキョウキュウビン", *created.Kana)
	assert.Nil(t, created.Phone)
	assert.Nil(t, created.Address1)
	assert.Nil(t, created.Email)
	assert.Equal(t, "月末締め", *created.Note)
	assert.True(t, created.IsActive)
}

func TestCreateHonoursInactiveFlag(t *testing.T) {
	svc := NewService(newMockRepository())
	inactive := false

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "休眠", IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestCreateWrapsStoreErrors(t *testing.T) {
	repo := newMockRepository()
	repo.createError = errors.New("connection reset")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create customer")
	assert.NotErrorIs(t, err, shared.ErrValidation)
}

func TestListOrdersAndFilters(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()
	for _, name := range []string{"ヤマダ運輸", "Abc Logistics", "佐藤商店"} {
		_, err := svc.Create(ctx, CreateCustomerRequest{Name: name})
		require.NoError(t, err)
	}

	newest, err := svc.List(ctx, ListCustomersRequest{Order: OrderCreated})
	require.NoError(t, err)
	require.Len(t, newest, 3)
	assert.Equal(t, "佐藤商店", newest[0].Name)

	filtered, err := svc.List(ctx, ListCustomersRequest{Search: "ＡＢＣ"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Abc Logistics", filtered[0].Name)
}

package master

import (
	"context"
	"testing"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/bank"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/customfield"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/department"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/designation"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/phonecode"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeDepartmentRepo struct {
	nextID int64
	rows   map[int64]department.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{rows: make(map[int64]department.Department)}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, e department.Department) (department.Department, error) {
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.rows[e.ID] = e
	return e, nil
}

func (f *fakeDepartmentRepo) GetActiveByID(_ context.Context, id int64) (department.Department, error) {
	e, ok := f.rows[id]
	if !ok || e.Deleted {
		return department.Department{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeDepartmentRepo) ListActive(_ context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, e := range f.rows {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, e department.Department) error {
	stored, ok := f.rows[e.ID]
	if !ok || stored.Deleted {
		return pgx.ErrNoRows
	}
	e.UpdatedAt = time.Now()
	f.rows[e.ID] = e
	return nil
}

func (f *fakeDepartmentRepo) SoftDelete(_ context.Context, id int64) error {
	e, ok := f.rows[id]
	if !ok || e.Deleted {
		return pgx.ErrNoRows
	}
	e.Deleted = true
	f.rows[id] = e
	return nil
}

func (f *fakeDepartmentRepo) ExistsActiveByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, e := range f.rows {
		if !e.Deleted && e.Name == name && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDepartmentRepo) ExistsActiveByID(_ context.Context, id int64) (bool, error) {
	e, ok := f.rows[id]
	return ok && !e.Deleted, nil
}

type fakeDesignationRepo struct {
	nextID int64
	rows   map[int64]designation.Designation
}

func newFakeDesignationRepo() *fakeDesignationRepo {
	return &fakeDesignationRepo{rows: make(map[int64]designation.Designation)}
}

func (f *fakeDesignationRepo) Create(_ context.Context, d designation.Designation) (designation.Designation, error) {
	f.nextID++
	d.ID = f.nextID
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	f.rows[d.ID] = d
	return d, nil
}

func (f *fakeDesignationRepo) GetActiveByID(_ context.Context, id int64) (designation.Designation, error) {
	d, ok := f.rows[id]
	if !ok || d.Deleted {
		return designation.Designation{}, pgx.ErrNoRows
	}
	return d, nil
}

func (f *fakeDesignationRepo) ListActive(_ context.Context) ([]designation.Designation, error) {
	var out []designation.Designation
	for _, d := range f.rows {
		if !d.Deleted {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDesignationRepo) Update(_ context.Context, d designation.Designation) error {
	stored, ok := f.rows[d.ID]
	if !ok || stored.Deleted {
		return pgx.ErrNoRows
	}
	d.UpdatedAt = time.Now()
	f.rows[d.ID] = d
	return nil
}

func (f *fakeDesignationRepo) SoftDelete(_ context.Context, id int64) error {
	d, ok := f.rows[id]
	if !ok || d.Deleted {
		return pgx.ErrNoRows
	}
	d.Deleted = true
	f.rows[id] = d
	return nil
}

func (f *fakeDesignationRepo) ExistsActiveByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, d := range f.rows {
		if !d.Deleted && d.Name == name && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBankRepo struct {
	nextID int64
	rows   map[int64]bank.Bank
}

func newFakeBankRepo() *fakeBankRepo {
	return &fakeBankRepo{rows: make(map[int64]bank.Bank)}
}

func (f *fakeBankRepo) Create(_ context.Context, b bank.Bank) (bank.Bank, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.rows[b.ID] = b
	return b, nil
}

func (f *fakeBankRepo) GetActiveByID(_ context.Context, id int64) (bank.Bank, error) {
	b, ok := f.rows[id]
	if !ok || b.Deleted {
		return bank.Bank{}, pgx.ErrNoRows
	}
	return b, nil
}

func (f *fakeBankRepo) ListActive(_ context.Context) ([]bank.Bank, error) {
	var out []bank.Bank
	for _, b := range f.rows {
		if !b.Deleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBankRepo) Update(_ context.Context, b bank.Bank) error {
	stored, ok := f.rows[b.ID]
	if !ok || stored.Deleted {
		return pgx.ErrNoRows
	}
	b.UpdatedAt = time.Now()
	f.rows[b.ID] = b
	return nil
}

func (f *fakeBankRepo) SoftDelete(_ context.Context, id int64) error {
	b, ok := f.rows[id]
	if !ok || b.Deleted {
		return pgx.ErrNoRows
	}
	b.Deleted = true
	f.rows[id] = b
	return nil
}

func (f *fakeBankRepo) ExistsActiveByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, b := range f.rows {
		if !b.Deleted && b.Name == name && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBankRepo) ExistsActiveBySwiftCode(_ context.Context, swiftCode string, excludeID int64) (bool, error) {
	for _, b := range f.rows {
		if !b.Deleted && b.SwiftCode != nil && *b.SwiftCode == swiftCode && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBankRepo) ExistsActiveByID(_ context.Context, id int64) (bool, error) {
	b, ok := f.rows[id]
	return ok && !b.Deleted, nil
}

type fakePhoneCodeRepo struct {
	nextID int64
	rows   map[int64]phonecode.PhoneCountryCode
}

func newFakePhoneCodeRepo() *fakePhoneCodeRepo {
	return &fakePhoneCodeRepo{rows: make(map[int64]phonecode.PhoneCountryCode)}
}

func (f *fakePhoneCodeRepo) Create(_ context.Context, c phonecode.PhoneCountryCode) (phonecode.PhoneCountryCode, error) {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.rows[c.ID] = c
	return c, nil
}

func (f *fakePhoneCodeRepo) GetActiveByID(_ context.Context, id int64) (phonecode.PhoneCountryCode, error) {
	c, ok := f.rows[id]
	if !ok || c.Deleted {
		return phonecode.PhoneCountryCode{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakePhoneCodeRepo) ListActive(_ context.Context) ([]phonecode.PhoneCountryCode, error) {
	var out []phonecode.PhoneCountryCode
	for _, c := range f.rows {
		if !c.Deleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakePhoneCodeRepo) Update(_ context.Context, c phonecode.PhoneCountryCode) error {
	stored, ok := f.rows[c.ID]
	if !ok || stored.Deleted {
		return pgx.ErrNoRows
	}
	c.UpdatedAt = time.Now()
	f.rows[c.ID] = c
	return nil
}

func (f *fakePhoneCodeRepo) SoftDelete(_ context.Context, id int64) error {
	c, ok := f.rows[id]
	if !ok || c.Deleted {
		return pgx.ErrNoRows
	}
	c.Deleted = true
	f.rows[id] = c
	return nil
}

func (f *fakePhoneCodeRepo) ExistsActiveByCode(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, c := range f.rows {
		if !c.Deleted && c.Code == code && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePhoneCodeRepo) ExistsActiveByID(_ context.Context, id int64) (bool, error) {
	c, ok := f.rows[id]
	return ok && !c.Deleted, nil
}

type fakeCustomFieldRepo struct {
	nextID int64
	rows   map[int64]customfield.CustomFieldConfig
}

func newFakeCustomFieldRepo() *fakeCustomFieldRepo {
	return &fakeCustomFieldRepo{rows: make(map[int64]customfield.CustomFieldConfig)}
}

func (f *fakeCustomFieldRepo) Create(_ context.Context, c customfield.CustomFieldConfig) (customfield.CustomFieldConfig, error) {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.rows[c.ID] = c
	return c, nil
}

func (f *fakeCustomFieldRepo) GetActiveByID(_ context.Context, id int64) (customfield.CustomFieldWithType, error) {
	c, ok := f.rows[id]
	if !ok || c.Deleted {
		return customfield.CustomFieldWithType{}, pgx.ErrNoRows
	}
	return customfield.CustomFieldWithType{CustomFieldConfig: c}, nil
}

func (f *fakeCustomFieldRepo) ListActive(_ context.Context) ([]customfield.CustomFieldWithType, error) {
	var out []customfield.CustomFieldWithType
	for _, c := range f.rows {
		if !c.Deleted {
			out = append(out, customfield.CustomFieldWithType{CustomFieldConfig: c})
		}
	}
	return out, nil
}

func (f *fakeCustomFieldRepo) ListSelected(_ context.Context) ([]customfield.CustomFieldWithType, error) {
	var out []customfield.CustomFieldWithType
	for _, c := range f.rows {
		if !c.Deleted && c.IsSelected {
			out = append(out, customfield.CustomFieldWithType{CustomFieldConfig: c})
		}
	}
	return out, nil
}

func (f *fakeCustomFieldRepo) Update(_ context.Context, c customfield.CustomFieldConfig) error {
	stored, ok := f.rows[c.ID]
	if !ok || stored.Deleted {
		return pgx.ErrNoRows
	}
	c.UpdatedAt = time.Now()
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCustomFieldRepo) SoftDelete(_ context.Context, id int64) error {
	c, ok := f.rows[id]
	if !ok || c.Deleted {
		return pgx.ErrNoRows
	}
	c.Deleted = true
	f.rows[id] = c
	return nil
}

func (f *fakeCustomFieldRepo) ExistsActiveByFieldKey(_ context.Context, fieldKey string, excludeID int64) (bool, error) {
	for _, c := range f.rows {
		if !c.Deleted && c.FieldKey == fieldKey && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newTestService() (*masterServiceImpl, *fakeDepartmentRepo, *fakeDesignationRepo, *fakeBankRepo, *fakePhoneCodeRepo) {
	departments := newFakeDepartmentRepo()
	designations := newFakeDesignationRepo()
	banks := newFakeBankRepo()
	phoneCodes := newFakePhoneCodeRepo()

	svc := &masterServiceImpl{
		departmentRepo:  departments,
		designationRepo: designations,
		bankRepo:        banks,
		phoneCodeRepo:   phoneCodes,
		customFieldRepo: newFakeCustomFieldRepo(),
	}
	return svc, departments, designations, banks, phoneCodes
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func ptr(s string) *string { return &s }

// ===== DEPARTMENTS =====

func TestCreateDepartment_DuplicateActiveName(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Engineering")})
	require.NoError(t, err)

	_, err = svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Engineering")})
	details := fieldErrors(t, err)
	assert.Equal(t, "Department name already exists.", details["department_name"])
}

func TestCreateDepartment_NameFreedBySoftDelete(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Engineering")})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))

	again, err := svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Engineering")})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestUpdateDepartment_SameNameExcludesSelf(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Finance")})
	require.NoError(t, err)

	// Re-submitting the row's own name is not a conflict.
	updated, err := svc.UpdateDepartment(ctx, created.ID, department.DepartmentPayload{Name: ptr("Finance")})
	require.NoError(t, err)
	assert.Equal(t, "Finance", updated.Name)

	// Another active row's name is.
	_, err = svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Operations")})
	require.NoError(t, err)
	_, err = svc.UpdateDepartment(ctx, created.ID, department.DepartmentPayload{Name: ptr("Operations")})
	details := fieldErrors(t, err)
	assert.Equal(t, "Department name already exists.", details["department_name"])
}

func TestDepartment_SoftDeleteHidesRow(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Legal")})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))

	_, err = svc.GetDepartment(ctx, created.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	list, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.DeleteDepartment(ctx, created.ID), department.ErrDepartmentNotFound)
}

func TestCreateDepartment_NameRequired(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CreateDepartment(context.Background(), department.DepartmentPayload{Name: ptr("   ")})
	details := fieldErrors(t, err)
	assert.Equal(t, "Department name is required.", details["department_name"])
}

// ===== DESIGNATIONS =====

func TestCreateDesignation_UnknownDepartment(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	deptID := int64(7)

	_, err := svc.CreateDesignation(context.Background(), designation.DesignationPayload{
		Name:         ptr("Senior Accountant"),
		DepartmentID: &deptID,
	})
	details := fieldErrors(t, err)
	assert.Equal(t, "Department with id 7 does not exist.", details["department"])
}

func TestCreateDesignation_WithActiveDepartment(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	dept, err := svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Finance")})
	require.NoError(t, err)

	created, err := svc.CreateDesignation(ctx, designation.DesignationPayload{
		Name:         ptr("Senior Accountant"),
		Description:  ptr("Handles ledger reviews"),
		DepartmentID: &dept.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Accountant", created.Name)
	assert.Equal(t, "Handles ledger reviews", created.Description)
	require.NotNil(t, created.DepartmentID)
	assert.Equal(t, dept.ID, *created.DepartmentID)
}

func TestCreateDesignation_SoftDeletedDepartmentRejected(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	dept, err := svc.CreateDepartment(ctx, department.DepartmentPayload{Name: ptr("Finance")})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDepartment(ctx, dept.ID))

	_, err = svc.CreateDesignation(ctx, designation.DesignationPayload{
		Name:         ptr("Senior Accountant"),
		DepartmentID: &dept.ID,
	})
	details := fieldErrors(t, err)
	assert.Contains(t, details["department"], "does not exist.")
}

// ===== BANKS =====

func TestCreateBank_DuplicateSwiftCode(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBank(ctx, bank.BankPayload{Name: ptr("Emirates NBD"), SwiftCode: ptr("EBILAEAD")})
	require.NoError(t, err)

	_, err = svc.CreateBank(ctx, bank.BankPayload{Name: ptr("Some Other Bank"), SwiftCode: ptr("EBILAEAD")})
	details := fieldErrors(t, err)
	assert.Equal(t, "Swift code already exists.", details["swift_code"])
}

func TestUpdateBank_KeepsSwiftCodeWhenOmitted(t *testing.T) {
	svc, _, _, banks, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateBank(ctx, bank.BankPayload{Name: ptr("Emirates NBD"), SwiftCode: ptr("EBILAEAD")})
	require.NoError(t, err)

	updated, err := svc.UpdateBank(ctx, created.ID, bank.BankPayload{Name: ptr("Emirates NBD Bank")})
	require.NoError(t, err)
	assert.Equal(t, "Emirates NBD Bank", updated.Name)
	require.NotNil(t, updated.SwiftCode)
	assert.Equal(t, "EBILAEAD", *updated.SwiftCode)

	stored := banks.rows[created.ID]
	require.NotNil(t, stored.SwiftCode)
	assert.Equal(t, "EBILAEAD", *stored.SwiftCode)
}

func TestGetBank_NotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.GetBank(context.Background(), 404)
	assert.ErrorIs(t, err, bank.ErrBankNotFound)
}

// ===== CUSTOM FIELDS =====

func boolPtr(b bool) *bool { return &b }

func TestUpdateCustomField_AbsentFlagsResetToFalse(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCustomField(ctx, customfield.CustomFieldPayload{
		FieldKey:   ptr("badge_color"),
		FieldLabel: ptr("Badge color"),
		IsSelected: boolPtr(true),
		IsRequired: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, created.IsSelected)
	assert.True(t, created.IsRequired)

	// Omitting the flags on update writes the defaults, not the stored values.
	updated, err := svc.UpdateCustomField(ctx, created.ID, customfield.CustomFieldPayload{
		FieldKey:   ptr("badge_color"),
		FieldLabel: ptr("Badge color"),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsSelected)
	assert.False(t, updated.IsRequired)

	selected, err := svc.ListSelectedCustomFields(ctx)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

// ===== COUNTRY CODES =====

func TestCreateCountryCode_MissingFields(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CreateCountryCode(context.Background(), phonecode.PhoneCountryCodePayload{})
	details := fieldErrors(t, err)
	assert.Equal(t, "Country is required.", details["country"])
	assert.Equal(t, "Country code is required.", details["code"])
}

func TestCreateCountryCode_DuplicateCode(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateCountryCode(ctx, phonecode.PhoneCountryCodePayload{Country: ptr("United Arab Emirates"), Code: ptr("+971")})
	require.NoError(t, err)

	_, err = svc.CreateCountryCode(ctx, phonecode.PhoneCountryCodePayload{Country: ptr("UAE"), Code: ptr("+971")})
	details := fieldErrors(t, err)
	assert.Equal(t, "Country code already exists.", details["code"])
}

func TestListCountryCodeDropdown(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCountryCode(ctx, phonecode.PhoneCountryCodePayload{Country: ptr("United Arab Emirates"), Code: ptr("+971")})
	require.NoError(t, err)

	deleted, err := svc.CreateCountryCode(ctx, phonecode.PhoneCountryCodePayload{Country: ptr("India"), Code: ptr("+91")})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCountryCode(ctx, deleted.ID))

	options, err := svc.ListCountryCodeDropdown(ctx)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, created.ID, options[0].ID)
	assert.Equal(t, "+971", options[0].Value)
}

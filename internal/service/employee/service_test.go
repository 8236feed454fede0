package employee

import (
	"context"
	"errors"
	"io"
	"maps"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/attachment"
	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/domain/user"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ===== IN-MEMORY FAKES =====

type fakeEmployeeRepo struct {
	nextID int64
	rows   map[int64]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{rows: make(map[int64]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.rows[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetActiveByID(_ context.Context, id int64) (employee.Employee, error) {
	e, ok := f.rows[id]
	if !ok || e.Deleted {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.rows {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	stored, ok := f.rows[e.ID]
	if !ok || stored.Deleted {
		return pgx.ErrNoRows
	}
	e.UpdatedAt = time.Now()
	f.rows[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id int64) error {
	e, ok := f.rows[id]
	if !ok || e.Deleted {
		return pgx.ErrNoRows
	}
	e.Deleted = true
	f.rows[id] = e
	return nil
}

func (f *fakeEmployeeRepo) ListVisaExpiring(_ context.Context, from, to time.Time) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.rows {
		if e.Deleted || e.VisaExpiry == nil {
			continue
		}
		if e.VisaExpiry.Before(from) || e.VisaExpiry.After(to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VisaExpiry.Before(*out[j].VisaExpiry) })
	return out, nil
}

type fakeUserRepo struct {
	nextID int64
	rows   map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.nextID++
	u.ID = f.nextID
	f.rows[u.Username] = u
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := f.rows[username]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

type fakeAttachmentRepo struct {
	nextID int64
	rows   map[int64]attachment.Attachment
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{rows: make(map[int64]attachment.Attachment)}
}

func (f *fakeAttachmentRepo) Create(_ context.Context, a attachment.Attachment) (attachment.Attachment, error) {
	f.nextID++
	a.ID = f.nextID
	a.UploadedAt = time.Now()
	f.rows[a.ID] = a
	return a, nil
}

func (f *fakeAttachmentRepo) GetByID(_ context.Context, id int64) (attachment.Attachment, error) {
	a, ok := f.rows[id]
	if !ok {
		return attachment.Attachment{}, pgx.ErrNoRows
	}
	return a, nil
}

func (f *fakeAttachmentRepo) ListByEmployeeID(_ context.Context, employeeID int64) ([]attachment.Attachment, error) {
	var out []attachment.Attachment
	for _, a := range f.rows {
		if a.EmployeeID != nil && *a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttachmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.rows, id)
	return nil
}

// fakeRefs answers the active-reference checks for every lookup entity.
type fakeRefs struct {
	ids map[int64]bool
}

func (f fakeRefs) ExistsActiveByID(_ context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

// fakeTx snapshots the fakes' state before fn and restores it when fn fails,
// so rollback semantics hold without a real database.
type fakeTx struct {
	employees   *fakeEmployeeRepo
	users       *fakeUserRepo
	attachments *fakeAttachmentRepo
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	empRows, empNext := maps.Clone(f.employees.rows), f.employees.nextID
	userRows, userNext := maps.Clone(f.users.rows), f.users.nextID
	attRows, attNext := maps.Clone(f.attachments.rows), f.attachments.nextID

	if err := fn(ctx); err != nil {
		f.employees.rows, f.employees.nextID = empRows, empNext
		f.users.rows, f.users.nextID = userRows, userNext
		f.attachments.rows, f.attachments.nextID = attRows, attNext
		return err
	}
	return nil
}

// fakeFileService records uploads and deletions; failOn makes the upload of
// that filename fail.
type fakeFileService struct {
	failOn   string
	uploaded []string
	deleted  []string
}

func (f *fakeFileService) UploadDocument(_ context.Context, _ io.Reader, filename string) (file.Document, error) {
	if filename == f.failOn {
		return file.Document{}, errors.New("storage write failed")
	}
	path := "documents/" + filename
	f.uploaded = append(f.uploaded, path)
	return file.Document{Path: path, URL: "http://files.local/" + path}, nil
}

func (f *fakeFileService) DeleteDocument(_ context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

type testEnv struct {
	svc         *employeeServiceImpl
	employees   *fakeEmployeeRepo
	users       *fakeUserRepo
	attachments *fakeAttachmentRepo
	files       *fakeFileService
}

func newTestEnv(refIDs ...int64) testEnv {
	refs := fakeRefs{ids: make(map[int64]bool)}
	for _, id := range refIDs {
		refs.ids[id] = true
	}

	env := testEnv{
		employees:   newFakeEmployeeRepo(),
		users:       newFakeUserRepo(),
		attachments: newFakeAttachmentRepo(),
		files:       &fakeFileService{},
	}
	env.svc = &employeeServiceImpl{
		tx:               &fakeTx{employees: env.employees, users: env.users, attachments: env.attachments},
		employeeRepo:     env.employees,
		userRepo:         env.users,
		attachmentRepo:   env.attachments,
		phoneCodeRepo:    refs,
		contractTypeRepo: refs,
		departmentRepo:   refs,
		locationRepo:     refs,
		bankRepo:         refs,
		jobTitleRepo:     refs,
		fileService:      env.files,
	}
	return env
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func validPayload() employee.Payload {
	return employee.Payload{
		FirstName:            strPtr("Amira"),
		LastName:             strPtr("Hassan"),
		PhoneNumber:          strPtr("+971501234567"),
		EmiratesID:           strPtr("784-1990-1234567-1"),
		LabourCardNumber:     strPtr("LC-44521"),
		MOHREEstablishmentID: strPtr("EST-9001"),
		IBAN:                 strPtr("AE07EBIL001234567890123"),
	}
}

func seedEmployee(t *testing.T, env testEnv, mutate func(*employee.Payload)) employee.Employee {
	t.Helper()
	payload := validPayload()
	if mutate != nil {
		mutate(&payload)
	}
	cleaned, errs, err := env.svc.validatePayload(context.Background(), payload)
	require.NoError(t, err)
	require.Empty(t, errs)
	created, err := env.employees.Create(context.Background(), entityFromCleaned(cleaned))
	require.NoError(t, err)
	return created
}

// ===== VALIDATION =====

func TestValidatePayload_CollectsAllErrors(t *testing.T) {
	env := newTestEnv()

	_, errs, err := env.svc.validatePayload(context.Background(), employee.Payload{})
	require.NoError(t, err)

	details := errs.ToMap()
	assert.Equal(t, "First name is required.", details["first_name"])
	assert.Equal(t, "Last name is required.", details["last_name"])
	assert.Equal(t, "Phone number is required.", details["phone_number"])
	assert.Equal(t, "IBAN is required.", details["iban"])
	assert.Equal(t, "Emirates id is mandatory for payroll inclusion.", details["emirates_id"])
	assert.Equal(t, "Labour card number is mandatory for payroll inclusion.", details["labour_card_number"])
	assert.Equal(t, "Mohre establishment id is mandatory for payroll inclusion.", details["mohre_establishment_id"])
}

func TestValidatePayload_IBANMessages(t *testing.T) {
	env := newTestEnv()

	payload := validPayload()
	payload.IBAN = strPtr("AE07XXXX001234567890123")

	_, errs, err := env.svc.validatePayload(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "Invalid UAE bank code 'XXXX'. Please check the bank code in your IBAN.", errs.ToMap()["iban"])
}

func TestValidatePayload_VisaExpiryBoundary(t *testing.T) {
	env := newTestEnv()
	today := truncateToDay(time.Now().UTC())

	cases := []struct {
		name     string
		expiry   time.Time
		rejected bool
	}{
		{"today", today, true},
		{"day 30", today.AddDate(0, 0, 30), true},
		{"day 31", today.AddDate(0, 0, 31), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			payload.VisaExpiry = strPtr(tc.expiry.Format("2006-01-02"))

			cleaned, errs, err := env.svc.validatePayload(context.Background(), payload)
			require.NoError(t, err)

			if tc.rejected {
				msg := errs.ToMap()["visa_expiry"]
				assert.Contains(t, msg, "Visa expires in next 30 days.")
				assert.Contains(t, msg, "Expiry date: "+tc.expiry.Format("2006-01-02"))
				assert.Contains(t, msg, "Current date: "+today.Format("2006-01-02"))
			} else {
				assert.NotContains(t, errs.ToMap(), "visa_expiry")
				require.NotNil(t, cleaned.VisaExpiry)
				assert.Equal(t, tc.expiry, *cleaned.VisaExpiry)
			}
		})
	}
}

func TestValidatePayload_UnknownReferences(t *testing.T) {
	env := newTestEnv(1)

	payload := validPayload()
	payload.ContractTypeID = int64Ptr(9)
	payload.DepartmentID = int64Ptr(1)
	payload.BankID = int64Ptr(12)

	cleaned, errs, err := env.svc.validatePayload(context.Background(), payload)
	require.NoError(t, err)

	details := errs.ToMap()
	assert.Equal(t, "ContractType with id 9 does not exist.", details["contract_type"])
	assert.Equal(t, "Bank with id 12 does not exist.", details["bank"])
	assert.NotContains(t, details, "department")
	require.NotNil(t, cleaned.DepartmentID)
	assert.EqualValues(t, 1, *cleaned.DepartmentID)
}

func TestValidatePayload_CustomFieldsMustBeObject(t *testing.T) {
	env := newTestEnv()

	payload := validPayload()
	payload.CustomFields = []byte(`[1, 2]`)
	_, errs, err := env.svc.validatePayload(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "custom_fields must be a JSON object.", errs.ToMap()["custom_fields"])

	payload.CustomFields = []byte(`{"badge_color": "green"}`)
	cleaned, errs, err := env.svc.validatePayload(context.Background(), payload)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "green", cleaned.CustomFields["badge_color"])
}

func TestValidatePayload_MalformedDate(t *testing.T) {
	env := newTestEnv()

	payload := validPayload()
	payload.ContractStartDate = strPtr("03/15/2026")

	_, errs, err := env.svc.validatePayload(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "Contract start date must be in YYYY-MM-DD format.", errs.ToMap()["contract_start_date"])
}

// ===== LIFECYCLE =====

func TestCreateEmployee_ProvisionsIdentityAndAttachments(t *testing.T) {
	env := newTestEnv()

	files := []employee.UploadedFile{
		{Reader: strings.NewReader("contract body"), Filename: "contract.pdf"},
		{Reader: strings.NewReader("passport scan"), Filename: "passport.jpg"},
	}

	result, err := env.svc.CreateEmployee(context.Background(), validPayload(), files)
	require.NoError(t, err)

	// The login name is the phone number; the secret round-trips through the
	// stored bcrypt hash and appears only in this response.
	assert.Equal(t, "+971501234567", result.LoginName)
	require.NotEmpty(t, result.InitialSecret)
	identity, err := env.users.GetByUsername(context.Background(), result.LoginName)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(result.InitialSecret)))

	stored := env.employees.rows[result.Employee.ID]
	require.NotNil(t, stored.UserID)
	assert.Equal(t, identity.ID, *stored.UserID)

	require.Len(t, result.Attachments, 2)
	assert.Equal(t, "contract.pdf", result.Attachments[0].FileName)
	assert.Equal(t, "http://files.local/documents/contract.pdf", result.Attachments[0].DocumentURL)

	rows, err := env.attachments.ListByEmployeeID(context.Background(), result.Employee.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCreateEmployee_UploadFailureRollsBackEverything(t *testing.T) {
	env := newTestEnv()
	env.files.failOn = "second.pdf"

	files := []employee.UploadedFile{
		{Reader: strings.NewReader("a"), Filename: "first.pdf"},
		{Reader: strings.NewReader("b"), Filename: "second.pdf"},
	}

	_, err := env.svc.CreateEmployee(context.Background(), validPayload(), files)
	require.ErrorIs(t, err, attachment.ErrUploadFailed)

	// No employee, identity, or attachment row survives the abort, and the
	// file written before the failure is cleaned up.
	assert.Empty(t, env.employees.rows)
	assert.Empty(t, env.users.rows)
	assert.Empty(t, env.attachments.rows)
	assert.Equal(t, []string{"documents/first.pdf"}, env.files.deleted)
}

func TestCreateEmployee_ValidationFailureShort(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.CreateEmployee(context.Background(), employee.Payload{}, nil)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "first_name")
	assert.Empty(t, env.employees.rows)
	assert.Empty(t, env.users.rows)
}

func TestUpdateEmployee_MergeLeavesOmittedFields(t *testing.T) {
	env := newTestEnv()

	visa := truncateToDay(time.Now().UTC()).AddDate(0, 0, 90)
	created := seedEmployee(t, env, func(p *employee.Payload) {
		p.VisaExpiry = strPtr(visa.Format("2006-01-02"))
		p.PassportNumber = strPtr("P1234567")
	})

	update := validPayload()
	update.LastName = strPtr("Al Mansoori")

	result, err := env.svc.UpdateEmployee(context.Background(), created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Al Mansoori", result.LastName)

	stored := env.employees.rows[created.ID]
	require.NotNil(t, stored.VisaExpiry)
	assert.Equal(t, visa, *stored.VisaExpiry)
	require.NotNil(t, stored.PassportNumber)
	assert.Equal(t, "P1234567", *stored.PassportNumber)
}

func TestUpdateEmployee_InvalidFieldLeavesStoredValue(t *testing.T) {
	env := newTestEnv()

	start := truncateToDay(time.Now().UTC()).AddDate(-1, 0, 0)
	created := seedEmployee(t, env, func(p *employee.Payload) {
		p.ContractStartDate = strPtr(start.Format("2006-01-02"))
	})

	update := validPayload()
	update.ContractStartDate = strPtr("not-a-date")

	_, err := env.svc.UpdateEmployee(context.Background(), created.ID, update)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "contract_start_date")

	stored := env.employees.rows[created.ID]
	require.NotNil(t, stored.ContractStartDate)
	assert.Equal(t, start, *stored.ContractStartDate)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.UpdateEmployee(context.Background(), 42, validPayload())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee_SoftDeleteKeepsAttachmentsAndIdentity(t *testing.T) {
	env := newTestEnv()

	created := seedEmployee(t, env, nil)
	identity, err := env.users.Create(context.Background(), user.User{Username: created.PhoneNumber})
	require.NoError(t, err)
	_, err = env.attachments.Create(context.Background(), attachment.Attachment{
		DocumentURL: "http://files.local/contract.pdf",
		EmployeeID:  &created.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteEmployee(context.Background(), created.ID))

	_, err = env.svc.GetEmployee(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	list, err := env.svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	remaining, err := env.attachments.ListByEmployeeID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	_, err = env.users.GetByUsername(context.Background(), identity.Username)
	assert.NoError(t, err)

	// Deleting twice reports not found.
	assert.ErrorIs(t, env.svc.DeleteEmployee(context.Background(), created.ID), employee.ErrEmployeeNotFound)
}

// ===== VISA ALERT =====

func TestVisaExpiryAlert_ClosedWindow(t *testing.T) {
	env := newTestEnv()
	today := truncateToDay(time.Now().UTC())

	seed := func(phone string, expiry time.Time, deleted bool) {
		env.employees.nextID++
		id := env.employees.nextID
		env.employees.rows[id] = employee.Employee{
			ID:          id,
			FirstName:   "Test",
			LastName:    "Employee",
			PhoneNumber: phone,
			IBAN:        "AE07EBIL001234567890123",
			VisaExpiry:  &expiry,
			Deleted:     deleted,
		}
	}

	seed("+971500000001", today.AddDate(0, 0, -1), false) // excluded, already expired
	seed("+971500000002", today, false)                   // included, boundary start
	seed("+971500000003", today.AddDate(0, 0, 30), false) // included, boundary end
	seed("+971500000004", today.AddDate(0, 0, 31), false) // excluded, past window
	seed("+971500000005", today.AddDate(0, 0, 10), true)  // excluded, soft-deleted

	result, err := env.svc.VisaExpiryAlert(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Employees, 2)
	assert.Equal(t, "+971500000002", result.Employees[0].PhoneNumber)
	assert.Equal(t, "+971500000003", result.Employees[1].PhoneNumber)
	require.NotNil(t, result.Employees[0].VisaExpiry)
	assert.Equal(t, today.Format("2006-01-02"), *result.Employees[0].VisaExpiry)
}

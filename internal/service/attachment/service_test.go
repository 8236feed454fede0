package attachment

import (
	"context"
	"errors"
	"io"
	"maps"
	"strings"
	"testing"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/attachment"
	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

// fakeEmployeeLookup only answers GetActiveByID; the other repository methods
// are not reached by these tests.
type fakeEmployeeLookup struct {
	rows map[int64]employee.Employee
}

func (f *fakeEmployeeLookup) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeLookup) GetActiveByID(_ context.Context, id int64) (employee.Employee, error) {
	e, ok := f.rows[id]
	if !ok || e.Deleted {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeLookup) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeLookup) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeLookup) SoftDelete(_ context.Context, _ int64) error { return nil }

func (f *fakeEmployeeLookup) ListVisaExpiring(_ context.Context, _, _ time.Time) ([]employee.Employee, error) {
	return nil, nil
}

// fakeTx snapshots the attachment rows before fn and restores them when fn
// fails, so rollback semantics hold without a real database.
type fakeTx struct {
	attachments *fakeAttachmentRepo
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	rows, next := maps.Clone(f.attachments.rows), f.attachments.nextID
	if err := fn(ctx); err != nil {
		f.attachments.rows, f.attachments.nextID = rows, next
		return err
	}
	return nil
}

// fakeFileService records uploads and deletions; failOn makes the upload of
// that filename fail.
type fakeFileService struct {
	failOn  string
	deleted []string
}

func (f *fakeFileService) UploadDocument(_ context.Context, _ io.Reader, filename string) (file.Document, error) {
	if filename == f.failOn {
		return file.Document{}, errors.New("storage write failed")
	}
	path := "documents/" + filename
	return file.Document{Path: path, URL: "http://files.local/" + path}, nil
}

func (f *fakeFileService) DeleteDocument(_ context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func newTestService(employees map[int64]employee.Employee) (*attachmentServiceImpl, *fakeAttachmentRepo, *fakeFileService) {
	repo := newFakeAttachmentRepo()
	files := &fakeFileService{}
	svc := &attachmentServiceImpl{
		tx:             &fakeTx{attachments: repo},
		attachmentRepo: repo,
		employeeRepo:   &fakeEmployeeLookup{rows: employees},
		fileService:    files,
	}
	return svc, repo, files
}

func TestUploadAttachments_MissingInputs(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.UploadAttachments(context.Background(), 0, nil)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Equal(t, "Employee id is required.", details["employee_id"])
	assert.Equal(t, "At least one file is required.", details["files"])
}

func TestUploadAttachments_UnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.UploadAttachments(context.Background(), 7, []employee.UploadedFile{{Filename: "contract.pdf"}})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUploadAttachments_SoftDeletedEmployeeRejected(t *testing.T) {
	svc, _, _ := newTestService(map[int64]employee.Employee{
		7: {ID: 7, Deleted: true},
	})

	_, err := svc.UploadAttachments(context.Background(), 7, []employee.UploadedFile{{Filename: "contract.pdf"}})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUploadAttachments_StoresBatch(t *testing.T) {
	svc, repo, _ := newTestService(map[int64]employee.Employee{
		3: {ID: 3},
	})

	files := []employee.UploadedFile{
		{Reader: strings.NewReader("a"), Filename: "contract.pdf"},
		{Reader: strings.NewReader("b"), Filename: "passport.jpg"},
	}

	results, err := svc.UploadAttachments(context.Background(), 3, files)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "contract.pdf", results[0].OriginalFilename)
	assert.Equal(t, "http://files.local/documents/contract.pdf", results[0].DocumentURL)
	assert.Len(t, repo.rows, 2)
}

func TestUploadAttachments_FailureRollsBackBatch(t *testing.T) {
	svc, repo, files := newTestService(map[int64]employee.Employee{
		3: {ID: 3},
	})
	files.failOn = "second.pdf"

	batch := []employee.UploadedFile{
		{Reader: strings.NewReader("a"), Filename: "first.pdf"},
		{Reader: strings.NewReader("b"), Filename: "second.pdf"},
	}

	_, err := svc.UploadAttachments(context.Background(), 3, batch)
	require.ErrorIs(t, err, attachment.ErrUploadFailed)

	// The whole batch aborts: no rows survive and the file written before
	// the failure is cleaned up.
	assert.Empty(t, repo.rows)
	assert.Equal(t, []string{"documents/first.pdf"}, files.deleted)
}

func TestGetAttachment_NotFound(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.GetAttachment(context.Background(), 404)
	assert.ErrorIs(t, err, attachment.ErrAttachmentNotFound)
}

func TestListAttachments_CountMatchesOwner(t *testing.T) {
	svc, repo, _ := newTestService(nil)
	ctx := context.Background()

	owner := int64(3)
	other := int64(4)
	for _, id := range []int64{owner, owner, other} {
		id := id
		_, err := repo.Create(ctx, attachment.Attachment{EmployeeID: &id, DocumentURL: "http://files.local/doc.pdf"})
		require.NoError(t, err)
	}

	list, err := svc.ListAttachments(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)
	assert.Len(t, list.Results, 2)
}

func TestDeleteAttachment_Physical(t *testing.T) {
	svc, repo, _ := newTestService(nil)
	ctx := context.Background()

	owner := int64(3)
	created, err := repo.Create(ctx, attachment.Attachment{EmployeeID: &owner, DocumentURL: "http://files.local/doc.pdf"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttachment(ctx, created.ID))
	_, err = svc.GetAttachment(ctx, created.ID)
	assert.ErrorIs(t, err, attachment.ErrAttachmentNotFound)

	assert.ErrorIs(t, svc.DeleteAttachment(ctx, created.ID), attachment.ErrAttachmentNotFound)
}

package http

import (
	"net/http"
	"strconv"

	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/handler/http/response"
	attachmentService "github.com/emiratehr/payroll-backend-go/internal/service/attachment"
)

type AttachmentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attachmentHandlerImpl struct {
	attachmentService attachmentService.AttachmentService
}

func NewAttachmentHandler(svc attachmentService.AttachmentService) AttachmentHandler {
	return &attachmentHandlerImpl{
		attachmentService: svc,
	}
}

// Upload accepts a multipart form with an "employee_id" value and one or more
// "files" parts. The batch is atomic.
func (h *attachmentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	employeeID, err := strconv.ParseInt(r.FormValue("employee_id"), 10, 64)
	if err != nil || employeeID <= 0 {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	var files []employee.UploadedFile
	for _, fileHeader := range r.MultipartForm.File["files"] {
		file, err := fileHeader.Open()
		if err != nil {
			response.BadRequest(w, "Failed to read uploaded file", nil)
			return
		}
		defer file.Close()

		files = append(files, employee.UploadedFile{
			Reader:   file,
			Filename: fileHeader.Filename,
		})
	}

	result, err := h.attachmentService.UploadAttachments(r.Context(), employeeID, files)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attachments uploaded successfully", result)
}

func (h *attachmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.attachmentService.GetAttachment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attachmentHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	result, err := h.attachmentService.ListAttachments(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attachmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.attachmentService.DeleteAttachment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attachment deleted successfully", nil)
}

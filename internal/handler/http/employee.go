package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	VisaExpiryAlert(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create accepts either a plain JSON body or a multipart form with a "data"
// JSON part plus zero or more "attachments" file parts.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var (
		payload employee.Payload
		files   []employee.UploadedFile
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Missing data field", nil)
			return
		}
		if err := json.Unmarshal([]byte(dataJSON), &payload); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		for _, fileHeader := range r.MultipartForm.File["attachments"] {
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
	} else {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), payload, files)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload employee.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

func (h *employeeHandlerImpl) VisaExpiryAlert(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.VisaExpiryAlert(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

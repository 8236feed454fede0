package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/bank"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/contracttype"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/customfield"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/department"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/designation"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/fieldtype"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/jobtitle"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/location"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/phonecode"
	"github.com/emiratehr/payroll-backend-go/internal/handler/http/response"
	"github.com/emiratehr/payroll-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// ContractType handlers
	CreateContractType(w http.ResponseWriter, r *http.Request)
	GetContractType(w http.ResponseWriter, r *http.Request)
	ListContractTypes(w http.ResponseWriter, r *http.Request)
	UpdateContractType(w http.ResponseWriter, r *http.Request)
	DeleteContractType(w http.ResponseWriter, r *http.Request)

	// JobTitle handlers
	CreateJobTitle(w http.ResponseWriter, r *http.Request)
	GetJobTitle(w http.ResponseWriter, r *http.Request)
	ListJobTitles(w http.ResponseWriter, r *http.Request)
	UpdateJobTitle(w http.ResponseWriter, r *http.Request)
	DeleteJobTitle(w http.ResponseWriter, r *http.Request)

	// Department handlers
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	// Location handlers
	CreateLocation(w http.ResponseWriter, r *http.Request)
	GetLocation(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
	UpdateLocation(w http.ResponseWriter, r *http.Request)
	DeleteLocation(w http.ResponseWriter, r *http.Request)

	// FieldType handlers
	CreateFieldType(w http.ResponseWriter, r *http.Request)
	GetFieldType(w http.ResponseWriter, r *http.Request)
	ListFieldTypes(w http.ResponseWriter, r *http.Request)
	UpdateFieldType(w http.ResponseWriter, r *http.Request)
	DeleteFieldType(w http.ResponseWriter, r *http.Request)

	// Bank handlers
	CreateBank(w http.ResponseWriter, r *http.Request)
	GetBank(w http.ResponseWriter, r *http.Request)
	ListBanks(w http.ResponseWriter, r *http.Request)
	UpdateBank(w http.ResponseWriter, r *http.Request)
	DeleteBank(w http.ResponseWriter, r *http.Request)

	// PhoneCountryCode handlers
	CreateCountryCode(w http.ResponseWriter, r *http.Request)
	GetCountryCode(w http.ResponseWriter, r *http.Request)
	ListCountryCodes(w http.ResponseWriter, r *http.Request)
	ListCountryCodeDropdown(w http.ResponseWriter, r *http.Request)
	UpdateCountryCode(w http.ResponseWriter, r *http.Request)
	DeleteCountryCode(w http.ResponseWriter, r *http.Request)

	// Designation handlers
	CreateDesignation(w http.ResponseWriter, r *http.Request)
	GetDesignation(w http.ResponseWriter, r *http.Request)
	ListDesignations(w http.ResponseWriter, r *http.Request)
	UpdateDesignation(w http.ResponseWriter, r *http.Request)
	DeleteDesignation(w http.ResponseWriter, r *http.Request)

	// Custom field configuration handlers
	CreateCustomField(w http.ResponseWriter, r *http.Request)
	GetCustomField(w http.ResponseWriter, r *http.Request)
	ListCustomFields(w http.ResponseWriter, r *http.Request)
	ListSelectedCustomFields(w http.ResponseWriter, r *http.Request)
	UpdateCustomField(w http.ResponseWriter, r *http.Request)
	DeleteCustomField(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// ==================== CONTRACT TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateContractType(w http.ResponseWriter, r *http.Request) {
	var payload contracttype.ContractTypePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateContractType(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract type created successfully", result)
}

func (h *masterHandlerImpl) GetContractType(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetContractType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListContractTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListContractTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateContractType(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload contracttype.ContractTypePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateContractType(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract type updated successfully", result)
}

func (h *masterHandlerImpl) DeleteContractType(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteContractType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract type deleted successfully", nil)
}

// ==================== JOB TITLE HANDLERS ====================

func (h *masterHandlerImpl) CreateJobTitle(w http.ResponseWriter, r *http.Request) {
	var payload jobtitle.JobTitlePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateJobTitle(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job title created successfully", result)
}

func (h *masterHandlerImpl) GetJobTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetJobTitle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListJobTitles(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListJobTitles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateJobTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload jobtitle.JobTitlePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateJobTitle(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job title updated successfully", result)
}

func (h *masterHandlerImpl) DeleteJobTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteJobTitle(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job title deleted successfully", nil)
}

// ==================== DEPARTMENT HANDLERS ====================

func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload department.DepartmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDepartment(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload department.DepartmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateDepartment(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", result)
}

func (h *masterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteDepartment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ==================== LOCATION HANDLERS ====================

func (h *masterHandlerImpl) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var payload location.LocationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateLocation(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created successfully", result)
}

func (h *masterHandlerImpl) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetLocation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListLocations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload location.LocationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateLocation(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location updated successfully", result)
}

func (h *masterHandlerImpl) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteLocation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location deleted successfully", nil)
}

// ==================== FIELD TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateFieldType(w http.ResponseWriter, r *http.Request) {
	var payload fieldtype.FieldTypePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateFieldType(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Field type created successfully", result)
}

func (h *masterHandlerImpl) GetFieldType(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetFieldType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListFieldTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListFieldTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateFieldType(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload fieldtype.FieldTypePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateFieldType(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Field type updated successfully", result)
}

func (h *masterHandlerImpl) DeleteFieldType(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteFieldType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Field type deleted successfully", nil)
}

// ==================== BANK HANDLERS ====================

func (h *masterHandlerImpl) CreateBank(w http.ResponseWriter, r *http.Request) {
	var payload bank.BankPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateBank(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bank created successfully", result)
}

func (h *masterHandlerImpl) GetBank(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetBank(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListBanks(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListBanks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateBank(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload bank.BankPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateBank(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bank updated successfully", result)
}

func (h *masterHandlerImpl) DeleteBank(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteBank(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bank deleted successfully", nil)
}

// ==================== PHONE COUNTRY CODE HANDLERS ====================

func (h *masterHandlerImpl) CreateCountryCode(w http.ResponseWriter, r *http.Request) {
	var payload phonecode.PhoneCountryCodePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateCountryCode(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Country code created successfully", result)
}

func (h *masterHandlerImpl) GetCountryCode(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetCountryCode(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListCountryCodes(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListCountryCodes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateCountryCode(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload phonecode.PhoneCountryCodePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateCountryCode(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Country code updated successfully", result)
}

func (h *masterHandlerImpl) DeleteCountryCode(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteCountryCode(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Country code deleted successfully", nil)
}

// ==================== DESIGNATION HANDLERS ====================

func (h *masterHandlerImpl) CreateDesignation(w http.ResponseWriter, r *http.Request) {
	var payload designation.DesignationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDesignation(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Designation created successfully", result)
}

func (h *masterHandlerImpl) GetDesignation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetDesignation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListDesignations(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListDesignations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateDesignation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload designation.DesignationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateDesignation(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Designation updated successfully", result)
}

func (h *masterHandlerImpl) DeleteDesignation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteDesignation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Designation deleted successfully", nil)
}

// ==================== CUSTOM FIELD HANDLERS ====================

func (h *masterHandlerImpl) CreateCustomField(w http.ResponseWriter, r *http.Request) {
	var payload customfield.CustomFieldPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateCustomField(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Custom field created successfully", result)
}

func (h *masterHandlerImpl) GetCustomField(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	result, err := h.masterService.GetCustomField(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListCustomFields(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListCustomFields(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateCustomField(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var payload customfield.CustomFieldPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateCustomField(r.Context(), id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Custom field updated successfully", result)
}

func (h *masterHandlerImpl) DeleteCustomField(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteCustomField(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Custom field deleted successfully", nil)
}

func (h *masterHandlerImpl) ListCountryCodeDropdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListCountryCodeDropdown(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListSelectedCustomFields(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListSelectedCustomFields(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

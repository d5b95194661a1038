package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

// GetEmployeesHandler godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} models.Employee
// @Router /api/v1/employees [get]
func GetEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	employees, err := employeesData.GetAll()
	if err != nil {
		storageFailure(w, "fetch employees", err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// GetEmployeesPageHandler godoc
// @Summary Page of employees
// @Tags employees
// @Produce json
// @Param index query int false "0-based page index"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.Employee]
// @Failure 400 {string} string "Invalid paging"
// @Router /api/v1/employees/page [get]
func GetEmployeesPageHandler(w http.ResponseWriter, r *http.Request) {
	index, err := queryInt(r, "index")
	if err != nil || (index != nil && *index < 0) {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	size, err := queryInt(r, "size")
	if err != nil || (size != nil && *size < 0) {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}

	pageIndex, pageSize := 0, 10
	if index != nil {
		pageIndex = *index
	}
	if size != nil {
		pageSize = *size
	}

	page, err := employeesData.GetPage(pageIndex, pageSize)
	if err != nil {
		storageFailure(w, "fetch employees", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetEmployeeByIDHandler godoc
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {string} string "Not found"
// @Router /api/v1/employees/{id} [get]
func GetEmployeeByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}

	employee, err := employeesData.GetByID(id)
	if err != nil {
		storageFailure(w, "fetch employee", err)
		return
	}
	if employee == nil {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func decodeEmployee(w http.ResponseWriter, r *http.Request) (*models.Employee, bool) {
	var req EmployeeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return nil, false
	}
	if validationErrors := validateEmployee(req); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return nil, false
	}
	return &models.Employee{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Patronymic: req.Patronymic,
		Age:        req.Age,
	}, true
}

// CreateEmployeeHandler godoc
// @Summary Add an employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body EmployeeRequest true "Employee"
// @Success 201 {object} EmployeeCreatedResult
// @Failure 400 {array} ValidationError
// @Router /api/v1/employees [post]
func CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	employee, ok := decodeEmployee(w, r)
	if !ok {
		return
	}

	id, err := employeesData.Add(employee)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		storageFailure(w, "create employee", err)
		return
	}

	w.Header().Set("Location", "/api/v1/employees/"+strconv.Itoa(id))
	writeJSON(w, http.StatusCreated, EmployeeCreatedResult{Id: id})
}

// UpdateEmployeeHandler godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param employee body EmployeeRequest true "Employee"
// @Success 200 {object} models.Employee
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /api/v1/employees/{id} [put]
func UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}
	employee, ok := decodeEmployee(w, r)
	if !ok {
		return
	}
	employee.ID = id

	updated, err := employeesData.Edit(employee)
	if err != nil {
		storageFailure(w, "update employee", err)
		return
	}
	if !updated {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

// DeleteEmployeeHandler godoc
// @Summary Delete an employee
// @Tags employees
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /api/v1/employees/{id} [delete]
func DeleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}

	deleted, err := employeesData.Delete(id)
	if err != nil {
		storageFailure(w, "delete employee", err)
		return
	}
	if !deleted {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

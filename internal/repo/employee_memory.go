package repo

import (
	"log"
	"slices"
	"sync"

	"github.com/rogerio-castellano/webstore/internal/models"
)

type InMemoryEmployeesData struct {
	mu        sync.RWMutex
	employees []models.Employee
	nextID    int
}

func NewInMemoryEmployeesData(seed []models.Employee) *InMemoryEmployeesData {
	r := &InMemoryEmployeesData{
		employees: slices.Clone(seed),
		nextID:    1,
	}
	if r.employees == nil {
		r.employees = []models.Employee{}
	}
	for _, e := range r.employees {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r
}

func (r *InMemoryEmployeesData) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.employees), nil
}

func (r *InMemoryEmployeesData) Get(skip, take int) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.window(skip, take), nil
}

func (r *InMemoryEmployeesData) window(skip, take int) []models.Employee {
	if take <= 0 {
		return []models.Employee{}
	}
	start := clamp(skip, 0, len(r.employees))
	end := clamp(start+take, start, len(r.employees))
	return slices.Clone(r.employees[start:end])
}

func (r *InMemoryEmployeesData) GetPage(pageIndex, pageSize int) (models.Page[models.Employee], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if pageIndex < 0 {
		pageIndex = 0
	}
	items := r.window(pageIndex*pageSize, pageSize)
	return models.NewPage(items, pageIndex+1, max(pageSize, 0), len(r.employees)), nil
}

func (r *InMemoryEmployeesData) GetAll() ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.employees), nil
}

func (r *InMemoryEmployeesData) GetByID(id int) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *InMemoryEmployeesData) Add(employee *models.Employee) (int, error) {
	if employee == nil {
		return 0, ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employee.ID = r.nextID
	r.nextID++
	r.employees = append(r.employees, *employee)
	return employee.ID, nil
}

func (r *InMemoryEmployeesData) Edit(employee *models.Employee) (bool, error) {
	if employee == nil {
		return false, ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.employees {
		if e.ID == employee.ID {
			r.employees[i] = *employee
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryEmployeesData) Delete(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.employees {
		if e.ID == id {
			r.employees = slices.Delete(r.employees, i, i+1)
			return true, nil
		}
	}
	log.Printf("employee %d not found for deletion", id)
	return false, nil
}

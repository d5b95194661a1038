package repo

import "github.com/rogerio-castellano/webstore/internal/models"

// EmployeesData manages staff records. GetPage uses a 0-based page index.
type EmployeesData interface {
	Count() (int, error)
	Get(skip, take int) ([]models.Employee, error)
	GetPage(pageIndex, pageSize int) (models.Page[models.Employee], error)
	GetAll() ([]models.Employee, error)
	GetByID(id int) (*models.Employee, error)
	Add(employee *models.Employee) (int, error)
	Edit(employee *models.Employee) (bool, error)
	Delete(id int) (bool, error)
}

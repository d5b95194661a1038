package repo

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/rogerio-castellano/webstore/internal/models"
)

type PostgresEmployeesData struct {
	db *sql.DB
}

func NewPostgresEmployeesData(db *sql.DB) *PostgresEmployeesData {
	return &PostgresEmployeesData{db: db}
}

const employeeColumns = `id, last_name, first_name, patronymic, age`

func (r *PostgresEmployeesData) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

func (r *PostgresEmployeesData) Get(skip, take int) ([]models.Employee, error) {
	if take <= 0 {
		return []models.Employee{}, nil
	}
	if skip < 0 {
		skip = 0
	}
	return r.query(`SELECT `+employeeColumns+` FROM employees ORDER BY id LIMIT $1 OFFSET $2`, take, skip)
}

func (r *PostgresEmployeesData) GetPage(pageIndex, pageSize int) (models.Page[models.Employee], error) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	total, err := r.Count()
	if err != nil {
		return models.Page[models.Employee]{}, err
	}
	items, err := r.Get(pageIndex*pageSize, pageSize)
	if err != nil {
		return models.Page[models.Employee]{}, err
	}
	return models.NewPage(items, pageIndex+1, max(pageSize, 0), total), nil
}

func (r *PostgresEmployeesData) GetAll() ([]models.Employee, error) {
	return r.query(`SELECT ` + employeeColumns + ` FROM employees ORDER BY id`)
}

func (r *PostgresEmployeesData) query(query string, args ...any) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.LastName, &e.FirstName, &e.Patronymic, &e.Age); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PostgresEmployeesData) GetByID(id int) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var e models.Employee
	err := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id).
		Scan(&e.ID, &e.LastName, &e.FirstName, &e.Patronymic, &e.Age)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresEmployeesData) Add(employee *models.Employee) (int, error) {
	if employee == nil {
		return 0, ErrInvalidArgument
	}

	query := `INSERT INTO employees (last_name, first_name, patronymic, age) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, employee.LastName, employee.FirstName, employee.Patronymic, employee.Age).
		Scan(&employee.ID)
	if err != nil {
		return 0, err
	}
	return employee.ID, nil
}

func (r *PostgresEmployeesData) Edit(employee *models.Employee) (bool, error) {
	if employee == nil {
		return false, ErrInvalidArgument
	}

	query := `UPDATE employees SET last_name = $1, first_name = $2, patronymic = $3, age = $4 WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, employee.LastName, employee.FirstName, employee.Patronymic, employee.Age, employee.ID)
	if err != nil {
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()
	return rowsAffected > 0, nil
}

func (r *PostgresEmployeesData) Delete(id int) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		log.Printf("employee %d not found for deletion", id)
		return false, nil
	}
	return true, nil
}

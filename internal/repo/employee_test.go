package repo

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/webstore/internal/models"
)

func employeesSeed() []models.Employee {
	return []models.Employee{
		{ID: 1, LastName: "Ivanov", FirstName: "Ivan", Age: 30},
		{ID: 2, LastName: "Petrov", FirstName: "Petr", Age: 41},
		{ID: 3, LastName: "Sidorov", FirstName: "Sidor", Age: 25},
		{ID: 4, LastName: "Smirnova", FirstName: "Anna", Age: 35},
		{ID: 5, LastName: "Kuznetsov", FirstName: "Oleg", Age: 52},
	}
}

func TestInMemoryEmployeesData_Paging(t *testing.T) {
	data := NewInMemoryEmployeesData(employeesSeed())

	count, err := data.Count()
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	window, err := data.Get(1, 2)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, 2, window[0].ID)

	empty, err := data.Get(0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	page, err := data.GetPage(2, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.Items[0].ID)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.PageNumber)
	assert.Equal(t, 3, page.PagesCount())

	zero, err := data.GetPage(0, 0)
	require.NoError(t, err)
	assert.Empty(t, zero.Items)
	assert.Equal(t, 5, zero.TotalCount)
}

func TestInMemoryEmployeesData_Mutations(t *testing.T) {
	data := NewInMemoryEmployeesData(employeesSeed())

	_, err := data.Add(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	id, err := data.Add(&models.Employee{LastName: "New", FirstName: "Hire", Age: 22})
	require.NoError(t, err)
	assert.Equal(t, 6, id)

	_, err = data.Edit(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	ok, err := data.Edit(&models.Employee{ID: 6, LastName: "Renamed", FirstName: "Hire", Age: 23})
	require.NoError(t, err)
	assert.True(t, ok)

	edited, err := data.GetByID(6)
	require.NoError(t, err)
	require.NotNil(t, edited)
	assert.Equal(t, "Renamed", edited.LastName)

	ok, err = data.Edit(&models.Employee{ID: 100})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = data.Delete(6)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = data.Delete(6)
	require.NoError(t, err)
	assert.False(t, ok)

	gone, err := data.GetByID(6)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestPostgresEmployeesData_GetPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`FROM employees ORDER BY id LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "last_name", "first_name", "patronymic", "age"}).
			AddRow(3, "Sidorov", "Sidor", "", 25).
			AddRow(4, "Smirnova", "Anna", "", 35))

	page, err := NewPostgresEmployeesData(db).GetPage(1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 2, page.PageNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmployeesData_DeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM employees WHERE id = \$1`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := NewPostgresEmployeesData(db).Delete(42)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmployeesData_AddAndEdit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	data := NewPostgresEmployeesData(db)

	_, err = data.Add(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("Ivanov", "Ivan", "", 30).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(`UPDATE employees SET`).
		WithArgs("Ivanov", "Ivan", "Ivanovich", 31, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	employee := &models.Employee{LastName: "Ivanov", FirstName: "Ivan", Age: 30}
	id, err := data.Add(employee)
	require.NoError(t, err)
	assert.Equal(t, 11, id)

	employee.Patronymic = "Ivanovich"
	employee.Age = 31
	ok, err := data.Edit(employee)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package models

type Employee struct {
	ID         int    `json:"id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Patronymic string `json:"patronymic,omitempty"`
	Age        int    `json:"age"`
}

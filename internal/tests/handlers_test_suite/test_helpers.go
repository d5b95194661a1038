package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/webstore/internal/cart"
	api "github.com/rogerio-castellano/webstore/internal/http"
	handler "github.com/rogerio-castellano/webstore/internal/http/handlers"
	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token         string
	orderRepo     *repo.InMemoryOrderRepository
	cartStore     *repo.InMemoryCartStore
	employeesData *repo.InMemoryEmployeesData
	publisher     *recordingPublisher
)

type recordingPublisher struct {
	keys     []string
	payloads []any
}

func (p *recordingPublisher) Publish(routingKey string, payload any) error {
	p.keys = append(p.keys, routingKey)
	p.payloads = append(p.payloads, payload)
	return nil
}

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productData := repo.NewInMemoryProductData(repo.DefaultCatalogSeed())
	handler.SetProductData(productData)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	cartStore = repo.NewInMemoryCartStore()
	handler.SetCartService(cart.NewService(cartStore, productData))

	employeesData = repo.NewInMemoryEmployeesData(nil)
	handler.SetEmployeesData(employeesData)

	publisher = &recordingPublisher{}
	handler.SetPublisher(publisher)

	handler.SetCatalogPageSize(6)
}

func clearCart() {
	cartStore.Delete("admin")
}

func resetEmployees() {
	employeesData = repo.NewInMemoryEmployeesData(nil)
	handler.SetEmployeesData(employeesData)
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequest(r http.Handler, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int {
	return &v
}

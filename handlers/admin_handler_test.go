package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/middleware"
	"github.com/learnai/marketplace-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := &AdminHandler{DB: db}
	admin := app.Group("/api/v1/admin", middleware.Protected(testJWTSecret), middleware.AdminRequired())
	admin.Get("/users", h.ListUsers)
	admin.Get("/transactions", h.ListTransactions)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	db := newTestDB(t)
	app := newAdminApp(db)
	student := createUser(t, db, "student", models.RoleStudent)

	resp := getJSON(t, app, "/api/v1/admin/users", signToken(t, student))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = getJSON(t, app, "/api/v1/admin/transactions", signToken(t, student))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminListsUsersAndTransactions(t *testing.T) {
	db := newTestDB(t)
	app := newAdminApp(db)
	admin := createUser(t, db, "admin", models.RoleAdmin)
	seedPendingBooking(t, db, true)

	resp := getJSON(t, app, "/api/v1/admin/users", signToken(t, admin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 3) // admin plus the booking's student and teacher

	resp = getJSON(t, app, "/api/v1/admin/transactions", signToken(t, admin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var transactions []models.Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&transactions))
	require.Len(t, transactions, 1)
	assert.Equal(t, models.TransactionPending, transactions[0].Status)
}

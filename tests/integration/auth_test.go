package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	// Step 1: Register
	token, userID := app.registerUser(t, "alice", "password123")
	if token == "" {
		t.Fatal("expected non-empty token from registration")
	}
	if userID == 0 {
		t.Fatal("expected non-zero user ID")
	}

	// Step 2: Login with same credentials
	loginToken := app.loginUser(t, "alice", "password123")
	if loginToken == "" {
		t.Fatal("expected non-empty token from login")
	}

	// Step 3: Access profile with the login token
	rec := app.request("GET", "/api/v1/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["username"] != "alice" {
		t.Errorf("expected username alice, got %v", user["username"])
	}
}

func TestAuthFlow_RegisterSeedsStarterCategories(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "seeded", "password123")

	rec := app.request("GET", "/api/v1/categories?page_size=50", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	if result["total_items"].(float64) != 16 {
		t.Fatalf("expected 16 starter categories, got %v", result["total_items"])
	}

	var income, expense int
	names := make(map[string]bool)
	for _, item := range result["data"].([]interface{}) {
		category := item.(map[string]interface{})
		names[category["name"].(string)] = true
		switch category["type"] {
		case "income":
			income++
		case "expense":
			expense++
		}
	}
	if income != 4 {
		t.Errorf("expected 4 income categories, got %d", income)
	}
	if expense != 12 {
		t.Errorf("expected 12 expense categories, got %d", expense)
	}
	for _, name := range []string{"Salary", "Groceries", "Rent", "Travel"} {
		if !names[name] {
			t.Errorf("expected starter category %q to be present", name)
		}
	}
}

func TestAuthFlow_RegisterDuplicateUsername(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "duplicate", "password123")

	rec := app.request("POST", "/api/v1/auth/register",
		`{"username":"duplicate","email":"other@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "DUPLICATE_USERNAME" {
		t.Errorf("expected DUPLICATE_USERNAME, got %v", errObj["code"])
	}
}

func TestAuthFlow_LoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "bobby", "password123")

	rec := app.request("POST", "/api/v1/auth/login",
		`{"username":"bobby","password":"wrongpassword"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", errObj["code"])
	}
}

func TestAuthFlow_ProtectedRouteRequiresToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/profile", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/profile", "", "not-a-real-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d", rec.Code)
	}
}

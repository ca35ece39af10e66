// internal/api/api_integration_test.go
package api_test

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	app "fintrack/internal"
	"fintrack/internal/session"
)

// testApp is the global application instance for testing.
var testApp *app.Application

// testServer is the httptest server.
var testServer *httptest.Server

// TestMain starts PostgreSQL in a container, boots the application against it
// and serves it over httptest. Under -short nothing is started and every test skips.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}
	os.Exit(runWithApplication(m))
}

func runWithApplication(m *testing.M) int {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("fintrack_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start postgres container: %v\n", err)
		return 1
	}
	defer func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to terminate container: %v\n", err)
		}
	}()

	if err := setupEnvVars(ctx, container); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure environment: %v\n", err)
		return 1
	}

	testApp = app.NewApplication()
	if err := testApp.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize test application: %v\n", err)
		return 1
	}

	testServer = httptest.NewServer(testApp.HTTPHandler)
	defer testServer.Close()

	code := m.Run()

	if err := testApp.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown test application: %v\n", err)
		return 1
	}
	return code
}

// setupEnvVars points the application configuration at the container.
func setupEnvVars(ctx context.Context, container *tcpostgres.PostgresContainer) error {
	host, err := container.Host(ctx)
	if err != nil {
		return err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return err
	}
	migrations, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	if err != nil {
		return err
	}

	env := map[string]string{
		"SERVER_PORT":     "0",
		"DB_HOST":         host,
		"DB_PORT":         port.Port(),
		"DB_USER":         "test",
		"DB_PASSWORD":     "test",
		"DB_NAME":         "fintrack_test",
		"DB_SSLMODE":      "disable",
		"MIGRATIONS_PATH": migrations,
		"SESSION_BACKEND": "postgres",
		"RATE_LIMIT_RPS":  "0",
		"LOG_LEVEL":       "error",
	}
	for k, v := range env {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}

func requireApp(t *testing.T) {
	t.Helper()
	if testServer == nil {
		t.Skip("skipping API integration test in short mode")
	}
}

// clearDatabase truncates all tables so every test starts from a clean state.
func clearDatabase(t *testing.T) {
	tables := []string{"sessions", "friends", "goals", "purchases", "users"}
	for _, table := range tables {
		_, err := testApp.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", table))
		require.NoError(t, err, "Failed to truncate table %s", table)
	}
}

// makeRequest sends a request to the test server. userID is sent as X-User-Id when non-zero.
func makeRequest(t *testing.T, client *http.Client, method, path string, userID int64, body string) (*http.Response, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, testServer.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-Id", fmt.Sprint(userID))
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(respBody)
}

func decode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &m), "body: %s", body)
	return m
}

// registerUser creates a user through the API and returns its id.
func registerUser(t *testing.T, first, email string) int64 {
	t.Helper()
	body := fmt.Sprintf(`{"firstName":%q,"lastName":"Tester","email":%q,"password":"pw","confirmPassword":"pw","income":"3000","expenditures":"1000"}`, first, email)
	resp, respBody := makeRequest(t, nil, http.MethodPost, "/user/register", 0, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, respBody)
	return int64(decode(t, respBody)["id"].(float64))
}

func setScore(t *testing.T, userID int64, score int) {
	t.Helper()
	resp, body := makeRequest(t, nil, http.MethodPut, fmt.Sprintf("/user/%d/score", userID), 0, fmt.Sprintf(`{"score":%d}`, score))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
}

func TestUserIntegration(t *testing.T) {
	requireApp(t)
	clearDatabase(t)

	t.Run("RegisterPersistsSubmittedFields", func(t *testing.T) {
		id := registerUser(t, "Ada", "ada@example.com")

		resp, body := makeRequest(t, nil, http.MethodGet, fmt.Sprintf("/user/%d", id), 0, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		user := decode(t, body)
		assert.Equal(t, "Ada", user["firstName"])
		assert.Equal(t, "Tester", user["lastName"])
		assert.Equal(t, "ada@example.com", user["email"])
		assert.NotContains(t, body, "password")
	})

	t.Run("PasswordMismatch", func(t *testing.T) {
		body := `{"firstName":"B","lastName":"C","email":"b@example.com","password":"one","confirmPassword":"two"}`
		resp, respBody := makeRequest(t, nil, http.MethodPost, "/user/register", 0, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, respBody, "passwords don't match")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		body := `{"firstName":"A","lastName":"B","email":"ada@example.com","password":"pw"}`
		resp, _ := makeRequest(t, nil, http.MethodPost, "/user/register", 0, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ValidationError", func(t *testing.T) {
		resp, body := makeRequest(t, nil, http.MethodPost, "/user/register", 0, `{"firstName":"A","lastName":"B","email":"nope","password":"pw"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "field email must be a valid email address")
	})

	t.Run("UnknownUser", func(t *testing.T) {
		resp, _ := makeRequest(t, nil, http.MethodGet, "/user/9999", 0, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("LoginSessionLogout", func(t *testing.T) {
		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		client := &http.Client{Jar: jar}

		resp, _ := makeRequest(t, client, http.MethodPost, "/user/login", 0, `{"email":"ada@example.com","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, body := makeRequest(t, client, http.MethodPost, "/user/login", 0, `{"email":"ada@example.com","password":"pw"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)
		assert.Equal(t, "ada@example.com", decode(t, body)["email"])

		var sessionCookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == session.CookieName {
				sessionCookie = c
			}
		}
		require.NotNil(t, sessionCookie)
		assert.True(t, sessionCookie.HttpOnly)

		// The cookie stands in for X-User-Id.
		resp, _ = makeRequest(t, client, http.MethodGet, "/purchase/my-purchases", 0, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = makeRequest(t, client, http.MethodPost, "/user/logout", 0, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = makeRequest(t, client, http.MethodGet, "/purchase/my-purchases", 0, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestPurchaseIntegration(t *testing.T) {
	requireApp(t)
	clearDatabase(t)
	owner := registerUser(t, "Owner", "owner@example.com")
	other := registerUser(t, "Other", "other@example.com")

	t.Run("MissingIdentity", func(t *testing.T) {
		resp, body := makeRequest(t, nil, http.MethodPost, "/purchase/record", 0, `{"amount":"5"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Missing or invalid X-User-Id.", body)
	})

	t.Run("StoresActingUser", func(t *testing.T) {
		payload := fmt.Sprintf(`{"userId":%d,"amount":"12.50","category":"food","merchant":"Deli"}`, other)
		resp, body := makeRequest(t, nil, http.MethodPost, "/purchase/record", owner, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode, body)
		created := decode(t, body)
		assert.Equal(t, float64(owner), created["userId"])
		assert.Equal(t, "Deli", created["merchant"])

		resp, body = makeRequest(t, nil, http.MethodGet, fmt.Sprintf("/purchase/admin/%d", int64(created["id"].(float64))), 0, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(owner), decode(t, body)["userId"])
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		resp, _ := makeRequest(t, nil, http.MethodPost, "/purchase/record", owner, `{"amount":"-1","merchant":"x"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MyPurchasesNewestFirst", func(t *testing.T) {
		resp, _ := makeRequest(t, nil, http.MethodPost, "/purchase/record", owner, `{"amount":"40","category":"fun","merchant":"Cinema"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := makeRequest(t, nil, http.MethodGet, "/purchase/my-purchases", owner, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode(t, body)
		assert.Equal(t, float64(2), got["purchaseCount"])
		purchases := got["purchases"].([]interface{})
		assert.Equal(t, "Cinema", purchases[0].(map[string]interface{})["merchant"])

		resp, body = makeRequest(t, nil, http.MethodGet, fmt.Sprintf("/purchase/admin/user/%d", other), 0, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[]`, body)
	})

	t.Run("UnknownPurchase", func(t *testing.T) {
		resp, _ := makeRequest(t, nil, http.MethodGet, "/purchase/admin/9999", 0, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGoalIntegration(t *testing.T) {
	requireApp(t)
	clearDatabase(t)
	userID := registerUser(t, "Saver", "saver@example.com")

	resp, body := makeRequest(t, nil, http.MethodGet, "/goals/my-goals", userID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"goal":null}`, body)

	resp, body = makeRequest(t, nil, http.MethodPost, "/goals/new", userID, `{"title":"Bike","saved":"150","days":60}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	created := decode(t, body)
	assert.Equal(t, float64(userID), created["userId"])
	assert.Equal(t, "Bike", created["goal"].(map[string]interface{})["title"])

	resp, body = makeRequest(t, nil, http.MethodGet, "/goals/my-goals", userID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	goal := decode(t, body)["goal"].(map[string]interface{})
	assert.Equal(t, "Bike", goal["title"])
	assert.NotEmpty(t, goal["endDate"])

	resp, _ = makeRequest(t, nil, http.MethodPost, "/goals/new", userID, `{"saved":"1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLeaderboardIntegration(t *testing.T) {
	requireApp(t)
	clearDatabase(t)
	me := registerUser(t, "Me", "me@example.com")
	high := registerUser(t, "High", "high@example.com")
	low := registerUser(t, "Low", "low@example.com")
	setScore(t, me, 20)
	setScore(t, high, 30)
	setScore(t, low, 10)

	resp, body := makeRequest(t, nil, http.MethodGet, "/leaderboard/count", me, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decode(t, body)["friendsCount"])

	for _, email := range []string{"high@example.com", "low@example.com"} {
		resp, body = makeRequest(t, nil, http.MethodPost, "/leaderboard/new-friend/"+email, me, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	}

	t.Run("SelfFriendRejected", func(t *testing.T) {
		resp, body := makeRequest(t, nil, http.MethodPost, "/leaderboard/new-friend/me@example.com", me, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "you cannot add yourself as a friend")
	})

	t.Run("UnknownFriend", func(t *testing.T) {
		resp, _ := makeRequest(t, nil, http.MethodPost, "/leaderboard/new-friend/ghost@example.com", me, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("AlreadyFriends", func(t *testing.T) {
		resp, _ := makeRequest(t, nil, http.MethodPost, "/leaderboard/new-friend/me@example.com", high, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("CountIsSymmetric", func(t *testing.T) {
		resp, body := makeRequest(t, nil, http.MethodGet, "/leaderboard/count", me, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(2), decode(t, body)["friendsCount"])

		resp, body = makeRequest(t, nil, http.MethodGet, "/leaderboard/count", high, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1), decode(t, body)["friendsCount"])
	})

	t.Run("Rankings", func(t *testing.T) {
		resp, body := makeRequest(t, nil, http.MethodGet, "/leaderboard/rankings", me, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ranks := decode(t, body)["ranks"].([]interface{})
		require.Len(t, ranks, 3)

		scores := make([]float64, 0, 3)
		for _, r := range ranks {
			scores = append(scores, r.(map[string]interface{})["score"].(float64))
		}
		assert.Equal(t, []float64{30, 20, 10}, scores)
		assert.Equal(t, true, ranks[1].(map[string]interface{})["isCurrentUser"])
	})

	t.Run("FriendsList", func(t *testing.T) {
		resp, body := makeRequest(t, nil, http.MethodGet, "/leaderboard/friends", me, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		friends := decode(t, body)["friends"].([]interface{})
		require.Len(t, friends, 2)
		assert.Equal(t, "High", friends[0].(map[string]interface{})["firstName"])
	})
}

func TestDashboardIntegration(t *testing.T) {
	requireApp(t)
	clearDatabase(t)
	userID := registerUser(t, "Dash", "dash@example.com")

	resp, body := makeRequest(t, nil, http.MethodGet, fmt.Sprintf("/dashboard/%d", userID), 0, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	empty := decode(t, body)
	for _, key := range []string{"amount", "merchant", "category", "purchase_time", "title", "days", "saved"} {
		v, present := empty[key]
		assert.True(t, present, key)
		assert.Nil(t, v, key)
	}

	makeRequest(t, nil, http.MethodPost, "/purchase/record", userID, `{"amount":"9.99","category":"music","merchant":"Records"}`)
	makeRequest(t, nil, http.MethodPost, "/goals/new", userID, `{"title":"Trip","saved":"300","days":120}`)

	resp, body = makeRequest(t, nil, http.MethodGet, fmt.Sprintf("/dashboard/%d", userID), 0, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	full := decode(t, body)
	assert.Equal(t, "Records", full["merchant"])
	assert.Equal(t, "Trip", full["title"])
	assert.Equal(t, float64(120), full["days"])

	resp, _ = makeRequest(t, nil, http.MethodGet, "/dashboard/9999", 0, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOperationalEndpoints(t *testing.T) {
	requireApp(t)

	resp, body := makeRequest(t, nil, http.MethodGet, "/health", 0, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)

	resp, body = makeRequest(t, nil, http.MethodGet, "/metrics", 0, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "fintrack_http_requests_total")
}

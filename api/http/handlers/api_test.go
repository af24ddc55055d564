package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	apihttp "github.com/ahmadblivin/studybuddy/api/http"
	"github.com/ahmadblivin/studybuddy/api/http/handlers"
	"github.com/ahmadblivin/studybuddy/pkg/account"
	"github.com/ahmadblivin/studybuddy/pkg/assignment"
	"github.com/ahmadblivin/studybuddy/pkg/chat"
	"github.com/ahmadblivin/studybuddy/pkg/health"
	"github.com/ahmadblivin/studybuddy/pkg/security/jwt"
)

const (
	testSecret = "api-test-secret"
	testIssuer = "studybuddy"
)

type testEnv struct {
	app      *fiber.App
	users    *memoryUserRepo
	tasks    *memoryAssignmentRepo
	messages *memoryMessageRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		app:      fiber.New(),
		users:    newMemoryUserRepo(),
		tasks:    &memoryAssignmentRepo{},
		messages: &memoryMessageRepo{},
	}

	jwtGen := jwt.NewGenerator(testSecret, testIssuer, time.Hour)
	accountUC := account.NewService(env.users, jwtGen)
	assignmentUC := assignment.NewService(env.tasks)
	chatUC := chat.NewService(env.messages, env.users)

	apihttp.Register(
		env.app,
		handlers.NewAuthHandler(accountUC),
		handlers.NewProfileHandler(accountUC),
		handlers.NewAssignmentHandler(assignmentUC),
		handlers.NewChatHandler(chatUC),
		handlers.NewHealthHandler(health.NewService()),
		jwt.NewAuthMiddleware(testSecret, testIssuer),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// login hits the real endpoint and returns the issued token.
func (e *testEnv) login(t *testing.T, email, name string) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/login", "", fiber.Map{"email": email, "name": name})
	require.Equal(t, http.StatusOK, status, "login body: %s", body)
	var res struct {
		Token string       `json:"token"`
		User  account.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for _, body := range []fiber.Map{
		{"email": "", "name": "Ann"},
		{"email": "a@x.com", "name": ""},
		{},
	} {
		status, _ := env.do(t, http.MethodPost, "/api/login", "", body)
		require.Equal(t, http.StatusBadRequest, status)
	}
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodPost, "/api/login", "", fiber.Map{"email": "a@x.com", "name": "Ann"})
	require.Equal(t, http.StatusOK, status)

	var res struct {
		Token string       `json:"token"`
		User  account.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &res))
	require.Equal(t, "a@x.com", res.User.Email)
	require.Equal(t, "Ann", res.User.Name)

	// Second login with another name must not overwrite the first one.
	status, body = env.do(t, http.MethodPost, "/api/login", "", fiber.Map{"email": "a@x.com", "name": "Somebody"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &res))
	require.Equal(t, "Ann", res.User.Name)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile"},
		{http.MethodGet, "/api/assignments"},
		{http.MethodPost, "/api/assignments"},
		{http.MethodDelete, "/api/assignments/0b9fbe6e-95f0-4a43-bd1e-f2534ccfc3e6"},
		{http.MethodGet, "/api/chat"},
		{http.MethodPost, "/api/chat"},
	}
	for _, r := range routes {
		status, _ := env.do(t, r.method, r.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, status, "%s %s without token", r.method, r.path)

		status, _ = env.do(t, r.method, r.path, "definitely-not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, status, "%s %s with forged token", r.method, r.path)
	}
}

func TestProfileUpdateScenario(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.login(t, "a@x.com", "Ann")

	status, body := env.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	var user account.User
	require.NoError(t, json.Unmarshal(body, &user))
	require.Equal(t, "a@x.com", user.Email)
	require.Equal(t, "Ann", user.Name)

	status, body = env.do(t, http.MethodPut, "/api/profile", token, fiber.Map{"name": "Annie"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &user))
	require.Equal(t, "Annie", user.Name)

	status, body = env.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &user))
	require.Equal(t, "Annie", user.Name)
}

func TestAssignmentOwnershipScoping(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tokenA := env.login(t, "a@x.com", "Ann")
	tokenB := env.login(t, "b@x.com", "Bob")

	status, body := env.do(t, http.MethodPost, "/api/assignments", tokenA,
		fiber.Map{"title": "Essay", "due": "2024-05-01"})
	require.Equal(t, http.StatusOK, status)
	var created assignment.Assignment
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, "a@x.com", created.OwnerEmail)

	// B sees none of A's assignments.
	status, body = env.do(t, http.MethodGet, "/api/assignments", tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	var list []assignment.Assignment
	require.NoError(t, json.Unmarshal(body, &list))
	require.Empty(t, list)

	// B deleting A's assignment still reports success but removes nothing.
	status, body = env.do(t, http.MethodDelete, "/api/assignments/"+created.ID.String(), tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	var msg struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &msg))
	require.NotEmpty(t, msg.Message)

	status, body = env.do(t, http.MethodGet, "/api/assignments", tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)

	// The owner's delete removes it for real.
	status, _ = env.do(t, http.MethodDelete, "/api/assignments/"+created.ID.String(), tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	status, body = env.do(t, http.MethodGet, "/api/assignments", tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &list))
	require.Empty(t, list)
}

func TestAssignmentCreateValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.login(t, "a@x.com", "Ann")

	for _, body := range []fiber.Map{
		{"title": "", "due": "2024-05-01"},
		{"title": "Essay", "due": ""},
		{"title": "Essay", "due": "someday"},
	} {
		status, _ := env.do(t, http.MethodPost, "/api/assignments", token, body)
		require.Equal(t, http.StatusBadRequest, status, "body: %v", body)
	}

	status, _ := env.do(t, http.MethodDelete, "/api/assignments/not-a-uuid", token, nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestChatPostAndList(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.login(t, "a@x.com", "Ann")

	status, body := env.do(t, http.MethodPost, "/api/chat", token, fiber.Map{"text": "hi"})
	require.Equal(t, http.StatusOK, status)
	var posted chat.Message
	require.NoError(t, json.Unmarshal(body, &posted))
	require.Equal(t, "a@x.com", posted.SenderEmail)
	require.Equal(t, "Ann", posted.SenderName)
	require.Equal(t, "hi", posted.Text)

	status, body = env.do(t, http.MethodGet, "/api/chat", token, nil)
	require.Equal(t, http.StatusOK, status)
	var messages []chat.Message
	require.NoError(t, json.Unmarshal(body, &messages))
	require.NotEmpty(t, messages)
	last := messages[len(messages)-1]
	require.Equal(t, "hi", last.Text)
	require.Equal(t, "a@x.com", last.SenderEmail)
	require.Equal(t, "Ann", last.SenderName)
}

func TestChatEmptyTextRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.login(t, "a@x.com", "Ann")

	status, _ := env.do(t, http.MethodPost, "/api/chat", token, fiber.Map{"text": ""})
	require.Equal(t, http.StatusBadRequest, status)

	status, body := env.do(t, http.MethodGet, "/api/chat", token, nil)
	require.Equal(t, http.StatusOK, status)
	var messages []chat.Message
	require.NoError(t, json.Unmarshal(body, &messages))
	require.Empty(t, messages, "rejected post must not create a record")
}

// Messages arrive back sorted by timestamp no matter the append order.
func TestChatListOrderedByTimestamp(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.login(t, "a@x.com", "Ann")

	base := time.Now().UTC()
	for i, offset := range []time.Duration{2 * time.Minute, 0, time.Minute} {
		require.NoError(t, env.messages.Create(context.Background(), chat.Message{
			SenderEmail: "a@x.com",
			SenderName:  "Ann",
			Text:        []string{"third", "first", "second"}[i],
			Timestamp:   base.Add(offset),
		}))
	}

	status, body := env.do(t, http.MethodGet, "/api/chat", token, nil)
	require.Equal(t, http.StatusOK, status)
	var messages []chat.Message
	require.NoError(t, json.Unmarshal(body, &messages))
	require.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		require.False(t, messages[i].Timestamp.Before(messages[i-1].Timestamp),
			"message %d out of order", i)
	}
	require.Equal(t, "first", messages[0].Text)
	require.Equal(t, "third", messages[2].Text)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"status":"ok"}`, string(body))

	status, body = env.do(t, http.MethodGet, "/api/ready", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"status":"ready"}`, string(body))
}

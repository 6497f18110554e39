package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
)

func TestClient_Login(t *testing.T) {
	t.Run("success decodes tokens and user", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.com", body["email"])
			assert.Equal(t, true, body["remember"])

			json.NewEncoder(w).Encode(map[string]any{
				"access":  "acc-token",
				"refresh": "ref-token",
				"user":    map[string]any{"id": 7, "full_name": "Ada Lovelace", "role": "ADMIN"},
			})
		}))
		defer server.Close()

		c := NewClient(server.URL)
		resp, err := c.Login(context.Background(), "a@b.com", "pw", true)
		require.NoError(t, err)
		assert.Equal(t, "acc-token", resp.Access)
		assert.Equal(t, "ref-token", resp.Refresh)
		assert.Equal(t, int64(7), resp.User.ID)
		assert.Equal(t, model.RoleAdmin, resp.User.Role)
	})

	t.Run("failure surfaces server detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found with the given credentials"})
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.Login(context.Background(), "a@b.com", "bad", false)
		require.Error(t, err)

		apiErr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "No active account found with the given credentials", apiErr.Message)
	})
}

func TestClient_BearerHeader(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"stats": map[string]int{}})
	}))
	defer server.Close()

	c := NewClient(server.URL)

	_, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got, "no header before a token is set")

	c.SetToken("abc123")
	_, err = c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", got)

	c.ClearToken()
	_, err = c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got, "header cleared with the token")
}

func TestClient_ErrorNormalization(t *testing.T) {
	t.Run("error field preferred", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid code"})
		}))
		defer server.Close()

		err := NewClient(server.URL).VerifyResetCode(context.Background(), "a@b.com", "000000")
		require.Error(t, err)
		assert.Equal(t, "Invalid code", err.Error())
		assert.Equal(t, http.StatusBadRequest, StatusCode(err))
		assert.True(t, IsAuthFailure(err))
	})

	t.Run("unstructured body falls back to status text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		err := NewClient(server.URL).ForgotPassword(context.Background(), "a@b.com")
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
		assert.False(t, IsAuthFailure(err))
	})

	t.Run("transport failure has zero status", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1")
		err := c.ForgotPassword(context.Background(), "a@b.com")
		require.Error(t, err)
		assert.Equal(t, 0, StatusCode(err))
	})
}

func TestClient_ListEnvelopes(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "title": "One"}})
		}))
		defer server.Close()

		tasks, err := NewClient(server.URL).Tasks(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "One", tasks[0].Title)
	})

	t.Run("paginated results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"count":   2,
				"results": []map[string]any{{"id": 1, "name": "P1"}, {"id": 2, "name": "P2"}},
			})
		}))
		defer server.Close()

		projects, err := NewClient(server.URL).Projects(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "P2", projects[1].Name)
	})
}

func TestClient_AvailableUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/available/", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("project_id"))
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{{"id": 3, "full_name": "Grace Hopper"}},
		})
	}))
	defer server.Close()

	users, err := NewClient(server.URL).AvailableUsers(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Grace Hopper", users[0].FullName)
}

func TestClient_MarkNotificationRead(t *testing.T) {
	var path, method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		method = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewClient(server.URL).MarkNotificationRead(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "/notifications/9/read/", path)
	assert.Equal(t, http.MethodPost, method)
}

func TestClient_DashboardReads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/stats/":
			json.NewEncoder(w).Encode(map[string]any{"stats": map[string]int{"total_tasks": 12}})
		case "/dashboard/recent-tasks/":
			json.NewEncoder(w).Encode(map[string]any{"tasks": []map[string]any{{"id": 1, "title": "T"}}})
		case "/dashboard/active-projects/":
			json.NewEncoder(w).Encode(map[string]any{"projects": []map[string]any{{"id": 1, "name": "P"}}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := NewClient(server.URL)

	stats, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats["total_tasks"])

	tasks, err := c.RecentTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	projects, err := c.ActiveProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
}

func TestClient_CreateTaskSendsEmptyAssigneeArray(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "title": "T"})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.CreateTask(context.Background(), model.NewTask{
		Title:    "T",
		Priority: model.PriorityMedium,
		DueDate:  "2026-09-01",
		Project:  1,
	})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"assigned_to":[]`)
	assert.NotContains(t, string(body), `"assigned_to":null`)

	_, err = c.UpdateTask(context.Background(), 1, model.NewTask{Title: "T", Project: 1, DueDate: "2026-09-01"})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"assigned_to":[]`)
}

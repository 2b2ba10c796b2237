package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avillega/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestTaskStore_Create_PostsBodyAndReturnsServerRecord(t *testing.T) {
	var gotBody map[string]any
	var gotRequestID string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/dashboard/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get("X-Request-ID")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Task{
			ID: "t-100", Name: "Write report", Status: domain.TaskPending, Priority: domain.PriorityHigh,
		})
	}))

	store := NewTaskStore(client)
	created, err := store.Create(context.Background(), domain.Task{
		Name: "Write report", Status: domain.TaskPending, Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, "t-100", created.ID)
	assert.Equal(t, "Write report", gotBody["name"])
	assert.Equal(t, "high", gotBody["priority"])
	assert.NotEmpty(t, gotRequestID)
}

func TestStore_List(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode([]domain.Contact{
			{ID: "c-1", Name: "Dana", Category: domain.CategoryMentors},
			{ID: "c-2", Name: "Lee", Category: domain.CategoryAlumni},
		})
	}))

	contacts, err := NewContactStore(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Dana", contacts[0].Name)
}

func TestStore_Update_SendsPartialFields(t *testing.T) {
	var gotBody map[string]any

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/dashboard/tasks/t-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(domain.Task{ID: "t-1", Name: "old name", Status: domain.TaskCompleted})
	}))

	updated, err := NewTaskStore(client).Update(context.Background(), "t-1",
		map[string]any{"status": "completed"})
	require.NoError(t, err)

	// Only the toggled field travels; the cache adopts the server's record.
	assert.Equal(t, map[string]any{"status": "completed"}, gotBody)
	assert.Equal(t, domain.TaskCompleted, updated.Status)
}

func TestStore_Remove(t *testing.T) {
	deleted := false
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/contacts/c-9", r.URL.Path)
		deleted = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, NewContactStore(client).Remove(context.Background(), "c-9"))
	assert.True(t, deleted)
}

func TestStore_ServerRejection_CarriesServerMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Missing required field: name"}`))
	}))

	_, err := NewGoalStore(client).Create(context.Background(), domain.Goal{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing required field: name", apiErr.Message)
}

func TestStore_ServerRejection_FallsBackToStatusMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))

	_, err := NewTaskStore(client).List(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "500")
}

func TestStore_NotFoundHelper(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Skill not found or unauthorized"}`))
	}))

	err := NewSkillStore(client).Remove(context.Background(), "nope")
	assert.True(t, NotFound(err))
}

func TestClient_TransportFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // dead server

	client := NewClient(srv.URL, time.Second)
	_, err := NewTaskStore(client).List(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestSkillStore_UpdateDay_AdoptsServerRecord(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		// Server recomputes percent from the days array; the client must
		// reflect this record, not its own guess.
		json.NewEncoder(w).Encode(domain.Skill{
			ID: "s-1", Name: "Go", Completed: 40, Status: domain.SkillInProgress,
			Days: []domain.SkillDay{
				{Date: "2024-01-05", Note: "interfaces", Completed: true},
			},
		})
	}))

	updated, err := NewSkillStore(client).UpdateDay(context.Background(), "s-1", "2024-01-05", "interfaces", true)
	require.NoError(t, err)

	assert.Equal(t, "/api/skills/s-1/day/2024-01-05", gotPath)
	assert.Equal(t, true, gotBody["completed"])
	assert.Equal(t, 40, updated.Completed)
	assert.Equal(t, domain.SkillInProgress, updated.Status)
}

func TestStatsClient_Stats(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard_data", r.URL.Path)
		json.NewEncoder(w).Encode(domain.DashboardStats{
			NetworkData: domain.NetworkStats{TotalContacts: 12, GrowthPercentage: 25},
		})
	}))

	stats, err := NewStatsClient(client).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.NetworkData.TotalContacts)
	assert.Equal(t, 25, stats.NetworkData.GrowthPercentage)
}

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-aqua-client/api"
	"github.com/jrsteele09/go-aqua-client/aquamodel"
	apperrors "github.com/jrsteele09/go-aqua-client/internal/errors"
	"github.com/stretchr/testify/require"
)

const testToken = "token-123"

func newBackend(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.New(srv.URL+"/", api.WithHTTPClient(srv.Client()))
	require.Equal(t, srv.URL, client.BaseURL())
	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_Login(t *testing.T) {
	t.Run("token issued", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, api.PathLogin, r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.Empty(t, r.Header.Get("Authorization"))

			var creds aquamodel.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			require.Equal(t, aquamodel.Credentials{Email: "a@b.com", Password: "pw"}, creds)

			writeJSON(w, http.StatusOK, map[string]string{"access_token": testToken})
		})

		resp, err := client.Login(context.Background(), aquamodel.Credentials{Email: "a@b.com", Password: "pw"})
		require.NoError(t, err)
		require.True(t, resp.HasToken())
		require.Equal(t, testToken, resp.AccessToken)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		})

		_, err := client.Login(context.Background(), aquamodel.Credentials{Email: "a@b.com"})
		require.Error(t, err)

		var se *api.StatusError
		require.True(t, apperrors.As(err, &se))
		require.Equal(t, http.StatusUnauthorized, se.StatusCode)
		require.Equal(t, "Invalid credentials", se.ErrorText)
		require.True(t, api.IsUnauthorized(err))
	})
}

func TestClient_Register(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.PathRegister, r.URL.Path)
		writeJSON(w, http.StatusCreated, map[string]string{"message": "registered"})
	})

	resp, err := client.Register(context.Background(), aquamodel.Credentials{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	require.False(t, resp.HasToken())
	require.Equal(t, "registered", resp.Message)
}

func TestClient_GetData(t *testing.T) {
	t.Run("bearer header and request id", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, api.PathData, r.URL.Path)
			require.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
			_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
			require.NoError(t, err)
			writeJSON(w, http.StatusOK, map[string]int{"consumed": 500, "goal": 2000, "streak": 2, "best_streak": 5})
		})

		patch, err := client.GetData(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, aquamodel.State{Consumed: 500, Goal: 2000, Streak: 2, BestStreak: 5}, aquamodel.State{}.Merge(patch))
	})

	t.Run("unauthorized", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token is invalid!"})
		})

		_, err := client.GetData(context.Background(), testToken)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
		require.Contains(t, err.Error(), "Token is invalid!")
	})

	t.Run("server error", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetData(context.Background(), testToken)
		require.ErrorIs(t, err, apperrors.ErrUnexpectedStatus)
		require.False(t, api.IsUnauthorized(err))
	})

	t.Run("missing token", func(t *testing.T) {
		client := api.New("http://127.0.0.1:1")
		_, err := client.GetData(context.Background(), "")
		require.ErrorIs(t, err, apperrors.ErrNoToken)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		_, err := client.GetData(context.Background(), testToken)
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode")
	})
}

func TestClient_SaveData(t *testing.T) {
	var received aquamodel.State
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok", "streak": 1, "best_streak": 1})
	})

	state := aquamodel.State{Consumed: 2100, Goal: 2000, Streak: 0, BestStreak: 3}
	require.NoError(t, client.SaveData(context.Background(), testToken, state))
	require.Equal(t, state, received)
}

func TestClient_GetStatistics(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.PathStatistics, r.URL.Path)
		require.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"lifetime_consumed":         12000,
			"average_daily_consumption": 1714,
			"days_since_registration":   7,
			"best_streak":               4,
			"current_goal":              2000,
		})
	})

	stats, err := client.GetStatistics(context.Background(), testToken)
	require.NoError(t, err)
	require.Equal(t, aquamodel.Statistics{
		LifetimeConsumed:        12000,
		AverageDailyConsumption: 1714,
		DaysSinceRegistration:   7,
		BestStreak:              4,
		CurrentGoal:             2000,
	}, stats)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := api.New(url).Login(context.Background(), aquamodel.Credentials{})
	require.Error(t, err)
	require.Contains(t, err.Error(), api.PathLogin)
}

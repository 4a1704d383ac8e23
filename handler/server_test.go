package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lendbook/core"
	"lendbook/pkg/id"
	"lendbook/service/entropy"
	"lendbook/service/lending"
	"lendbook/service/session"
	"lendbook/store/leveldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	server *httptest.Server
	cfg    core.SessionConfig
}

func newTestServer(t *testing.T) *testServer {
	store, err := leveldb.OpenMemory()
	require.Nil(t, err)

	cfg := core.SessionConfig{Secret: "secret", Issuer: "lendbook"}
	module := lending.New(store, &core.System{Admins: []string{"admin"}}, entropy.Static(id.Sum("seed")), nil, nil)
	srv := httptest.NewServer(New(session.New(cfg), module).HandleRestAPI())

	t.Cleanup(func() {
		srv.Close()
		store.Close()
	})

	return &testServer{t: t, server: srv, cfg: cfg}
}

func (s *testServer) do(method, path, account, body string) (int, map[string]interface{}) {
	req, err := http.NewRequest(method, s.server.URL+path, strings.NewReader(body))
	require.Nil(s.t, err)

	if account != "" {
		token, err := session.IssueToken(s.cfg, account, time.Minute)
		require.Nil(s.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.Nil(s.t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.Nil(s.t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestRestAPI(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(http.MethodPost, "/api/assets", "", `{"name":"Tether","ticker":"USDT","total_supply":"1000"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := s.do(http.MethodPost, "/api/assets", "alice", `{"name":"Tether","ticker":"USDT","total_supply":"1000"}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, float64(core.ErrOperationForbidden), body["code"])

	status, body = s.do(http.MethodPost, "/api/assets", "admin", `{"name":"Tether","ticker":"USDT","total_supply":"1000"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["id"])

	status, _ = s.do(http.MethodPost, "/api/transfers", "admin", `{"asset":1,"to":"alice","value":"250"}`)
	require.Equal(t, http.StatusOK, status)

	status, body = s.do(http.MethodGet, "/api/balances/1/alice", "", "")
	require.Equal(t, http.StatusOK, status)
	balance := body["data"].(map[string]interface{})
	assert.Equal(t, "250", balance["balance"])
	assert.Equal(t, "250", balance["free"])
	assert.Equal(t, "0", balance["reserved"])

	status, body = s.do(http.MethodPost, "/api/transfers", "alice", `{"asset":1,"to":"bob","value":"251"}`)
	assert.Equal(t, http.StatusPreconditionFailed, status)
	assert.Equal(t, float64(core.ErrInsufficientBalance), body["code"])

	status, _ = s.do(http.MethodGet, "/api/prices/1", "", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodGet, "/api/assets/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.do(http.MethodGet, "/api/borrows?limit=5", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["data"].(map[string]interface{})["total"])
}

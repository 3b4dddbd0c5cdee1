package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bearycool11/pmll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voodooEntity/gitsapi"
)

// Extend registers on the shared gitsapi mux, so all endpoint checks
// run inside a single test against one server instance.
func TestEndpoints(t *testing.T) {
	brain := pmll.New(pmll.Settings{Ident: "api-test"})
	require.NoError(t, brain.Start())
	Extend(brain)

	server := httptest.NewServer(gitsapi.ServeMux)
	defer server.Close()

	t.Run("record", func(t *testing.T) {
		payload, _ := json.Marshal(RecordRequest{Input: "Hello, Persistent World!"})
		res, err := http.Post(server.URL+"/v1/record", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, 200, res.StatusCode)

		var recordResponse RecordResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&recordResponse))
		assert.Equal(t, "PMLL processed: Hello, Persistent World!", recordResponse.Response)
		assert.Equal(t, []string{"Hello, Persistent World!"}, recordResponse.History)
	})

	t.Run("history", func(t *testing.T) {
		res, err := http.Get(server.URL + "/v1/history")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, 200, res.StatusCode)

		var historyResponse HistoryResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&historyResponse))
		assert.Equal(t, []string{"Hello, Persistent World!"}, historyResponse.History)
	})

	t.Run("fingerprint", func(t *testing.T) {
		payload, _ := json.Marshal(FingerprintRequest{Data: "abc"})
		res, err := http.Post(server.URL+"/v1/fingerprint", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, 200, res.StatusCode)

		var fingerprintResponse FingerprintResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&fingerprintResponse))
		assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", fingerprintResponse.Fingerprint)
	})

	t.Run("verify", func(t *testing.T) {
		payload, _ := json.Marshal(VerifyRequest{
			Data:      "abc",
			Signature: brain.Fingerprint("abc"),
		})
		res, err := http.Post(server.URL+"/v1/verify", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, 200, res.StatusCode)

		var verifyResponse VerifyResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&verifyResponse))
		assert.True(t, verifyResponse.Valid)
	})

	t.Run("verify mismatch", func(t *testing.T) {
		payload, _ := json.Marshal(VerifyRequest{
			Data:      "abd",
			Signature: brain.Fingerprint("abc"),
		})
		res, err := http.Post(server.URL+"/v1/verify", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, 200, res.StatusCode)

		var verifyResponse VerifyResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&verifyResponse))
		assert.False(t, verifyResponse.Valid)
	})

	t.Run("invalid method", func(t *testing.T) {
		res, err := http.Get(server.URL + "/v1/record")
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, 422, res.StatusCode)
	})

	t.Run("invalid json body", func(t *testing.T) {
		res, err := http.Post(server.URL+"/v1/record", "application/json", bytes.NewReader([]byte("not json")))
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, 422, res.StatusCode)
	})
}

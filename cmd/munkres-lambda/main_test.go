//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/munkres/hungarian"
	"github.com/katalvlaran/munkres/internal/problemio"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func newTestServer(t *testing.T, kv map[string]string) *server {
	t.Helper()
	s, err := newServer(env(kv), zerolog.Nop())
	require.NoError(t, err)

	return s
}

func TestNewServer(t *testing.T) {
	assert.Equal(t, defaultMaxDim, newTestServer(t, nil).maxDim)
	assert.Equal(t, 4, newTestServer(t, map[string]string{"MUNKRES_MAX_DIM": "4"}).maxDim)

	_, err := newServer(env(map[string]string{"MUNKRES_MAX_DIM": "-3"}), zerolog.Nop())
	require.Error(t, err)
	_, err = newServer(env(map[string]string{"MUNKRES_MAX_DIM": "lots"}), zerolog.Nop())
	require.Error(t, err)
}

func TestHandler(t *testing.T) {
	s := newTestServer(t, nil)
	doc := `{"mode": "max", "cost": [[3, 7, 5, 11], [5, 4, 6, 3], [6, 10, 1, 1]]}`

	tests := []struct {
		name  string
		event events.LambdaFunctionURLRequest
	}{
		{"plain", events.LambdaFunctionURLRequest{Body: doc}},
		{"base64", events.LambdaFunctionURLRequest{
			Body:            base64.StdEncoding.EncodeToString([]byte(doc)),
			IsBase64Encoded: true,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := s.handler(context.Background(), tc.event)
			require.NoError(t, err)
			require.Equal(t, 200, resp.StatusCode, resp.Body)

			var sol problemio.Solution
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &sol))
			assert.Equal(t, 27.0, sol.Cost)
			assert.Equal(t, []int{3, 2, 1}, sol.Assignment)
			assert.Equal(t, "maximize", sol.Mode)
		})
	}
}

func TestHandler_CBOR(t *testing.T) {
	s := newTestServer(t, nil)
	data, err := problemio.EncodeProblemCBOR(problemio.NewProblem([][]float64{{4, 1}, {2, 8}}, hungarian.Minimize))
	require.NoError(t, err)

	resp, err := s.handler(context.Background(), events.LambdaFunctionURLRequest{
		Headers:         map[string]string{"content-type": "application/cbor"},
		Body:            base64.StdEncoding.EncodeToString(data),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode, resp.Body)
	assert.Contains(t, resp.Body, `"assignment":[1,0]`)
}

func TestHandler_Errors(t *testing.T) {
	s := newTestServer(t, map[string]string{"MUNKRES_MAX_DIM": "2"})

	tests := []struct {
		name  string
		event events.LambdaFunctionURLRequest
		code  int
	}{
		{"bad base64", events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true}, 400},
		{"bad json", events.LambdaFunctionURLRequest{Body: `{"cost": [`}, 400},
		{"ragged", events.LambdaFunctionURLRequest{Body: `{"cost": [[1, 2], [3]]}`}, 422},
		{"too large", events.LambdaFunctionURLRequest{Body: `{"cost": [[1, 2, 3]]}`}, 413},
		{"total overflows", events.LambdaFunctionURLRequest{Body: `{"cost": [[1e308, 0], [0, 1e308]], "mode": "max"}`}, 422},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := s.handler(context.Background(), tc.event)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
			assert.Contains(t, resp.Body, `"error"`)
		})
	}
}

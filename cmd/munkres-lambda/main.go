//go:build lambda

// Command munkres-lambda serves the solver behind an AWS Lambda Function URL.
//
// The request body is a problem document (JSON, or CBOR when the
// Content-Type is application/cbor); the response is the solution document
// as JSON. MUNKRES_MAX_DIM bounds max(rows, cols) to keep latency bounded.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/munkres/hungarian"
	"github.com/katalvlaran/munkres/internal/problemio"
)

// defaultMaxDim applies when MUNKRES_MAX_DIM is unset.
const defaultMaxDim = 256

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type server struct {
	maxDim int
	log    zerolog.Logger
}

// newServer reads the configuration from getenv.
func newServer(getenv func(string) string, log zerolog.Logger) (*server, error) {
	s := &server{maxDim: defaultMaxDim, log: log}
	if v := getenv("MUNKRES_MAX_DIM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("MUNKRES_MAX_DIM: want a non-negative integer, got %q", v)
		}
		s.maxDim = n
	}

	return s, nil
}

func (s *server) handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	format := problemio.JSON
	if strings.HasPrefix(contentType(event.Headers), "application/cbor") {
		format = problemio.CBOR
	}
	p, err := problemio.Decode([]byte(body), format)
	if err != nil {
		return errResp(400, err.Error())
	}

	log := s.log.With().Str("request_id", event.RequestContext.RequestID).Logger()
	sol, err := p.Solve(hungarian.WithMaxDim(s.maxDim), hungarian.WithLogger(log))
	switch {
	case errors.Is(err, hungarian.ErrDimensionLimit):
		return errResp(413, err.Error())
	case err != nil:
		return errResp(422, err.Error())
	}
	log.Info().
		Int("rows", p.Rows).
		Int("cols", p.Cols).
		Float64("cost", sol.Cost).
		Msg("solved")

	respJSON, err := json.Marshal(sol)
	if err != nil {
		return errResp(500, err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

// contentType finds the Content-Type header regardless of its case.
func contentType(h map[string]string) string {
	for k, v := range h {
		if strings.EqualFold(k, "content-type") {
			return strings.ToLower(v)
		}
	}

	return ""
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	s, err := newServer(os.Getenv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	lambda.Start(s.handler)
}

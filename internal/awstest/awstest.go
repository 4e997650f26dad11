// Package awstest serves canned AWS API responses to real SDK clients over a
// stubbed HTTP transport.
package awstest

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Response is a canned reply for one operation. Successive calls to the same
// operation consume Pages in order and repeat the last one.
type Response struct {
	Status int
	Pages  []string
}

func JSON(body ...string) Response {
	return Response{Status: http.StatusOK, Pages: body}
}

// JSONError builds an awsJson 1.0 error reply.
func JSONError(status int, code, message string) Response {
	return Response{Status: status, Pages: []string{`{"__type":"` + code + `","Message":"` + message + `"}`}}
}

// Transport routes requests by X-Amz-Target (JSON protocols) or Action
// (query protocol) and records every operation it sees.
type Transport struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []string
	bodies    map[string][]string
}

func NewTransport(responses map[string]Response) *Transport {
	return &Transport{responses: responses, bodies: map[string][]string{}}
}

func (rt *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}
	op, contentType := operation(req, body)

	rt.mu.Lock()
	seen := len(rt.bodies[op])
	rt.calls = append(rt.calls, op)
	rt.bodies[op] = append(rt.bodies[op], string(body))
	resp, ok := rt.responses[op]
	rt.mu.Unlock()

	if !ok || len(resp.Pages) == 0 {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader("unknown operation " + op)),
			Header:     http.Header{"Content-Type": []string{"text/plain"}},
			Request:    req,
		}, nil
	}
	page := resp.Pages[len(resp.Pages)-1]
	if seen < len(resp.Pages) {
		page = resp.Pages[seen]
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(strings.TrimSpace(page))),
		Header:     http.Header{"Content-Type": []string{contentType}},
		Request:    req,
	}, nil
}

func operation(req *http.Request, body []byte) (string, string) {
	if target := req.Header.Get("X-Amz-Target"); target != "" {
		return target, "application/x-amz-json-1.0"
	}
	values, _ := url.ParseQuery(string(body))
	action := values.Get("Action")
	if action == "" {
		action = req.URL.Query().Get("Action")
	}
	return action, "text/xml"
}

// Calls returns every operation seen, in order.
func (rt *Transport) Calls() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string{}, rt.calls...)
}

// Count returns how many times op was requested.
func (rt *Transport) Count(op string) int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.bodies[op])
}

// Bodies returns the request bodies sent for op.
func (rt *Transport) Bodies(op string) []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string{}, rt.bodies[op]...)
}

// Config returns an SDK config whose clients talk to rt.
func Config(t *testing.T, region string, rt *Transport) aws.Config {
	t.Helper()
	return aws.Config{
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		HTTPClient:   &http.Client{Transport: rt},
		BaseEndpoint: aws.String("https://aws.test"),
		Retryer:      func() aws.Retryer { return aws.NopRetryer{} },
	}
}

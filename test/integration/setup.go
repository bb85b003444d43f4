// Package integration provides helpers and integration tests for the ski
// stay search system. Integration tests verify that components work together
// correctly, including HTTP handlers, the search use case, and mock doubles.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/ski-stay/ski-stay-search/internal/adapter/http"
	"github.com/ski-stay/ski-stay-search/internal/adapter/kindred"
	"github.com/ski-stay/ski-stay-search/internal/domain"
	"github.com/ski-stay/ski-stay-search/internal/usecase"
	"github.com/ski-stay/ski-stay-search/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.Handler
}

// NewTestServer creates a new test server with the given use case, auth
// service, and resort catalog.
func NewTestServer(uc usecase.HomeSearchUseCase, auth httpAdapter.AuthService, catalog *domain.ResortTable) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHandler(uc, auth, catalog)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	Token       string
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if req.Token != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest executes a home search request with the given body and a
// valid bearer token.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/homes/search",
		Body:   body,
		Token:  "test-token",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Regions        []string `json:"regions,omitempty"`
	Resorts        []string `json:"resorts,omitempty"`
	MileRange      float64  `json:"mileRange,omitempty"`
	DateType       string   `json:"dateType,omitempty"`
	MinNights      int      `json:"minNights,omitempty"`
	NumberOfPeople int      `json:"numberOfPeople,omitempty"`
	PetsAllowed    bool     `json:"petsAllowed,omitempty"`
}

// DefaultSearchRequest returns a valid search request body covering January
// 2025, the month the sample listings are available.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-20",
	}
}

// DefaultSearchCriteria returns a valid search criteria for exercising the
// use case directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-20",
	}
}

// SampleCatalog returns the shared test resort catalog.
func SampleCatalog() *domain.ResortTable {
	return domain.NewResortTable(testutil.SampleResorts())
}

// CreateUseCase creates a use case over the sample catalog with the given
// searcher and router doubles and default configuration.
func CreateUseCase(searcher domain.HomeSearcher, router domain.RoutingProvider) usecase.HomeSearchUseCase {
	return usecase.NewHomeSearchUseCase(SampleCatalog(), searcher, router, nil, zerolog.Nop())
}

// StubAuth is a configurable stand-in for the upstream auth client.
type StubAuth struct {
	Challenge *kindred.OTPChallenge
	Creds     *kindred.Credentials
	Valid     bool
	Err       error
}

// SendOTP implements httpAdapter.AuthService.
func (a *StubAuth) SendOTP(context.Context, string) (*kindred.OTPChallenge, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	if a.Challenge != nil {
		return a.Challenge, nil
	}
	return &kindred.OTPChallenge{Mode: "OTP", Length: 6}, nil
}

// VerifyOTP implements httpAdapter.AuthService.
func (a *StubAuth) VerifyOTP(context.Context, string, string) (*kindred.Credentials, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	if a.Creds != nil {
		return a.Creds, nil
	}
	return &kindred.Credentials{AccessToken: "access", RefreshToken: "refresh"}, nil
}

// Validate implements httpAdapter.AuthService.
func (a *StubAuth) Validate(context.Context, string) (bool, error) {
	if a.Err != nil {
		return false, a.Err
	}
	return a.Valid, nil
}

// Ensure StubAuth satisfies the handler's auth dependency.
var _ httpAdapter.AuthService = (*StubAuth)(nil)

// Package careersclient is a typed client for the careers HTTP API.
package careersclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/google/uuid"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("careers api error (%d): %s", e.Status, e.Message)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Login signs in and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.UserLogin{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) ListJobs(ctx context.Context, search string, criteria dto.JobCriteria) ([]domain.Job, error) {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if criteria.Type != "" {
		q.Set("type", criteria.Type)
	}
	if criteria.Location != "" {
		q.Set("location", criteria.Location)
	}
	if criteria.Remote {
		q.Set("remote", strconv.FormatBool(true))
	}
	if criteria.Category != "" {
		q.Set("category", criteria.Category)
	}

	path := "/api/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []domain.Job
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Eligibility(ctx context.Context, jobID uuid.UUID) (dto.Eligibility, error) {
	var out dto.EligibilityResponse
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+jobID.String()+"/eligibility", nil, &out); err != nil {
		return "", err
	}
	return out.Eligibility, nil
}

func (c *Client) Apply(ctx context.Context, jobID uuid.UUID, coverLetter string) (*dto.ApplyResponse, error) {
	var out dto.ApplyResponse
	if err := c.do(ctx, http.MethodPost, "/api/jobs/"+jobID.String()+"/apply", dto.ApplyRequest{CoverLetter: coverLetter}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EmployerApplications(ctx context.Context, status string) ([]dto.EmployerApplicationView, error) {
	path := "/api/employer/applications"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []dto.EmployerApplicationView
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Application, error) {
	var out domain.Application
	if err := c.do(ctx, http.MethodPatch, "/api/employer/applications/"+id.String()+"/status", dto.SetStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

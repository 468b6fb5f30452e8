// Package apiclient реализует HTTP-клиент к API активностей.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"activity-board/internal/model"
)

const (
	opList       = "list"
	opSignup     = "signup"
	opUnregister = "unregister"
)

// Client ходит в API активностей. Таймаут 0 означает отсутствие таймаута.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиента для API, расположенного по baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// ListActivities загружает полный набор активностей.
func (c *Client) ListActivities(ctx context.Context) (model.Activities, error) {
	body, err := c.do(ctx, opList, http.MethodGet, c.baseURL+"/activities")
	if err != nil {
		return nil, err
	}

	var acts model.Activities
	if err := json.Unmarshal(body, &acts); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return acts, nil
}

// Signup записывает email на активность и возвращает сообщение сервера.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	body, err := c.do(ctx, opSignup, http.MethodPost, c.participantURL(activity, "signup", email))
	if err != nil {
		return "", err
	}
	return parseBody(body).Message, nil
}

// Unregister снимает email с активности и возвращает сообщение сервера.
func (c *Client) Unregister(ctx context.Context, activity, email string) (string, error) {
	body, err := c.do(ctx, opUnregister, http.MethodDelete, c.participantURL(activity, "participants", email))
	if err != nil {
		return "", err
	}
	return parseBody(body).Message, nil
}

func (c *Client) participantURL(activity, action, email string) string {
	q := url.Values{}
	q.Set("email", email)
	return c.baseURL + "/activities/" + url.PathEscape(activity) + "/" + action + "?" + q.Encode()
}

func (c *Client) do(ctx context.Context, op, method, target string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		observe(op, outcomeTransport, start)
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(op, outcomeTransport, start)
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(op, outcomeTransport, start)
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observe(op, outcomeRejected, start)
		return nil, newAPIError(op, resp.StatusCode, body)
	}

	observe(op, outcomeOK, start)
	return body, nil
}

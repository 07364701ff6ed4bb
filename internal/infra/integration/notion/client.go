package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	baseURL    = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"
)

// Client talks to the Notion REST API for the team task database and
// the biometrics (check-in/check-out) database.
type Client struct {
	apiKey       string
	tasksDB      string
	biometricsDB string
	http         *http.Client
	loc          *time.Location
}

func NewClient(apiKey, tasksDB, biometricsDB string) *Client {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.UTC
	}
	return &Client{
		apiKey:       apiKey,
		tasksDB:      tasksDB,
		biometricsDB: biometricsDB,
		http:         &http.Client{Timeout: 15 * time.Second},
		loc:          loc,
	}
}

// GetTasks lists the task database ordered by creation time, newest first.
func (c *Client) GetTasks(ctx context.Context) ([]Task, error) {
	body := queryRequest{
		Sorts: []querySort{{Timestamp: "created_time", Direction: "descending"}},
	}
	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, "/databases/"+c.tasksDB+"/query", body, &resp); err != nil {
		return nil, err
	}
	tasks := make([]Task, 0, len(resp.Results))
	for _, pg := range resp.Results {
		tasks = append(tasks, Task{
			ID:          pg.ID,
			Title:       pg.Properties["Task name"].plainTitle(),
			Status:      pg.Properties["Status"].selectName(),
			Assignee:    pg.Properties["Assignee"].firstPerson(),
			CreatedTime: pg.CreatedTime.Format(time.RFC3339),
		})
	}
	return tasks, nil
}

// CheckIn creates a biometrics row for the user and returns the page id,
// which the matching check-out needs later.
func (c *Client) CheckIn(ctx context.Context, displayName, status string, at time.Time) (string, error) {
	local := at.In(c.loc)
	body := map[string]any{
		"parent": map[string]any{"database_id": c.biometricsDB},
		"properties": map[string]any{
			"Name": map[string]any{
				"title": []map[string]any{{"text": map[string]any{"content": displayName}}},
			},
			"Date": map[string]any{
				"date": map[string]any{"start": local.Format("2006-01-02")},
			},
			"Log in": map[string]any{
				"rich_text": []map[string]any{{"text": map[string]any{"content": local.Format("03:04 PM")}}},
			},
			"Status": map[string]any{
				"select": map[string]any{"name": status},
			},
		},
	}
	var resp page
	if err := c.do(ctx, http.MethodPost, "/pages", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// CheckOut closes a biometrics row: logout time, work notes, the
// humanized total and the Offline marker.
func (c *Client) CheckOut(ctx context.Context, pageID string, at time.Time, notes, totalHours string) error {
	local := at.In(c.loc)
	body := map[string]any{
		"properties": map[string]any{
			"Log out": map[string]any{
				"rich_text": []map[string]any{{"text": map[string]any{"content": local.Format("03:04 PM")}}},
			},
			"Notes": map[string]any{
				"rich_text": []map[string]any{{"text": map[string]any{"content": notes}}},
			},
			"Total hours": map[string]any{
				"rich_text": []map[string]any{{"text": map[string]any{"content": totalHours}}},
			},
			"Status": map[string]any{
				"select": map[string]any{"name": "Offline"},
			},
		},
	}
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, body, nil)
}

// TodayLog returns the biometrics rows created today, newest first.
func (c *Client) TodayLog(ctx context.Context) ([]BiometricRecord, error) {
	today := time.Now().In(c.loc).Format("2006-01-02")
	body := queryRequest{
		Filter: map[string]any{
			"property": "Date",
			"date":     map[string]any{"on_or_after": today},
		},
		Sorts: []querySort{{Timestamp: "created_time", Direction: "descending"}},
	}
	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, "/databases/"+c.biometricsDB+"/query", body, &resp); err != nil {
		return nil, err
	}
	records := make([]BiometricRecord, 0, len(resp.Results))
	for _, pg := range resp.Results {
		records = append(records, BiometricRecord{
			ID:         pg.ID,
			Name:       pg.Properties["Name"].plainTitle(),
			CheckIn:    pg.Properties["Log in"].plainText(),
			CheckOut:   pg.Properties["Log out"].plainText(),
			Status:     pg.Properties["Status"].selectName(),
			Notes:      pg.Properties["Notes"].plainText(),
			TotalHours: pg.Properties["Total hours"].plainText(),
		})
	}
	return records, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notion: %s %s returned %d: %s", method, path, resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

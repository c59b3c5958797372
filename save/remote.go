package save

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"quackshot/game"
)

// RemoteStore keeps a profile on a quackserver over its JSON API
type RemoteStore struct {
	baseURL    string
	profileID  string
	httpClient *http.Client
}

type createResponse struct {
	ID string `json:"id"`
}

// NewRemoteStore creates a store for an existing profile id
func NewRemoteStore(baseURL, profileID string) *RemoteStore {
	return &RemoteStore{
		baseURL:   baseURL,
		profileID: profileID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ProfileID returns the profile the store reads and writes
func (c *RemoteStore) ProfileID() string {
	return c.profileID
}

// CreateProfile asks the server for a new empty profile and switches the store to it
func (c *RemoteStore) CreateProfile() (string, error) {
	body, err := c.do(http.MethodPost, c.baseURL+"/api/profiles", nil)
	if err != nil {
		return "", err
	}

	var created createResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("server returned an empty profile id")
	}
	c.profileID = created.ID
	return created.ID, nil
}

// Load fetches the profile. An unknown profile returns the default snapshot
// and an error wrapping game.ErrNotFound.
func (c *RemoteStore) Load() (game.Snapshot, error) {
	body, err := c.do(http.MethodGet, c.profileURL(), nil)
	if err != nil {
		return game.DefaultSnapshot(), err
	}

	var snap game.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return game.DefaultSnapshot(), fmt.Errorf("failed to parse profile: %w", err)
	}
	return snap.Normalize(), nil
}

// Save uploads the snapshot
func (c *RemoteStore) Save(snap game.Snapshot) error {
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	_, err = c.do(http.MethodPut, c.profileURL(), jsonData)
	return err
}

func (c *RemoteStore) profileURL() string {
	return fmt.Sprintf("%s/api/profiles/%s", c.baseURL, url.PathEscape(c.profileID))
}

func (c *RemoteStore) do(method, target string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("profile %s: %w", c.profileID, game.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("profile API error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

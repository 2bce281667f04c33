package daily

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const (
	defaultURL = "https://api.daily.co/v1"
)

var (
	errEmptyToken     = fmt.Errorf("empty token")
	errResponseStatus = fmt.Errorf("unexpected response status")
)

// RoomService provisions video rooms for sessions.
type RoomService interface {
	CreateRoom(sessionID string) (*Room, error)
	DeleteRoom(name string) error
}

// Room is a provisioned call room.
type Room struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type dailyClient struct {
	token  string
	url    string
	client *http.Client
}

// New returns a Daily.co room service client.
func New(token, url string, client *http.Client) RoomService {
	u := defaultURL
	if url != "" {
		u = url
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &dailyClient{
		token:  token,
		url:    u,
		client: client,
	}
}

// CreateRoom creates a private room named after the session.
func (d *dailyClient) CreateRoom(sessionID string) (*Room, error) {
	if d.token == "" {
		return nil, errEmptyToken
	}

	body, err := json.Marshal(map[string]interface{}{
		"name":    "session-" + sessionID,
		"privacy": "private",
		"properties": map[string]interface{}{
			"max_participants": 2,
			"exp":              time.Now().Add(2 * time.Hour).Unix(),
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", d.url+"/rooms", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", errResponseStatus, resp.Status)
	}

	var room Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

// DeleteRoom removes a room. Missing rooms are not an error.
func (d *dailyClient) DeleteRoom(name string) error {
	if d.token == "" {
		return errEmptyToken
	}

	req, err := http.NewRequest("DELETE", d.url+"/rooms/"+name, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+d.token)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%w: %s", errResponseStatus, resp.Status)
	}

	return nil
}

package daily_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutolink/tutolink-api/external/daily"
)

func TestCreateRoom(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/rooms", r.URL.Path)
		assert.Equal(t, "Bearer test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "session-abc", body["name"])

		b, _ := json.Marshal(daily.Room{
			Name: "session-abc",
			URL:  "https://tutolink.daily.co/session-abc",
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	d := daily.New("test", ts.URL, nil)
	room, err := d.CreateRoom("abc")
	assert.Nil(t, err, "wrong CreateRoom")
	assert.Equal(t, "session-abc", room.Name)
	assert.Equal(t, "https://tutolink.daily.co/session-abc", room.URL)
}

func TestCreateRoomEmptyToken(t *testing.T) {
	d := daily.New("", "", nil)
	_, err := d.CreateRoom("abc")
	assert.Error(t, err)
}

func TestCreateRoomBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	d := daily.New("test", ts.URL, nil)
	_, err := d.CreateRoom("abc")
	assert.Error(t, err)
}

func TestDeleteRoomMissingIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/rooms/session-abc", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	d := daily.New("test", ts.URL, nil)
	assert.NoError(t, d.DeleteRoom("session-abc"))
}

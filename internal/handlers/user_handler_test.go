package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser(name, role string) map[string]interface{} {
	return map[string]interface{}{
		"name":  name,
		"email": name + "@example.org",
		"phone": "+911234567890",
		"role":  role,
	}
}

func TestCreateUser(t *testing.T) {
	r, _ := newTestServer()

	w := doRequest(t, r, http.MethodPost, "/api/users", sampleUser("asha", "patient"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["id"])

	// Defaults landed in the stored document.
	list := doRequest(t, r, http.MethodGet, "/api/users", nil)
	docs := items(t, decodeBody(t, list), "items")
	require.Len(t, docs, 1)
	doc := docs[0].(map[string]interface{})
	assert.Equal(t, "en", doc["language"])
	assert.Equal(t, true, doc["is_active"])
	assert.Equal(t, false, doc["online_status"])
}

func TestCreateUser_Validation(t *testing.T) {
	r, _ := newTestServer()

	payload := sampleUser("bad", "wizard")
	payload["email"] = "not-an-email"

	w := doRequest(t, r, http.MethodPost, "/api/users", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	fields, ok := decodeBody(t, w)["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "role")
}

func TestListUsers_RoleFilter(t *testing.T) {
	r, _ := newTestServer()

	for _, u := range []map[string]interface{}{
		sampleUser("asha", "patient"),
		sampleUser("binod", "patient"),
		sampleUser("chitra", "doctor"),
	} {
		w := doRequest(t, r, http.MethodPost, "/api/users", u)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/api/users?role=doctor", nil)
	docs := items(t, decodeBody(t, w), "items")
	require.Len(t, docs, 1)
	assert.Equal(t, "chitra", docs[0].(map[string]interface{})["name"])

	w = doRequest(t, r, http.MethodGet, "/api/users", nil)
	assert.Len(t, items(t, decodeBody(t, w), "items"), 3)
}

func TestUpdateDoctorAvailability(t *testing.T) {
	r, _ := newTestServer()

	doctor := sampleUser("chitra", "doctor")
	created := doRequest(t, r, http.MethodPost, "/api/users", doctor)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"].(string)

	w := doRequest(t, r, http.MethodPatch, "/api/doctors/"+id+"/availability", map[string]interface{}{"online_status": true})
	require.Equal(t, http.StatusOK, w.Code)

	doc := decodeBody(t, w)
	assert.Equal(t, true, doc["online_status"])
	assert.NotEmpty(t, doc["updated_at"])
}

func TestUpdateDoctorAvailability_NotFound(t *testing.T) {
	r, _ := newTestServer()

	w := doRequest(t, r, http.MethodPatch, "/api/doctors/ffffffffffffffffffffffff/availability", map[string]interface{}{"online_status": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateDoctorAvailability_RequiresStatus(t *testing.T) {
	r, _ := newTestServer()

	w := doRequest(t, r, http.MethodPatch, "/api/doctors/ffffffffffffffffffffffff/availability", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

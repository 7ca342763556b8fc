package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStock(facilityID, medicineID string, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"facility_id": facilityID,
		"medicine_id": medicineID,
		"quantity":    quantity,
		"location":    "shelf 2",
	}
}

func TestCreateStock(t *testing.T) {
	r, _ := newTestServer()

	w := doRequest(t, r, http.MethodPost, "/api/stock", sampleStock("f1", "m1", 10))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["id"])
}

func TestCreateStock_Validation(t *testing.T) {
	r, _ := newTestServer()

	payload := sampleStock("f1", "m1", -4)
	w := doRequest(t, r, http.MethodPost, "/api/stock", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	fields, ok := decodeBody(t, w)["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "quantity")
}

func TestListAndCheckStock(t *testing.T) {
	r, _ := newTestServer()

	for _, s := range []map[string]interface{}{
		sampleStock("f1", "m1", 10),
		sampleStock("f1", "m2", 3),
		sampleStock("f2", "m1", 7),
	} {
		w := doRequest(t, r, http.MethodPost, "/api/stock", s)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/api/stock?facility_id=f1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	docs := items(t, decodeBody(t, w), "items")
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, "f1", d.(map[string]interface{})["facility_id"])
	}

	// Same filter, distinct envelope.
	w = doRequest(t, r, http.MethodGet, "/api/stock/check?medicine_id=m1&facility_id=f2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	stocks := items(t, body, "stocks")
	require.Len(t, stocks, 1)
	assert.NotContains(t, body, "items")
}

func TestUpdateStock(t *testing.T) {
	r, _ := newTestServer()

	created := doRequest(t, r, http.MethodPost, "/api/stock", sampleStock("f1", "m1", 10))
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"].(string)

	w := doRequest(t, r, http.MethodPatch, "/api/stock/"+id, map[string]interface{}{"quantity": 4, "location": "rack 9"})
	require.Equal(t, http.StatusOK, w.Code)

	doc := decodeBody(t, w)
	assert.EqualValues(t, 4, doc["quantity"])
	assert.Equal(t, "rack 9", doc["location"])
	assert.NotEmpty(t, doc["updated_at"])
}

func TestUpdateStock_NotFound(t *testing.T) {
	r, mem := newTestServer()

	w := doRequest(t, r, http.MethodPatch, "/api/stock/ffffffffffffffffffffffff", map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Nothing was created or mutated along the way.
	docs, err := mem.Find(testCtx(), "stock", nil, findAll())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestUpdateStock_RejectsBadPatch(t *testing.T) {
	r, _ := newTestServer()

	created := doRequest(t, r, http.MethodPost, "/api/stock", sampleStock("f1", "m1", 10))
	id := decodeBody(t, created)["id"].(string)

	w := doRequest(t, r, http.MethodPatch, "/api/stock/"+id, map[string]interface{}{"quantity": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPatch, "/api/stock/"+id, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown fields are not merged into the document.
	w = doRequest(t, r, http.MethodPatch, "/api/stock/"+id, map[string]interface{}{"quantity": 5, "facility_id": "f9"})
	require.Equal(t, http.StatusOK, w.Code)
	doc := decodeBody(t, w)
	assert.Equal(t, "f1", doc["facility_id"])
	assert.EqualValues(t, 5, doc["quantity"])
}

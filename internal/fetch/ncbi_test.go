package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "nuccore", r.URL.Query().Get("db"))
		assert.Equal(t, "NM_000546", r.URL.Query().Get("id"))
		assert.Equal(t, "fasta", r.URL.Query().Get("rettype"))

		w.Write([]byte(">NM_000546 Homo sapiens TP53\nTACGGCATTGAA\nATCGATCG\n"))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	records, err := c.Fetch(context.Background(), "nuccore", "NM_000546")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "NM_000546", records[0].ID)
	assert.Equal(t, "Homo sapiens TP53", records[0].Description)
	assert.Equal(t, "TACGGCATTGAAATCGATCG", records[0].Sequence)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad accession", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Fetch(context.Background(), "nuccore", "BOGUS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestFetch_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\n"))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Fetch(context.Background(), "nuccore", "EMPTY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
}

// Package fetch downloads sequence records from the NCBI E-utilities
// efetch endpoint.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/seqlab/seqlab/internal/fasta"
)

// DefaultBaseURL is the NCBI efetch endpoint.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

// Client fetches FASTA records from NCBI.
type Client struct {
	// BaseURL can be overridden, e.g. to point tests at a local server.
	BaseURL string

	// Email is sent with each request as NCBI asks heavy users to do.
	Email string

	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client with a 30 second request timeout.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
}

// SetLogger sets the logger for request debug messages.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Fetch downloads the record for accession from the given database
// ("nuccore" for nucleotide, "protein" for peptide) and parses the
// FASTA response.
func (c *Client) Fetch(ctx context.Context, db, accession string) ([]fasta.Record, error) {
	params := url.Values{}
	params.Set("db", db)
	params.Set("id", accession)
	params.Set("rettype", "fasta")
	params.Set("retmode", "text")
	params.Set("tool", "seqlab")
	if c.Email != "" {
		params.Set("email", c.Email)
	}

	reqURL := c.BaseURL + "?" + params.Encode()
	c.logger.Debug("fetching from NCBI",
		zap.String("db", db),
		zap.String("accession", accession))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build efetch request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("efetch %s: %w", accession, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("efetch %s: status %s: %s", accession, resp.Status, body)
	}

	records, err := fasta.Read(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse efetch response for %s: %w", accession, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("efetch %s: no records in response", accession)
	}

	return records, nil
}

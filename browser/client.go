package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TypeFetcher resolves the types of an entity.
type TypeFetcher interface {
	TypeOf(ctx context.Context, dcid string) ([]string, error)
}

// StatusError is a non-2xx answer from the metadata API.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Code)
}

// Client talks to the property-values API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for base with a request timeout.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// PropValsURL is the API path for the values of prop on dcid. The dcid is
// used verbatim; identifiers such as geoId/06 keep their slash.
func PropValsURL(base, prop, dcid string) string {
	return base + "/api/browser/propvals/" + prop + "/" + dcid
}

// PropVals fetches the raw JSON body, once.
func (c *Client) PropVals(ctx context.Context, prop, dcid string) ([]byte, error) {
	u := PropValsURL(c.BaseURL, prop, dcid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: u, Code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// TypeOf implements TypeFetcher.
func (c *Client) TypeOf(ctx context.Context, dcid string) ([]string, error) {
	body, err := c.PropVals(ctx, "typeOf", dcid)
	if err != nil {
		return nil, err
	}
	return DecodeTypes(body)
}

// PropValue is one entry of values.out.
type PropValue struct {
	Dcid  string `json:"dcid,omitempty"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

type propValsResponse struct {
	Values struct {
		Out []PropValue `json:"out"`
	} `json:"values"`
}

// DecodeValues reads values.out. A body without it decodes to nothing.
func DecodeValues(body []byte) ([]PropValue, error) {
	var resp propValsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode propvals: %w", err)
	}
	return resp.Values.Out, nil
}

// DecodeTypes reads the dcid of every values.out entry. A body without
// values.out is an empty type list.
func DecodeTypes(body []byte) ([]string, error) {
	out, err := DecodeValues(body)
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(out))
	for _, o := range out {
		types = append(types, o.Dcid)
	}
	return types, nil
}

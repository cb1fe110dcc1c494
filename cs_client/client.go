package cs_client

//go:generate counterfeiter -generate

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// CloudStack reports a missing or unknown entity as a 431 "invalid
// parameter" rather than a 404.
const notFoundErrorCode = 431

//counterfeiter:generate -o fakes/api_client.go --fake-name APIClient . APIClient
type APIClient interface {
	Do(command string, params []Param) (Document, error)
	WaitForJob(doc Document) (Document, error)
}

type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Param is one query parameter of an API command. Params are passed as
// an ordered list; the signing step sorts a copy, so callers keep the
// order the API documents.
type Param struct {
	Key   string
	Value string
}

type APIError struct {
	StatusCode int
	ErrorText  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cloudstack api error %d: %s", e.StatusCode, e.ErrorText)
}

// IsNotFound reports whether err is the provider's invalid-parameter
// sentinel for an entity that does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == notFoundErrorCode
}

type Client struct {
	BaseURL         string
	APIKey          string
	SecretKey       string
	HTTPClient      httpClient
	Logger          lager.Logger
	Clock           clock.Clock
	JobPollInterval time.Duration
	JobTimeout      time.Duration
}

func (c *Client) Do(command string, params []Param) (Document, error) {
	request, err := http.NewRequest("GET", c.buildURL(command, params), nil)
	if err != nil {
		return Document{}, fmt.Errorf("http new request: %s", err)
	}

	c.Logger.Debug("api-request", lager.Data{"command": command})

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return Document{}, fmt.Errorf("http client do: %s", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("body read: %s", err)
	}

	doc, parseErr := ParseDocument(respBytes)

	if resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			ErrorText:  string(respBytes),
		}
		if parseErr == nil {
			if text, ok := doc.FirstValue("errortext"); ok {
				apiErr.ErrorText = text
			}
			if code, ok := doc.FirstValue("errorcode"); ok {
				if parsed, err := strconv.Atoi(code); err == nil {
					apiErr.StatusCode = parsed
				}
			}
		}
		c.Logger.Error("api-error", apiErr, lager.Data{
			"command": command,
			"code":    apiErr.StatusCode,
		})
		return Document{}, apiErr
	}

	if parseErr != nil {
		return Document{}, fmt.Errorf("parse response for %s: %s", command, parseErr)
	}
	return doc, nil
}

// buildURL assembles and signs the request query string. The signature
// is an HMAC-SHA1 over the sorted, lower-cased query, base64-encoded,
// per the CloudStack API authentication scheme.
func (c *Client) buildURL(command string, params []Param) string {
	all := make([]Param, 0, len(params)+2)
	all = append(all, Param{Key: "command", Value: command}, Param{Key: "apiKey", Value: c.APIKey})
	all = append(all, params...)

	sort.SliceStable(all, func(i, j int) bool {
		return strings.ToLower(all[i].Key) < strings.ToLower(all[j].Key)
	})

	pairs := make([]string, len(all))
	for i, param := range all {
		pairs[i] = param.Key + "=" + escape(param.Value)
	}
	query := strings.Join(pairs, "&")

	mac := hmac.New(sha1.New, []byte(c.SecretKey))
	mac.Write([]byte(strings.ToLower(query)))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return c.BaseURL + "?" + query + "&signature=" + escape(signature)
}

// The signing scheme requires %20 for spaces, not +.
func escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// Data-access layer. Only talks to the backend user API over HTTP (no state,
// no business rules); hides transport details behind an interface.

package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Acr0no/fcg-users-app/global"
	"github.com/Acr0no/fcg-users-app/models"
)

// UserAPI defines the backend operations the dashboard and the user dialog
// need. Depending on an interface (not the concrete client) keeps the
// controllers testable with a mock.
type UserAPI interface {
	ListUsers(q models.ListQuery) (*models.Page, error)
	GetUser(id int64) (*models.User, error)
	CreateUser(form models.UserForm) (*models.User, error)
	UpdateUser(id int64, form models.UserForm) (*models.User, error)
	DeleteUser(id int64) (*models.User, error)
	UploadUsersCSV(filename string, file io.Reader) error
}

// userClient is the net/http implementation of UserAPI.
type userClient struct {
	base string // always ends with "/"
	http *http.Client
}

// NewUserClient builds a client against the given base URL
// (e.g. "http://localhost:8080/api/v1/").
func NewUserClient(baseURL string) UserAPI {
	if baseURL == "" {
		baseURL = global.DefaultAPIBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &userClient{
		base: baseURL,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListUsers fetches one page of users. Optional query parameters (sort and
// the two filters) are only sent when non-empty.
func (c *userClient) ListUsers(q models.ListQuery) (*models.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.Surname != "" {
		params.Set("surname", q.Surname)
	}

	var page models.Page
	if err := c.doJSON(http.MethodGet, global.UsersEndpoint+"?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser fetches the full record by id (the dashboard row may be a partial
// projection; the dialog always wants server truth).
func (c *userClient) GetUser(id int64) (*models.User, error) {
	var u models.User
	if err := c.doJSON(http.MethodGet, userPath(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser posts a new user; the backend assigns the id.
func (c *userClient) CreateUser(form models.UserForm) (*models.User, error) {
	var u models.User
	if err := c.doJSON(http.MethodPost, global.UserEndpoint, form, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser sends the full field set for an existing id.
func (c *userClient) UpdateUser(id int64, form models.UserForm) (*models.User, error) {
	var u models.User
	if err := c.doJSON(http.MethodPut, userPath(id), form, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user by id; the backend echoes the deleted record.
func (c *userClient) DeleteUser(id int64) (*models.User, error) {
	var u models.User
	if err := c.doJSON(http.MethodDelete, userPath(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UploadUsersCSV submits the file as a multipart payload under field "file".
// The backend does all CSV parsing and validation.
func (c *userClient) UploadUsersCSV(filename string, file io.Reader) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.base+global.UploadCSVEndpoint, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, nil)
}

// ---- internals ----

func userPath(id int64) string {
	return fmt.Sprintf("%s/%d", global.UserEndpoint, id)
}

// doJSON builds a request with an optional JSON body and decodes the response
// into out (when out is non-nil).
func (c *userClient) doJSON(method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send executes the request. Non-2xx responses are decoded as the backend
// error envelope and returned as *models.APIError so callers can surface
// error_description verbatim.
func (c *userClient) send(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		apiErr := &models.APIError{StatusCode: res.StatusCode}
		_ = json.NewDecoder(res.Body).Decode(apiErr) // keep the status-based message if the body isn't the envelope
		return apiErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body) // drain so the connection is reused
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

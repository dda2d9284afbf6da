package clients

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acr0no/fcg-users-app/models"
)

func TestListUsers_BuildsQueryAndDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("size"))
		assert.Equal(t, "name,desc", q.Get("sort"))
		assert.Equal(t, "mario", q.Get("name"))
		assert.False(t, q.Has("surname"), "empty filters stay out of the query string")

		_ = json.NewEncoder(w).Encode(models.Page{
			Content:       []models.User{{ID: 1, Email: "a@b.c", Name: "Mario"}},
			TotalElements: 120,
			Size:          50,
		})
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL + "/api/v1/") // trailing slash as configured
	page, err := c.ListUsers(models.ListQuery{Page: 2, Size: 50, Sort: "name,desc", Name: "mario"})
	require.NoError(t, err)
	assert.Equal(t, int64(120), page.TotalElements)
	assert.Len(t, page.Content, 1)
}

func TestListUsers_OmitsSortWhenInactive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("sort"))
		_ = json.NewEncoder(w).Encode(models.Page{})
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL) // missing trailing slash is normalized
	_, err := c.ListUsers(models.ListQuery{Page: 0, Size: 50})
	require.NoError(t, err)
}

func TestErrorEnvelope_SurfacesDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":            "ko",
			"error":             "DataIntegrityViolationException",
			"error_description": "Utente con e-mail a@b.c già presente",
		})
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL)
	_, err := c.CreateUser(models.UserForm{Email: "a@b.c", Name: "A", Surname: "B"})
	require.Error(t, err)

	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Utente con e-mail a@b.c già presente", err.Error())
}

func TestErrorEnvelope_FallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL)
	_, err := c.GetUser(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCreateAndUpdateAndDelete_Paths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if r.Body != nil {
			var form models.UserForm
			_ = json.NewDecoder(r.Body).Decode(&form)
		}
		_ = json.NewEncoder(w).Encode(models.User{ID: 7, Email: "x@y.z"})
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL)
	form := models.UserForm{Email: "x@y.z", Name: "X", Surname: "Y"}

	u, err := c.CreateUser(form)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/user", gotPath)

	_, err = c.UpdateUser(7, form)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/user/7", gotPath)

	_, err = c.DeleteUser(7)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/user/7", gotPath)
}

func TestUploadUsersCSV_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload-user-csv", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "users.csv", fh.Filename)
		body, _ := io.ReadAll(f)
		assert.Equal(t, "email,name\na@b.c,Mario\n", string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL)
	err := c.UploadUsersCSV("users.csv", strings.NewReader("email,name\na@b.c,Mario\n"))
	require.NoError(t, err)
}

func TestUploadUsersCSV_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_description": "CSV non valido"})
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL)
	err := c.UploadUsersCSV("users.csv", strings.NewReader("x"))
	assert.EqualError(t, err, "CSV non valido")
}

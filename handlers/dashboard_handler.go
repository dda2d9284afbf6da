// Controller layer: translates HTTP <-> dashboard/dialog calls.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Acr0no/fcg-users-app/clients"
	"github.com/Acr0no/fcg-users-app/global"
	"github.com/Acr0no/fcg-users-app/models"
	"github.com/Acr0no/fcg-users-app/services"
)

// DashboardHandler bundles what the dashboard endpoints need: the per-session
// listing controllers and the backend client for the dialog operations.
type DashboardHandler struct {
	sessions *SessionRegistry
	client   clients.UserAPI
}

func NewDashboardHandler(sessions *SessionRegistry, client clients.UserAPI) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, client: client}
}

// dashboard resolves the caller's session (setting the cookie on first
// visit) and returns its listing controller.
func (h *DashboardHandler) dashboard(c *gin.Context) *services.DashboardService {
	id, err := c.Cookie(global.SessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(global.SessionCookie, id, 0, "/", "", false, true)
	}
	return h.sessions.Get(id)
}

// GetDashboard handles GET /api/dashboard: the current table snapshot.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard(c).Snapshot())
}

// ChangeSort handles POST /api/dashboard/sort.
func (h *DashboardHandler) ChangeSort(c *gin.Context) {
	var req models.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dashboard(c).ChangeSort(req.Field, req.Direction)
	c.Status(http.StatusAccepted) // the reload runs asynchronously
}

// ChangePage handles POST /api/dashboard/page.
func (h *DashboardHandler) ChangePage(c *gin.Context) {
	var req models.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dashboard(c).ChangePage(req.Page, req.Size)
	c.Status(http.StatusAccepted)
}

// ChangeFilters handles POST /api/dashboard/filters. Debouncing happens in
// the controller, so this endpoint can take one call per keystroke.
func (h *DashboardHandler) ChangeFilters(c *gin.Context) {
	var req models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dashboard(c).ChangeFilters(req.Name, req.Surname)
	c.Status(http.StatusAccepted)
}

// UploadCSV handles POST /api/dashboard/upload-csv (multipart field "file").
// Local pre-flight rejections come back as 400 before anything is sent to
// the backend; backend failures carry their error_description.
func (h *DashboardHandler) UploadCSV(c *gin.Context) {
	dash := h.dashboard(c)

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_description": "nessun file selezionato"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_description": err.Error()})
		return
	}
	defer f.Close()

	if err := dash.UploadCSV(fh.Filename, f); err != nil {
		writeDialogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---- dialog endpoints ----

// AddUser handles POST /api/users: the add dialog submit.
func (h *DashboardHandler) AddUser(c *gin.Context) {
	var form models.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dlg := services.NewDialogService(h.client, models.DialogData{IsAdd: true})
	dlg.SetFields(form)
	u, err := dlg.Submit()
	if err != nil {
		writeDialogError(c, err)
		return
	}
	h.dashboard(c).UserAdded()
	c.JSON(http.StatusCreated, u)
}

// GetUserForEdit handles GET /api/users/:id: the edit dialog prefill. It
// always goes back to the backend for the full record, even though the table
// row already shows most fields.
func (h *DashboardHandler) GetUserForEdit(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	dlg := services.NewDialogService(h.client, models.DialogData{
		User:   &models.User{ID: id},
		IsEdit: true,
	})
	if err := dlg.Init(); err != nil {
		writeDialogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dlg.Fields())
}

// UpdateUser handles PUT /api/users/:id: the edit dialog submit.
func (h *DashboardHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var form models.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dlg := services.NewDialogService(h.client, models.DialogData{
		User:   &models.User{ID: id},
		IsEdit: true,
	})
	dlg.SetFields(form)
	u, err := dlg.Submit()
	if err != nil {
		writeDialogError(c, err)
		return
	}
	h.dashboard(c).UserEdited()
	c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /api/users/:id: the delete dialog submit.
func (h *DashboardHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	dlg := services.NewDialogService(h.client, models.DialogData{
		User:     &models.User{ID: id},
		IsDelete: true,
	})
	u, err := dlg.Submit()
	if err != nil {
		writeDialogError(c, err)
		return
	}
	h.dashboard(c).UserDeleted()
	c.JSON(http.StatusOK, u)
}

// ---- helpers ----

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// writeDialogError maps controller failures onto the HTTP surface: local
// validation -> 422 with per-field messages, CSV pre-flight and other local
// rejections -> 400, backend envelopes -> 502 with the backend message.
func writeDialogError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"fields": verr.Fields})
		return
	}
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error_description": apiErr.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error_description": err.Error()})
}

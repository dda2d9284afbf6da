package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Acr0no/fcg-users-app/clients"
	"github.com/Acr0no/fcg-users-app/global"
	"github.com/Acr0no/fcg-users-app/models"
)

// DialogService drives the user dialog in one of three mutually exclusive
// modes, resolved once from the open payload:
//
//   - add (the default): empty form, submit creates a new user
//   - edit: form repopulated from a fresh get-by-id, submit updates
//   - delete: no editable fields, submit deletes by id
//
// Edit and delete require a target user in the payload; without one the
// dialog falls back to add. One instance serves one dialog session.
type DialogService struct {
	client   clients.UserAPI
	validate *validator.Validate

	isAdd    bool
	isEdit   bool
	isDelete bool
	target   *models.User

	form models.UserForm
}

// NewDialogService resolves the dialog mode from the open payload.
func NewDialogService(client clients.UserAPI, data models.DialogData) *DialogService {
	d := &DialogService{
		client:   client,
		validate: validator.New(),
	}
	if data.User != nil {
		d.target = data.User
		d.isEdit = !data.IsAdd && data.IsEdit && !data.IsDelete
		d.isDelete = !data.IsAdd && !data.IsEdit && data.IsDelete
	}
	d.isAdd = !d.isEdit && !d.isDelete
	return d
}

func (d *DialogService) IsAdd() bool    { return d.isAdd }
func (d *DialogService) IsEdit() bool   { return d.isEdit }
func (d *DialogService) IsDelete() bool { return d.isDelete }

// TargetName and TargetSurname feed the delete confirmation copy.
func (d *DialogService) TargetName() string {
	if d.target == nil {
		return ""
	}
	return d.target.Name
}

func (d *DialogService) TargetSurname() string {
	if d.target == nil {
		return ""
	}
	return d.target.Surname
}

// Init prepares the form. In edit mode it always re-fetches the record by id
// (the caller may only hold a partial display projection) and repopulates the
// fields from server truth, substituting the placeholder for a missing
// address. Add and delete modes need no preparation.
func (d *DialogService) Init() error {
	if !d.isEdit {
		return nil
	}
	u, err := d.client.GetUser(d.target.ID)
	if err != nil {
		return err
	}
	addr := u.Address
	if addr == "" {
		addr = global.AddressPlaceholder
	}
	d.form = models.UserForm{
		Email:   u.Email,
		Name:    u.Name,
		Surname: u.Surname,
		Address: addr,
	}
	return nil
}

// SetFields replaces the editable field values (what the user typed).
func (d *DialogService) SetFields(form models.UserForm) {
	d.form = form
}

// Fields returns the current form values (for rendering the edit dialog).
func (d *DialogService) Fields() models.UserForm {
	return d.form
}

// Submit performs the mode's operation. In add/edit mode the form is checked
// locally first; a failing check rejects the submit with per-field messages
// and no network call. Backend failures come back as *models.APIError with
// the backend message, so the dialog can stay open and show the banner.
// On success the created/updated/deleted user is returned and the dialog
// collaborator closes with it as a truthy result.
func (d *DialogService) Submit() (*models.User, error) {
	if d.isDelete {
		return d.client.DeleteUser(d.target.ID)
	}

	if err := d.validate.Struct(d.form); err != nil {
		return nil, &models.ValidationError{Fields: fieldMessages(err)}
	}

	if d.isEdit {
		return d.client.UpdateUser(d.target.ID, d.form)
	}
	return d.client.CreateUser(d.form)
}

// fieldMessages converts validator failures into per-field messages keyed by
// the lowercased field name, which matches the JSON names of UserForm.
func fieldMessages(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "email":
			out[name] = "must be a valid e-mail"
		default:
			out[name] = "is required"
		}
	}
	return out
}

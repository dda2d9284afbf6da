// Plain data structures + request/response DTOs shared by all layers.

package models

// User is the record administered by the dashboard. The backend assigns the
// ID; everything except email is optional there, so empty strings mean
// "not set" (the UI renders a placeholder for a missing address).
type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Address string `json:"address,omitempty"`
}

// UserForm is the editable field set of the add/edit dialog.
// The validate tags are evaluated locally (go-playground/validator) before
// any network call; the backend re-checks everything anyway.
type UserForm struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
	Address string `json:"address"` // optional
}

// Page is one slice of the filtered/sorted user set, as returned by the
// backend. Size is the effective page size, which may differ from the one
// requested.
type Page struct {
	Content       []User `json:"content"`
	TotalElements int64  `json:"totalElements"`
	Size          int    `json:"size"`
}

// SortSpec is an active sort column. An empty Field means "no sort";
// an empty Direction defaults to ascending.
type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // "asc" | "desc"
}

// ListQuery carries everything needed to request one page from the backend.
// Zero-valued optional fields (Sort, Name, Surname) are omitted from the
// query string.
type ListQuery struct {
	Page    int
	Size    int
	Sort    string // "<field>,<direction>"
	Name    string
	Surname string
}

// DialogData is the open payload of the user dialog. Exactly one of the mode
// flags should be set for edit/delete (both require a target user); anything
// else falls back to add mode.
type DialogData struct {
	User     *User
	IsAdd    bool
	IsEdit   bool
	IsDelete bool
}

// ---- presentation-shell request DTOs ----

// SortRequest changes the active sort column.
type SortRequest struct {
	Field     string `json:"field" binding:"required"`
	Direction string `json:"direction" binding:"omitempty,oneof=asc desc"`
}

// PageRequest moves the paginator. Size is optional; 0 keeps the current one.
type PageRequest struct {
	Page int `json:"page" binding:"min=0"`
	Size int `json:"size" binding:"omitempty,min=1"`
}

// FilterRequest carries the name/surname filter inputs as typed.
type FilterRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

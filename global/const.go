package global

import "time"

const (
	AppVersion = "1.0.0" //project version shown in boot logs and /healthz

	// Backend API surface. These mirror the paths exposed by the user service;
	// keeping them in one place avoids hardcoded strings in clients/handlers.
	DefaultAPIBaseURL = "http://localhost:8080/api/v1/"
	UsersEndpoint     = "users"           // GET, paginated listing
	UserEndpoint      = "user"            // POST / GET,PUT,DELETE with /{id}
	UploadCSVEndpoint = "upload-user-csv" // POST, multipart field "file"

	// DashboardSpinner is the named busy indicator toggled around every fetch
	// the dashboard performs.
	DashboardSpinner = "dashboard"

	// FilterDebounce is the quiet window applied to filter typing so we don't
	// fire one request per keystroke.
	FilterDebounce = 200 * time.Millisecond

	// BadgeTTL is how long the added/edited/deleted success badges stay on.
	BadgeTTL = 2 * time.Second

	// DefaultPageSize is used when the config does not override it.
	DefaultPageSize = 50

	// AddressPlaceholder is shown when a user has no address on file.
	AddressPlaceholder = "N/D"

	// SessionCookie carries the per-browser dashboard session id.
	SessionCookie = "dashboard_session"
)

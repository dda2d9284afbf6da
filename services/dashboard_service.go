// Use-case layer: the listing controller behind the dashboard table.

package services

import (
	"io"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/Acr0no/fcg-users-app/clients"
	"github.com/Acr0no/fcg-users-app/core"
	"github.com/Acr0no/fcg-users-app/global"
	"github.com/Acr0no/fcg-users-app/models"
	"github.com/Acr0no/fcg-users-app/utils/redislog"
	"github.com/Acr0no/fcg-users-app/utils/spinner"
)

// Filters are the two substring filters of the listing, already trimmed.
type Filters struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// Badges are the transient "just completed" flags driving the success
// badges. They are independent: overlapping actions may light several.
type Badges struct {
	Added   bool `json:"added"`
	Edited  bool `json:"edited"`
	Deleted bool `json:"deleted"`
}

// DashboardView is the read-only snapshot handed to the presentation layer.
type DashboardView struct {
	Content       []models.User   `json:"content"`
	TotalElements int64           `json:"totalElements"`
	PageIndex     int             `json:"pageIndex"`
	PageSize      int             `json:"pageSize"`
	Sort          models.SortSpec `json:"sort"`
	Filters       Filters         `json:"filters"`
	IsTableEmpty  bool            `json:"isTableEmpty"`
	Badges        Badges          `json:"badges"`
	Loading       bool            `json:"loading"`
}

// DashboardService owns the authoritative "page N of the filtered, sorted
// user set" and keeps it consistent while the user changes sort, page or
// filters, or while deletions shrink the set.
//
// The three change sources merge into one buffered reload signal: coincident
// changes collapse into a single fetch, so there are no request storms.
// Filter changes are additionally debounced and compared against the last
// applied values (a repeat of the same trimmed values is dropped), and reset
// the page index to 0: changing what is filtered invalidates the old page
// position. The initial load runs exactly once, on Start, outside the merge.
type DashboardService struct {
	client clients.UserAPI
	spin   *spinner.Service
	audit  *redislog.Logger

	// fixed at construction; tests shrink them
	debounce time.Duration
	badgeTTL time.Duration

	mu                   sync.Mutex
	pageIndex            int
	pageSize             int
	sort                 models.SortSpec
	applied              Filters // filters in effect for loads
	pending              Filters // typed but waiting out the quiet window
	page                 models.Page
	isTableEmpty         bool
	lastUploadedFileName string
	badges               Badges
	badgeTimers          map[string]*time.Timer
	debounceTimer        *time.Timer

	reload  chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	started bool
	closed  bool
}

// NewDashboardService wires the listing controller. pageSize <= 0 falls back
// to the default. Call Start to perform the initial load, Close on teardown.
func NewDashboardService(client clients.UserAPI, spin *spinner.Service, audit *redislog.Logger, pageSize int) *DashboardService {
	if pageSize <= 0 {
		pageSize = global.DefaultPageSize
	}
	return &DashboardService{
		client:      client,
		spin:        spin,
		audit:       audit,
		debounce:    global.FilterDebounce,
		badgeTTL:    global.BadgeTTL,
		pageSize:    pageSize,
		badgeTimers: make(map[string]*time.Timer),
		reload:      make(chan struct{}, 1), // buffer of one is the collapse
		done:        make(chan struct{}),
	}
}

// Start performs the initial load (exactly once, immediately) and then
// starts draining the merged reload signal. Safe to call only once; repeats
// are ignored.
func (s *DashboardService) Start() {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.loadPage()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.done:
				return
			case <-s.reload:
				s.loadPage()
			}
		}
	}()
}

// Close releases everything the controller owns: the merge goroutine, the
// filter debounce timer and the badge timers. In-flight requests are not
// aborted; they finish server-side but can no longer mutate state through
// the merge loop.
func (s *DashboardService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	for _, t := range s.badgeTimers {
		t.Stop()
	}
	started := s.started
	s.mu.Unlock()

	close(s.done)
	if started {
		s.wg.Wait()
	}
}

// ---- the three change sources ----

// ChangeSort sets the active sort column and requests a reload. The page
// index is deliberately preserved.
func (s *DashboardService) ChangeSort(field, direction string) {
	s.mu.Lock()
	s.sort = models.SortSpec{Field: field, Direction: direction}
	s.mu.Unlock()
	s.requestReload()
}

// ChangePage moves the paginator (and optionally the page size) and requests
// a reload.
func (s *DashboardService) ChangePage(index, size int) {
	if index < 0 {
		index = 0
	}
	s.mu.Lock()
	s.pageIndex = index
	if size > 0 {
		s.pageSize = size
	}
	s.mu.Unlock()
	s.requestReload()
}

// ChangeFilters records the filter inputs as typed and (re)starts the quiet
// window. Only the values present when the window expires are applied.
func (s *DashboardService) ChangeFilters(name, surname string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = Filters{
		Name:    core.NormalizeFilter(name),
		Surname: core.NormalizeFilter(surname),
	}
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, s.applyPendingFilters)
}

// applyPendingFilters fires when the quiet window expires: a repeat of the
// already-applied values is dropped (distinct-until-changed); anything else
// resets the page index to 0 and requests a reload.
func (s *DashboardService) applyPendingFilters() {
	s.mu.Lock()
	if s.closed || s.pending == s.applied {
		s.mu.Unlock()
		return
	}
	s.applied = s.pending
	s.pageIndex = 0
	s.mu.Unlock()
	s.requestReload()
}

// requestReload merges all change sources into one signal. The send is
// non-blocking: when a reload is already queued, further signals collapse
// into it.
func (s *DashboardService) requestReload() {
	select {
	case s.reload <- struct{}{}:
	default:
	}
}

// ---- fetching ----

// loadPage derives the query from current state, fetches one page under the
// busy indicator and applies the result. When the requested index has fallen
// past the end of the shrunken set (deletes on the final page), it clamps to
// the recomputed last page and fetches again, discarding the out-of-range
// result; each attempt runs its own indicator cycle. On failure the previous
// page stays on screen, never partially overwritten.
func (s *DashboardService) loadPage() {
	s.mu.Lock()
	q := models.ListQuery{
		Page:    s.pageIndex,
		Size:    s.pageSize,
		Sort:    core.FormatSort(s.sort.Field, s.sort.Direction),
		Name:    s.applied.Name,
		Surname: s.applied.Surname,
	}
	s.mu.Unlock()

	s.spin.Acquire(global.DashboardSpinner)
	page, err := s.client.ListUsers(q)
	s.spin.Release(global.DashboardSpinner)

	if err != nil {
		log.Printf("[dashboard] load page %d failed: %v", q.Page, err)
		s.audit.Error("load page failed", map[string]string{
			"page": strconv.Itoa(q.Page),
			"err":  err.Error(),
		})
		return
	}

	size := q.Size
	if size <= 0 {
		size = page.Size
	}
	last := core.LastPage(page.TotalElements, size)
	if q.Page > last {
		s.mu.Lock()
		s.pageIndex = last
		s.mu.Unlock()
		s.loadPage() // terminates: last is recomputed fresh and bounded below by 0
		return
	}

	s.mu.Lock()
	s.page = *page
	s.isTableEmpty = page.TotalElements == 0
	s.mu.Unlock()
}

// Snapshot returns a copy of the current listing state for rendering.
func (s *DashboardService) Snapshot() DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	content := make([]models.User, len(s.page.Content))
	copy(content, s.page.Content)
	return DashboardView{
		Content:       content,
		TotalElements: s.page.TotalElements,
		PageIndex:     s.pageIndex,
		PageSize:      s.pageSize,
		Sort:          s.sort,
		Filters:       s.applied,
		IsTableEmpty:  s.isTableEmpty,
		Badges:        s.badges,
		Loading:       s.spin.Busy(global.DashboardSpinner),
	}
}

// ---- mutation notifications (dialog results) ----

// UserAdded is called when the add dialog closed with a created user:
// reloads the table and lights the "added" badge for the badge TTL.
func (s *DashboardService) UserAdded() { s.flagAndReload("added") }

// UserEdited is the edit counterpart of UserAdded.
func (s *DashboardService) UserEdited() { s.flagAndReload("edited") }

// UserDeleted is the delete counterpart of UserAdded.
func (s *DashboardService) UserDeleted() { s.flagAndReload("deleted") }

func (s *DashboardService) flagAndReload(kind string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.setBadge(kind, true)
	if t := s.badgeTimers[kind]; t != nil {
		t.Stop() // re-arm instead of stacking clears
	}
	s.badgeTimers[kind] = time.AfterFunc(s.badgeTTL, func() {
		s.mu.Lock()
		s.setBadge(kind, false)
		s.mu.Unlock()
	})
	s.mu.Unlock()

	s.audit.Info("user "+kind, nil)
	s.requestReload()
}

// setBadge flips one badge; callers hold the mutex.
func (s *DashboardService) setBadge(kind string, on bool) {
	switch kind {
	case "added":
		s.badges.Added = on
	case "edited":
		s.badges.Edited = on
	case "deleted":
		s.badges.Deleted = on
	}
}

// ---- CSV import ----

// UploadCSV runs the import flow: local pre-flight on the file name (missing
// file, wrong extension, same name as the last upload this session, all
// rejected before any request), then the multipart upload under the busy
// indicator, then a reload on success. The name is remembered as soon as the
// pre-flight passes, so a failed upload also blocks an identical retry.
func (s *DashboardService) UploadCSV(filename string, file io.Reader) error {
	s.mu.Lock()
	last := s.lastUploadedFileName
	s.mu.Unlock()

	if err := core.CheckCSVName(filename, last); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastUploadedFileName = filename
	s.mu.Unlock()

	s.spin.Acquire(global.DashboardSpinner)
	err := s.client.UploadUsersCSV(filename, file)
	s.spin.Release(global.DashboardSpinner)

	if err != nil {
		s.audit.Error("csv import failed", map[string]string{"file": filename, "err": err.Error()})
		return err
	}
	s.audit.Info("csv imported", map[string]string{"file": filename})
	s.requestReload()
	return nil
}

package editor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"viukon-cms/client"
	"viukon-cms/logging"
	"viukon-cms/models"
	"viukon-cms/ordering"
)

var (
	ErrNotLoggedIn = errors.New("admin login required")
	ErrNoUploader  = errors.New("no image uploader configured")
)

// API is the slice of the persistence client a session needs.
type API interface {
	Saver
	FetchDocument(ctx context.Context) (*models.SiteData, error)
	Login(ctx context.Context, username, password string) (*client.LoginResponse, error)
	SetToken(token string)
}

// ImageUploader opens the hosted upload widget and returns the stored
// image URL. An empty URL means the user closed the widget.
type ImageUploader interface {
	UploadImage(ctx context.Context) (string, error)
}

type ImageKind string

const (
	ImageProject    ImageKind = "project"
	ImageTeamMember ImageKind = "teamMember"
	ImageTeamPhoto  ImageKind = "teamPhoto"
)

// ImageTarget names the field an uploaded image goes into. ID is ignored
// for the team photo.
type ImageTarget struct {
	Kind ImageKind
	ID   string
}

type SessionOptions struct {
	Debounce    time.Duration
	SaveTimeout time.Duration
	// Notifier defaults to Toasts with the default TTL.
	Notifier Notifier
	Uploader ImageUploader
}

// Session ties the admin editor together: it loads the document, gates
// edits behind the admin login and keeps the sortable lists in sync.
type Session struct {
	api      API
	store    *Store
	autosave *Autosaver
	notifier Notifier
	uploader ImageUploader

	projects *Reorderer
	team     *Reorderer
	// syncMu orders resyncs of the sortable lists.
	syncMu sync.Mutex

	mu       sync.RWMutex
	loggedIn bool
	username string

	unsubscribe func()
}

func NewSession(api API, opts SessionOptions) *Session {
	if opts.Notifier == nil {
		opts.Notifier = NewToasts(DefaultToastTTL)
	}

	store := NewStore(PlaceholderSiteData())
	s := &Session{
		api:      api,
		store:    store,
		notifier: opts.Notifier,
		uploader: opts.Uploader,
		autosave: NewAutosaver(store, api, opts.Notifier, AutosaveOptions{
			Debounce:    opts.Debounce,
			SaveTimeout: opts.SaveTimeout,
		}),
	}

	doc, _ := store.Snapshot()
	s.projects = NewReorderer(ProjectItems(doc), s.reorderProjects)
	s.team = NewReorderer(TeamItems(doc), s.reorderTeam)
	s.projects.OnIdle(s.resync)
	s.team.OnIdle(s.resync)
	// Listeners can run out of version order, so the lists always re-read
	// the store instead of using the delivered copy.
	s.unsubscribe = store.Subscribe(func(*models.SiteData, uint64) { s.resync() })
	return s
}

// Load fetches the stored document and applies its saved display orders.
// On failure the placeholder content stays in place and the error is
// returned. Autosave is enabled either way.
func (s *Session) Load(ctx context.Context) error {
	defer s.autosave.Enable()

	doc, err := s.api.FetchDocument(ctx)
	if err != nil {
		logging.Logger.Errorf("Event ID: SITEDATA_LOAD_FAILED, Description: Falling back to placeholder content: %v", err)
		s.notifier.Notify(Notification{Kind: KindError, Message: "Failed to load site data"})
		return fmt.Errorf("loading site data: %w", err)
	}

	if projects, err := ordering.Apply(doc.Projects, doc.About.ProjectOrder, projectID); err != nil {
		logging.Logger.Warnf("Event ID: SITEDATA_ORDER_SKIPPED, Description: Project order not applied: %v", err)
	} else {
		doc.Projects = projects
	}
	if team, err := ordering.Apply(doc.Team, doc.About.TeamOrder, memberID); err != nil {
		logging.Logger.Warnf("Event ID: SITEDATA_ORDER_SKIPPED, Description: Team order not applied: %v", err)
	} else {
		doc.Team = team
	}

	if err := s.store.Dispatch(ReplaceDocument{Doc: doc}); err != nil {
		return fmt.Errorf("loading site data: %w", err)
	}
	logging.Logger.Infof("Event ID: SITEDATA_LOADED, Description: Loaded %d projects and %d team members", len(doc.Projects), len(doc.Team))
	return nil
}

func (s *Session) Login(ctx context.Context, username, password string) error {
	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		var serverErr *client.ServerError
		if errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusUnauthorized {
			s.notifier.Notify(Notification{Kind: KindError, Message: "Invalid credentials. Please try again."})
		} else {
			s.notifier.Notify(Notification{Kind: KindError, Message: "Login failed: " + err.Error()})
		}
		return err
	}

	s.mu.Lock()
	s.loggedIn = true
	s.username = resp.Username
	s.mu.Unlock()

	s.notifier.Notify(Notification{Kind: KindSuccess, Message: "Welcome back!"})
	return nil
}

// Logout saves any pending change and then drops the token.
func (s *Session) Logout(ctx context.Context) error {
	var err error
	if s.autosave.Pending() {
		err = s.autosave.SaveNow(ctx)
	}

	s.mu.Lock()
	s.loggedIn = false
	s.username = ""
	s.mu.Unlock()

	s.api.SetToken("")
	return err
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Dispatch applies an edit. Edits require a logged-in admin.
func (s *Session) Dispatch(cmd Command) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.store.Dispatch(cmd)
}

// Snapshot returns a copy of the document being edited.
func (s *Session) Snapshot() *models.SiteData {
	doc, _ := s.store.Snapshot()
	return doc
}

func (s *Session) Notifier() Notifier {
	return s.notifier
}

// AddProject appends a project built from the default template and
// returns its id.
func (s *Session) AddProject() (string, error) {
	id := NewID()
	if err := s.Dispatch(AddProject{Project: NewProjectTemplate(id)}); err != nil {
		return "", err
	}
	s.notifier.Notify(Notification{Kind: KindSuccess, Message: "New project created"})
	return id, nil
}

func (s *Session) DeleteProject(id string) error {
	doc := s.Snapshot()
	i := indexOf(doc.Projects, id, projectID)
	if i < 0 {
		return fmt.Errorf("project %q: %w", id, ErrUnknownID)
	}
	title := doc.Projects[i].Title

	if err := s.Dispatch(RemoveProject{ID: id}); err != nil {
		return err
	}
	s.notifier.Notify(Notification{Kind: KindSuccess, Message: fmt.Sprintf("%q deleted", title)})
	return nil
}

func (s *Session) AddTeamMember() (string, error) {
	id := NewID()
	if err := s.Dispatch(AddTeamMember{Member: NewTeamMemberTemplate(id)}); err != nil {
		return "", err
	}
	s.notifier.Notify(Notification{Kind: KindSuccess, Message: "New team member added"})
	return id, nil
}

func (s *Session) RemoveTeamMember(id string) error {
	doc := s.Snapshot()
	i := indexOf(doc.Team, id, memberID)
	if i < 0 {
		return fmt.Errorf("team member %q: %w", id, ErrUnknownID)
	}
	name := doc.Team[i].Name

	if err := s.Dispatch(RemoveTeamMember{ID: id}); err != nil {
		return err
	}
	s.notifier.Notify(Notification{Kind: KindSuccess, Message: name + " removed"})
	return nil
}

// SetStatInput stores a counter typed into a text field.
func (s *Session) SetStatInput(field StatField, input string) error {
	return s.Dispatch(SetStat{Field: field, Value: ParseCounter(input)})
}

func (s *Session) SetAboutCounterInput(field AboutCounter, input string) error {
	return s.Dispatch(SetAboutCounter{Field: field, Value: ParseCounter(input)})
}

// AttachUploadedImage runs the uploader and stores the resulting URL in
// the target field. A cancelled upload changes nothing.
func (s *Session) AttachUploadedImage(ctx context.Context, target ImageTarget) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	if s.uploader == nil {
		return ErrNoUploader
	}

	url, err := s.uploader.UploadImage(ctx)
	if err != nil {
		s.notifier.Notify(Notification{Kind: KindError, Message: "Image upload failed"})
		return fmt.Errorf("uploading image: %w", err)
	}
	if url == "" {
		return nil
	}

	var cmd Command
	switch target.Kind {
	case ImageProject:
		cmd = SetProjectField{ID: target.ID, Field: ProjectImg, Value: url}
	case ImageTeamMember:
		cmd = SetTeamMemberField{ID: target.ID, Field: TeamImg, Value: url}
	case ImageTeamPhoto:
		cmd = SetTeamImage{URL: url}
	default:
		return fmt.Errorf("image target %q: %w", target.Kind, ErrUnknownField)
	}
	return s.Dispatch(cmd)
}

// ProjectReorderer drives the sortable project list.
func (s *Session) ProjectReorderer() *Reorderer {
	return s.projects
}

func (s *Session) TeamReorderer() *Reorderer {
	return s.team
}

// SaveOrderNow persists the current document without waiting for the
// debounce.
func (s *Session) SaveOrderNow(ctx context.Context) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.autosave.SaveNow(ctx)
}

// Close stops autosave, waiting for a running save to finish.
func (s *Session) Close() {
	s.autosave.Close()
	s.unsubscribe()
}

// resync copies the store's collections into both sortable lists. A list
// that is mid-drag keeps its items and catches up when the drag ends.
func (s *Session) resync() {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	doc, _ := s.store.Snapshot()
	s.projects.SetItems(ProjectItems(doc))
	s.team.SetItems(TeamItems(doc))
}

func (s *Session) reorderProjects(ids []string) {
	if err := s.Dispatch(ReorderProjects{Order: ids}); err != nil {
		s.reorderRejected(err)
		s.syncMu.Lock()
		defer s.syncMu.Unlock()
		doc, _ := s.store.Snapshot()
		s.projects.Reset(ProjectItems(doc))
	}
}

func (s *Session) reorderTeam(ids []string) {
	if err := s.Dispatch(ReorderTeam{Order: ids}); err != nil {
		s.reorderRejected(err)
		s.syncMu.Lock()
		defer s.syncMu.Unlock()
		doc, _ := s.store.Snapshot()
		s.team.Reset(TeamItems(doc))
	}
}

func (s *Session) reorderRejected(err error) {
	logging.Logger.Warnf("Event ID: REORDER_REJECTED, Description: %v", err)
	s.notifier.Notify(Notification{Kind: KindError, Message: "Failed to reorder: " + err.Error()})
}

package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type memAppRepo struct {
	apps map[uuid.UUID]Application
}

func newMemAppRepo() *memAppRepo {
	return &memAppRepo{apps: map[uuid.UUID]Application{}}
}

func (r *memAppRepo) GetByID(_ context.Context, id uuid.UUID) (*Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (r *memAppRepo) GetByName(_ context.Context, name string) (*Application, error) {
	for _, app := range r.apps {
		if app.Name == name {
			a := app
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memAppRepo) GetAll(_ context.Context) ([]Application, error) {
	out := make([]Application, 0, len(r.apps))
	for _, app := range r.apps {
		out = append(out, app)
	}
	return out, nil
}

func (r *memAppRepo) Add(_ context.Context, app *Application) error {
	r.apps[app.ID] = *app
	return nil
}

func (r *memAppRepo) Update(_ context.Context, app *Application) error {
	if _, ok := r.apps[app.ID]; !ok {
		return ErrNotFound
	}
	r.apps[app.ID] = *app
	return nil
}

func (r *memAppRepo) Remove(_ context.Context, id uuid.UUID) error {
	if _, ok := r.apps[id]; !ok {
		return ErrNotFound
	}
	delete(r.apps, id)
	return nil
}

type memWsRepo struct {
	spaces map[uuid.UUID]Workspace
}

func newMemWsRepo() *memWsRepo {
	return &memWsRepo{spaces: map[uuid.UUID]Workspace{}}
}

func (r *memWsRepo) GetByID(_ context.Context, id uuid.UUID) (*Workspace, error) {
	ws, ok := r.spaces[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ws, nil
}

func (r *memWsRepo) GetByName(_ context.Context, name string) (*Workspace, error) {
	for _, ws := range r.spaces {
		if ws.Name == name {
			w := ws
			return &w, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memWsRepo) GetAll(_ context.Context) ([]Workspace, error) {
	out := make([]Workspace, 0, len(r.spaces))
	for _, ws := range r.spaces {
		out = append(out, ws)
	}
	return out, nil
}

func (r *memWsRepo) Add(_ context.Context, ws *Workspace) error {
	r.spaces[ws.ID] = *ws
	return nil
}

func (r *memWsRepo) Update(_ context.Context, ws *Workspace) error {
	if _, ok := r.spaces[ws.ID]; !ok {
		return ErrNotFound
	}
	r.spaces[ws.ID] = *ws
	return nil
}

func (r *memWsRepo) Remove(_ context.Context, id uuid.UUID) error {
	if _, ok := r.spaces[id]; !ok {
		return ErrNotFound
	}
	delete(r.spaces, id)
	return nil
}

type fakeLauncher struct {
	launched []string
	pid      int
	err      error
}

func (l *fakeLauncher) Launch(_ context.Context, app *Application) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	l.launched = append(l.launched, app.Name)
	l.pid++
	return l.pid, nil
}

func TestApplicationServiceRegisterValidation(t *testing.T) {
	svc := NewApplicationService(newMemAppRepo(), &fakeLauncher{})
	ctx := context.Background()

	app := NewApplication("", "/usr/bin/foot", ApplicationKindDesktop)
	if err := svc.Register(ctx, &app); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: expected validation error, got %v", err)
	}
	app = NewApplication("foot", "", ApplicationKindDesktop)
	if err := svc.Register(ctx, &app); !errors.Is(err, ErrValidation) {
		t.Errorf("empty executable: expected validation error, got %v", err)
	}
}

func TestApplicationServiceRegisterDuplicate(t *testing.T) {
	svc := NewApplicationService(newMemAppRepo(), &fakeLauncher{})
	ctx := context.Background()

	app := NewApplication("foot", "/usr/bin/foot", ApplicationKindDesktop)
	if err := svc.Register(ctx, &app); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	dup := NewApplication("foot", "/usr/local/bin/foot", ApplicationKindDesktop)
	if err := svc.Register(ctx, &dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

func TestApplicationServiceLaunchByName(t *testing.T) {
	launcher := &fakeLauncher{}
	svc := NewApplicationService(newMemAppRepo(), launcher)
	ctx := context.Background()

	app := NewApplication("editor", "/usr/bin/editor", ApplicationKindCli)
	if err := svc.Register(ctx, &app); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	pid, err := svc.LaunchByName(ctx, "editor")
	if err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if pid != 1 {
		t.Errorf("expected pid 1, got %d", pid)
	}
	if len(launcher.launched) != 1 || launcher.launched[0] != "editor" {
		t.Errorf("launcher saw %v", launcher.launched)
	}

	if _, err := svc.LaunchByName(ctx, "no-such-app"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestWorkspaceServiceCreate(t *testing.T) {
	svc := NewWorkspaceService(newMemWsRepo())
	ctx := context.Background()

	ws, err := svc.Create(ctx, "main", "Primary-1920x1080")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if ws.ID == uuid.Nil {
		t.Error("created workspace has nil id")
	}
	if ws.LayoutConfiguration != "default" {
		t.Errorf("expected default layout, got %q", ws.LayoutConfiguration)
	}

	if _, err := svc.Create(ctx, "", "Primary-1920x1080"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: expected validation error, got %v", err)
	}
	if _, err := svc.Create(ctx, "main", "Primary-1920x1080"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate name: expected duplicate error, got %v", err)
	}
}

func TestWorkspaceServiceRename(t *testing.T) {
	svc := NewWorkspaceService(newMemWsRepo())
	ctx := context.Background()

	a, err := svc.Create(ctx, "alpha", "Primary-1920x1080")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	b, err := svc.Create(ctx, "beta", "Primary-1920x1080")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Renaming onto another workspace's name must fail
	if err := svc.Rename(ctx, b.ID, "alpha"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate error, got %v", err)
	}
	// Renaming to itself is fine
	if err := svc.Rename(ctx, a.ID, "alpha"); err != nil {
		t.Errorf("self-rename failed: %v", err)
	}
	if err := svc.Rename(ctx, b.ID, "gamma"); err != nil {
		t.Errorf("rename failed: %v", err)
	}
	got, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "gamma" {
		t.Errorf("expected renamed workspace, got %q", got.Name)
	}
}

func TestWorkspaceServiceRemove(t *testing.T) {
	svc := NewWorkspaceService(newMemWsRepo())
	ctx := context.Background()

	ws, err := svc.Create(ctx, "scratch", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Remove(ctx, ws.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := svc.Get(ctx, ws.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found after remove, got %v", err)
	}
}

type memPrefRepo struct {
	prefs map[string]UserPreferenceSetting
}

func newMemPrefRepo() *memPrefRepo {
	return &memPrefRepo{prefs: map[string]UserPreferenceSetting{}}
}

func (r *memPrefRepo) Get(_ context.Context, key string) (*UserPreferenceSetting, error) {
	p, ok := r.prefs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memPrefRepo) GetAll(_ context.Context) ([]UserPreferenceSetting, error) {
	out := make([]UserPreferenceSetting, 0, len(r.prefs))
	for _, p := range r.prefs {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPrefRepo) Set(_ context.Context, setting *UserPreferenceSetting) error {
	r.prefs[setting.Key] = *setting
	return nil
}

func (r *memPrefRepo) Remove(_ context.Context, key string) error {
	if _, ok := r.prefs[key]; !ok {
		return ErrNotFound
	}
	delete(r.prefs, key)
	return nil
}

func TestPreferenceServiceSetAndGet(t *testing.T) {
	svc := NewPreferenceService(newMemPrefRepo())
	ctx := context.Background()

	setting := &UserPreferenceSetting{
		Key:         "appearance.theme",
		Value:       StringValue("dark"),
		DisplayName: "Theme",
	}
	if err := svc.Set(ctx, setting); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := svc.Get(ctx, "appearance.theme")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Value.Str != "dark" {
		t.Errorf("expected dark, got %q", got.Value.Str)
	}
}

func TestPreferenceServiceRejectsBadKeys(t *testing.T) {
	svc := NewPreferenceService(newMemPrefRepo())
	ctx := context.Background()

	for _, key := range []string{"", "  ", ".leading", "trailing."} {
		setting := &UserPreferenceSetting{Key: key, Value: BooleanValue(true)}
		if err := svc.Set(ctx, setting); !errors.Is(err, ErrValidation) {
			t.Errorf("key %q: expected validation error, got %v", key, err)
		}
	}
}

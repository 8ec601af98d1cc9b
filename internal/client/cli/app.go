package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dkurbatovs/pulse/internal/client/api"
	"github.com/dkurbatovs/pulse/internal/client/config"
	"github.com/dkurbatovs/pulse/internal/client/form"
	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/client/services"
	"github.com/dkurbatovs/pulse/internal/client/state"
	"github.com/dkurbatovs/pulse/internal/logging"
)

// feedLoader and postMutator define the minimal service surface the app
// needs; the concrete services satisfy them and tests provide fakes.
type feedLoader interface {
	Load(ctx context.Context, profile bool, userID string) error
	Loading() bool
}

type postMutator interface {
	ToggleLike(ctx context.Context, postID string) (models.PostEntity, error)
	AddComment(ctx context.Context, postID, comment string) (models.PostEntity, error)
}

type sessionEnder interface {
	Logout(ctx context.Context)
}

// App wires the form engine, services and stores behind the REPL.
type App struct {
	config   *config.Config
	form     *form.Engine
	auth     sessionEnder
	feed     feedLoader
	posts    postMutator
	sessions *state.SessionStore
	cache    *state.FeedCache
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu          sync.Mutex
	profile     bool
	profileUser string
	views       map[string]*postView
}

// postView is per-post, client-only view state: the comment panel toggle
// and the comment composition buffer. Independent of server state; reset
// only when the view map is remounted.
type postView struct {
	ShowComments bool
	Compose      string
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	sessions := state.NewSessionStore()
	cache := state.NewFeedCache()
	client := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, log)

	a := &App{
		config:   cfg,
		sessions: sessions,
		cache:    cache,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		views:    make(map[string]*postView),
	}

	authSvc := services.NewAuthService(client, sessions, a.onLogin, log)
	a.auth = authSvc
	a.form = form.NewEngine(authSvc, log)
	a.feed = services.NewFeedService(client, sessions, cache, log)
	a.posts = services.NewPostService(client, sessions, cache, log)
	return a
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Pulse (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// onLogin is the navigation hook: entering the authenticated area lands
// the user on the global feed.
func (a *App) onLogin(ctx context.Context, sess models.Session) {
	a.mu.Lock()
	a.profile = false
	a.profileUser = ""
	a.views = make(map[string]*postView)
	a.mu.Unlock()

	if err := a.feed.Load(ctx, false, ""); err != nil {
		fmt.Fprintln(a.out, "could not load your feed:", api.Message(err))
		return
	}
	a.renderFeed(sess.User.ID)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.Current()
	return ok
}

func (a *App) getStatus() string {
	sess, ok := a.sessions.Current()
	if !ok {
		return ""
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	scope := "home"
	if a.profile {
		scope = "profile"
	}
	return fmt.Sprintf("(%s %s)", sess.User.FirstName, scope)
}

// view returns the view state for a post, creating it on first use.
func (a *App) view(postID string) *postView {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.views[postID]
	if !ok {
		v = &postView{}
		a.views[postID] = v
	}
	return v
}

func (a *App) viewSnapshot() map[string]postView {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]postView, len(a.views))
	for id, v := range a.views {
		out[id] = *v
	}
	return out
}

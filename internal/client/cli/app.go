package cli

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/foorum/internal/client/metrics"
	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/services"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

// draft is the composer content kept across a login prompt.
type draft struct {
	content string
	emoji   models.Emoji
}

func (d draft) empty() bool { return d.content == "" }

type App struct {
	sessions *services.SessionManager
	feed     *services.FeedService
	metrics  *metrics.Metrics
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	mu          sync.Mutex
	userName    string
	draft       draft
	unsubscribe func()
}

// NewApp builds the shell over already-constructed services. It reads
// commands and answers from in and writes everything user-facing to out.
func NewApp(sessions *services.SessionManager, feed *services.FeedService, m *metrics.Metrics, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		sessions: sessions,
		feed:     feed,
		metrics:  m,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	if u, ok := sessions.CurrentUser(); ok {
		a.userName = u.Name
	}
	a.unsubscribe = sessions.Subscribe(a.onSessionChange)
	return a
}

// Run shows the feed and then serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close detaches the App from session notifications.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) onSessionChange(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if u == nil {
		a.userName = ""
		return
	}
	a.userName = u.Name
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userName == "" {
		return "foorum> "
	}
	return "foorum (" + a.userName + ")> "
}

func (a *App) currentDraft() draft {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.draft
}

func (a *App) setDraft(d draft) {
	a.mu.Lock()
	a.draft = d
	a.mu.Unlock()
}

func (a *App) clearDraft() { a.setDraft(draft{}) }

package main

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/tomz197/spaceimpact/internal/config"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Parse(htmlPage))

type pageData struct {
	SSHHost string
	Scores  []int
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceimpact-web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	settings, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("loading settings", "err", err)
	}
	store := leaderboard.NewFileStore(settings.LeaderboardPath, logger)

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newRouter(store, sshHost, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+srv.Addr, "leaderboard", settings.LeaderboardPath)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newRouter serves the landing page and a read-only view of the endless
// leaderboard.
func newRouter(store leaderboard.Store, sshHost string, logger *log.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{SSHHost: sshHost, Scores: store.Load()}
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Error("rendering index", "err", err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/leaderboard", func(w http.ResponseWriter, req *http.Request) {
		scores := store.Load()
		if scores == nil {
			scores = []int{}
		}
		data, err := json.Marshal(scores)
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	return r
}

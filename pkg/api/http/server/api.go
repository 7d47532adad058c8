package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/sitevista/gantry/pkg/api"
	"github.com/sitevista/gantry/pkg/api/http/common"
	"github.com/sitevista/gantry/pkg/structs"
)

const (
	wait = 30 * time.Second
)

type Server struct {
	addr       string
	debug      bool
	svc        api.API
	exit       chan os.Signal
	httpserver *http.Server
}

func NewServer(addr string, debug bool) *Server {
	return &Server{
		addr:  addr,
		debug: debug,
		exit:  make(chan os.Signal, 1),
	}
}

func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}

func (s *Server) ServeForever(svc api.API) error {
	s.svc = svc

	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	router.HandleFunc(common.API_TASKS, s.ListTasks).Methods(http.MethodGet)
	router.HandleFunc(common.API_TASK, s.GetStatus).Methods(http.MethodGet)
	router.HandleFunc(common.API_CANCEL, s.Cancel).Methods(http.MethodPost)

	if s.debug {
		log.Println("Debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware)
	}

	s.httpserver = &http.Server{
		Handler:      router,
		Addr:         s.addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		log.Println("Listening on", s.httpserver.Addr)
		if err := s.httpserver.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.GetStatus(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, view)
}

func (s *Server) Cancel(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.Cancel(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, result)
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	if err := unmarshalQuery(w, r, q); err != nil {
		return
	}

	page, err := s.svc.ListTasks(q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	if s.debug {
		log.Println(r.URL, "returned", len(page.Tasks), "of", page.Total, "tasks")
	}
	writeJson(w, page)
}

func writeJson(w http.ResponseWriter, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

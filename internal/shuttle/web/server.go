// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package web exposes a single session over a JSON API so that a browser
// front end can drive a gathering from a phone at the courts.
package web

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"laptudirm.com/x/shuttle/pkg/gamegen"
	"laptudirm.com/x/shuttle/pkg/roster"
)

// Server wraps one session behind a mutex. The engine itself is
// single-threaded; every handler takes the lock for the duration of the
// request.
type Server struct {
	mutex   sync.Mutex
	session *gamegen.Session
	history *roster.History
}

// NewServer returns a server around the given session. A nil history
// disables cross-session name memory.
func NewServer(session *gamegen.Session, history *roster.History) *Server {
	session.Normalize()
	return &Server{session: session, history: history}
}

// Router builds the chi router for the session API.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/session", s.GetSession)
	r.Post("/players", s.AddPlayer)
	r.Delete("/players/{name}", s.RemovePlayer)
	r.Put("/config", s.UpdateConfig)
	r.Get("/games/next", s.ProposeGame)
	r.Post("/games", s.CommitGame)
	r.Post("/games/next", s.ProposeAndCommitGame)

	return r
}

// ListenAndServe runs the API on the given address until the listener
// fails.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

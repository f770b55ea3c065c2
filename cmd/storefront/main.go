// Copyright 2025 Gagitech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sohrabTT/gagitech/internal/assistant"
	"github.com/sohrabTT/gagitech/internal/cart"
	"github.com/sohrabTT/gagitech/internal/catalog"
	"github.com/sohrabTT/gagitech/internal/checkout"
)

const (
	defaultPort = "8080"

	cookiePrefix    = "shop_"
	cookieSessionID = cookiePrefix + "session-id"
	cookieMaxAge    = 60 * 60 * 48
)

// session holds the per-browser-session state: one cart engine shared by
// the JSON API and the assistant tool adapter, both holding the same
// instance so human clicks and agent tool calls mutate one cart.
type session struct {
	engine  *cart.Engine
	adapter *assistant.Adapter
}

type frontendServer struct {
	log       *logrus.Logger
	catalog   *catalog.Store
	submitter checkout.Submitter

	mu       sync.Mutex
	sessions map[string]*session

	simulatedDelay time.Duration
}

func (fe *frontendServer) session(r *http.Request) *session {
	id := sessionID(r)
	fe.mu.Lock()
	defer fe.mu.Unlock()

	s, ok := fe.sessions[id]
	if !ok {
		engine := cart.NewEngine()
		s = &session{
			engine:  engine,
			adapter: assistant.NewAdapter(fe.catalog, engine, fe.submitter, fe.log),
		}
		fe.sessions[id] = s
	}
	return s
}

func main() {
	log := logrus.New()
	log.Level = logrus.DebugLevel
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	fe := &frontendServer{
		log:            log,
		catalog:        catalog.NewStore(),
		sessions:       make(map[string]*session),
		simulatedDelay: time.Second,
	}
	if ms := os.Getenv("SIMULATED_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil {
			fe.simulatedDelay = time.Duration(v) * time.Millisecond
		}
	}
	fe.submitter = &checkout.SimulatedSubmitter{Delay: fe.simulatedDelay, Log: log}

	srvPort := defaultPort
	if os.Getenv("PORT") != "" {
		srvPort = os.Getenv("PORT")
	}
	addr := os.Getenv("LISTEN_ADDR")

	var handler http.Handler = fe.routes()
	handler = &logHandler{log: log, next: handler} // add logging
	handler = ensureSessionID(handler)             // add session ID

	log.Infof("starting server on %s:%s", addr, srvPort)
	log.Fatal(http.ListenAndServe(addr+":"+srvPort, handler))
}

func (fe *frontendServer) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/products", fe.listProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", fe.getProductHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", fe.listCategoriesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/brands", fe.listBrandsHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/cart", fe.getCartHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/cart/add", fe.addToCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/remove", fe.removeFromCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/update", fe.updateCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/increase", fe.increaseQuantityHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/decrease", fe.decreaseQuantityHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/empty", fe.emptyCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/quote", fe.cartQuoteHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/checkout", fe.checkoutHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/login", fe.loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/register", fe.registerHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/contact", fe.contactHandler).Methods(http.MethodPost)

	r.HandleFunc("/api/assistant/tools", fe.listToolsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/assistant/tools/{tool}", fe.dispatchToolHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/assistant/context/{name}", fe.contextFeedHandler).Methods(http.MethodGet)

	r.HandleFunc("/_healthz", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "ok") })
	return r
}

/*
Copyright 2026 the Foody API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package foodytest provides an in-memory Foody service for exercising the
// test harness without a deployed backend.
package foodytest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"k8s.io/utils/ptr"
)

// Messages returned by the service.
const (
	MessageCreated       = "Successfully created!"
	MessageEdited        = "Successfully edited"
	MessageDeleted       = "Deleted successfully!"
	MessageFoodNotFound  = "No food revues..."
	MessageDeleteFailed  = "Unable to delete this food revue!"
	MessageUnauthorized  = "Invalid username or password!"
	MessageInvalidPatch  = "Invalid patch document!"
	MessageInvalidFood   = "One or more validation errors occurred."
	MessageInvalidLogin  = "Username and password are required!"
	MessageMissingBearer = "Missing or invalid bearer token!"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Food is a stored food revue.
type Food struct {
	ID          string `json:"foodId"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type message struct {
	FoodID  *string `json:"foodId,omitempty"`
	Message string  `json:"msg"`
}

// problem mirrors the validation error body of an ASP.NET style service.
type problem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors,omitempty"`
}

type Options struct {
	users       map[string]string
	tokenTTL    time.Duration
	blankTokens bool
}

type Option func(*Options)

// WithUser registers an additional account.
func WithUser(username, password string) Option {
	return func(o *Options) {
		o.users[username] = password
	}
}

// WithTokenTTL sets the lifetime of issued access tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(o *Options) {
		o.tokenTTL = ttl
	}
}

// WithBlankTokens makes authentication succeed with an empty access token.
func WithBlankTokens() Option {
	return func(o *Options) {
		o.blankTokens = true
	}
}

// Server is a running in-memory Foody service.
type Server struct {
	*httptest.Server

	options  Options
	secret   []byte
	validate *validator.Validate

	lock  sync.Mutex
	foods map[string]*Food
	order []string
}

// NewServer starts a service that knows about the given default account.
// The caller must Close it.
func NewServer(username, password string, options ...Option) *Server {
	o := Options{
		users: map[string]string{
			username: password,
		},
		tokenTTL: time.Hour,
	}

	for _, option := range options {
		option(&o)
	}

	s := &Server{
		options:  o,
		secret:   []byte(uuid.NewString()),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		foods:    map[string]*Food{},
	}

	router := chi.NewRouter()
	router.Post("/api/User/Authentication", s.authenticate)
	router.Group(func(r chi.Router) {
		r.Use(s.authenticated)
		r.Post("/api/Food/Create", s.createFood)
		r.Patch("/api/Food/Edit/{foodId}", s.editFood)
		r.Get("/api/Food/All", s.listFoods)
		r.Delete("/api/Food/Delete/{foodId}", s.deleteFood)
	})

	s.Server = httptest.NewServer(router)

	return s
}

// Food returns a copy of a stored food revue.
func (s *Server) Food(id string) (Food, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	food, ok := s.foods[id]
	if !ok {
		return Food{}, false
	}

	return *food, true
}

// Len returns the number of stored food revues.
func (s *Server) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.order)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	//nolint:errchkjson // nothing useful to do with a write error
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &message{Message: msg})
}

func (s *Server) issueToken(username string) (string, error) {
	if s.options.blankTokens {
		return "", nil
	}

	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.options.tokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) verifyToken(token string) error {
	_, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return err
}

func (s *Server) checkCredentials(username, password string) error {
	expected, ok := s.options.users[username]
	if !ok || expected != password {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserName string `json:"userName" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, MessageInvalidLogin)
		return
	}

	if err := s.validate.Struct(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, MessageInvalidLogin)
		return
	}

	if err := s.checkCredentials(request.UserName, request.Password); err != nil {
		writeMessage(w, http.StatusUnauthorized, MessageUnauthorized)
		return
	}

	token, err := s.issueToken(request.UserName)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username":    request.UserName,
		"accessToken": token,
	})
}

func (s *Server) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, MessageMissingBearer)
			return
		}

		if err := s.verifyToken(token); err != nil {
			writeMessage(w, http.StatusUnauthorized, MessageMissingBearer)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func validationProblem(err error) *problem {
	p := &problem{
		Title:  MessageInvalidFood,
		Status: http.StatusBadRequest,
		Errors: map[string][]string{},
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fieldError := range errs {
			p.Errors[fieldError.Field()] = append(p.Errors[fieldError.Field()], "The "+fieldError.Field()+" field is required.")
		}
	}

	return p
}

func (s *Server) createFood(w http.ResponseWriter, r *http.Request) {
	var food Food

	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeJSON(w, http.StatusBadRequest, &problem{Title: MessageInvalidFood, Status: http.StatusBadRequest})
		return
	}

	if err := s.validate.Struct(&food); err != nil {
		writeJSON(w, http.StatusBadRequest, validationProblem(err))
		return
	}

	food.ID = uuid.NewString()

	s.lock.Lock()
	s.foods[food.ID] = &food
	s.order = append(s.order, food.ID)
	s.lock.Unlock()

	writeJSON(w, http.StatusCreated, &message{
		FoodID:  ptr.To(food.ID),
		Message: MessageCreated,
	})
}

func (s *Server) editFood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "foodId")

	var raw json.RawMessage

	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeMessage(w, http.StatusBadRequest, MessageInvalidPatch)
		return
	}

	patch, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MessageInvalidPatch)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	food, ok := s.foods[id]
	if !ok {
		writeMessage(w, http.StatusNotFound, MessageFoodNotFound)
		return
	}

	current, err := json.Marshal(food)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	patched, err := patch.Apply(current)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MessageInvalidPatch)
		return
	}

	var updated Food

	if err := json.Unmarshal(patched, &updated); err != nil {
		writeMessage(w, http.StatusBadRequest, MessageInvalidPatch)
		return
	}

	if err := s.validate.Struct(&updated); err != nil {
		writeJSON(w, http.StatusBadRequest, validationProblem(err))
		return
	}

	// The identifier is not editable.
	updated.ID = food.ID
	*food = updated

	writeMessage(w, http.StatusOK, MessageEdited)
}

func (s *Server) listFoods(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()

	foods := make([]Food, 0, len(s.order))
	for _, id := range s.order {
		foods = append(foods, *s.foods[id])
	}

	s.lock.Unlock()

	writeJSON(w, http.StatusOK, foods)
}

func (s *Server) deleteFood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "foodId")

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.foods[id]; !ok {
		writeMessage(w, http.StatusBadRequest, MessageDeleteFailed)
		return
	}

	delete(s.foods, id)

	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	writeMessage(w, http.StatusOK, MessageDeleted)
}

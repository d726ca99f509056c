package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ametelin/fintrack/internal/logger"
	"github.com/ametelin/fintrack/internal/service"
	"github.com/ametelin/fintrack/internal/utils"
	"github.com/ametelin/fintrack/models"
	"github.com/go-chi/chi/v5"
)

// resourceRoutes adapts one [service.ResourceService] to HTTP. A single
// generic implementation serves all four resource kinds; only the kind label
// (used in the delete acknowledgment and logs) differs.
type resourceRoutes[T models.Owned, In any] struct {
	kind    string
	service service.ResourceService[T, In]
}

func newResourceRoutes[T models.Owned, In any](kind string, service service.ResourceService[T, In]) *resourceRoutes[T, In] {
	return &resourceRoutes[T, In]{
		kind:    kind,
		service: service,
	}
}

// mount attaches the five CRUD endpoints to r. It is meant to be passed to
// chi's Route.
func (rr *resourceRoutes[T, In]) mount(r chi.Router) {
	r.Get("/", rr.list)
	r.Post("/", rr.create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", rr.get)
		r.Put("/", rr.update)
		r.Delete("/", rr.delete)
	})
}

// callerID extracts the authenticated user's id attached by the auth
// middleware. A missing id means the middleware did not run; respond 401
// rather than guess.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}

	return userID, true
}

// recordID parses the {id} route parameter. Identifiers are server-assigned
// positive integers, so anything unparsable can match no record.
func (rr *resourceRoutes[T, In]) recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, rr.kind+" not found", http.StatusNotFound)
		return 0, false
	}

	return id, true
}

func (rr *resourceRoutes[T, In]) list(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	records, err := rr.service.List(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("kind", rr.kind).Msg("listing records failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (rr *resourceRoutes[T, In]) create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var in In
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("kind", rr.kind).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := rr.service.Create(r.Context(), userID, in)
	if err != nil {
		log.Err(err).Str("kind", rr.kind).Msg("creating record failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (rr *resourceRoutes[T, In]) get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, ok := rr.recordID(w, r)
	if !ok {
		return
	}

	record, err := rr.service.Get(r.Context(), userID, id)
	if err != nil {
		log.Err(err).Str("kind", rr.kind).Int64("id", id).Msg("fetching record failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (rr *resourceRoutes[T, In]) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, ok := rr.recordID(w, r)
	if !ok {
		return
	}

	var in In
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("kind", rr.kind).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := rr.service.Update(r.Context(), userID, id, in)
	if err != nil {
		log.Err(err).Str("kind", rr.kind).Int64("id", id).Msg("updating record failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (rr *resourceRoutes[T, In]) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, ok := rr.recordID(w, r)
	if !ok {
		return
	}

	if err := rr.service.Delete(r.Context(), userID, id); err != nil {
		log.Err(err).Str("kind", rr.kind).Int64("id", id).Msg("deleting record failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: rr.kind + " removed"}, http.StatusOK)
}

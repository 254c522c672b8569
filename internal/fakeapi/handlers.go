package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) routes(r chi.Router) {
	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/review-cycles", s.handleList("cycles"))
		r.Post("/review-cycles", s.handleCreate("cycles"))
		r.Get("/review-cycles/{id}", s.handleGet("cycles"))
		r.Put("/review-cycles/{id}", s.handleUpdate("cycles"))
		r.Patch("/review-cycles/{id}", s.handleUpdate("cycles"))
		r.Delete("/review-cycles/{id}", s.handleDelete("cycles"))
		r.Post("/review-cycles/{id}/activate", s.handleCycleStatus("active"))
		r.Post("/review-cycles/{id}/complete", s.handleCycleStatus("completed"))
		r.Get("/review-cycles/{id}/statistics", s.handleStatistics)

		r.Get("/reviews", s.handleList("reviews"))
		r.Get("/reviews/my_reviews", s.handleList("reviews"))
		r.Get("/reviews/pending_reviews", s.handleList("reviews"))
		r.Post("/reviews", s.handleCreateReview)
		r.Get("/reviews/{id}", s.handleGet("reviews"))
		r.Patch("/reviews/{id}", s.handleUpdate("reviews"))
		r.Delete("/reviews/{id}", s.handleDelete("reviews"))
		r.Post("/reviews/{id}/calculate_rating", s.handleCalculateRating)

		r.Get("/self-assessments", s.handleList("self_assessments"))
		r.Post("/self-assessments", s.handleCreate("self_assessments"))
		r.Get("/self-assessments/{id}", s.handleGet("self_assessments"))
		r.Patch("/self-assessments/{id}", s.handleUpdate("self_assessments"))
		r.Delete("/self-assessments/{id}", s.handleDelete("self_assessments"))

		r.Get("/manager-reviews", s.handleList("manager_reviews"))
		r.Post("/manager-reviews", s.handleCreateManagerReview)
		r.Get("/manager-reviews/{id}", s.handleGet("manager_reviews"))
		r.Patch("/manager-reviews/{id}", s.handleUpdate("manager_reviews"))
		r.Delete("/manager-reviews/{id}", s.handleDelete("manager_reviews"))

		r.Get("/peer-feedback", s.handleList("peer_feedback"))
		r.Get("/peer-feedback/my_feedback", s.handleList("peer_feedback"))
		r.Post("/peer-feedback", s.handleCreate("peer_feedback"))
		r.Get("/peer-feedback/{id}", s.handleGet("peer_feedback"))
		r.Patch("/peer-feedback/{id}", s.handleUpdate("peer_feedback"))
		r.Delete("/peer-feedback/{id}", s.handleDelete("peer_feedback"))
	})

	r.Route("/api/performance", func(r chi.Router) {
		r.Get("/goals", s.handleList("goals"))
		r.Post("/goals", s.handleCreate("goals"))
		r.Get("/goals/{id}", s.handleGet("goals"))
		r.Patch("/goals/{id}", s.handleUpdate("goals"))
		r.Delete("/goals/{id}", s.handleDelete("goals"))

		// Deliberate single aliases: snake for progress, kebab-less
		// plain for complete, collection routes for milestones and
		// comments. The other documented candidates 404.
		r.Post("/goals/{id}/update_progress", s.handleGoalProgress)
		r.Post("/goals/{id}/complete", s.handleGoalComplete)
		r.Post("/goals/{id}/comments", s.handleAddGoalComment)

		r.Get("/milestones", s.handleList("milestones"))
		r.Post("/milestones", s.handleCreate("milestones"))
		r.Patch("/milestones/{id}", s.handleUpdate("milestones"))
		r.Delete("/milestones/{id}", s.handleDelete("milestones"))

		r.Get("/kpis", s.handleList("kpis"))
		r.Post("/kpis", s.handleCreate("kpis"))
		r.Get("/kpis/{id}", s.handleGet("kpis"))
		r.Patch("/kpis/{id}", s.handleUpdate("kpis"))
		r.Delete("/kpis/{id}", s.handleDelete("kpis"))
		r.Post("/kpis/{id}/update_value", s.handleKPIValue)

		r.Get("/categories", s.handleList("categories"))
		r.Post("/categories", s.handleCreate("categories"))
		r.Patch("/categories/{id}", s.handleUpdate("categories"))
		r.Delete("/categories/{id}", s.handleDelete("categories"))

		r.Get("/progress-updates", s.handleList("progress_updates"))
	})
}

func (s *Server) handleList(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		items := s.listLocked(resource)
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, items)
	}
}

func (s *Server) handleCreate(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		s.mu.Lock()
		item := s.insertLocked(resource, fields)
		s.mu.Unlock()
		writeJSON(w, http.StatusCreated, item)
	}
}

func (s *Server) handleGet(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		s.mu.Lock()
		item, ok := s.storeLocked(resource)[id]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusNotFound, "Not found.")
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) handleUpdate(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		fields, err := decodeBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		s.mu.Lock()
		item, ok := s.storeLocked(resource)[id]
		if ok {
			for key, value := range fields {
				item[key] = value
			}
		}
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusNotFound, "Not found.")
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) handleDelete(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		s.mu.Lock()
		_, ok = s.storeLocked(resource)[id]
		delete(s.storeLocked(resource), id)
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusNotFound, "Not found.")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleCreateReview enforces the (cycle, employee) uniqueness the
// real backend has, answering with a DRF field-error body.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	for _, existing := range s.listLocked("reviews") {
		if asID(existing["cycle"]) == asID(fields["cycle"]) && asID(existing["employee"]) == asID(fields["employee"]) {
			s.mu.Unlock()
			writeFieldErrors(w, map[string][]string{
				"employee": {"a review for this employee already exists in the cycle"},
			})
			return
		}
	}
	item := s.insertLocked("reviews", fields)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleCreateManagerReview(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	for _, existing := range s.listLocked("manager_reviews") {
		if asID(existing["review"]) == asID(fields["review"]) {
			s.mu.Unlock()
			writeError(w, http.StatusBadRequest, "manager review already exists for this review")
			return
		}
	}
	item := s.insertLocked("manager_reviews", fields)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleCycleStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		s.mu.Lock()
		item, ok := s.storeLocked("cycles")[id]
		if ok {
			item["status"] = status
		}
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusNotFound, "Not found.")
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	s.mu.Lock()
	_, exists := s.storeLocked("cycles")[id]
	var total, completed int
	for _, review := range s.listLocked("reviews") {
		if asID(review["cycle"]) != id {
			continue
		}
		total++
		if review["status"] == "finalized" {
			completed++
		}
	}
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cycle":             id,
		"total_reviews":     total,
		"completed_reviews": completed,
	})
}

func (s *Server) handleCalculateRating(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	s.mu.Lock()
	review, exists := s.storeLocked("reviews")[id]
	var rating float64
	if exists {
		for _, mr := range s.listLocked("manager_reviews") {
			if asID(mr["review"]) == id {
				rating = asFloat(mr["overall_rating"])
			}
		}
		review["overall_rating"] = rating
		review["status"] = "finalized"
	}
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"overall_rating": rating, "status": "finalized"})
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	goal, exists := s.storeLocked("goals")[id]
	if exists {
		goal["progress"] = asFloat(fields["progress"])
		update := map[string]any{"goal": id, "progress": asFloat(fields["progress"])}
		if note, ok := fields["note"]; ok {
			update["note"] = note
		}
		s.insertLocked("progress_updates", update)
	}
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleGoalComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	s.mu.Lock()
	goal, exists := s.storeLocked("goals")[id]
	if exists {
		goal["status"] = "completed"
		goal["progress"] = float64(100)
	}
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleAddGoalComment(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	_, exists := s.storeLocked("goals")[id]
	var item map[string]any
	if exists {
		fields["goal"] = id
		item = s.insertLocked("comments", fields)
	}
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleKPIValue(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	fields, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	s.mu.Lock()
	kpi, exists := s.storeLocked("kpis")[id]
	if exists {
		kpi["current_value"] = asFloat(fields["current_value"])
	}
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, kpi)
}

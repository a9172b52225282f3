package web

import (
	"net/http"

	"locallibrary/internal/catalog"
)

type homeData struct {
	baseData
	Summary   catalog.Summary
	NumVisits int

	// Authors is populated only in development mode.
	Authors []catalog.Author
	DevMode bool
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)

	summary, err := s.catalog.HomeSummary(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	visits, err := s.sessions.IncrementVisits(r.Context(), actor.Session.ID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	data := homeData{
		baseData:  s.baseData(r, "Local Library"),
		Summary:   summary,
		NumVisits: visits,
		DevMode:   s.devMode,
	}
	if s.devMode {
		data.Authors, err = s.catalog.ListAllAuthors(r.Context())
		if err != nil {
			s.serverError(w, r, err)
			return
		}
	}

	s.render(w, r, http.StatusOK, "home.html", data)
}

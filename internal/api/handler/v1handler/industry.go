package v1handler

import (
	"customers/pkg/domain"
	"net/http"
)

type Industry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type IndustryList struct {
	Items []Industry `json:"items"`
}

// ListIndustries returns the catalog, optionally narrowed by the name query parameter.
func (h Handler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.deps.Customers.Industries(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	items := make([]Industry, 0, len(industries))
	for _, industry := range industries {
		items = append(items, DomainIndustryToV1(industry))
	}

	writeJSON(r.Context(), w, http.StatusOK, IndustryList{Items: items})
}

func DomainIndustryToV1(industry domain.Industry) Industry {
	return Industry{ID: industry.ID(), Name: industry.Name()}
}

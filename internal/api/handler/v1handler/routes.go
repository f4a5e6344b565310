package v1handler

import "github.com/go-chi/chi/v5"

// Routes registers the v1 endpoints on r.
func (h Handler) Routes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.FindCustomer)
		r.Get("/{id}", h.GetCustomer)
		r.Put("/{id}", h.UpdateCustomer)
		r.Delete("/{id}/emailing", h.DisableEmailing)
		r.Post("/{id}/promotion", h.PromoteCustomer)
	})
	r.Get("/industries", h.ListIndustries)
}

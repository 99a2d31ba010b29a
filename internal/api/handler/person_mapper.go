package handler

import (
	"github.com/authbase/person-api/internal/core/domain"
)

// --- Domain → HTTP response ---

func toPersonResponse(p *domain.Person) personResponse {
	return personResponse{
		ID:    p.ID,
		Login: p.Login,
	}
}

func toPersonListResponse(persons []*domain.Person) []personResponse {
	out := make([]personResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}
	return out
}

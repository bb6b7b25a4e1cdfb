package wire

import (
	"truetimeshare/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCommunity(r chi.Router, communityHandler *adaptor.CommunityHandler) {
	r.Post("/api/community/register-email", communityHandler.RegisterEmail)
}

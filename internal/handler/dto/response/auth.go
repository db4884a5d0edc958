package response

import "parkspot/internal/usecase/queries"

type AuthResponse struct {
	AccessToken string                       `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

package handler

// errorResponse mirrors the envelope rendered by the API error handler. It is
// declared here so the route annotations can reference the response shape.
type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// --- Request types ---

type createPersonRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type updatePersonRequest struct {
	ID       int64  `json:"id"       validate:"required,gt=0"`
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type passwordUpdateRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// personResponse is the public projection of an account. The password hash is
// deliberately absent; responses are always built through the mappers.
type personResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

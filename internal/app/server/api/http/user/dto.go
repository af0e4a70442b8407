package user

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Login    string `json:"login" doc:"Unique login"`
	Name     string `json:"name" doc:"Display name"`
	Email    string `json:"email" doc:"Contact email"`
	Password string `json:"password" doc:"Password, stored hashed"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int64  `json:"user_id"`
	Status string `json:"status"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

type logoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token to invalidate"`
}

type logoutOutput struct {
	Body LogoutResponse
}

type LogoutResponse struct {
	Status string `json:"status"`
}

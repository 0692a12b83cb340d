package handler

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type fundRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type carRequest struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
	Price int64  `json:"price" validate:"required,gt=0"`
}

type messageResponse struct {
	Message string `json:"message"`
}

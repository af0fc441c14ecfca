package models

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ValidateResponse - ответ проверки пользователя
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// AddressResponse - ответ на смену адреса
type AddressResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Address *string `json:"address"`
}

// CourseUpdateResponse - ответ на смену курса
type CourseUpdateResponse struct {
	Success bool    `json:"success"`
	Course  float64 `json:"course"`
}

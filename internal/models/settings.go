package models

// CourseResponse - курс токена для отображения
type CourseResponse struct {
	Course float64 `json:"course"`
}

// CourseRequest - запрос администратора на смену курса
type CourseRequest struct {
	Course float64 `json:"course" validate:"gt=0"`
}

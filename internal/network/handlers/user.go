package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/ya-exchange/internal/helpers"
	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/denmor86/ya-exchange/internal/services"
	"github.com/denmor86/ya-exchange/internal/validators"
)

// Cookie с токеном сессии
const SessionCookieName = "sessionid"

var credentialMessages = validators.Messages{
	"email":    "Email and password are required",
	"password": "Email and password are required",
}

// RegisterUserHandler - регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if !decodeRequest(w, r, &user, credentialMessages) {
			return
		}

		if err := i.RegisterUser(r.Context(), user); err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyCredentials):
				WriteError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, services.ErrPasswordTooShort):
				WriteError(w, http.StatusConflict, "Password is too short")
			case errors.Is(err, services.ErrUserAlreadyExists):
				logger.Warn("Error register user", "email", user.Email)
				WriteError(w, http.StatusConflict, "Email is already occupied")
			default:
				logger.Error("Error register user", "error", err)
				WriteError(w, http.StatusInternalServerError, MessageServerError)
			}
			return
		}

		logger.Info("User registered", "email", user.Email)
		WriteJSON(w, http.StatusCreated, models.MessageResponse{Message: "User created"})
	})
}

// LoginHandler - аутентификация пользователя, токен отдаётся в теле и в cookie
func LoginHandler(i services.IdentityService, cookieSecure bool) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.UserRequest
		if !decodeRequest(w, r, &request, credentialMessages) {
			return
		}

		user, err := i.AuthenticateUser(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyCredentials):
				WriteError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, services.ErrInvalidCredentials):
				WriteError(w, http.StatusUnauthorized, "Incorrect email or password")
			default:
				logger.Error("Error authenticate user", "error", err)
				WriteError(w, http.StatusInternalServerError, MessageServerError)
			}
			return
		}

		token, err := i.GenerateJWT(user)
		if err != nil {
			logger.Error("Failed to generate token", "error", err)
			WriteError(w, http.StatusInternalServerError, MessageServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(services.TokenExpirationTime / time.Second),
			HttpOnly: true,
			Secure:   cookieSecure,
			SameSite: http.SameSiteStrictMode,
		})
		w.Header().Set("Authorization", "Bearer "+token)
		WriteJSON(w, http.StatusOK, models.LoginResponse{Message: "Login successful", Token: token})
	})
}

// LogoutHandler - сброс cookie сессии
func LogoutHandler(cookieSecure bool) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cookieSecure,
			SameSite: http.SameSiteStrictMode,
		})
		WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Logout successful"})
	})
}

// ValidateUserHandler - проверка, что пользователь из токена существует
func ValidateUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := currentUser(w, r, i, "User no longer exists")
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, models.ValidateResponse{Valid: true, Message: "User is valid"})
	})
}

// GetUserDataHandler - данные текущего пользователя
func GetUserDataHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r, i, MessageUserNotFound)
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, models.NewUserResponse(user))
	})
}

// UpdateUserAddressHandler - смена адреса выплат
func UpdateUserAddressHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := currentSession(w, r)
		if !ok {
			return
		}
		var request models.AddressRequest
		if !decodeRequest(w, r, &request, validators.Messages{"address": "Address is required"}) {
			return
		}

		user, err := i.UpdateAddress(r.Context(), session, request.Address)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAddressRequired):
				WriteError(w, http.StatusBadRequest, "Address is required")
			case errors.Is(err, services.ErrUserNotFound):
				WriteError(w, http.StatusNotFound, MessageUserNotFound)
			default:
				logger.Error("Failed to update address", "error", err)
				WriteError(w, http.StatusInternalServerError, MessageServerError)
			}
			return
		}

		WriteJSON(w, http.StatusOK, models.AddressResponse{
			Success: true,
			Message: "Address updated successfully",
			Address: user.Address,
		})
	})
}

// currentSession - сессия из проверенного токена
func currentSession(w http.ResponseWriter, r *http.Request) (models.Session, bool) {
	session, err := helpers.GetSession(r.Context())
	if err != nil {
		logger.Warn("Failed to get session", "error", err)
		WriteError(w, http.StatusUnauthorized, MessageInvalidToken)
		return models.Session{}, false
	}
	return session, true
}

// currentUser - пользователь текущей сессии, notFound - сообщение для удалённого пользователя
func currentUser(w http.ResponseWriter, r *http.Request, i services.IdentityService, notFound string) (*models.UserData, bool) {
	session, ok := currentSession(w, r)
	if !ok {
		return nil, false
	}
	user, err := i.GetUser(r.Context(), session)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, notFound)
		} else {
			logger.Error("Failed to get user", "error", err)
			WriteError(w, http.StatusInternalServerError, MessageServerError)
		}
		return nil, false
	}
	return user, true
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bagdasarian/role-membership-service/internal/domain"
	"go.uber.org/zap"
)

// handleError переводит любую ошибку в единый JSON-формат. Это последний
// рубеж: сам перевод упасть не должен - при сбое каталога сообщений
// отдается фиксированный ответ об ошибке конфигурации.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		domainErr = domain.NewUnexpectedError(err, "")
	}

	status := statusOf(domainErr.Kind)
	payload, translationErr := h.buildError(r, domainErr, status)
	if translationErr != nil {
		h.logger.Error("message catalog failure",
			zap.String("path", r.URL.Path),
			zap.Error(translationErr))
		status = http.StatusInternalServerError
		payload = configurationErrorPayload(r, translationErr)
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("code", domainErr.Code),
			zap.Error(domainErr))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) buildError(r *http.Request, domainErr *domain.DomainError, status int) (APIError, error) {
	locale := r.Header.Get("Accept-Language")
	if locale == "" {
		locale = h.defaultLocale
	}

	description, err := h.resolve(locale, domainErr.DescriptionKey, domainErr.DescriptionArgs)
	if err != nil {
		return APIError{}, err
	}

	errorMessage := ""
	if domainErr.MessageKey != "" {
		errorMessage, err = h.resolve(locale, domainErr.MessageKey, domainErr.MessageArgs)
		if err != nil {
			return APIError{}, err
		}
	} else if domainErr.Err != nil {
		errorMessage = domainErr.Err.Error()
	}

	help, err := h.resolve(locale, domainErr.HelpKey, domainErr.HelpArgs)
	if err != nil {
		return APIError{}, err
	}

	return APIError{
		Description:  description,
		ErrorMessage: errorMessage,
		Help:         help,
		HTTPStatus:   status,
		ReasonPhrase: http.StatusText(status),
		Path:         r.URL.Path,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *Handler) resolve(locale, key string, args []any) (string, error) {
	if key == "" {
		return "", nil
	}
	return h.translator.Message(locale, key, args...)
}

func configurationErrorPayload(r *http.Request, err error) APIError {
	return APIError{
		Description:  "Configuration error",
		ErrorMessage: err.Error(),
		Help:         "Please check message settings",
		HTTPStatus:   http.StatusInternalServerError,
		ReasonPhrase: http.StatusText(http.StatusInternalServerError),
		Path:         r.URL.Path,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}

func statusOf(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation, domain.KindReferenceNotFound:
		return http.StatusBadRequest
	case domain.KindRoleInUse:
		return http.StatusConflict
	case domain.KindDefaultNotFound, domain.KindDeleteFailed, domain.KindUnexpected, domain.KindConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// badRequestError - битый JSON тела запроса и прочие ошибки разбора входа.
func badRequestError(err error) *domain.DomainError {
	return &domain.DomainError{
		Kind:           domain.KindValidation,
		Code:           "BAD_REQUEST",
		DescriptionKey: domain.MsgValidationFailureDescription,
		Err:            err,
	}
}

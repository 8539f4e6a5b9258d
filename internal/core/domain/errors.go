package domain

import "net/http"

// Error is a member of the closed error taxonomy surfaced to API clients.
// Status is the HTTP status the error maps to; Code is the stable
// machine-readable identifier clients switch on. Upstream wording never
// leaks through; every failure path terminates in one of the values below.
type Error struct {
	Status int
	Code   string
}

func (e *Error) Error() string { return e.Code }

// 401
var (
	ErrUnauthorized = &Error{http.StatusUnauthorized, "ERR_UNAUTHORIZED"}
	ErrInvalidToken = &Error{http.StatusUnauthorized, "ERR_INVALID_TOKEN"}
)

// 403
var (
	ErrNotYourStore = &Error{http.StatusForbidden, "ERR_NOT_YOUR_STORE"}
	ErrNotAdmin     = &Error{http.StatusForbidden, "ERR_NOT_ADMIN"}
)

// 404
var (
	ErrUserNotFound     = &Error{http.StatusNotFound, "ERR_USER_NOT_FOUND"}
	ErrStoreNotFound    = &Error{http.StatusNotFound, "ERR_STORE_NOT_FOUND"}
	ErrAnalysisNotFound = &Error{http.StatusNotFound, "ERR_ANALYSIS_NOT_FOUND"}
	ErrNoticeNotFound   = &Error{http.StatusNotFound, "ERR_NOTICE_NOT_FOUND"}
	ErrResourceNotFound = &Error{http.StatusNotFound, "ERR_RESOURCE_NOT_FOUND"}
)

// 400
var (
	ErrInvalidRequestField     = &Error{http.StatusBadRequest, "ERR_INVALID_REQUEST_FIELD"}
	ErrInvalidQueryParameter   = &Error{http.StatusBadRequest, "ERR_INVALID_QUERY_PARAMETER"}
	ErrInvalidIDFormat         = &Error{http.StatusBadRequest, "ERR_INVALID_ID_FORMAT"}
	ErrInvalidStoreName        = &Error{http.StatusBadRequest, "ERR_INVALID_STORE_NAME"}
	ErrInvalidBusinessNumber   = &Error{http.StatusBadRequest, "ERR_INVALID_BUSINESS_NUMBER"}
	ErrBusinessVerifyFailed    = &Error{http.StatusBadRequest, "ERR_BUSINESS_NUMBER_VERIFICATION_FAILED"}
	ErrInvalidMailNumber       = &Error{http.StatusBadRequest, "ERR_INVALID_MAIL_NUMBER"}
	ErrUserDuplicate           = &Error{http.StatusBadRequest, "ERR_USER_DUPLICATE"}
	ErrNameDuplicate           = &Error{http.StatusBadRequest, "ERR_NAME_DUPLICATE"}
	ErrEmailDuplicate          = &Error{http.StatusBadRequest, "ERR_EMAIL_DUPLICATE"}
	ErrLoginFailed             = &Error{http.StatusBadRequest, "ERR_LOGIN_FAILED"}
	ErrInvalidAnalysisID       = &Error{http.StatusBadRequest, "ERR_INVALID_ANALYSIS_ID"}
)

// 500
var (
	ErrInternalServer          = &Error{http.StatusInternalServerError, "ERR_INTERNAL_SERVER"}
	ErrEncryption              = &Error{http.StatusInternalServerError, "ERR_ENCRYPTION"}
	ErrDecryption              = &Error{http.StatusInternalServerError, "ERR_DECRYPTION"}
	ErrStoreRegistration       = &Error{http.StatusInternalServerError, "ERR_STORE_REGISTRATION"}
	ErrStoreListProcessing     = &Error{http.StatusInternalServerError, "ERR_STORE_LIST_PROCESSING"}
	ErrStoreDetailProcessing   = &Error{http.StatusInternalServerError, "ERR_STORE_DETAIL_PROCESSING"}
	ErrAnalysisProcessing      = &Error{http.StatusInternalServerError, "ERR_ANALYSIS_PROCESSING"}
	ErrChatProcessing          = &Error{http.StatusInternalServerError, "ERR_CHAT_PROCESSING"}
	ErrLocationProcessing      = &Error{http.StatusInternalServerError, "ERR_LOCATION_PROCESSING"}
	ErrMailSendFail            = &Error{http.StatusInternalServerError, "ERR_MAIL_SEND_FAIL"}
)

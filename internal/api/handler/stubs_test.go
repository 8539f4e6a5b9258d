package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/ports"
)

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setPrincipal(c echo.Context, accountID int64, role string) {
	c.Set("auth.principal", domain.Principal{AccountID: accountID, Role: role})
}

// --- auth service stub ---

type stubAuthService struct {
	signUpErr    error
	loginAttrs   *domain.SessionAttributes
	loginErr     error
	account      *domain.Account
	lastEmail    string
	lastPassword string
}

func (s *stubAuthService) SignUp(_ context.Context, email, _, password string) error {
	s.lastEmail, s.lastPassword = email, password
	return s.signUpErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*domain.SessionAttributes, error) {
	s.lastEmail, s.lastPassword = email, password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginAttrs, nil
}

func (s *stubAuthService) AccountInfo(_ context.Context, _ int64) (*domain.Account, error) {
	if s.account == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.account, nil
}

func (s *stubAuthService) Delete(context.Context, int64) error                  { return nil }
func (s *stubAuthService) UpdateName(context.Context, int64, string) error      { return nil }
func (s *stubAuthService) UpdatePassword(context.Context, int64, string) error  { return nil }
func (s *stubAuthService) CheckNameDuplicate(context.Context, string) error     { return nil }
func (s *stubAuthService) CheckEmailDuplicate(context.Context, string) error    { return nil }

// --- identity service stub ---

type stubIdentityService struct {
	attrs *domain.SessionAttributes
	err   error
	code  string
}

func (s *stubIdentityService) HandleCallback(_ context.Context, code string) (*domain.SessionAttributes, error) {
	s.code = code
	if s.err != nil {
		return nil, s.err
	}
	return s.attrs, nil
}

// --- store link stub ---

type stubStoreLinks struct {
	owned map[int64]int64 // store id -> account id
}

func (s *stubStoreLinks) StoreIDsByAccount(_ context.Context, accountID int64) ([]int64, error) {
	var ids []int64
	for store, acct := range s.owned {
		if acct == accountID {
			ids = append(ids, store)
		}
	}
	return ids, nil
}

func (s *stubStoreLinks) IsOwner(_ context.Context, storeID, accountID int64) (bool, error) {
	return s.owned[storeID] == accountID, nil
}

func (s *stubStoreLinks) Link(_ context.Context, storeID, accountID int64) error {
	s.owned[storeID] = accountID
	return nil
}

func (s *stubStoreLinks) Unlink(_ context.Context, storeID int64) error {
	delete(s.owned, storeID)
	return nil
}

// --- store proxy stub ---

type stubStoreProxy struct {
	body        map[string]any
	err         error
	lastStoreID int64
	lastInput   ports.StoreRegisterInput
	calls       []string
}

func (s *stubStoreProxy) RegisterWithBusiness(_ context.Context, _ int64, in ports.StoreRegisterInput) (map[string]any, error) {
	s.calls = append(s.calls, "register")
	s.lastInput = in
	return s.body, s.err
}

func (s *stubStoreProxy) List(_ context.Context, _ int64) (map[string]any, error) {
	s.calls = append(s.calls, "list")
	return s.body, s.err
}

func (s *stubStoreProxy) Detail(_ context.Context, storeID int64) (map[string]any, error) {
	s.calls = append(s.calls, "detail")
	s.lastStoreID = storeID
	return s.body, s.err
}

func (s *stubStoreProxy) SetMain(_ context.Context, storeID int64) (map[string]any, error) {
	s.calls = append(s.calls, "set_main")
	s.lastStoreID = storeID
	return s.body, s.err
}

func (s *stubStoreProxy) Delete(_ context.Context, storeID int64) (map[string]any, error) {
	s.calls = append(s.calls, "delete")
	s.lastStoreID = storeID
	return s.body, s.err
}

// --- notice service stub ---

type stubNoticeService struct {
	notice *domain.Notice
	list   []*domain.Notice
	pages  int64
	err    error
}

func (s *stubNoticeService) Get(_ context.Context, id int64) (*domain.Notice, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.notice == nil || s.notice.ID != id {
		return nil, domain.ErrNoticeNotFound
	}
	return s.notice, nil
}

func (s *stubNoticeService) Page(_ context.Context, _ int) ([]*domain.Notice, error) {
	return s.list, s.err
}

func (s *stubNoticeService) PageCount(context.Context) (int64, error) { return s.pages, s.err }

func (s *stubNoticeService) Create(_ context.Context, authorID int64, title, content string) (*domain.Notice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Notice{ID: 1, AuthorID: authorID, Title: title, Content: content}, nil
}

func (s *stubNoticeService) Update(context.Context, int64, string, string) error { return s.err }
func (s *stubNoticeService) Delete(context.Context, int64) error                 { return s.err }

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saransh1220/artistly/internal/gateway/middleware"
	"github.com/saransh1220/artistly/internal/modules/artist/domain"
	artist_http "github.com/saransh1220/artistly/internal/modules/artist/interfaces/http"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) Catalog() domain.Catalog {
	return m.Called().Get(0).(domain.Catalog)
}

func (m *MockArtistService) ValidateStep(step int, sub domain.Submission) error {
	return m.Called(step, sub).Error(0)
}

func (m *MockArtistService) Onboard(ctx context.Context, sub domain.Submission) (domain.Artist, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *MockArtistService) Browse(filter domain.Filter) []domain.Artist {
	return m.Called(filter).Get(0).([]domain.Artist)
}

func (m *MockArtistService) Find(viewer *identity.Session, id string) (domain.Artist, error) {
	args := m.Called(viewer, id)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *MockArtistService) List(viewer identity.Session) ([]domain.Artist, error) {
	args := m.Called(viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *MockArtistService) Approve(ctx context.Context, viewer identity.Session, id string) (domain.Artist, error) {
	args := m.Called(ctx, viewer, id)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *MockArtistService) Reject(ctx context.Context, viewer identity.Session, id string) (domain.Artist, error) {
	args := m.Called(ctx, viewer, id)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *MockArtistService) Delete(ctx context.Context, viewer identity.Session, id string) error {
	return m.Called(ctx, viewer, id).Error(0)
}

func (m *MockArtistService) SetAvailability(ctx context.Context, viewer identity.Session, id string, available bool) (domain.Artist, error) {
	args := m.Called(ctx, viewer, id, available)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *MockArtistService) UploadProfileImage(ctx context.Context, viewer identity.Session, id string, src io.Reader) (domain.Artist, error) {
	args := m.Called(ctx, viewer, id, src)
	return args.Get(0).(domain.Artist), args.Error(1)
}

var admin = identity.Session{ID: "1", Name: "Admin User", Email: "admin@artistly.com", Role: identity.RoleAdmin}

func withSession(r *http.Request, s identity.Session) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), s))
}

func TestBrowse_ParsesFilter(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	filter := domain.Filter{Category: "Singers", Location: "Mumbai", PriceRange: domain.BracketUnder50k, Availability: true}
	svc.On("Browse", filter).Return([]domain.Artist{{ID: "1", Name: "Priya Sharma"}})

	w := httptest.NewRecorder()
	h.Browse(w, httptest.NewRequest(http.MethodGet, "/artists?category=Singers&location=Mumbai&priceRange=under-50k&availability=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data  []domain.Artist `json:"data"`
		Total int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "Priya Sharma", body.Data[0].Name)
	svc.AssertExpectations(t)

	w = httptest.NewRecorder()
	h.Browse(w, httptest.NewRequest(http.MethodGet, "/artists?availability=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	svc.On("Find", (*identity.Session)(nil), "1").Return(domain.Artist{ID: "1"}, nil)
	svc.On("Find", mock.MatchedBy(func(s *identity.Session) bool { return s != nil && s.ID == admin.ID }), "9").
		Return(domain.Artist{ID: "9", Status: domain.StatusPending}, nil)
	svc.On("Find", (*identity.Session)(nil), "9").Return(domain.Artist{}, domain.ErrArtistNotFound)

	req := httptest.NewRequest(http.MethodGet, "/artists/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/artists/9", nil)
	req.SetPathValue("id", "9")
	w = httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = withSession(httptest.NewRequest(http.MethodGet, "/artists/9", nil), admin)
	req.SetPathValue("id", "9")
	w = httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestOnboard(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	sub := domain.Submission{Name: "Asha", Email: "asha@email.com"}
	svc.On("Onboard", mock.Anything, sub).
		Return(domain.Artist{}, &domain.ValidationError{Step: 1, Fields: []string{"phone", "location"}}).Once()

	raw, _ := json.Marshal(sub)
	w := httptest.NewRecorder()
	h.Onboard(w, httptest.NewRequest(http.MethodPost, "/onboarding", bytes.NewReader(raw)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Please fill all required fields", body["error"])
	assert.Equal(t, float64(1), body["step"])
	assert.Equal(t, []any{"phone", "location"}, body["fields"])

	svc.On("Onboard", mock.Anything, sub).Return(domain.Artist{ID: "7", Status: domain.StatusPending}, nil).Once()
	w = httptest.NewRecorder()
	h.Onboard(w, httptest.NewRequest(http.MethodPost, "/onboarding", bytes.NewReader(raw)))
	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestValidateStep(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	svc.On("ValidateStep", 2, mock.Anything).Return(nil)
	svc.On("ValidateStep", 4, mock.Anything).Return(domain.ErrInvalidStep)

	w := httptest.NewRecorder()
	h.ValidateStep(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"step":2,"bio":"x"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)

	w = httptest.NewRecorder()
	h.ValidateStep(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"step":4}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReview(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	svc.On("Approve", mock.Anything, admin, "7").Return(domain.Artist{ID: "7", Status: domain.StatusApproved}, nil)
	svc.On("Reject", mock.Anything, admin, "7").Return(domain.Artist{}, domain.ErrInvalidTransition)

	req := withSession(httptest.NewRequest(http.MethodPatch, "/artists/7/approve", nil), admin)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	h.Approve(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	req = withSession(httptest.NewRequest(http.MethodPatch, "/artists/7/reject", nil), admin)
	req.SetPathValue("id", "7")
	w = httptest.NewRecorder()
	h.Reject(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	h.Approve(w, httptest.NewRequest(http.MethodPatch, "/artists/7/approve", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDelete(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	user := identity.Session{ID: "4", Role: identity.RoleUser}
	svc.On("Delete", mock.Anything, admin, "3").Return(nil)
	svc.On("Delete", mock.Anything, user, "3").Return(identity.ErrForbidden)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/artists/3", nil), admin)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = withSession(httptest.NewRequest(http.MethodDelete, "/artists/3", nil), user)
	req.SetPathValue("id", "3")
	w = httptest.NewRecorder()
	h.Delete(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListAll(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	svc.On("List", admin).Return([]domain.Artist{{ID: "1"}, {ID: "7"}}, nil)

	w := httptest.NewRecorder()
	h.ListAll(w, withSession(httptest.NewRequest(http.MethodGet, "/admin/artists", nil), admin))
	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.Artist
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestSetAvailability(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	svc.On("SetAvailability", mock.Anything, admin, "2", false).Return(domain.Artist{ID: "2"}, nil)

	req := withSession(httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{"availability":false}`)), admin)
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()
	h.SetAvailability(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = withSession(httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{}`)), admin)
	req.SetPathValue("id", "2")
	w = httptest.NewRecorder()
	h.SetAvailability(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestUploadImage(t *testing.T) {
	svc := new(MockArtistService)
	h := artist_http.NewArtistHandler(svc, zap.NewNop())

	svc.On("UploadProfileImage", mock.Anything, admin, "1", mock.Anything).
		Return(domain.Artist{ID: "1", ProfileImage: "http://localhost:8080/uploads/artists/1/a.jpg"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "me.jpg")
	require.NoError(t, err)
	_, _ = part.Write([]byte("fake-jpeg"))
	require.NoError(t, mw.Close())

	req := withSession(httptest.NewRequest(http.MethodPost, "/artists/1/image", &buf), admin)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.UploadImage(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "profileImage")

	req = withSession(httptest.NewRequest(http.MethodPost, "/artists/1/image", bytes.NewBufferString("x")), admin)
	req.Header.Set("Content-Type", "text/plain")
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	h.UploadImage(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portfolio-api/app/domain"
	"portfolio-api/app/mocks"
)

func newDocContext(t *testing.T, method, path, body string, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	return c, rec
}

func newStoredDoc(doc domain.Document) *domain.StoredDocument {
	return &domain.StoredDocument{
		ID:        uuid.New(),
		Document:  doc,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestBlogHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mocks.NewMockBlogUsecase(ctrl)
	mockUsecase.EXPECT().Create(gomock.Any(), domain.Document{"title": "First"}).
		Return(newStoredDoc(domain.Document{"title": "First"}), nil)

	c, rec := newDocContext(t, http.MethodPost, "/api/v1/blogs", `{"title":"First"}`, "")
	h := NewBlogHandler(mockUsecase, slog.Default())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog created successfully!")
}

func TestBlogHandler_List(t *testing.T) {
	t.Run("returns flattened documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stored := newStoredDoc(domain.Document{"title": "First"})
		mockUsecase := mocks.NewMockBlogUsecase(ctrl)
		mockUsecase.EXPECT().List(gomock.Any()).Return([]*domain.StoredDocument{stored}, nil)

		c, rec := newDocContext(t, http.MethodGet, "/api/v1/blogs", "", "")
		h := NewBlogHandler(mockUsecase, slog.Default())

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var listed []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, "First", listed[0]["title"])
		assert.Equal(t, stored.ID.String(), listed[0]["id"])
	})

	t.Run("empty store yields an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUsecase := mocks.NewMockBlogUsecase(ctrl)
		mockUsecase.EXPECT().List(gomock.Any()).Return(nil, nil)

		c, rec := newDocContext(t, http.MethodGet, "/api/v1/blogs", "", "")
		h := NewBlogHandler(mockUsecase, slog.Default())

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("store failure is an internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUsecase := mocks.NewMockBlogUsecase(ctrl)
		mockUsecase.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		c, rec := newDocContext(t, http.MethodGet, "/api/v1/blogs", "", "")
		h := NewBlogHandler(mockUsecase, slog.Default())

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestBlogHandler_Update(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		paramID    string
		body       string
		setupMocks func(*mocks.MockBlogUsecase)
		wantStatus int
	}{
		{
			name:    "successful patch returns the updated document",
			paramID: id.String(),
			body:    `{"title":"Edited"}`,
			setupMocks: func(uc *mocks.MockBlogUsecase) {
				uc.EXPECT().Update(gomock.Any(), id, domain.Document{"title": "Edited"}).
					Return(newStoredDoc(domain.Document{"title": "Edited"}), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "empty patch reports nothing updated",
			paramID: id.String(),
			body:    `{}`,
			setupMocks: func(uc *mocks.MockBlogUsecase) {
				uc.EXPECT().Update(gomock.Any(), id, domain.Document{}).
					Return(nil, domain.ErrEmptyPatch)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "unknown id reports nothing updated",
			paramID: id.String(),
			body:    `{"title":"Edited"}`,
			setupMocks: func(uc *mocks.MockBlogUsecase) {
				uc.EXPECT().Update(gomock.Any(), id, gomock.Any()).
					Return(nil, domain.ErrDocumentNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unparseable id",
			paramID:    "not-a-uuid",
			body:       `{"title":"Edited"}`,
			setupMocks: func(uc *mocks.MockBlogUsecase) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mocks.NewMockBlogUsecase(ctrl)
			tt.setupMocks(mockUsecase)

			c, rec := newDocContext(t, http.MethodPatch, "/api/v1/blogs/"+tt.paramID, tt.body, tt.paramID)
			h := NewBlogHandler(mockUsecase, slog.Default())

			require.NoError(t, h.Update(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestBlogHandler_Delete(t *testing.T) {
	t.Run("delete succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockUsecase := mocks.NewMockBlogUsecase(ctrl)
		mockUsecase.EXPECT().Delete(gomock.Any(), id).Return(nil)

		c, rec := newDocContext(t, http.MethodDelete, "/api/v1/blogs/"+id.String(), "", id.String())
		h := NewBlogHandler(mockUsecase, slog.Default())

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blog deleted successfully!")
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUsecase := mocks.NewMockBlogUsecase(ctrl)

		c, rec := newDocContext(t, http.MethodDelete, "/api/v1/blogs/nope", "", "nope")
		h := NewBlogHandler(mockUsecase, slog.Default())

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

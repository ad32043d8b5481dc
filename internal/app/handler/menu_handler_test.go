package handler

import (
	"bytes"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/config"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeImageStore records calls instead of talking to a bucket.
type fakeImageStore struct {
	uploaded string
	deleted  []string
}

func (f *fakeImageStore) UploadFile(fileData []byte, originalFilename string) (string, error) {
	return f.uploaded, nil
}

func (f *fakeImageStore) DeleteFile(filename string) error {
	f.deleted = append(f.deleted, filename)
	return nil
}

func handlerDBMock(t *testing.T) (*sql.DB, *repository.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return sqldb, repository.NewWithDB(gormdb), mock
}

func menuItemRow(id, imageURL string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price", "image_url", "is_available"}).
		AddRow(id, "rest-1", "Ramen", 100.0, imageURL, true)
}

func TestDeleteMenuItemRemovesStoredImage(t *testing.T) {
	sqldb, repo, mock := handlerDBMock(t)
	defer sqldb.Close()

	store := &fakeImageStore{}
	h := &APIHandler{Repository: repo, MinIOClient: store, Config: &config.Config{}}
	router := gin.New()
	router.DELETE("/api/menu-items/:id", h.DeleteMenuItem)

	mock.ExpectQuery(`SELECT \* FROM "menu_items" WHERE id = .+`).
		WillReturnRows(menuItemRow("item-1", "menu_old.png"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "menu_items" WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodDelete, "/api/menu-items/item-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{"menu_old.png"}, store.deleted)
}

func TestDeleteMenuItemWithoutImageSkipsCleanup(t *testing.T) {
	sqldb, repo, mock := handlerDBMock(t)
	defer sqldb.Close()

	store := &fakeImageStore{}
	h := &APIHandler{Repository: repo, MinIOClient: store, Config: &config.Config{}}
	router := gin.New()
	router.DELETE("/api/menu-items/:id", h.DeleteMenuItem)

	mock.ExpectQuery(`SELECT \* FROM "menu_items" WHERE id = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_available"}).
			AddRow("item-1", "Ramen", 100.0, true))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "menu_items" WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodDelete, "/api/menu-items/item-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.deleted)
}

func TestUploadMenuItemImageReplacesOldObject(t *testing.T) {
	sqldb, repo, mock := handlerDBMock(t)
	defer sqldb.Close()

	store := &fakeImageStore{uploaded: "menu_new.png"}
	h := &APIHandler{Repository: repo, MinIOClient: store, Config: &config.Config{}}
	router := gin.New()
	router.POST("/api/menu-items/:id/image", h.UploadMenuItemImage)

	mock.ExpectQuery(`SELECT \* FROM "menu_items" WHERE id = .+`).
		WillReturnRows(menuItemRow("item-1", "menu_old.png"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "menu_items" SET .+ WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/menu-items/item-1/image", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{"menu_old.png"}, store.deleted, "the replaced photo must leave the bucket")
}

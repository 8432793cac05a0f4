package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/mock"
	"github.com/MKhiriev/go-signout/internal/store"
	"github.com/MKhiriev/go-signout/models"
)

const selectItemSQL = "SELECT item_id, display_name, created_at FROM catalog_items"

func newCatalogRepo(t *testing.T) (store.CatalogRepository, sqlmock.Sqlmock, *mock.MockErrorClassificator) {
	t.Helper()

	conn, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	classificator := mock.NewMockErrorClassificator(gomock.NewController(t))
	db := store.NewDBWithClassificator(conn, store.DialectPostgres, classificator, logger.Nop())

	return store.NewCatalogRepository(db, logger.Nop()), sqlMock, classificator
}

func TestWithRetry_RetriesOnceOnRetryableError(t *testing.T) {
	repo, sqlMock, classificator := newCatalogRepo(t)
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	sqlMock.ExpectQuery(selectItemSQL).WithArgs("BK-1").WillReturnError(errors.New("connection reset"))
	sqlMock.ExpectQuery(selectItemSQL).WithArgs("BK-1").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "display_name", "created_at"}).AddRow("BK-1", "Field Guide", created))
	classificator.EXPECT().Classify(gomock.Any()).Return(store.Retryable).Times(1)

	found, err := repo.FindItem(context.Background(), "BK-1")

	require.NoError(t, err)
	assert.Equal(t, models.CatalogItem{ItemID: "BK-1", DisplayName: "Field Guide", CreatedAt: created}, found)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestWithRetry_GivesUpAfterSecondFailure(t *testing.T) {
	repo, sqlMock, classificator := newCatalogRepo(t)
	transient := errors.New("connection reset")

	sqlMock.ExpectQuery(selectItemSQL).WillReturnError(transient)
	sqlMock.ExpectQuery(selectItemSQL).WillReturnError(transient)
	classificator.EXPECT().Classify(gomock.Any()).Return(store.Retryable).Times(1)

	_, err := repo.FindItem(context.Background(), "BK-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestWithRetry_NonRetryableIsNotRepeated(t *testing.T) {
	repo, sqlMock, classificator := newCatalogRepo(t)
	duplicate := errors.New("duplicate key")

	sqlMock.ExpectExec("INSERT INTO catalog_items").WillReturnError(duplicate)
	classificator.EXPECT().Classify(duplicate).Return(store.NonRetryable)
	classificator.EXPECT().IsUniqueViolation(duplicate).Return(true)

	_, err := repo.CreateItem(context.Background(), models.CatalogItem{ItemID: "BK-1", DisplayName: "Field Guide"})

	assert.ErrorIs(t, err, store.ErrItemExists)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRider_DefaultsToPending(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "riders"`).
		WithArgs("Rahim", "rahim@x.com", "", "", "", "pending", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	r := gin.New()
	r.POST("/riders", CreateRider(db))

	w := performRequest(r, "POST", "/riders", map[string]any{
		"name":  "Rahim",
		"email": "rahim@x.com",
	})

	require.Equal(t, 201, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 5, body["insertedId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPendingRiders(t *testing.T) {
	db, mock := newTestDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "status"}).
		AddRow(1, "Rahim", "pending").
		AddRow(2, "Karim", "pending")

	mock.ExpectQuery(`SELECT \* FROM "riders" WHERE status = \$1`).
		WithArgs("pending").
		WillReturnRows(rows)

	r := gin.New()
	r.GET("/riders/pending", ListPendingRiders(db))

	w := performRequest(r, "GET", "/riders/pending", nil)

	require.Equal(t, 200, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveRiders_Empty(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "riders" WHERE status = \$1`).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := gin.New()
	r.GET("/riders/active", ListActiveRiders(db))

	w := performRequest(r, "GET", "/riders/active", nil)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUpdateRiderStatus(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "riders" SET "status"=\$1 WHERE id = \$2`).
		WithArgs("active", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := gin.New()
	r.PATCH("/riders/:id/status", UpdateRiderStatus(db))

	w := performRequest(r, "PATCH", "/riders/5/status", map[string]any{
		"status": "active",
	})

	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["modifiedCount"])
}

func TestUpdateRiderStatus_NotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "riders" SET "status"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := gin.New()
	r.PATCH("/riders/:id/status", UpdateRiderStatus(db))

	w := performRequest(r, "PATCH", "/riders/404/status", map[string]any{
		"status": "active",
	})

	require.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "rider not found")
}

func TestUpdateRiderStatus_MissingStatus(t *testing.T) {
	db, mock := newTestDB(t)

	r := gin.New()
	r.PATCH("/riders/:id/status", UpdateRiderStatus(db))

	w := performRequest(r, "PATCH", "/riders/5/status", map[string]any{})

	require.Equal(t, 400, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

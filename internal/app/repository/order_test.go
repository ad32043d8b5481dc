package repository

import (
	"database/sql"
	"math"
	"testing"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"

	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dbMock opens gorm over a mocked *sql.DB, Tonyzhuwei-style.
func dbMock(t *testing.T) (*sql.DB, *Repository, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	return sqldb, NewWithDB(gormdb), mock
}

func orderRows(id string, status ds.OrderStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "restaurant_id", "table_id", "table_number", "status", "total_amount"}).
		AddRow(id, "rest-1", "table-1", "T1", string(status), 265.0)
}

func emptyItemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "menu_item_name", "quantity", "price"})
}

func TestCreateOrderIdempotentReplay(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	key := "replay-key-1"
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE idempotency_key = .+`).
		WillReturnRows(orderRows("existing-order", ds.StatusReceived))

	orderID, err := repo.CreateOrder(CreateOrderInput{
		TableCode:      "T1",
		IdempotencyKey: &key,
		Items:          []OrderLineInput{{MenuItemID: "item-a", Quantity: 2}},
		PaymentMethod:  ds.PaymentCounter,
	})

	// No insert, no table upsert: the replay short-circuits everything.
	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Nil(t, err)
	assert.Equal(t, "existing-order", orderID)
}

func TestUpdateOrderStatusConditionalWrite(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(orderRows("order-1", ds.StatusReceived))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE .+`).
		WillReturnRows(emptyItemRows())

	// The write is keyed on the status we just read.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE id = .+ AND status = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateOrderStatus("order-1", ds.StatusPreparing)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Nil(t, err)
}

func TestUpdateOrderStatusLostRace(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(orderRows("order-1", ds.StatusReceived))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE .+`).
		WillReturnRows(emptyItemRows())

	// Another caller moved the order between our read and this write.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE id = .+ AND status = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateOrderStatus("order-1", ds.StatusPreparing)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, ErrStatusRaced)
}

func TestUpdateOrderStatusInvalidTransition(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(orderRows("order-1", ds.StatusPreparing))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE .+`).
		WillReturnRows(emptyItemRows())

	// PREPARING -> COMPLETED is not in the forward table; nothing is written.
	err := repo.UpdateOrderStatus("order-1", ds.StatusCompleted)

	assert.Nil(t, mock.ExpectationsWereMet())
	var transitionErr *TransitionError
	assert.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, ds.StatusPreparing, transitionErr.Current)
	assert.Equal(t, ds.StatusCompleted, transitionErr.Next)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.UpdateOrderStatus("missing", ds.StatusPreparing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelOrderRejectsCompleted(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(orderRows("order-1", ds.StatusCompleted))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE .+`).
		WillReturnRows(emptyItemRows())

	_, err := repo.CancelOrder("order-1")

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, ErrCompletedCancel)
}

// Cancel ignores the forward table: READY -> CANCELLED is fine here even
// though the generic transition path would refuse it.
func TestCancelOrderFromReady(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(orderRows("order-1", ds.StatusReady))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE .+`).
		WillReturnRows(emptyItemRows())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE id = .+ AND status <> .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := repo.CancelOrder("order-1")

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Nil(t, err)
	assert.Equal(t, ds.StatusCancelled, order.Status)
}

// Complete also ignores the forward table and succeeds straight from
// PREPARING; only an already-completed order is refused.
func TestCompleteOrderFromPreparing(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(orderRows("order-1", ds.StatusPreparing))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE .+`).
		WillReturnRows(emptyItemRows())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE id = .+ AND status <> .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := repo.CompleteOrder("order-1")

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Nil(t, err)
	assert.Equal(t, ds.StatusCompleted, order.Status)
}

func TestCompleteOrderAlreadyCompleted(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = .+`).
		WillReturnRows(orderRows("order-1", ds.StatusCompleted))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE .+`).
		WillReturnRows(emptyItemRows())

	_, err := repo.CompleteOrder("order-1")

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestBuildOrderLinesSnapshotsAndSubtotal(t *testing.T) {
	menu := map[string]ds.MenuItem{
		"item-a": {ID: "item-a", Name: "Ramen", Price: 100},
		"item-b": {ID: "item-b", Name: "Gyoza", Price: 50},
	}

	lines, subtotal, err := buildOrderLines("order-1", []OrderLineInput{
		{MenuItemID: "item-a", Quantity: 2},
		{MenuItemID: "item-b", Quantity: 1},
	}, menu)

	assert.Nil(t, err)
	assert.Equal(t, 250.0, subtotal)
	assert.Len(t, lines, 2)
	assert.Equal(t, "Ramen", lines[0].MenuItemName)
	assert.Equal(t, 100.0, lines[0].Price)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "order-1", lines[1].OrderID)

	// tax 10, tip 5 on top of the 250 subtotal
	assert.Equal(t, 265.0, subtotal+10+5)
}

func TestBuildOrderLinesRejectsBadQuantities(t *testing.T) {
	menu := map[string]ds.MenuItem{
		"item-a": {ID: "item-a", Name: "Ramen", Price: 100},
	}

	for _, q := range []float64{0, -1, 1.5, math.NaN(), math.Inf(1)} {
		_, _, err := buildOrderLines("order-1", []OrderLineInput{
			{MenuItemID: "item-a", Quantity: q},
		}, menu)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %v must be rejected", q)
	}
}

// expectOrderPreamble covers the restaurant lookup and table upsert that
// every non-replayed creation performs before menu validation.
func expectOrderPreamble(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).
			AddRow("rest-1", "Ichiran", true))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "tables" .* ON CONFLICT .* DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "tables" WHERE code = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "label", "seats", "restaurant_id"}).
			AddRow("table-1", "T1", "T1", 4, "rest-1"))
}

func TestCreateOrderRejectsUnknownMenuItem(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	expectOrderPreamble(mock)
	// One of the two requested items resolves; the other belongs to no
	// restaurant (or another one). Nothing past validation may run.
	mock.ExpectQuery(`SELECT \* FROM "menu_items" WHERE id IN .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price"}).
			AddRow("item-a", "rest-1", "Ramen", 100.0))

	orderID, err := repo.CreateOrder(CreateOrderInput{
		TableCode: "T1",
		Items: []OrderLineInput{
			{MenuItemID: "item-a", Quantity: 1},
			{MenuItemID: "item-foreign", Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidMenuItems)
	assert.Empty(t, orderID)
	assert.Nil(t, mock.ExpectationsWereMet(), "no order insert may be attempted")
}

func TestCreateOrderRejectsFractionalQuantity(t *testing.T) {
	sqldb, repo, mock := dbMock(t)
	defer sqldb.Close()

	expectOrderPreamble(mock)
	mock.ExpectQuery(`SELECT \* FROM "menu_items" WHERE id IN .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price"}).
			AddRow("item-a", "rest-1", "Ramen", 100.0))

	orderID, err := repo.CreateOrder(CreateOrderInput{
		TableCode: "T1",
		Items: []OrderLineInput{
			{MenuItemID: "item-a", Quantity: 1.5},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, orderID)
	assert.Nil(t, mock.ExpectationsWereMet(), "no order insert may be attempted")
}

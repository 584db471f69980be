package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/order/model"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"
	"hotelpos/shared/timezone"
)

type Order interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, model model.Order) error

	GetItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	InsertItems(ctx context.Context, items []model.OrderItem) error
	SaveOrder(ctx context.Context, order model.Order, items []model.OrderItem, isNew bool) error
	CloseOrder(ctx context.Context, orderID string, tableID *string) error
	CloseOpenRoomOrdersTx(ctx context.Context, tx *sqlx.Tx, roomID string) error
	MarkItemsPrinted(ctx context.Context, orderID string) error

	SalesHistory(ctx context.Context, from, to time.Time) ([]model.SalesRow, error)
	DailyReport(ctx context.Context, from, to time.Time) ([]model.ReportRow, error)
	ServiceLines(ctx context.Context, roomID string, since time.Time) ([]model.ServiceLine, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	items gRepo.Repository[model.OrderItem]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.OrderEntityName, model.OrderTableName, model.OrderFieldID, db, otel),
		items:      gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.ItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func itemsByOrderFilter(orderID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ItemFieldOrderID,
				Value:    orderID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	}
}

func (repo *repositoryImpl) GetItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	params := gDto.QueryParams{SortBy: model.ItemTableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return repo.items.GetAll(ctx, params, itemsByOrderFilter(orderID)) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertItems(ctx context.Context, items []model.OrderItem) error {
	return repo.items.InsertBulk(ctx, items) //nolint:wrapcheck
}

// SaveOrder persists the full cart state of an order in one transaction: the
// order row is inserted or updated, every existing line is replaced, and the
// table is flagged occupied for dine-in orders.
func (repo *repositoryImpl) SaveOrder(ctx context.Context, order model.Order, items []model.OrderItem, isNew bool) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.OrderEntityName+".SaveOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.Transact(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if isNew {
			if err := repo.InsertTx(ctx, tx, order); err != nil {
				return err //nolint:wrapcheck
			}
		} else {
			updated := map[string]any{
				model.OrderFieldSubtotal:        order.Subtotal,
				model.OrderFieldTaxAmount:       order.TaxAmount,
				model.OrderFieldDiscountPercent: order.DiscountPercent,
				model.OrderFieldDiscountAmount:  order.DiscountAmount,
				model.OrderFieldTotalAmount:     order.TotalAmount,
				constant.FieldModifiedAt:        timezone.Now(),
				constant.FieldModifiedBy:        order.ModifiedBy,
			}

			orderFilter := gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    model.OrderFieldID,
						Value:    order.ID,
						Operator: gDto.FilterOperatorEq,
						Table:    model.OrderTableName,
					},
				},
			}

			if err := repo.UpdateTx(ctx, tx, updated, orderFilter); err != nil {
				return err //nolint:wrapcheck
			}

			if err := repo.items.DeleteTx(ctx, tx, itemsByOrderFilter(order.ID)); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if len(items) > 0 {
			if err := repo.items.InsertBulkTx(ctx, tx, items); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if order.TableID != nil {
			if _, err := tx.ExecContext(ctx,
				"UPDATE dining_tables SET status = $1, modified_at = $2 WHERE id = $3",
				constant.SlotStatusOccupied, timezone.Now(), *order.TableID); err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to occupy table: %w", err)
			}
		}

		return nil
	})
}

// CloseOrder marks the order closed and, for dine-in orders, frees the table
// in the same transaction.
func (repo *repositoryImpl) CloseOrder(ctx context.Context, orderID string, tableID *string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.OrderEntityName+".CloseOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.Transact(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if _, err := tx.ExecContext(ctx,
			"UPDATE orders SET status = $1, modified_at = $2 WHERE id = $3",
			constant.OrderStatusClosed, timezone.Now(), orderID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to close order: %w", err)
		}

		if tableID != nil {
			if _, err := tx.ExecContext(ctx,
				"UPDATE dining_tables SET status = $1, modified_at = $2 WHERE id = $3",
				constant.SlotStatusAvailable, timezone.Now(), *tableID); err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to free table: %w", err)
			}
		}

		return nil
	})
}

// CloseOpenRoomOrdersTx closes the room's OPEN orders inside the caller's
// transaction, so a check-out either settles everything or nothing.
func (repo *repositoryImpl) CloseOpenRoomOrdersTx(ctx context.Context, tx *sqlx.Tx, roomID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.OrderEntityName+".CloseOpenRoomOrdersTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = tx.ExecContext(ctx,
		"UPDATE orders SET status = $1, modified_at = $2 WHERE room_id = $3 AND status = $4",
		constant.OrderStatusClosed, timezone.Now(), roomID, constant.OrderStatusOpen)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to close room orders: %w", err)
	}

	return nil
}

// MarkItemsPrinted stamps every line of the order as fully sent to the
// kitchen.
func (repo *repositoryImpl) MarkItemsPrinted(ctx context.Context, orderID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.ItemEntityName+".MarkItemsPrinted")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = repo.db.Write.ExecContext(ctx,
		"UPDATE order_items SET printed_qty = quantity, modified_at = $1 WHERE order_id = $2",
		timezone.Now(), orderID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to mark items printed: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) SalesHistory(ctx context.Context, from, to time.Time) (res []model.SalesRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.OrderEntityName+".SalesHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT orders.id, orders.order_type, orders.customer_name, orders.total_amount, orders.created_at,
		       COALESCE(STRING_AGG(order_items.item_name || ' x' || order_items.quantity, ', ' ORDER BY order_items.created_at), '') AS item_summary
		FROM orders
		LEFT JOIN order_items ON order_items.order_id = orders.id
		WHERE orders.status = $1 AND orders.created_at >= $2 AND orders.created_at < $3
		GROUP BY orders.id
		ORDER BY orders.created_at DESC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, constant.OrderStatusClosed, from, to)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get sales history: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) DailyReport(ctx context.Context, from, to time.Time) (res []model.ReportRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.OrderEntityName+".DailyReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT order_type, COUNT(id) AS order_count, COALESCE(SUM(total_amount), 0) AS total_amount
		FROM orders
		WHERE status = $1 AND created_at >= $2 AND created_at < $3
		GROUP BY order_type
		ORDER BY order_type`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, constant.OrderStatusClosed, from, to)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get daily report: %w", err)
	}

	return res, nil
}

// ServiceLines aggregates the room's order lines since check-in, grouped by
// item name for the folio and invoice.
func (repo *repositoryImpl) ServiceLines(ctx context.Context, roomID string, since time.Time) (res []model.ServiceLine, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.OrderEntityName+".ServiceLines")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT order_items.item_name, SUM(order_items.quantity) AS quantity, SUM(order_items.total_price) AS total_price
		FROM order_items
		JOIN orders ON orders.id = order_items.order_id
		WHERE orders.room_id = $1 AND orders.created_at >= $2
		GROUP BY order_items.item_name
		ORDER BY order_items.item_name`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, roomID, since)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get room service lines: %w", err)
	}

	return res, nil
}

package aggregate

import (
	"context"
	"strings"
	"time"

	"recipe-service/domain"
	"recipe-service/internal/utils/dbctx"
	"recipe-service/internal/utils/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const tracerName = "recipe-service/aggregate"

// TxFunc opens the transaction one write runs in. Returning an error from fn
// must roll everything back.
type TxFunc func(ctx context.Context, fn func(dbc dbctx.Context) error) error

// GormTx runs writes in db.Transaction.
func GormTx(db *gorm.DB) TxFunc {
	return func(ctx context.Context, fn func(dbc dbctx.Context) error) error {
		if db == nil {
			return domain.NewError(domain.CodeStorage, "aggregate.tx", "nil db", nil)
		}
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(dbctx.Context{Ctx: ctx, Tx: tx})
		})
	}
}

// Writer runs one aggregate write inside a single transaction and reports
// the outcome as a classified error.
type Writer struct {
	inTx   TxFunc
	log    *logger.Logger
	tracer trace.Tracer
}

func NewWriter(db *gorm.DB, log *logger.Logger) *Writer {
	return NewWriterWithTx(GormTx(db), log)
}

func NewWriterWithTx(inTx TxFunc, log *logger.Logger) *Writer {
	if log == nil {
		log = logger.Nop()
	}
	return &Writer{
		inTx:   inTx,
		log:    log.With("component", "AggregateWriter"),
		tracer: otel.Tracer(tracerName),
	}
}

func (w *Writer) Execute(ctx context.Context, op string, fn func(dbc dbctx.Context) error) error {
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}
	ctx, span := w.tracer.Start(ctx, op)
	defer span.End()

	start := time.Now()
	err := MapError(op, w.inTx(ctx, fn))
	dur := time.Since(start)

	if err != nil {
		code := domain.CodeOf(err)
		span.SetAttributes(attribute.String("error.code", string(code)))
		span.RecordError(err)
		span.SetStatus(codes.Error, string(code))
		w.log.Warn("aggregate write rolled back", "op", op, "code", code, "error", err, "duration", dur)
		return err
	}
	w.log.Debug("aggregate write committed", "op", op, "duration", dur)
	return nil
}

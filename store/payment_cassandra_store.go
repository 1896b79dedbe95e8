package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/domain"
)

type PaymentCassandraStore struct {
	session *gocql.Session
	logger  *log.Logger
	tracer  trace.Tracer
}

func NewPaymentCassandraStore(host string, logger *log.Logger, tracer trace.Tracer) (*PaymentCassandraStore, error) {
	// Connect to default keyspace
	cluster := gocql.NewCluster(host)
	cluster.Keyspace = "system"
	session, err := cluster.CreateSession()
	if err != nil {
		logger.Println(err)
		return nil, err
	}

	// Create 'payment' keyspace
	err = session.Query(
		fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
					WITH replication = {
						'class' : 'SimpleStrategy',
						'replication_factor' : %d
					}`, "payment", 1)).Exec()
	if err != nil {
		logger.Println(err)
	}
	session.Close()

	// Connect to payment keyspace
	cluster.Keyspace = "payment"
	cluster.Consistency = gocql.One
	session, err = cluster.CreateSession()
	if err != nil {
		logger.Println(err)
		return nil, err
	}

	return &PaymentCassandraStore{
		session: session,
		logger:  logger,
		tracer:  tracer,
	}, nil
}

func (store *PaymentCassandraStore) CloseSession() {
	store.session.Close()
}

func (store *PaymentCassandraStore) CreateTables() {
	err := store.session.Query(
		`CREATE TABLE IF NOT EXISTS payments_by_booking (
			booking_id text,
			payment_id UUID,
			amount double,
			status text,
			created_at timestamp,
			PRIMARY KEY ((booking_id), created_at, payment_id))
			WITH CLUSTERING ORDER BY (created_at DESC)`).Exec()
	if err != nil {
		store.logger.Println(err)
	}
}

func (store *PaymentCassandraStore) Insert(ctx context.Context, payment *domain.Payment) error {
	ctx, span := store.tracer.Start(ctx, "PaymentStore.Insert")
	defer span.End()

	paymentID, err := gocql.ParseUUID(payment.ID)
	if err != nil {
		store.logger.Println(err)
		return err
	}

	err = store.session.Query(
		`INSERT INTO payments_by_booking (booking_id, payment_id, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		payment.BookingID, paymentID, payment.Amount, string(payment.Status), payment.CreatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		store.logger.Println(err)
		return err
	}

	return nil
}

func (store *PaymentCassandraStore) GetByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	ctx, span := store.tracer.Start(ctx, "PaymentStore.GetByBooking")
	defer span.End()

	scanner := store.session.Query(
		`SELECT booking_id, payment_id, amount, status, created_at
		FROM payments_by_booking WHERE booking_id = ?`,
		bookingID).WithContext(ctx).Iter().Scanner()

	var payments []*domain.Payment
	for scanner.Next() {
		var (
			payment   domain.Payment
			paymentID gocql.UUID
			status    string
			createdAt time.Time
		)
		err := scanner.Scan(&payment.BookingID, &paymentID, &payment.Amount, &status, &createdAt)
		if err != nil {
			store.logger.Println(err)
			return nil, err
		}
		payment.ID = paymentID.String()
		payment.Status = domain.PaymentStatus(status)
		payment.CreatedAt = createdAt
		payments = append(payments, &payment)
	}
	if err := scanner.Err(); err != nil {
		store.logger.Println(err)
		return nil, err
	}

	return payments, nil
}

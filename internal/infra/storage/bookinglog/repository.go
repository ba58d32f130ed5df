package bookinglog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mistvalley/booking-engine/pkg/psqlbuilder"
)

// Entry одна попытка отправки бронирования. Журнал локальный: источником
// истины по бронированиям остаётся бэкенд усадьбы, здесь только то, что
// прошло через этот движок (для админской ленты и разбора инцидентов).
type Entry struct {
	ID               int64
	BookingReference *string // nil для отклонённых и неудавшихся попыток
	RoomID           string
	RoomTypeName     string
	CheckIn          time.Time
	CheckOut         time.Time
	Nights           int
	Guests           int
	Adults           int
	Children         int
	NumberOfRooms    int
	GuestName        string
	GuestPhone       string
	BasePrice        int64
	GSTAmount        int64
	TotalPrice       int64
	Outcome          string // accepted | rejected | failed
	FailureReason    *string
	CreatedAt        time.Time
}

// Repository репозиторий журнала бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record пишет попытку отправки в журнал.
func (r *Repository) Record(ctx context.Context, entry *Entry) error {
	query, args, err := psqlbuilder.Insert("booking_log").
		Columns(
			"booking_reference",
			"room_id",
			"room_type_name",
			"check_in",
			"check_out",
			"nights",
			"guests",
			"adults",
			"children",
			"number_of_rooms",
			"guest_name",
			"guest_phone",
			"base_price",
			"gst_amount",
			"total_price",
			"outcome",
			"failure_reason",
		).
		Values(
			entry.BookingReference,
			entry.RoomID,
			entry.RoomTypeName,
			entry.CheckIn,
			entry.CheckOut,
			entry.Nights,
			entry.Guests,
			entry.Adults,
			entry.Children,
			entry.NumberOfRooms,
			entry.GuestName,
			entry.GuestPhone,
			entry.BasePrice,
			entry.GSTAmount,
			entry.TotalPrice,
			entry.Outcome,
			entry.FailureReason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return nil
}

// ListRecent возвращает последние попытки, новые первыми.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_reference",
		"room_id",
		"room_type_name",
		"check_in",
		"check_out",
		"nights",
		"guests",
		"adults",
		"children",
		"number_of_rooms",
		"guest_name",
		"guest_phone",
		"base_price",
		"gst_amount",
		"total_price",
		"outcome",
		"failure_reason",
		"created_at",
	).
		From("booking_log").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - rows error: %v", ErrExecQuery, err)
	}

	return entries, nil
}

// ListByOutcome возвращает последние попытки с указанным исходом.
func (r *Repository) ListByOutcome(ctx context.Context, outcome string, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_reference",
		"room_id",
		"room_type_name",
		"check_in",
		"check_out",
		"nights",
		"guests",
		"adults",
		"children",
		"number_of_rooms",
		"guest_name",
		"guest_phone",
		"base_price",
		"gst_amount",
		"total_price",
		"outcome",
		"failure_reason",
		"created_at",
	).
		From("booking_log").
		Where(squirrel.Eq{"outcome": outcome}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOutcome - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOutcome - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOutcome - rows error: %v", ErrExecQuery, err)
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (*Entry, error) {
	var entry Entry
	var createdAt sql.NullTime

	err := rows.Scan(
		&entry.ID,
		&entry.BookingReference,
		&entry.RoomID,
		&entry.RoomTypeName,
		&entry.CheckIn,
		&entry.CheckOut,
		&entry.Nights,
		&entry.Guests,
		&entry.Adults,
		&entry.Children,
		&entry.NumberOfRooms,
		&entry.GuestName,
		&entry.GuestPhone,
		&entry.BasePrice,
		&entry.GSTAmount,
		&entry.TotalPrice,
		&entry.Outcome,
		&entry.FailureReason,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	entry.CreatedAt = createdAt.Time
	return &entry, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hylla/taskboard/internal/app"
	"github.com/hylla/taskboard/internal/domain"
	_ "modernc.org/sqlite"
)

// driverName defines a package constant value.
const driverName = "sqlite"

// Repository is a board store that lives only as long as the process.
type Repository struct {
	db *sql.DB
}

// OpenInMemory opens a private in-memory database. Each call gets its own
// database so separate sessions never share rows.
func OpenInMemory() (*Repository, error) {
	dsn := fmt.Sprintf("file:taskboard-%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	// One connection keeps the memory database and its pragmas alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	repo := &Repository{db: db}
	if err := repo.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close releases the database; its contents are gone afterwards.
func (r *Repository) Close() error {
	return r.db.Close()
}

// migrate creates the schema.
func (r *Repository) migrate(ctx context.Context) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS columns_v1 (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			column_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			day TEXT NOT NULL DEFAULT '',
			owner TEXT NOT NULL DEFAULT 'Guest',
			updated_by TEXT NOT NULL DEFAULT 'Guest',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY(column_id) REFERENCES columns_v1(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cards_column_position ON cards(column_id, position);`,
		`CREATE TABLE IF NOT EXISTS change_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			card_id TEXT NOT NULL,
			operation TEXT NOT NULL,
			actor TEXT NOT NULL,
			metadata_json TEXT NOT NULL DEFAULT '{}',
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_change_events_created_at ON change_events(created_at, id);`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

// CreateColumn creates column.
func (r *Repository) CreateColumn(ctx context.Context, c domain.Column) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO columns_v1(id, name, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Position, ts(c.CreatedAt), ts(c.UpdatedAt))
	return err
}

// ListColumns lists columns.
func (r *Repository) ListColumns(ctx context.Context) ([]domain.Column, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, position, created_at, updated_at
		FROM columns_v1
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Column{}
	for rows.Next() {
		var (
			c          domain.Column
			createdRaw string
			updatedRaw string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &createdRaw, &updatedRaw); err != nil {
			return nil, err
		}
		c.CreatedAt = parseTS(createdRaw)
		c.UpdatedAt = parseTS(updatedRaw)
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateCard creates card and records a create event.
func (r *Repository) CreateCard(ctx context.Context, c domain.Card) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO cards(id, column_id, position, title, day, owner, updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.ColumnID, c.Position, c.Title, c.Day, c.Owner, chooseActor(c.UpdatedBy, c.Owner), ts(c.CreatedAt), ts(c.UpdatedAt))
	if err != nil {
		return err
	}

	err = insertChangeEvent(ctx, tx, domain.ChangeEvent{
		CardID:    c.ID,
		Operation: domain.ChangeOperationCreate,
		Actor:     chooseActor(c.Owner),
		Metadata: map[string]string{
			"column_id": c.ColumnID,
			"position":  strconv.Itoa(c.Position),
			"title":     c.Title,
		},
		OccurredAt: c.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// UpdateCard updates card and records a rename or move event.
func (r *Repository) UpdateCard(ctx context.Context, c domain.Card) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	prev, err := getCardByID(ctx, tx, c.ID)
	if err != nil {
		return err
	}
	if err = updateCardRow(ctx, tx, c); err != nil {
		return err
	}

	op, metadata := classifyCardTransition(prev, c)
	err = insertChangeEvent(ctx, tx, domain.ChangeEvent{
		CardID:     c.ID,
		Operation:  op,
		Actor:      chooseActor(c.UpdatedBy, prev.UpdatedBy),
		Metadata:   metadata,
		OccurredAt: c.UpdatedAt,
	})
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// MoveCard stores the dropped card and renumbers its siblings atomically.
func (r *Repository) MoveCard(ctx context.Context, c domain.Card, positions map[string]int) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	prev, err := getCardByID(ctx, tx, c.ID)
	if err != nil {
		return err
	}
	if err = updateCardRow(ctx, tx, c); err != nil {
		return err
	}
	for id, position := range positions {
		if id == c.ID {
			continue
		}
		var res sql.Result
		res, err = tx.ExecContext(ctx, `UPDATE cards SET position = ? WHERE id = ?`, position, id)
		if err != nil {
			return err
		}
		if err = translateNoRows(res); err != nil {
			return fmt.Errorf("renumber card %q: %w", id, err)
		}
	}

	err = insertChangeEvent(ctx, tx, domain.ChangeEvent{
		CardID:    c.ID,
		Operation: domain.ChangeOperationMove,
		Actor:     chooseActor(c.UpdatedBy, prev.UpdatedBy),
		Metadata: map[string]string{
			"from_column_id": prev.ColumnID,
			"to_column_id":   c.ColumnID,
			"from_position":  strconv.Itoa(prev.Position),
			"to_position":    strconv.Itoa(c.Position),
			"title":          c.Title,
		},
		OccurredAt: c.UpdatedAt,
	})
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// GetCard returns card.
func (r *Repository) GetCard(ctx context.Context, id string) (domain.Card, error) {
	return getCardByID(ctx, r.db, id)
}

// ListCards lists cards.
func (r *Repository) ListCards(ctx context.Context) ([]domain.Card, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, column_id, position, title, day, owner, updated_by, created_at, updated_at
		FROM cards
		ORDER BY column_id ASC, position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, rows.Err()
}

// DeleteCard deletes card and records a delete event.
func (r *Repository) DeleteCard(ctx context.Context, id, actor string, at time.Time) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	card, err := getCardByID(ctx, tx, id)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if err = translateNoRows(res); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE cards SET position = position - 1
		WHERE column_id = ? AND position > ?
	`, card.ColumnID, card.Position)
	if err != nil {
		return err
	}

	err = insertChangeEvent(ctx, tx, domain.ChangeEvent{
		CardID:    card.ID,
		Operation: domain.ChangeOperationDelete,
		Actor:     chooseActor(actor, card.UpdatedBy),
		Metadata: map[string]string{
			"column_id": card.ColumnID,
			"position":  strconv.Itoa(card.Position),
			"title":     card.Title,
		},
		OccurredAt: at,
	})
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// ListChangeEvents lists the most recent change events first.
func (r *Repository) ListChangeEvents(ctx context.Context, limit int) ([]domain.ChangeEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, card_id, operation, actor, metadata_json, created_at
		FROM change_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ChangeEvent, 0)
	for rows.Next() {
		var (
			event       domain.ChangeEvent
			opRaw       string
			metadataRaw string
			createdRaw  string
		)
		if err := rows.Scan(&event.ID, &event.CardID, &opRaw, &event.Actor, &metadataRaw, &createdRaw); err != nil {
			return nil, err
		}
		event.Operation = normalizeChangeOperation(opRaw)
		event.OccurredAt = parseTS(createdRaw)
		if strings.TrimSpace(metadataRaw) == "" {
			metadataRaw = "{}"
		}
		if err := json.Unmarshal([]byte(metadataRaw), &event.Metadata); err != nil {
			return nil, fmt.Errorf("decode change_events.metadata_json: %w", err)
		}
		if event.Metadata == nil {
			event.Metadata = map[string]string{}
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

// queryRower represents a query-only DB contract used by DB and Tx implementations.
type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// getCardByID returns a card or app.ErrNotFound.
func getCardByID(ctx context.Context, q queryRower, id string) (domain.Card, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, column_id, position, title, day, owner, updated_by, created_at, updated_at
		FROM cards
		WHERE id = ?
	`, id)
	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Card{}, app.ErrNotFound
	}
	return card, err
}

// execerContext represents a write-only DB contract used by DB and Tx implementations.
type execerContext interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}

func updateCardRow(ctx context.Context, execer execerContext, c domain.Card) error {
	res, err := execer.ExecContext(ctx, `
		UPDATE cards
		SET column_id = ?, position = ?, title = ?, day = ?, updated_by = ?, updated_at = ?
		WHERE id = ?
	`, c.ColumnID, c.Position, c.Title, c.Day, chooseActor(c.UpdatedBy, c.Owner), ts(c.UpdatedAt), c.ID)
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// insertChangeEvent inserts a change-event ledger record.
func insertChangeEvent(ctx context.Context, execer execerContext, event domain.ChangeEvent) error {
	metadataJSON, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("encode change event metadata: %w", err)
	}
	_, err = execer.ExecContext(ctx, `
		INSERT INTO change_events(card_id, operation, actor, metadata_json, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		event.CardID,
		string(event.Operation),
		chooseActor(event.Actor),
		string(metadataJSON),
		ts(normalizeEventTS(event.OccurredAt)),
	)
	if err != nil {
		return fmt.Errorf("insert change event: %w", err)
	}
	return nil
}

// classifyCardTransition picks the operation and metadata for a card update.
func classifyCardTransition(prev, next domain.Card) (domain.ChangeOperation, map[string]string) {
	if prev.ColumnID != next.ColumnID || prev.Position != next.Position {
		return domain.ChangeOperationMove, map[string]string{
			"from_column_id": prev.ColumnID,
			"to_column_id":   next.ColumnID,
			"from_position":  strconv.Itoa(prev.Position),
			"to_position":    strconv.Itoa(next.Position),
			"title":          next.Title,
		}
	}
	metadata := map[string]string{"title": next.Title}
	if prev.Title != next.Title {
		metadata["from_title"] = prev.Title
	}
	if prev.Day != next.Day {
		metadata["day"] = next.Day
	}
	return domain.ChangeOperationRename, metadata
}

func chooseActor(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return candidate
		}
	}
	return domain.DefaultOwner
}

func normalizeChangeOperation(raw string) domain.ChangeOperation {
	switch op := domain.ChangeOperation(strings.TrimSpace(strings.ToLower(raw))); op {
	case domain.ChangeOperationCreate, domain.ChangeOperationRename, domain.ChangeOperationMove, domain.ChangeOperationDelete:
		return op
	default:
		return domain.ChangeOperationRename
	}
}

// normalizeEventTS ensures event timestamps are always populated and UTC-normalized.
func normalizeEventTS(in time.Time) time.Time {
	if in.IsZero() {
		return time.Now().UTC()
	}
	return in.UTC()
}

// scanner represents scanner data used by this package.
type scanner interface {
	Scan(dest ...any) error
}

func scanCard(s scanner) (domain.Card, error) {
	var (
		c          domain.Card
		createdRaw string
		updatedRaw string
	)
	if err := s.Scan(&c.ID, &c.ColumnID, &c.Position, &c.Title, &c.Day, &c.Owner, &c.UpdatedBy, &createdRaw, &updatedRaw); err != nil {
		return domain.Card{}, err
	}
	c.CreatedAt = parseTS(createdRaw)
	c.UpdatedAt = parseTS(updatedRaw)
	return c, nil
}

// translateNoRows handles translate no rows.
func translateNoRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return app.ErrNotFound
	}
	return nil
}

// storedTimeLayout is fixed width so TEXT ordering matches time ordering.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ts formats t for storage.
func ts(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

// parseTS parses input into a normalized form.
func parseTS(v string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}

package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hylla/taskboard/internal/domain"
)

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	StateTemplates []StateTemplate
}

// StateTemplate describes one default board column.
type StateTemplate struct {
	ID       string
	Name     string
	Position int
}

// IDGenerator returns unique identifiers for new entities.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// Service coordinates board mutations against the repository.
type Service struct {
	repo           Repository
	idGen          IDGenerator
	clock          Clock
	stateTemplates []StateTemplate
}

// NewService constructs a new value for this package.
func NewService(repo Repository, idGen IDGenerator, clock Clock, cfg ServiceConfig) *Service {
	if idGen == nil {
		idGen = func() string { return "" }
	}
	if clock == nil {
		clock = time.Now
	}
	templates := sanitizeStateTemplates(cfg.StateTemplates)
	if len(templates) == 0 {
		templates = defaultStateTemplates()
	}

	return &Service{
		repo:           repo,
		idGen:          idGen,
		clock:          clock,
		stateTemplates: templates,
	}
}

// EnsureBoard creates the default columns once and returns the current columns.
func (s *Service) EnsureBoard(ctx context.Context) ([]domain.Column, error) {
	columns, err := s.ListColumns(ctx)
	if err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		return columns, nil
	}
	if err := s.createDefaultColumns(ctx, s.clock()); err != nil {
		return nil, err
	}
	return s.ListColumns(ctx)
}

// Board loads the list-of-lists model.
func (s *Service) Board(ctx context.Context) (domain.Board, error) {
	columns, err := s.repo.ListColumns(ctx)
	if err != nil {
		return domain.Board{}, err
	}
	cards, err := s.repo.ListCards(ctx)
	if err != nil {
		return domain.Board{}, err
	}
	return domain.NewBoard(columns, cards), nil
}

// AddCardInput holds input values for add card operations.
type AddCardInput struct {
	Title string
	Day   string
	Owner string
}

// AddCard appends a new card to the first column.
func (s *Service) AddCard(ctx context.Context, in AddCardInput) (domain.Card, error) {
	board, err := s.Board(ctx)
	if err != nil {
		return domain.Card{}, err
	}
	if len(board.Lanes) == 0 {
		return domain.Card{}, ErrNoColumns
	}
	first := board.Lanes[0]
	card, err := domain.NewCard(domain.CardInput{
		ID:       s.idGen(),
		ColumnID: first.Column.ID,
		Position: len(first.Cards),
		Title:    in.Title,
		Day:      in.Day,
		Owner:    in.Owner,
	}, s.clock())
	if err != nil {
		return domain.Card{}, err
	}
	if err := s.repo.CreateCard(ctx, card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// RenameCard replaces a card title.
func (s *Service) RenameCard(ctx context.Context, cardID, title, actor string) (domain.Card, error) {
	card, err := s.repo.GetCard(ctx, cardID)
	if err != nil {
		return domain.Card{}, err
	}
	if err := card.Rename(title, s.clock()); err != nil {
		return domain.Card{}, err
	}
	card.UpdatedBy = chooseActor(actor, card.UpdatedBy)
	if err := s.repo.UpdateCard(ctx, card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// DeleteCard removes a card.
func (s *Service) DeleteCard(ctx context.Context, cardID, actor string) error {
	return s.repo.DeleteCard(ctx, cardID, chooseActor(actor, domain.DefaultOwner), s.clock())
}

// MoveCardInput holds input values for move card operations.
type MoveCardInput struct {
	CardID   string
	ColumnID string
	Index    int
	Actor    string
}

// MoveCard commits a drop: the card lands at Index among the other cards of
// ColumnID and both affected columns are renumbered.
func (s *Service) MoveCard(ctx context.Context, in MoveCardInput) (domain.Card, error) {
	card, err := s.repo.GetCard(ctx, in.CardID)
	if err != nil {
		return domain.Card{}, err
	}
	board, err := s.Board(ctx)
	if err != nil {
		return domain.Card{}, err
	}
	fromColumn := card.ColumnID
	if err := board.Insert(card.ID, in.ColumnID, in.Index); err != nil {
		return domain.Card{}, fmt.Errorf("move card %q: %w", card.ID, err)
	}
	li, ci, _ := board.Locate(card.ID)
	if err := card.Move(board.Lanes[li].Column.ID, ci, s.clock()); err != nil {
		return domain.Card{}, err
	}
	card.UpdatedBy = chooseActor(in.Actor, card.UpdatedBy)

	positions := map[string]int{}
	for _, lane := range board.Lanes {
		if lane.Column.ID != fromColumn && lane.Column.ID != card.ColumnID {
			continue
		}
		for _, sibling := range lane.Cards {
			if sibling.ID == card.ID {
				continue
			}
			positions[sibling.ID] = sibling.Position
		}
	}
	if err := s.repo.MoveCard(ctx, card, positions); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// ListColumns lists columns ordered by position.
func (s *Service) ListColumns(ctx context.Context) ([]domain.Column, error) {
	columns, err := s.repo.ListColumns(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(columns, func(a, b domain.Column) int {
		return a.Position - b.Position
	})
	return columns, nil
}

// ListChangeEvents returns the most recent activity first.
func (s *Service) ListChangeEvents(ctx context.Context, limit int) ([]domain.ChangeEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListChangeEvents(ctx, limit)
}

// defaultStateTemplates returns the To Do / In Progress / Done columns.
func defaultStateTemplates() []StateTemplate {
	return []StateTemplate{
		{ID: "todo", Name: "To Do", Position: 0},
		{ID: "progress", Name: "In Progress", Position: 1},
		{ID: "done", Name: "Done", Position: 2},
	}
}

// sanitizeStateTemplates trims, dedupes and orders configured templates.
func sanitizeStateTemplates(in []StateTemplate) []StateTemplate {
	if len(in) == 0 {
		return nil
	}
	out := make([]StateTemplate, 0, len(in))
	seen := map[string]struct{}{}
	for idx, state := range in {
		state.Name = strings.TrimSpace(state.Name)
		state.ID = strings.TrimSpace(strings.ToLower(state.ID))
		if state.Name == "" {
			continue
		}
		if state.ID == "" {
			state.ID = normalizeStateID(state.Name)
		}
		dedupeID := strings.ReplaceAll(state.ID, "-", "")
		if _, ok := seen[dedupeID]; ok {
			continue
		}
		seen[dedupeID] = struct{}{}
		if state.Position < 0 {
			state.Position = idx
		}
		out = append(out, state)
	}
	slices.SortFunc(out, func(a, b StateTemplate) int {
		if a.Position == b.Position {
			return strings.Compare(a.ID, b.ID)
		}
		return a.Position - b.Position
	})
	return out
}

// normalizeStateID turns a column name into a stable id.
func normalizeStateID(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return ""
	}
	var b strings.Builder
	lastDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	normalized := strings.Trim(b.String(), "-")
	switch normalized {
	case "to-do", "todo":
		return "todo"
	case "in-progress", "progress", "doing":
		return "progress"
	case "done", "complete", "completed":
		return "done"
	default:
		return normalized
	}
}

func chooseActor(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return candidate
		}
	}
	return domain.DefaultOwner
}

func (s *Service) createDefaultColumns(ctx context.Context, now time.Time) error {
	for idx, state := range s.stateTemplates {
		position := state.Position
		if position < 0 {
			position = idx
		}
		column, err := domain.NewColumn(state.ID, state.Name, position, now)
		if err != nil {
			return fmt.Errorf("create default column %q: %w", state.Name, err)
		}
		if err := s.repo.CreateColumn(ctx, column); err != nil {
			return fmt.Errorf("persist default column %q: %w", state.Name, err)
		}
	}
	return nil
}

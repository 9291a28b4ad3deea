package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/platform/logger"
	"github.com/daylex/daylex/internal/store"
)

// SQLiteWordStore implements the store.WordStore interface
// using a SQLite database as the storage backend.
type SQLiteWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLiteWordStore creates a new SQLite implementation of the WordStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewSQLiteWordStore(db store.DBTX, log *slog.Logger) *SQLiteWordStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &SQLiteWordStore{
		db:     db,
		logger: log.With(slog.String("component", "word_store")),
	}
}

// Ensure SQLiteWordStore implements store.WordStore interface
var _ store.WordStore = (*SQLiteWordStore)(nil)

// WithTx implements store.WordStore.WithTx
func (s *SQLiteWordStore) WithTx(tx *sqlx.Tx) store.WordStore {
	return &SQLiteWordStore{
		db:     tx,
		logger: s.logger,
	}
}

// wordRow is the database representation of a domain.Word.
// Tags are stored as a JSON array in a TEXT column.
type wordRow struct {
	ID            string    `db:"id"`
	Term          string    `db:"term"`
	Translation   string    `db:"translation"`
	Pronunciation string    `db:"pronunciation"`
	Example       string    `db:"example"`
	Difficulty    int       `db:"difficulty"`
	Tags          string    `db:"tags"`
	Favorite      bool      `db:"favorite"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// stateRow is the database representation of a domain.LearningState.
// Intervals are stored in nanoseconds; an unscheduled word has NULL
// last_reviewed_at and due_at.
type stateRow struct {
	WordID             string         `db:"word_id"`
	Stage              string         `db:"stage"`
	IntervalNS         int64          `db:"interval_ns"`
	Ease               float64        `db:"ease"`
	ConsecutiveCorrect int            `db:"consecutive_correct"`
	ReviewCount        int            `db:"review_count"`
	LastReviewedAt     sql.NullTime   `db:"last_reviewed_at"`
	DueAt              sql.NullTime   `db:"due_at"`
	SuspendedFrom      sql.NullString `db:"suspended_from"`
	Version            int64          `db:"version"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// reviewRow is the database representation of a domain.ReviewRecord.
type reviewRow struct {
	WordID           string    `db:"word_id"`
	ReviewedAt       time.Time `db:"reviewed_at"`
	Outcome          string    `db:"outcome"`
	IntervalBeforeNS int64     `db:"interval_before_ns"`
	IntervalAfterNS  int64     `db:"interval_after_ns"`
}

func toWordRow(word *domain.Word) (*wordRow, error) {
	tags := word.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	return &wordRow{
		ID:            word.ID.String(),
		Term:          word.Term,
		Translation:   word.Translation,
		Pronunciation: word.Pronunciation,
		Example:       word.Example,
		Difficulty:    word.Difficulty,
		Tags:          string(encoded),
		Favorite:      word.Favorite,
		CreatedAt:     word.CreatedAt,
		UpdatedAt:     word.UpdatedAt,
	}, nil
}

func (r *wordRow) toDomain() (*domain.Word, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse word ID %q: %w", r.ID, err)
	}

	var tags []string
	if err := json.Unmarshal([]byte(r.Tags), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for word %s: %w", r.ID, err)
	}
	if len(tags) == 0 {
		tags = nil
	}

	return &domain.Word{
		ID:            id,
		Term:          r.Term,
		Translation:   r.Translation,
		Pronunciation: r.Pronunciation,
		Example:       r.Example,
		Difficulty:    r.Difficulty,
		Tags:          tags,
		Favorite:      r.Favorite,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

func toStateRow(state *domain.LearningState) *stateRow {
	row := &stateRow{
		WordID:             state.WordID.String(),
		Stage:              string(state.Stage),
		IntervalNS:         int64(state.Interval),
		Ease:               state.Ease,
		ConsecutiveCorrect: state.ConsecutiveCorrect,
		ReviewCount:        state.ReviewCount,
		Version:            state.Version,
		CreatedAt:          state.CreatedAt,
		UpdatedAt:          state.UpdatedAt,
	}

	if !state.LastReviewedAt.IsZero() {
		row.LastReviewedAt = sql.NullTime{Time: state.LastReviewedAt, Valid: true}
	}
	if !state.DueAt.IsZero() {
		row.DueAt = sql.NullTime{Time: state.DueAt, Valid: true}
	}
	if state.SuspendedFrom != "" {
		row.SuspendedFrom = sql.NullString{String: string(state.SuspendedFrom), Valid: true}
	}

	return row
}

func (r *stateRow) toDomain() (*domain.LearningState, error) {
	id, err := uuid.Parse(r.WordID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse word ID %q: %w", r.WordID, err)
	}

	state := &domain.LearningState{
		WordID:             id,
		Stage:              domain.Stage(r.Stage),
		Interval:           time.Duration(r.IntervalNS),
		Ease:               r.Ease,
		ConsecutiveCorrect: r.ConsecutiveCorrect,
		ReviewCount:        r.ReviewCount,
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.LastReviewedAt.Valid {
		state.LastReviewedAt = r.LastReviewedAt.Time
	}
	if r.DueAt.Valid {
		state.DueAt = r.DueAt.Time
	}
	if r.SuspendedFrom.Valid {
		state.SuspendedFrom = domain.Stage(r.SuspendedFrom.String)
	}

	return state, nil
}

const insertWordQuery = `
	INSERT INTO words (id, term, translation, pronunciation, example, difficulty, tags, favorite, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const selectWordColumns = `
	SELECT id, term, translation, pronunciation, example, difficulty, tags, favorite, created_at, updated_at
	FROM words
`

const insertStateQuery = `
	INSERT INTO learning_states (word_id, stage, interval_ns, ease, consecutive_correct,
		review_count, last_reviewed_at, due_at, suspended_from, version, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Create implements store.WordStore.Create
// It saves a new word and its initial learning state, handling domain
// validation internally. Returns store.ErrWordExists when the ID or term
// collides with an existing word.
func (s *SQLiteWordStore) Create(
	ctx context.Context,
	word *domain.Word,
	state *domain.LearningState,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if err := state.Validate(); err != nil {
		log.Warn("learning state validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if word.ID != state.WordID {
		return fmt.Errorf("%w: learning state belongs to a different word", store.ErrInvalidEntity)
	}

	wr, err := toWordRow(word)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err = s.db.ExecContext(ctx, insertWordQuery,
		wr.ID, wr.Term, wr.Translation, wr.Pronunciation, wr.Example,
		wr.Difficulty, wr.Tags, wr.Favorite, wr.CreatedAt, wr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate word during create",
				slog.String("word_id", word.ID.String()),
				slog.String("term", word.Term))
			return store.ErrWordExists
		}
		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	sr := toStateRow(state)
	_, err = s.db.ExecContext(ctx, insertStateQuery,
		sr.WordID, sr.Stage, sr.IntervalNS, sr.Ease, sr.ConsecutiveCorrect,
		sr.ReviewCount, sr.LastReviewedAt, sr.DueAt, sr.SuspendedFrom,
		sr.Version, sr.CreatedAt, sr.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create learning state",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	log.Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("term", word.Term))
	return nil
}

// CreateMultiple implements store.WordStore.CreateMultiple
// The words and states slices must be parallel; the caller is expected to
// run this inside a transaction so the batch is all-or-nothing.
func (s *SQLiteWordStore) CreateMultiple(
	ctx context.Context,
	words []*domain.Word,
	states []*domain.LearningState,
) error {
	if len(words) != len(states) {
		return fmt.Errorf("%w: %d words but %d learning states",
			store.ErrInvalidEntity, len(words), len(states))
	}

	for i := range words {
		if err := s.Create(ctx, words[i], states[i]); err != nil {
			return err
		}
	}
	return nil
}

// Get implements store.WordStore.Get
// Returns store.ErrWordNotFound if the word does not exist.
func (s *SQLiteWordStore) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row wordRow
	err := s.db.GetContext(ctx, &row, selectWordColumns+"WHERE id = ?", id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.String("word_id", id.String()))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, err
	}

	return row.toDomain()
}

// GetByTerm implements store.WordStore.GetByTerm
// The words.term column has no collation set, so matching is done with
// lower() on both sides.
func (s *SQLiteWordStore) GetByTerm(ctx context.Context, term string) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row wordRow
	err := s.db.GetContext(ctx, &row, selectWordColumns+"WHERE lower(term) = lower(?)", term)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found by term", slog.String("term", term))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by term",
			slog.String("error", err.Error()),
			slog.String("term", term))
		return nil, err
	}

	return row.toDomain()
}

// UpdateWord implements store.WordStore.UpdateWord
// Only the catalog fields change; the favorite flag is a learner preference
// and keeps its stored value.
func (s *SQLiteWordStore) UpdateWord(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	row, err := toWordRow(word)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE words
		SET translation = ?, pronunciation = ?, example = ?, difficulty = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`,
		row.Translation, row.Pronunciation, row.Example, row.Difficulty,
		row.Tags, row.UpdatedAt, row.ID,
	)
	if err != nil {
		log.Error("failed to update word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrWordNotFound
	}

	log.Debug("word updated", slog.String("word_id", word.ID.String()))
	return nil
}

// GetState implements store.WordStore.GetState
// The review history is loaded with the state, oldest entry first.
// Returns store.ErrStateNotFound if no state row exists for the ID.
func (s *SQLiteWordStore) GetState(ctx context.Context, id uuid.UUID) (*domain.LearningState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row stateRow
	err := s.db.GetContext(ctx, &row, `
		SELECT word_id, stage, interval_ns, ease, consecutive_correct, review_count,
			last_reviewed_at, due_at, suspended_from, version, created_at, updated_at
		FROM learning_states
		WHERE word_id = ?
	`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("learning state not found", slog.String("word_id", id.String()))
			return nil, store.ErrStateNotFound
		}
		log.Error("failed to get learning state",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, err
	}

	state, err := row.toDomain()
	if err != nil {
		return nil, err
	}

	history, err := s.history(ctx, id)
	if err != nil {
		return nil, err
	}
	state.History = history

	return state, nil
}

func (s *SQLiteWordStore) history(ctx context.Context, id uuid.UUID) ([]domain.ReviewRecord, error) {
	var rows []reviewRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT word_id, reviewed_at, outcome, interval_before_ns, interval_after_ns
		FROM review_log
		WHERE word_id = ?
		ORDER BY id ASC
	`, id.String())
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]domain.ReviewRecord, 0, len(rows))
	for _, r := range rows {
		wordID, err := uuid.Parse(r.WordID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse word ID %q: %w", r.WordID, err)
		}
		records = append(records, domain.ReviewRecord{
			WordID:         wordID,
			ReviewedAt:     r.ReviewedAt,
			Outcome:        domain.ReviewOutcome(r.Outcome),
			IntervalBefore: time.Duration(r.IntervalBeforeNS),
			IntervalAfter:  time.Duration(r.IntervalAfterNS),
		})
	}
	return records, nil
}

// DueBefore implements store.WordStore.DueBefore
// Only scheduled, non-suspended words qualify; ordering is due time
// ascending with the ID as a deterministic tie-break.
func (s *SQLiteWordStore) DueBefore(
	ctx context.Context,
	t time.Time,
	limit int,
) ([]uuid.UUID, error) {
	query := `
		SELECT word_id
		FROM learning_states
		WHERE stage != ? AND due_at IS NOT NULL AND due_at <= ?
		ORDER BY due_at ASC, word_id ASC
	`
	args := []any{string(domain.StageSuspended), t}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.selectIDs(ctx, query, args...)
}

// FavoritesDueBefore implements store.WordStore.FavoritesDueBefore
func (s *SQLiteWordStore) FavoritesDueBefore(
	ctx context.Context,
	t time.Time,
	limit int,
) ([]uuid.UUID, error) {
	query := `
		SELECT ls.word_id
		FROM learning_states ls
		JOIN words w ON w.id = ls.word_id
		WHERE w.favorite = 1 AND ls.stage != ? AND ls.due_at IS NOT NULL AND ls.due_at <= ?
		ORDER BY ls.due_at ASC, ls.word_id ASC
	`
	args := []any{string(domain.StageSuspended), t}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.selectIDs(ctx, query, args...)
}

// NewCandidates implements store.WordStore.NewCandidates
// Import order is the words table rowid, which SQLite assigns in insertion
// order. Out-of-scale difficulty bounds clamp to the 1-5 rating band.
func (s *SQLiteWordStore) NewCandidates(
	ctx context.Context,
	limit, minDifficulty, maxDifficulty int,
) ([]uuid.UUID, error) {
	if minDifficulty < 1 || minDifficulty > 5 {
		minDifficulty = 1
	}
	if maxDifficulty < 1 || maxDifficulty > 5 {
		maxDifficulty = 5
	}

	query := `
		SELECT ls.word_id
		FROM learning_states ls
		JOIN words w ON w.id = ls.word_id
		WHERE ls.stage = ? AND w.difficulty BETWEEN ? AND ?
		ORDER BY w.rowid ASC
	`
	args := []any{string(domain.StageNew), minDifficulty, maxDifficulty}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.selectIDs(ctx, query, args...)
}

// SetFavorite implements store.WordStore.SetFavorite
func (s *SQLiteWordStore) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		"UPDATE words SET favorite = ? WHERE id = ?", favorite, id.String())
	if err != nil {
		log.Error("failed to set favorite flag",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("word not found during set favorite", slog.String("word_id", id.String()))
		return store.ErrWordNotFound
	}

	log.Debug("favorite flag set",
		slog.String("word_id", id.String()),
		slog.Bool("favorite", favorite))
	return nil
}

// Favorites implements store.WordStore.Favorites
func (s *SQLiteWordStore) Favorites(ctx context.Context) ([]*domain.Word, error) {
	return s.selectWords(ctx,
		selectWordColumns+"WHERE favorite = 1 ORDER BY term COLLATE NOCASE ASC")
}

// Search implements store.WordStore.Search
// LIKE wildcards in the query are escaped so they match literally.
func (s *SQLiteWordStore) Search(ctx context.Context, query string, limit int) ([]*domain.Word, error) {
	pattern := "%" + escapeLike(query) + "%"

	sqlQuery := selectWordColumns + `
		WHERE term LIKE ? ESCAPE '\' OR translation LIKE ? ESCAPE '\'
		ORDER BY term COLLATE NOCASE ASC
	`
	args := []any{pattern, pattern}
	if limit > 0 {
		sqlQuery += " LIMIT ?"
		args = append(args, limit)
	}

	return s.selectWords(ctx, sqlQuery, args...)
}

// escapeLike makes a user-supplied fragment safe inside a LIKE pattern.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func (s *SQLiteWordStore) selectWords(ctx context.Context, query string, args ...any) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []wordRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to select words", slog.String("error", err.Error()))
		return nil, err
	}

	words := make([]*domain.Word, 0, len(rows))
	for i := range rows {
		word, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

func (s *SQLiteWordStore) selectIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var raw []string
	if err := s.db.SelectContext(ctx, &raw, query, args...); err != nil {
		log.Error("failed to select word IDs", slog.String("error", err.Error()))
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse word ID %q: %w", r, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Apply implements store.WordStore.Apply
// The update is guarded by the optimistic version check; the persisted
// version becomes state.Version+1. When record is non-nil it is appended to
// the review log in the same call, so services run Apply inside
// store.RunInTransaction to keep state and log consistent.
func (s *SQLiteWordStore) Apply(
	ctx context.Context,
	state *domain.LearningState,
	record *domain.ReviewRecord,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := state.Validate(); err != nil {
		log.Warn("learning state validation failed during apply",
			slog.String("error", err.Error()),
			slog.String("word_id", state.WordID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	row := toStateRow(state)
	result, err := s.db.ExecContext(ctx, `
		UPDATE learning_states
		SET stage = ?, interval_ns = ?, ease = ?, consecutive_correct = ?,
			review_count = ?, last_reviewed_at = ?, due_at = ?, suspended_from = ?,
			version = version + 1, updated_at = ?
		WHERE word_id = ? AND version = ?
	`,
		row.Stage, row.IntervalNS, row.Ease, row.ConsecutiveCorrect,
		row.ReviewCount, row.LastReviewedAt, row.DueAt, row.SuspendedFrom,
		row.UpdatedAt, row.WordID, row.Version,
	)
	if err != nil {
		log.Error("failed to apply learning state",
			slog.String("error", err.Error()),
			slog.String("word_id", state.WordID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish a missing row from a stale version.
		var exists int
		err := s.db.GetContext(ctx, &exists,
			"SELECT COUNT(*) FROM learning_states WHERE word_id = ?", row.WordID)
		if err != nil {
			return err
		}
		if exists == 0 {
			log.Debug("learning state not found during apply",
				slog.String("word_id", state.WordID.String()))
			return store.ErrStateNotFound
		}
		log.Warn("stale version during apply",
			slog.String("word_id", state.WordID.String()),
			slog.Int64("version", state.Version))
		return store.ErrConflict
	}

	if record != nil {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO review_log (word_id, reviewed_at, outcome, interval_before_ns, interval_after_ns)
			VALUES (?, ?, ?, ?, ?)
		`,
			record.WordID.String(), record.ReviewedAt, string(record.Outcome),
			int64(record.IntervalBefore), int64(record.IntervalAfter),
		)
		if err != nil {
			log.Error("failed to append review record",
				slog.String("error", err.Error()),
				slog.String("word_id", state.WordID.String()))
			return err
		}
	}

	log.Debug("learning state applied",
		slog.String("word_id", state.WordID.String()),
		slog.String("stage", string(state.Stage)),
		slog.Int64("version", state.Version+1))
	return nil
}

// Remove implements store.WordStore.Remove
// The learning state and review log rows go with the word via ON DELETE
// CASCADE. Returns store.ErrWordNotFound if the word is absent.
func (s *SQLiteWordStore) Remove(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM words WHERE id = ?", id.String())
	if err != nil {
		log.Error("failed to remove word",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("word not found during remove", slog.String("word_id", id.String()))
		return store.ErrWordNotFound
	}

	log.Info("word removed", slog.String("word_id", id.String()))
	return nil
}

// Count implements store.WordStore.Count
func (s *SQLiteWordStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, err
	}
	return count, nil
}

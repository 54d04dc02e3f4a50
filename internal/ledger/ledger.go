// Package ledger persists instructions and transactions in an embedded DuckDB
// database. It is an optional collaborator for audit and reconciliation; the
// composer itself never depends on it.
package ledger

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-compose/internal/logger"
	"github.com/rxtech-lab/argo-compose/internal/types"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
	"go.uber.org/zap"
)

type Ledger struct {
	db  *sql.DB
	log *logger.Logger
	sq  squirrel.StatementBuilderType
}

// NewLedger opens an in-memory ledger.
func NewLedger(log *logger.Logger) (*Ledger, error) {
	return NewLedgerAtPath(":memory:", log)
}

// NewLedgerAtPath opens a ledger backed by the given DuckDB file.
func NewLedgerAtPath(path string, log *logger.Logger) (*Ledger, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to open ledger database", err)
	}

	return &Ledger{
		db:  db,
		log: log,
		sq:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Initialize creates the instruction and transaction tables.
func (l *Ledger) Initialize() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS instructions (
			id BIGINT PRIMARY KEY,
			strategy_name TEXT,
			code TEXT,
			action TEXT,
			volume BIGINT,
			submitted_at TIMESTAMP,
			comments TEXT,
			selling_type TEXT,
			stop_loss_price DOUBLE,
			position_id TEXT
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to create instructions table", err)
	}

	_, err = l.db.Exec(`
		CREATE TABLE IF NOT EXISTS transactions (
			instruction_id BIGINT,
			code TEXT,
			action TEXT,
			succeeded BOOLEAN,
			executed_price DOUBLE,
			executed_volume BIGINT,
			commission DOUBLE,
			executed_at TIMESTAMP
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to create transactions table", err)
	}

	return nil
}

// RecordInstruction appends one retrieved instruction to the ledger.
func (l *Ledger) RecordInstruction(strategyName string, instruction *types.Instruction) error {
	var stopLossPrice any
	if instruction.StopLossPrice.IsSome() {
		stopLossPrice = instruction.StopLossPrice.Unwrap()
	}

	var positionID any
	if instruction.PositionID.IsSome() {
		positionID = instruction.PositionID.Unwrap()
	}

	query := l.sq.
		Insert("instructions").
		Columns(
			"id", "strategy_name", "code", "action", "volume", "submitted_at",
			"comments", "selling_type", "stop_loss_price", "position_id",
		).
		Values(
			instruction.ID, strategyName, instruction.Object.Code, string(instruction.Action),
			instruction.Volume, instruction.SubmittedAt, instruction.Comments,
			string(instruction.SellingType), stopLossPrice, positionID,
		).
		RunWith(l.db)

	if _, err := query.Exec(); err != nil {
		return errors.Wrapf(errors.ErrCodeQueryFailed, err,
			"failed to record instruction %d", instruction.ID)
	}

	return nil
}

// RecordTransaction appends one execution result to the ledger.
func (l *Ledger) RecordTransaction(transaction types.Transaction) error {
	query := l.sq.
		Insert("transactions").
		Columns(
			"instruction_id", "code", "action", "succeeded",
			"executed_price", "executed_volume", "commission", "executed_at",
		).
		Values(
			transaction.InstructionID, transaction.Code, string(transaction.Action),
			transaction.Succeeded, transaction.ExecutedPrice, transaction.ExecutedVolume,
			transaction.Commission, transaction.ExecutedAt,
		).
		RunWith(l.db)

	if _, err := query.Exec(); err != nil {
		return errors.Wrapf(errors.ErrCodeQueryFailed, err,
			"failed to record transaction for instruction %d", transaction.InstructionID)
	}

	return nil
}

// GetInstruction looks one instruction up by ID. Absence is not an error.
func (l *Ledger) GetInstruction(id int64) (optional.Option[types.Instruction], error) {
	query := l.sq.
		Select(
			"id", "code", "volume", "action", "submitted_at",
			"comments", "selling_type", "stop_loss_price", "position_id",
		).
		From("instructions").
		Where(squirrel.Eq{"id": id}).
		RunWith(l.db)

	var (
		instruction   types.Instruction
		action        string
		sellingType   string
		stopLossPrice sql.NullFloat64
		positionID    sql.NullString
	)

	err := query.QueryRow().Scan(
		&instruction.ID, &instruction.Object.Code, &instruction.Volume, &action,
		&instruction.SubmittedAt, &instruction.Comments, &sellingType,
		&stopLossPrice, &positionID,
	)
	if err == sql.ErrNoRows {
		return optional.None[types.Instruction](), nil
	}

	if err != nil {
		return optional.None[types.Instruction](),
			errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to load instruction %d", id)
	}

	instruction.Action = types.InstructionAction(action)
	instruction.SellingType = types.SellingType(sellingType)

	instruction.StopLossPrice = optional.None[float64]()
	if stopLossPrice.Valid {
		instruction.StopLossPrice = optional.Some(stopLossPrice.Float64)
	}

	instruction.PositionID = optional.None[string]()
	if positionID.Valid {
		instruction.PositionID = optional.Some(positionID.String)
	}

	return optional.Some(instruction), nil
}

// UnresolvedInstructions returns every recorded instruction that has no
// transaction yet, for end-of-run reconciliation.
func (l *Ledger) UnresolvedInstructions() ([]int64, error) {
	query := l.sq.
		Select("i.id").
		From("instructions i").
		LeftJoin("transactions t ON t.instruction_id = i.id").
		Where("t.instruction_id IS NULL").
		OrderBy("i.id").
		RunWith(l.db)

	rows, err := query.Query()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query unresolved instructions", err)
	}
	defer rows.Close()

	var ids []int64

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan unresolved instruction", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to iterate unresolved instructions", err)
	}

	return ids, nil
}

// RoundTripSummaries derives one per-code round-trip summary from the
// successful transactions: volume-weighted entry and exit prices, the closed
// volume and the total commission. Codes that never closed are omitted.
func (l *Ledger) RoundTripSummaries() ([]types.CompletedTransaction, error) {
	query := l.sq.
		Select(
			"code",
			"SUM(CASE WHEN action = 'OPEN_LONG' THEN executed_price * executed_volume ELSE 0 END) / "+
				"NULLIF(SUM(CASE WHEN action = 'OPEN_LONG' THEN executed_volume ELSE 0 END), 0) AS buy_price",
			"SUM(CASE WHEN action = 'CLOSE_LONG' THEN executed_price * executed_volume ELSE 0 END) / "+
				"NULLIF(SUM(CASE WHEN action = 'CLOSE_LONG' THEN executed_volume ELSE 0 END), 0) AS sold_price",
			"SUM(CASE WHEN action = 'CLOSE_LONG' THEN executed_volume ELSE 0 END) AS volume",
			"SUM(commission) AS commission",
			"MIN(CASE WHEN action = 'OPEN_LONG' THEN executed_at END) AS bought_at",
			"MAX(CASE WHEN action = 'CLOSE_LONG' THEN executed_at END) AS sold_at",
		).
		From("transactions").
		Where(squirrel.Eq{"succeeded": true}).
		GroupBy("code").
		Having("SUM(CASE WHEN action = 'CLOSE_LONG' THEN executed_volume ELSE 0 END) > 0").
		OrderBy("code").
		RunWith(l.db)

	rows, err := query.Query()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query round-trip summaries", err)
	}
	defer rows.Close()

	var summaries []types.CompletedTransaction

	for rows.Next() {
		var summary types.CompletedTransaction
		if err := rows.Scan(
			&summary.Code, &summary.BuyPrice, &summary.SoldPrice, &summary.Volume,
			&summary.Commission, &summary.BoughtAt, &summary.SoldAt,
		); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan round-trip summary", err)
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to iterate round-trip summaries", err)
	}

	return summaries, nil
}

// Close releases the database handle.
func (l *Ledger) Close() error {
	if err := l.db.Close(); err != nil {
		l.log.Error("Failed to close ledger database", zap.Error(err))

		return err
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"model-catalog/internal/model"
)

const modelColumns = `id, object_type, created_at, owned_by, model_type, local_path, base_url,
	model_path, available_roles, max_input_token_window_size, max_output_token_size`

// foldedColumns hold Unicode lower-cased copies used by the filters, since
// SQLite's lower() only folds ASCII.
const foldedColumns = `id_folded, owned_by_folded, model_type_folded`

const parameterColumns = `temperature, top_p, top_k, frequency_penalty, presence_penalty,
	repetition_penalty, min_p, top_a`

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) CatalogRepository {
	return &sqliteRepository{db: db}
}

// CreateModel inserts the entry and, when given, its parameters in one transaction.
func (r *sqliteRepository) CreateModel(ctx context.Context, rec *ModelRecord, params *model.ModelOptionalParameters) error {
	roles, err := json.Marshal(rec.Info.AvailableRoles)
	if err != nil {
		return fmt.Errorf("could not encode available roles: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertModel := `INSERT INTO models (` + modelColumns + `, ` + foldedColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, insertModel,
		rec.Info.ID,
		rec.Info.ObjectType,
		rec.Info.CreatedAt.UTC(),
		rec.Info.OwnedBy,
		rec.ModelType,
		rec.Info.LocalPath,
		rec.Info.BaseURL,
		rec.Info.ModelPath,
		string(roles),
		rec.Info.MaxInputTokenWindowSize,
		rec.Info.MaxOutputTokenSize,
		fold(rec.Info.ID),
		fold(rec.Info.OwnedBy),
		fold(rec.ModelType),
	)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintUnique) || isConstraint(err, sqlite3.ErrConstraintPrimaryKey) {
			return fmt.Errorf("%w: model %q", ErrDuplicate, rec.Info.ID)
		}
		return fmt.Errorf("could not insert model: %w", err)
	}

	if params != nil {
		if err := upsertParameters(ctx, tx, rec.Info.ID, *params); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetModel(ctx context.Context, id string) (*ModelRecord, error) {
	query := "SELECT " + modelColumns + " FROM models WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, id)
	rec, err := scanModel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *sqliteRepository) DeleteModel(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM models WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("could not delete model: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) QueryModels(ctx context.Context, q model.IncomingModelQuery) ([]model.ModelInfo, error) {
	where, args := buildFilter(q)
	query := "SELECT " + modelColumns + " FROM models" + where + " ORDER BY seq ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query models: %w", err)
	}
	defer rows.Close()

	models := []model.ModelInfo{}
	for rows.Next() {
		rec, err := scanModel(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, rec.Info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate models: %w", err)
	}
	return models, nil
}

// buildFilter turns the present query fields into a WHERE clause. Absent
// fields add no condition.
func buildFilter(q model.IncomingModelQuery) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if name, ok := q.ModelName(); ok {
		conds = append(conds, "instr(id_folded, ?) > 0")
		args = append(args, fold(name))
	}
	if owner, ok := q.ModelOwner(); ok {
		conds = append(conds, "owned_by_folded = ?")
		args = append(args, fold(owner))
	}
	if modelType, ok := q.ModelType(); ok {
		conds = append(conds, "model_type_folded = ?")
		args = append(args, fold(modelType))
	}
	if minContext, ok := q.ModelInputContextGreaterThan(); ok {
		conds = append(conds, "max_input_token_window_size > ?")
		args = append(args, minContext)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *sqliteRepository) GetParameters(ctx context.Context, modelID string) (*model.ModelOptionalParameters, error) {
	query := "SELECT " + parameterColumns + " FROM model_parameters WHERE model_id = ?"
	var p model.ModelOptionalParameters
	err := r.db.QueryRowContext(ctx, query, modelID).Scan(
		&p.Temperature, &p.TopP, &p.TopK, &p.FrequencyPenalty,
		&p.PresencePenalty, &p.RepetitionPenalty, &p.MinP, &p.TopA,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetParametersForModels loads stored parameters for several models at once.
// Models without stored parameters are absent from the result.
func (r *sqliteRepository) GetParametersForModels(ctx context.Context, modelIDs []string) (map[string]model.ModelOptionalParameters, error) {
	out := make(map[string]model.ModelOptionalParameters, len(modelIDs))
	if len(modelIDs) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(modelIDs)), ",")
	args := make([]interface{}, len(modelIDs))
	for i, id := range modelIDs {
		args[i] = id
	}

	query := "SELECT model_id, " + parameterColumns + " FROM model_parameters WHERE model_id IN (" + placeholders + ")"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query parameters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var p model.ModelOptionalParameters
		if err := rows.Scan(&id,
			&p.Temperature, &p.TopP, &p.TopK, &p.FrequencyPenalty,
			&p.PresencePenalty, &p.RepetitionPenalty, &p.MinP, &p.TopA,
		); err != nil {
			return nil, err
		}
		out[id] = p
	}
	return out, rows.Err()
}

func (r *sqliteRepository) SetParameters(ctx context.Context, modelID string, params model.ModelOptionalParameters) error {
	return upsertParameters(ctx, r.db, modelID, params)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func upsertParameters(ctx context.Context, db execer, modelID string, p model.ModelOptionalParameters) error {
	query := `
		INSERT INTO model_parameters (model_id, ` + parameterColumns + `, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(model_id) DO UPDATE SET
			temperature = excluded.temperature,
			top_p = excluded.top_p,
			top_k = excluded.top_k,
			frequency_penalty = excluded.frequency_penalty,
			presence_penalty = excluded.presence_penalty,
			repetition_penalty = excluded.repetition_penalty,
			min_p = excluded.min_p,
			top_a = excluded.top_a,
			updated_at = excluded.updated_at
	`
	_, err := db.ExecContext(ctx, query, modelID,
		p.Temperature, p.TopP, p.TopK, p.FrequencyPenalty,
		p.PresencePenalty, p.RepetitionPenalty, p.MinP, p.TopA,
		time.Now().UTC(),
	)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintForeignKey) {
			return fmt.Errorf("%w: model %q", ErrNotFound, modelID)
		}
		return fmt.Errorf("could not store parameters: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanModel(s scanner) (*ModelRecord, error) {
	var rec ModelRecord
	var roles string
	err := s.Scan(
		&rec.Info.ID,
		&rec.Info.ObjectType,
		&rec.Info.CreatedAt,
		&rec.Info.OwnedBy,
		&rec.ModelType,
		&rec.Info.LocalPath,
		&rec.Info.BaseURL,
		&rec.Info.ModelPath,
		&roles,
		&rec.Info.MaxInputTokenWindowSize,
		&rec.Info.MaxOutputTokenSize,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(roles), &rec.Info.AvailableRoles); err != nil {
		return nil, fmt.Errorf("could not decode available roles for %q: %w", rec.Info.ID, err)
	}
	return &rec, nil
}

// fold is the case folding shared by the stored search columns and the
// filter arguments.
func fold(s string) string { return strings.ToLower(s) }

func isConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == code
}

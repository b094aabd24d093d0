package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelbook/internal/pkg/textlist"
)

// ColumnReport summarizes one list column after a normalization run.
type ColumnReport struct {
	Table     string `json:"table"`
	Column    string `json:"column"`
	Scanned   int    `json:"scanned"`
	Rewritten int    `json:"rewritten"`
}

type listRow struct {
	ID    int64
	Value *string
}

// NormalizeLists rewrites every stored list value that is not already a
// canonical JSON array. NULL values are left alone. With dryRun set nothing
// is written and the report counts the rows that would change.
func NormalizeLists(ctx context.Context, db *gorm.DB, batchSize int, dryRun bool, log *zap.Logger) ([]ColumnReport, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if batchSize <= 0 {
		batchSize = 200
	}

	reports := make([]ColumnReport, 0, len(ListColumns()))
	for _, col := range ListColumns() {
		rep, err := normalizeColumn(ctx, db, col, batchSize, dryRun, log)
		if err != nil {
			return reports, fmt.Errorf("normalize %s.%s: %w", col.Table, col.Column, err)
		}
		log.Info("list column normalized",
			zap.String("table", rep.Table),
			zap.String("column", rep.Column),
			zap.Int("scanned", rep.Scanned),
			zap.Int("rewritten", rep.Rewritten),
			zap.Bool("dry_run", dryRun),
		)
		reports = append(reports, rep)
	}
	return reports, nil
}

func normalizeColumn(ctx context.Context, db *gorm.DB, col ListColumn, batchSize int, dryRun bool, log *zap.Logger) (ColumnReport, error) {
	rep := ColumnReport{Table: col.Table, Column: col.Column}
	opts := col.Options.WithObserver(textlist.ZapObserver(log))

	var lastID int64
	for {
		var rows []listRow
		err := db.WithContext(ctx).
			Table(col.Table).
			Select("id, "+col.Column+" AS value").
			Where("id > ?", lastID).
			Order("id").
			Limit(batchSize).
			Scan(&rows).Error
		if err != nil {
			return rep, err
		}
		if len(rows) == 0 {
			return rep, nil
		}

		for _, row := range rows {
			lastID = row.ID
			rep.Scanned++
			if row.Value == nil || textlist.IsCanonical(*row.Value, col.Options) {
				continue
			}
			rep.Rewritten++
			if dryRun {
				continue
			}
			encoded := textlist.Encode(textlist.ParseWith(*row.Value, opts))
			err := db.WithContext(ctx).
				Table(col.Table).
				Where("id = ?", row.ID).
				UpdateColumn(col.Column, encoded).Error
			if err != nil {
				return rep, err
			}
		}
	}
}

// Package pipeline orchestrates one converter run: load the item index,
// fetch each requested monster, convert it, and persist all output in a
// single write phase at the end.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/athena-tools/mobgen/internal/config"
	"github.com/athena-tools/mobgen/internal/convert"
	"github.com/athena-tools/mobgen/internal/divinepride"
	"github.com/athena-tools/mobgen/internal/export"
	"github.com/athena-tools/mobgen/internal/itemdb"
)

// Fetcher retrieves one monster record per id.
type Fetcher interface {
	Monster(ctx context.Context, id int) (*divinepride.Monster, error)
}

// Summary reports what a run produced and what needs operator review.
type Summary struct {
	Requested int
	Created   int
	NotFound  []int
	Warnings  []convert.Warning
}

// Runner executes converter runs. Construct with New; a Runner is not safe
// for concurrent use, matching the strictly sequential run model.
type Runner struct {
	cfg     config.Config
	logger  *zap.Logger
	fetcher Fetcher

	// OnFetched, when non-nil, is called after each id is processed,
	// successfully or not. The CLI uses it to advance its progress bar.
	OnFetched func(id int)
}

// New constructs a Runner.
//
// Precondition: cfg must have passed validation; logger and fetcher must be
// non-nil.
func New(cfg config.Config, logger *zap.Logger, fetcher Fetcher) *Runner {
	return &Runner{cfg: cfg, logger: logger, fetcher: fetcher}
}

// result is one monster's accumulated output, replaced wholesale when the
// same id appears again later in the input list.
type result struct {
	entry      convert.MobEntry
	skillLines []string
	spawnLines []string
}

// Run converts the given monster ids and persists all artifacts.
//
// Per-id failures (network errors, unknown ids) are recorded in the summary
// and skipped; they never abort the batch. Output files are only touched in
// the single write phase after every id has been processed, so a run that
// fails mid-fetch leaves all artifacts exactly as they were.
//
// Precondition: ids must be non-empty.
// Postcondition: on success, the mob database holds exactly one entry per
// distinct processed id (last occurrence wins for duplicates), and the skill
// and spawn files have the new lines appended.
func (r *Runner) Run(ctx context.Context, ids []int) (*Summary, error) {
	if len(ids) == 0 {
		return nil, errors.New("no monster ids to process")
	}

	index, err := itemdb.Load(r.cfg.ItemDB.Paths)
	if err != nil {
		return nil, fmt.Errorf("loading item databases: %w", err)
	}
	r.logger.Info("item index loaded",
		zap.Int("items", index.Len()),
		zap.Int("files", len(r.cfg.ItemDB.Paths)))

	summary := &Summary{Requested: len(ids)}

	results := make(map[int]*result)
	var order []int

	for _, id := range ids {
		res, err := r.process(ctx, id, index, summary)
		if r.OnFetched != nil {
			r.OnFetched(id)
		}
		if err != nil {
			if errors.Is(err, divinepride.ErrNotFound) {
				r.logger.Warn("monster not found, skipping", zap.Int("id", id))
			} else {
				r.logger.Warn("fetch failed, skipping", zap.Int("id", id), zap.Error(err))
			}
			summary.NotFound = append(summary.NotFound, id)
			continue
		}

		if _, seen := results[res.entry.ID]; !seen {
			order = append(order, res.entry.ID)
		}
		// Last occurrence wins for duplicate ids in one input list.
		results[res.entry.ID] = res
	}

	if err := r.write(results, order); err != nil {
		return nil, err
	}

	summary.Created = len(order)
	return summary, nil
}

func (r *Runner) process(ctx context.Context, id int, index *itemdb.Index, summary *Summary) (*result, error) {
	m, err := r.fetcher.Monster(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, warnings := convert.BuildEntry(m, index, r.cfg.MvpDamageTaken)

	directives, skillWarnings := convert.TranslateSkills(m)
	warnings = append(warnings, skillWarnings...)

	res := &result{entry: entry}
	for _, d := range directives {
		res.skillLines = append(res.skillLines, d.Line())
	}
	for _, s := range convert.BuildSpawns(m, r.cfg.Spawn) {
		res.spawnLines = append(res.spawnLines, s.Line())
	}

	for _, w := range warnings {
		r.logger.Warn("conversion warning",
			zap.Int("monster", w.MonsterID),
			zap.String("kind", string(w.Kind)),
			zap.String("detail", w.Context))
	}
	summary.Warnings = append(summary.Warnings, warnings...)

	r.logger.Debug("monster converted",
		zap.Int("id", id),
		zap.String("name", entry.Name),
		zap.Int("skills", len(res.skillLines)),
		zap.Int("spawns", len(res.spawnLines)))

	return res, nil
}

// write is the single persistence phase: mob_db upsert first, then the
// append-only artifacts.
func (r *Runner) write(results map[int]*result, order []int) error {
	if len(order) == 0 {
		r.logger.Info("nothing to write")
		return nil
	}

	db, err := export.LoadMobDB(r.cfg.Output.MobDB)
	if err != nil {
		return err
	}

	var skillLines, spawnLines []string
	for _, id := range order {
		res := results[id]
		db.Upsert(res.entry)
		skillLines = append(skillLines, res.skillLines...)
		spawnLines = append(spawnLines, res.spawnLines...)
	}

	if err := export.SaveMobDB(r.cfg.Output.MobDB, db); err != nil {
		return err
	}
	if err := export.AppendLines(r.cfg.Output.Skill, skillLines); err != nil {
		return err
	}
	if err := export.AppendLines(r.cfg.Output.Spawn, spawnLines); err != nil {
		return err
	}

	r.logger.Info("artifacts written",
		zap.String("mob_db", r.cfg.Output.MobDB),
		zap.Int("entries", len(order)),
		zap.Int("skill_lines", len(skillLines)),
		zap.Int("spawn_lines", len(spawnLines)))
	return nil
}

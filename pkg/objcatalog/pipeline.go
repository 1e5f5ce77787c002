package objcatalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/assets"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/baseline"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/diff"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/output"
)

// Result summarizes a completed run.
type Result struct {
	// Items is the extracted snapshot that was published.
	Items []models.Item `json:"-"`
	// FirstRun is true when no usable baseline existed.
	FirstRun bool `json:"first_run"`
	// Diff is the comparison with the baseline, nil on the first run.
	Diff *diff.Result `json:"diff,omitempty"`
	// ImagesChecked is false when the image directory does not exist.
	ImagesChecked bool `json:"images_checked"`
	// ImageDir is the directory checked for icon images.
	ImageDir string `json:"image_dir"`
	// MissingImages lists items without an icon image.
	MissingImages []models.Item `json:"missing_images,omitempty"`
	// Target is the file the catalog was written to.
	Target string `json:"target"`
	// Baseline is the snapshot file saved for the next run.
	Baseline string `json:"baseline"`
}

// Run executes extract, diff, write and snapshot in order. Any returned
// error is fatal; diagnostics (missing baseline, missing images) are not
// errors and are reported through Result.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Resolve()
	log := cfg.logger()

	writer, err := output.New(cfg.Mode, cfg.Output, cfg.Marker)
	if err != nil {
		return nil, err
	}

	if err := checkInputs(cfg); err != nil {
		return nil, err
	}

	log.Info("[1/4] reading workbook", "path", cfg.Workbook, "sheet", cfg.Sheet)
	ext, err := Extract(cfg.Workbook, cfg.Sheet, cfg.Layout)
	if err != nil {
		return nil, NewStageError(StageExtract, cfg.Workbook, err)
	}
	if ext.ShortRows > 0 {
		log.Debug("rows end before the last mapped column", "rows", ext.ShortRows)
	}
	log.Info("extracted objects", "items", len(ext.Items), "range", ext.Range)

	log.Info("[2/4] checking changes", "baseline", cfg.Baseline)
	store := &baseline.Store{Path: cfg.Baseline}
	res := &Result{
		Items:    ext.Items,
		Target:   writer.Target(),
		Baseline: cfg.Baseline,
		ImageDir: cfg.Images,
	}
	prev, err := store.Load()
	switch {
	case errors.Is(err, baseline.ErrNoBaseline):
		log.Info("no previous data (first run)")
		res.FirstRun = true
	case err != nil:
		log.Warn("ignoring unreadable baseline", "error", err)
		res.FirstRun = true
	default:
		res.Diff = diff.Compare(ext.Items, prev)
		log.Info("compared with previous data",
			"previous", res.Diff.PrevCount,
			"current", res.Diff.NewCount,
			"added", len(res.Diff.Added),
			"removed", len(res.Diff.Removed),
			"modified", len(res.Diff.Modified),
		)
	}

	res.MissingImages, res.ImagesChecked = assets.MissingImages(cfg.Images, ext.Items)
	if res.ImagesChecked && len(res.MissingImages) > 0 {
		log.Warn("objects without image", "count", len(res.MissingImages), "dir", cfg.Images)
	}

	log.Info("[3/4] writing catalog", "mode", cfg.Mode, "path", writer.Target())
	if err := writer.Write(ext.Items); err != nil {
		return res, NewStageError(StageWrite, writer.Target(), err)
	}

	log.Info("[4/4] saving current data", "path", cfg.Baseline)
	if err := store.Save(ext.Items); err != nil {
		return res, NewStageError(StageSnapshot, cfg.Baseline, err)
	}

	return res, nil
}

// checkInputs verifies the required files exist before any work is done.
func checkInputs(cfg Config) error {
	if _, err := os.Stat(cfg.Workbook); err != nil {
		if os.IsNotExist(err) {
			return NewStageError(StageCheck, cfg.Workbook, ErrWorkbookNotFound)
		}
		return NewStageError(StageCheck, cfg.Workbook, err)
	}
	if cfg.Mode == output.ModeHTML {
		if _, err := os.Stat(cfg.Output); err != nil {
			if os.IsNotExist(err) {
				return NewStageError(StageCheck, cfg.Output, ErrTemplateNotFound)
			}
			return NewStageError(StageCheck, cfg.Output, fmt.Errorf("stat template: %w", err))
		}
	}
	return nil
}

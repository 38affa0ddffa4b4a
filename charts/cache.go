package charts

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	_ "modernc.org/sqlite"
)

// Manifest tracks which chart specs have already been rendered so unchanged
// charts are skipped on rebuild. It lives in a small SQLite file next to the
// generated PNGs.
type Manifest struct {
	db *sql.DB
}

// OpenManifest opens (and if necessary bootstraps) the manifest database
// under chartDir.
func OpenManifest(chartDir string) (*Manifest, error) {
	if err := os.MkdirAll(chartDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}

	dbPath := filepath.Join(chartDir, "charts.db")
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open chart manifest: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping chart manifest: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate chart manifest: %w", err)
	}
	return &Manifest{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS rendered_charts (
			file_name  TEXT PRIMARY KEY,
			digest     TEXT NOT NULL,
			build_id   TEXT NOT NULL,
			slide      INTEGER NOT NULL,
			rendered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// Close releases the underlying database.
func (m *Manifest) Close() error {
	return m.db.Close()
}

// Digest returns the content hash of a spec. Any change to the data, the
// palette colors baked into the spec, or the output geometry changes the
// digest and forces a re-render.
func Digest(spec Spec) (string, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("failed to hash chart spec %s: %w", spec.FileName, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Fresh reports whether the spec's output file exists and matches the digest
// recorded at its last render.
func (m *Manifest) Fresh(spec Spec, outDir string) (bool, error) {
	digest, err := Digest(spec)
	if err != nil {
		return false, err
	}
	var recorded string
	err = m.db.QueryRow(
		"SELECT digest FROM rendered_charts WHERE file_name = ?", spec.FileName,
	).Scan(&recorded)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read chart manifest: %w", err)
	}
	if recorded != digest {
		return false, nil
	}
	if _, err := os.Stat(filepath.Join(outDir, spec.FileName)); err != nil {
		// File was deleted out from under the manifest.
		return false, nil
	}
	return true, nil
}

// Record stores the spec digest after a successful render.
func (m *Manifest) Record(spec Spec, buildID string) error {
	digest, err := Digest(spec)
	if err != nil {
		return err
	}
	_, err = m.db.Exec(`
		INSERT INTO rendered_charts (file_name, digest, build_id, slide, rendered_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(file_name) DO UPDATE SET
			digest = excluded.digest,
			build_id = excluded.build_id,
			slide = excluded.slide,
			rendered_at = CURRENT_TIMESTAMP
	`, spec.FileName, digest, buildID, spec.Slide)
	if err != nil {
		return fmt.Errorf("failed to record chart render: %w", err)
	}
	return nil
}

// GenerateResult summarizes one chart generation pass.
type GenerateResult struct {
	Rendered []string // files rendered this pass
	Skipped  []string // files skipped because they were fresh
	Failed   map[string]error
}

// Generate renders every spec that is stale, skipping fresh ones. Failures
// are isolated per chart so one bad spec does not block the rest.
func Generate(specs []Spec, renderer *Renderer, manifest *Manifest, buildID string, force bool) GenerateResult {
	res := GenerateResult{Failed: make(map[string]error)}
	for _, spec := range specs {
		generateOne(spec, renderer, manifest, buildID, force, &res)
	}
	return res
}

// GenerateParallel is Generate with one goroutine per chart. Charts share no
// state beyond the manifest, which is safe for concurrent use.
func GenerateParallel(specs []Spec, renderer *Renderer, manifest *Manifest, buildID string, force bool) GenerateResult {
	res := GenerateResult{Failed: make(map[string]error)}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, spec := range specs {
		wg.Add(1)
		go func(spec Spec) {
			defer wg.Done()
			one := GenerateResult{Failed: make(map[string]error)}
			generateOne(spec, renderer, manifest, buildID, force, &one)
			mu.Lock()
			defer mu.Unlock()
			res.Rendered = append(res.Rendered, one.Rendered...)
			res.Skipped = append(res.Skipped, one.Skipped...)
			for name, err := range one.Failed {
				res.Failed[name] = err
			}
		}(spec)
	}
	wg.Wait()
	sort.Strings(res.Rendered)
	sort.Strings(res.Skipped)
	return res
}

func generateOne(spec Spec, renderer *Renderer, manifest *Manifest, buildID string, force bool, res *GenerateResult) {
	if !force && manifest != nil {
		fresh, err := manifest.Fresh(spec, renderer.OutDir)
		if err != nil {
			res.Failed[spec.FileName] = err
			return
		}
		if fresh {
			res.Skipped = append(res.Skipped, spec.FileName)
			return
		}
	}
	if _, err := renderer.Render(spec); err != nil {
		res.Failed[spec.FileName] = err
		return
	}
	if manifest != nil {
		if err := manifest.Record(spec, buildID); err != nil {
			res.Failed[spec.FileName] = err
			return
		}
	}
	res.Rendered = append(res.Rendered, spec.FileName)
}

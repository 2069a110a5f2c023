package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"
)

const fileTemplate = `-- {{.Name}} ({{.Direction}})
-- Created: {{.Created}}

`

// MigrationFile describes a generated up/down pair
type MigrationFile struct {
	Sequence uint
	Name     string
	UpPath   string
	DownPath string
}

// Entry is one migration found in a source
type Entry struct {
	Sequence uint
	Name     string
	HasDown  bool
}

// String formats the entry the way it appears on disk, without suffix
func (e Entry) String() string {
	return fmt.Sprintf("%06d_%s", e.Sequence, e.Name)
}

// CreateMigration writes the next sequence-numbered up/down pair into dir
func CreateMigration(dir, name string) (*MigrationFile, error) {
	slug := sanitizeName(name)
	if slug == "" {
		return nil, errors.New("migration name must contain letters or digits")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	existing, err := ListMigrations(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	var next uint = 1
	if n := len(existing); n > 0 {
		next = existing[n-1].Sequence + 1
	}

	base := Entry{Sequence: next, Name: slug}.String()
	mf := &MigrationFile{
		Sequence: next,
		Name:     slug,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}

	if err := writeFile(mf.UpPath, slug, "up"); err != nil {
		return nil, err
	}
	if err := writeFile(mf.DownPath, slug, "down"); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, err
	}
	return mf, nil
}

// ListMigrations returns the migrations in source ordered by sequence
func ListMigrations(source fs.FS) ([]Entry, error) {
	files, err := fs.Glob(source, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	byKey := make(map[string]*Entry)
	for _, f := range files {
		base, direction, ok := splitName(f)
		if !ok {
			continue
		}
		seqStr, name, ok := strings.Cut(base, "_")
		if !ok {
			continue
		}
		seq, err := strconv.ParseUint(seqStr, 10, 32)
		if err != nil {
			continue
		}
		e, found := byKey[base]
		if !found {
			e = &Entry{Sequence: uint(seq), Name: name}
			byKey[base] = e
		}
		if direction == "down" {
			e.HasDown = true
		}
	}

	out := make([]Entry, 0, len(byKey))
	for _, e := range byKey {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

func splitName(file string) (base, direction string, ok bool) {
	if base, ok = strings.CutSuffix(file, ".up.sql"); ok {
		return base, "up", true
	}
	if base, ok = strings.CutSuffix(file, ".down.sql"); ok {
		return base, "down", true
	}
	return "", "", false
}

func writeFile(path, name, direction string) error {
	tmpl := template.Must(template.New("migration").Parse(fileTemplate))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return tmpl.Execute(f, map[string]string{
		"Name":      name,
		"Direction": direction,
		"Created":   time.Now().UTC().Format(time.RFC3339),
	})
}

// sanitizeName lower-cases name and joins its words with underscores
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			if s := b.String(); s != "" && !strings.HasSuffix(s, "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Theme names stored under KeyTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// KeyTheme is the preference key for the UI color theme.
const KeyTheme = "theme"

// Preference is a single stored key/value setting.
type Preference struct {
	Key   string
	Value string
}

// PrefsRepo persists UI preferences.
type PrefsRepo interface {
	// Get returns the value for key and whether it was set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// All returns every preference ordered by key.
	All(ctx context.Context) ([]Preference, error)

	// Theme returns the stored theme, ThemeLight when unset.
	Theme(ctx context.Context) (string, error)

	// SetTheme stores the theme. Only ThemeDark and ThemeLight are accepted.
	SetTheme(ctx context.Context, theme string) error
}

type prefsRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *prefsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := builder().
		Select("value").
		From(entsql.Table(prefsTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *prefsRepo) Set(ctx context.Context, key, value string) error {
	query, args := builder().
		Insert(prefsTable).
		Columns("key", "value").
		Values(key, value).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (r *prefsRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete(prefsTable).
		Where(entsql.EQ("key", key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}

func (r *prefsRepo) All(ctx context.Context) ([]Preference, error) {
	query, args := builder().
		Select("key", "value").
		From(entsql.Table(prefsTable)).
		OrderBy("key").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []Preference
	for rows.Next() {
		var p Preference
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func (r *prefsRepo) Theme(ctx context.Context) (string, error) {
	v, ok, err := r.Get(ctx, KeyTheme)
	if err != nil {
		return "", err
	}
	if !ok || (v != ThemeDark && v != ThemeLight) {
		return ThemeLight, nil
	}
	return v, nil
}

func (r *prefsRepo) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("unknown theme %q (want %s or %s)", theme, ThemeDark, ThemeLight)
	}
	return r.Set(ctx, KeyTheme, theme)
}

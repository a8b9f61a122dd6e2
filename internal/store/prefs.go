package store

import "context"

// prefsRepo implements PrefsRepo on the keyed storage.
type prefsRepo struct {
	kv *Store
}

func (r *prefsRepo) Theme(ctx context.Context) (string, error) {
	v, _, err := r.kv.Get(ctx, ThemeKey)
	return v, err
}

func (r *prefsRepo) SetTheme(ctx context.Context, theme string) error {
	return r.kv.Put(ctx, ThemeKey, theme)
}

func (r *prefsRepo) ResetTheme(ctx context.Context) error {
	return r.kv.Delete(ctx, ThemeKey)
}

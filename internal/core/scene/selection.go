package scene

import "context"

// EditSelected scopes host selection to a single handle for the duration of
// fn: every other object is deselected first, the target stays selected while
// fn runs, and the selection is cleared again on every exit path, including
// when fn or the host fails.
func EditSelected(ctx context.Context, host Host, h Handle, fn func(context.Context) error) (err error) {
	if err = host.DeselectAll(ctx); err != nil {
		return err
	}
	defer func() {
		if derr := host.DeselectAll(ctx); derr != nil && err == nil {
			err = derr
		}
	}()

	if err = host.Select(ctx, h); err != nil {
		return err
	}
	return fn(ctx)
}

// editNew scopes a creation: selection is cleared before fn creates the new
// host object (hosts select freshly created objects) and cleared again after,
// on every exit path.
func editNew(ctx context.Context, host Host, fn func(context.Context) error) (err error) {
	if err = host.DeselectAll(ctx); err != nil {
		return err
	}
	defer func() {
		if derr := host.DeselectAll(ctx); derr != nil && err == nil {
			err = derr
		}
	}()

	return fn(ctx)
}

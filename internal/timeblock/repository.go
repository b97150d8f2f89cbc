package timeblock

import "context"

// DayStore persists the per-day timeblock list and ordering index.
// Keys are date strings in MMM_DD_YYYY form (see dateutil.DayKey).
// Implementations replace the full list/order atomically on every write.
type DayStore interface {
	// Timeblocks returns the day's blocks in stored (chronological) order.
	Timeblocks(ctx context.Context, dayKey string) ([]*Timeblock, error)
	SetTimeblocks(ctx context.Context, dayKey string, blocks []*Timeblock) error

	Order(ctx context.Context, dayKey string) ([]int64, error)
	SetOrder(ctx context.Context, dayKey string, ids []int64) error

	// LastID is the per-installation id counter for new timeblocks.
	LastID(ctx context.Context) (int64, error)
	SetLastID(ctx context.Context, id int64) error
}

// CategoryStore persists the global category list.
type CategoryStore interface {
	Categories(ctx context.Context) ([]*Category, error)
	// CreateCategory rejects blank and duplicate (trimmed, case-sensitive) names.
	CreateCategory(ctx context.Context, name, color string) (*Category, error)
	RenameCategory(ctx context.Context, id int64, name string) error
	RecolorCategory(ctx context.Context, id int64, color string) error
	// DeleteCategory removes the category only; timeblocks referencing it
	// by name are left untouched.
	DeleteCategory(ctx context.Context, id int64) error
}

// TaskNameStore persists free-text task names for autocomplete.
type TaskNameStore interface {
	TaskNames(ctx context.Context) ([]*TaskName, error)
	CreateTaskName(ctx context.Context, name string) (*TaskName, error)
}

// Store bundles the three persistence collaborators.
type Store interface {
	DayStore
	CategoryStore
	TaskNameStore
}

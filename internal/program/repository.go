package program

import "context"

// Repository defines the storage interface for the weekly lineup.
type Repository interface {
	// CreateProgram adds a program. Returns ErrProgramOverlap if it shares a
	// slot with an existing program on the same weekday.
	CreateProgram(ctx context.Context, p *Program) error

	// GetProgram retrieves a program by ID. Returns ErrProgramNotFound if missing.
	GetProgram(ctx context.Context, id int64) (*Program, error)

	// DeleteProgram removes a program by ID.
	DeleteProgram(ctx context.Context, id int64) error

	// ListPrograms returns every program ordered by weekday and slot.
	ListPrograms(ctx context.Context) ([]*Program, error)

	// ListProgramsByWeekday returns the programs of one weekday ordered by slot.
	ListProgramsByWeekday(ctx context.Context, weekday int) ([]*Program, error)

	// Close releases any resources held by the repository.
	Close() error
}

package usecase

import (
	"context"
	"strings"
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TemplateInput struct {
	Name        string
	Description string
	IsDefault   bool
	Sections    []entities.TemplateSection
}

// ITemplateUseCase manages quote templates.
//
// Default resolution used when binding a quote:
//   - an explicit id that exists wins
//   - otherwise the template flagged default
//   - otherwise the oldest template
//   - with no templates at all the quote is bound to empty content
type ITemplateUseCase interface {
	List(ctx context.Context) ([]entities.Template, error)
	Get(ctx context.Context, id string) (entities.Template, error)
	Create(ctx context.Context, in TemplateInput) (entities.Template, error)
	SetDefault(ctx context.Context, id string) (entities.Template, error)
	Resolve(ctx context.Context, id string) (entities.Template, bool, error)
}

type TemplateUseCase struct {
	store  interfaces.IRecordStore
	logger *zap.Logger
	now    func() time.Time
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(store interfaces.IRecordStore, logger *zap.Logger) *TemplateUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateUseCase{store: store, logger: logger, now: time.Now}
}

// List returns the owner's templates, oldest first.
func (u *TemplateUseCase) List(ctx context.Context) ([]entities.Template, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := u.store.Select(ctx, TableTemplates, interfaces.Match{columnOwnerID: owner},
		interfaces.Order{Column: columnCreatedAt})
	if err != nil {
		return nil, remoteErr("templates.select", err)
	}
	out := make([]entities.Template, 0, len(recs))
	for _, r := range recs {
		out = append(out, templateFromRecord(r))
	}
	return out, nil
}

func (u *TemplateUseCase) Get(ctx context.Context, id string) (entities.Template, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return entities.Template{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Template{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	recs, err := u.store.Select(ctx, TableTemplates, interfaces.Match{columnID: id, columnOwnerID: owner})
	if err != nil {
		return entities.Template{}, remoteErr("templates.select", err)
	}
	if len(recs) == 0 {
		return entities.Template{}, &NotFoundError{Kind: "template", ID: id}
	}
	return templateFromRecord(recs[0]), nil
}

// Create stores a new template. The owner's first template becomes the default.
func (u *TemplateUseCase) Create(ctx context.Context, in TemplateInput) (entities.Template, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return entities.Template{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Template{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	existing, err := u.List(ctx)
	if err != nil {
		return entities.Template{}, err
	}
	makeDefault := in.IsDefault || len(existing) == 0
	if makeDefault && len(existing) > 0 {
		if err := u.clearDefault(ctx, owner); err != nil {
			return entities.Template{}, err
		}
	}

	now := u.now().UTC()
	sections := in.Sections
	if sections == nil {
		sections = []entities.TemplateSection{}
	}
	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = uuid.NewString()
		}
	}
	t := entities.Template{
		ID:          uuid.NewString(),
		OwnerID:     owner,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		IsDefault:   makeDefault,
		Sections:    sections,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	inserted, err := u.store.Insert(ctx, TableTemplates, []interfaces.Record{templateToRecord(t)})
	if err != nil {
		return entities.Template{}, remoteErr("templates.insert", err)
	}
	if len(inserted) == 0 {
		return t, nil
	}
	return templateFromRecord(inserted[0]), nil
}

func (u *TemplateUseCase) clearDefault(ctx context.Context, owner string) error {
	_, err := u.store.Update(ctx, TableTemplates,
		interfaces.Match{columnOwnerID: owner, "is_default": true},
		interfaces.Record{"is_default": false, columnUpdatedAt: interfaces.FormatTimestamp(u.now())},
	)
	if err != nil {
		return remoteErr("templates.update", err)
	}
	return nil
}

// SetDefault flags id as the owner's only default template.
func (u *TemplateUseCase) SetDefault(ctx context.Context, id string) (entities.Template, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return entities.Template{}, err
	}
	if _, err := u.Get(ctx, id); err != nil {
		return entities.Template{}, err
	}
	if err := u.clearDefault(ctx, owner); err != nil {
		return entities.Template{}, err
	}
	rows, err := u.store.Update(ctx, TableTemplates,
		interfaces.Match{columnID: strings.TrimSpace(id), columnOwnerID: owner},
		interfaces.Record{"is_default": true, columnUpdatedAt: interfaces.FormatTimestamp(u.now())},
	)
	if err != nil {
		return entities.Template{}, remoteErr("templates.update", err)
	}
	if len(rows) == 0 {
		return entities.Template{}, &NotFoundError{Kind: "template", ID: id}
	}
	u.logger.Info("[template][usecase] default template changed", zap.String("template_id", id))
	return templateFromRecord(rows[0]), nil
}

// Resolve picks the template a new quote binds to. It reports false when the
// owner has no templates.
func (u *TemplateUseCase) Resolve(ctx context.Context, id string) (entities.Template, bool, error) {
	templates, err := u.List(ctx)
	if err != nil {
		return entities.Template{}, false, err
	}
	id = strings.TrimSpace(id)
	if id != "" {
		for _, t := range templates {
			if t.ID == id {
				return t, true, nil
			}
		}
		u.logger.Warn("[template][usecase] template not found, using default", zap.String("template_id", id))
	}
	for _, t := range templates {
		if t.IsDefault {
			return t, true, nil
		}
	}
	if len(templates) > 0 {
		return templates[0], true, nil
	}
	return entities.Template{}, false, nil
}

package usecase

import (
	"context"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IUploadUseCase manages the list of confirmed imports.
type IUploadUseCase interface {
	List(ctx context.Context, includeDeleted bool) ([]entities.Upload, error)
	Record(ctx context.Context, u entities.Upload) (entities.Upload, error)
	SoftDelete(ctx context.Context, id string) (entities.Upload, error)
	Restore(ctx context.Context, id string) (entities.Upload, error)
	Remove(ctx context.Context, id string) (int, error)
	RemoveBatch(ctx context.Context, kind entities.UploadKind, batchID string) (int, error)
}

type UploadUseCase struct {
	coll      *Collection[entities.Upload]
	customers ICustomerUseCase
	pricebook IPricebookUseCase
	archive   interfaces.IUploadArchive
	logger    *zap.Logger
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

// NewUploadUseCase wires the upload list to the collections it removes from.
// archive may be nil.
func NewUploadUseCase(store interfaces.IRecordStore, customers ICustomerUseCase, pricebook IPricebookUseCase, archive interfaces.IUploadArchive, logger *zap.Logger) *UploadUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadUseCase{
		coll:      newCollection(store, uploadCodec, logger),
		customers: customers,
		pricebook: pricebook,
		archive:   archive,
		logger:    logger,
	}
}

func (u *UploadUseCase) List(ctx context.Context, includeDeleted bool) ([]entities.Upload, error) {
	items, err := u.coll.Items(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return items, nil
	}
	out := items[:0]
	for _, it := range items {
		if !it.Deleted {
			out = append(out, it)
		}
	}
	return out, nil
}

// Record stores the upload row of a confirmed import. The upload id is its batch id.
func (u *UploadUseCase) Record(ctx context.Context, up entities.Upload) (entities.Upload, error) {
	if !up.Kind.Valid() {
		return entities.Upload{}, &ValidationError{Field: "kind", Reason: "must be customers or pricebook"}
	}
	added, err := u.coll.AddMany(ctx, []entities.Upload{up}, up.ID)
	if err != nil {
		return entities.Upload{}, err
	}
	return added[0], nil
}

// SoftDelete hides the upload from the list. Its records are untouched.
func (u *UploadUseCase) SoftDelete(ctx context.Context, id string) (entities.Upload, error) {
	return u.coll.SoftDelete(ctx, id)
}

func (u *UploadUseCase) Restore(ctx context.Context, id string) (entities.Upload, error) {
	return u.coll.Restore(ctx, id)
}

// Remove irreversibly deletes every record the upload produced, then the upload
// itself and its archived file. It returns how many records were removed.
func (u *UploadUseCase) Remove(ctx context.Context, id string) (int, error) {
	up, err := u.coll.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	var n int
	switch up.Kind {
	case entities.UploadKindCustomers:
		n, err = u.customers.RemoveByBatch(ctx, up.ID)
	case entities.UploadKindPricebook:
		n, err = u.pricebook.RemoveByBatch(ctx, up.ID)
	}
	if err != nil {
		return 0, err
	}

	if _, err := u.coll.RemoveByBatch(ctx, up.ID); err != nil {
		return n, err
	}

	if up.ArchiveKey != "" && u.archive != nil {
		if err := u.archive.Delete(ctx, up.ArchiveKey); err != nil {
			u.logger.Warn("[upload][usecase] archive delete failed",
				zap.String("upload_id", up.ID), zap.String("key", up.ArchiveKey), zap.Error(err))
		}
	}
	u.logger.Info("[upload][usecase] upload removed",
		zap.String("upload_id", up.ID), zap.String("kind", string(up.Kind)), zap.Int("records", n))
	return n, nil
}

// RemoveBatch deletes every record of kind tagged with batchID. An imported
// batch is removed through Remove so its upload row and archived file go too;
// manually added records have no upload row.
func (u *UploadUseCase) RemoveBatch(ctx context.Context, kind entities.UploadKind, batchID string) (int, error) {
	if !kind.Valid() {
		return 0, &ValidationError{Field: "kind", Reason: "must be customers or pricebook"}
	}
	up, err := u.coll.Get(ctx, batchID)
	switch {
	case err == nil && up.Kind == kind:
		return u.Remove(ctx, up.ID)
	case err != nil && !IsNotFound(err):
		return 0, err
	}
	if kind == entities.UploadKindPricebook {
		return u.pricebook.RemoveByBatch(ctx, batchID)
	}
	return u.customers.RemoveByBatch(ctx, batchID)
}

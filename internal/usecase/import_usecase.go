package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Canonical import fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldAddress1    = "address1"
	FieldCity        = "city"
	FieldState       = "state"
	FieldPostalCode  = "postal_code"
	FieldPrice       = "price"
	FieldDescription = "description"
)

// ImportFields lists the canonical fields a file of the given kind can map.
func ImportFields(kind entities.UploadKind) []string {
	switch kind {
	case entities.UploadKindCustomers:
		return []string{FieldName, FieldEmail, FieldAddress1, FieldCity, FieldState, FieldPostalCode}
	case entities.UploadKindPricebook:
		return []string{FieldName, FieldPrice, FieldDescription}
	}
	return nil
}

// ColumnMapping maps a canonical field to a header of the uploaded file.
type ColumnMapping map[string]string

// ImportPreview is the result of sniffing a file.
type ImportPreview struct {
	SessionID      string              `json:"session_id"`
	Kind           entities.UploadKind `json:"kind"`
	FileName       string              `json:"file_name"`
	Headers        []string            `json:"headers"`
	Preview        map[string]string   `json:"preview"`
	Fields         []string            `json:"fields"`
	RequiredFields []string            `json:"required_fields"`
}

// ImportResult describes a committed import.
type ImportResult struct {
	BatchID  string              `json:"batch_id"`
	Kind     entities.UploadKind `json:"kind"`
	FileName string              `json:"file_name"`
	RowCount int                 `json:"row_count"`
	Upload   *entities.Upload    `json:"upload,omitempty"`
}

// IImportUseCase runs the two-phase import: Sniff shows the headers, Confirm
// applies the user's column mapping and commits the records.
type IImportUseCase interface {
	Sniff(ctx context.Context, kind entities.UploadKind, fileName string, content []byte) (ImportPreview, error)
	Confirm(ctx context.Context, sessionID string, mapping ColumnMapping) (ImportResult, error)
	Cancel(ctx context.Context, sessionID string) error
}

const importSessionTTL = time.Hour

type importSession struct {
	ownerID   string
	kind      entities.UploadKind
	fileName  string
	content   []byte
	headers   csvTable
	createdAt time.Time
}

type ImportUseCase struct {
	customers ICustomerUseCase
	pricebook IPricebookUseCase
	uploads   IUploadUseCase
	archive   interfaces.IUploadArchive
	batchIDs  IBatchIDGenerator
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*importSession
}

var _ IImportUseCase = (*ImportUseCase)(nil)

// NewImportUseCase builds the import pipeline. uploads and archive may be nil.
func NewImportUseCase(
	customers ICustomerUseCase,
	pricebook IPricebookUseCase,
	uploads IUploadUseCase,
	archive interfaces.IUploadArchive,
	batchIDs IBatchIDGenerator,
	logger *zap.Logger,
) *ImportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportUseCase{
		customers: customers,
		pricebook: pricebook,
		uploads:   uploads,
		archive:   archive,
		batchIDs:  batchIDs,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*importSession),
	}
}

// Sniff reads the header row and the first data row and opens an import
// session holding the file until Confirm or Cancel.
func (u *ImportUseCase) Sniff(ctx context.Context, kind entities.UploadKind, fileName string, content []byte) (ImportPreview, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return ImportPreview{}, err
	}
	if !kind.Valid() {
		return ImportPreview{}, &ValidationError{Field: "kind", Reason: "must be customers or pricebook"}
	}

	head, err := readCSV(content, 1)
	if err != nil {
		u.logger.Warn("[import][usecase] sniff failed", zap.String("file_name", fileName), zap.Error(err))
		return ImportPreview{}, err
	}

	preview := map[string]string{}
	if len(head.rows) > 0 {
		preview = head.rowMap(head.rows[0])
	}

	id := uuid.NewString()
	u.mu.Lock()
	u.sweepLocked()
	u.sessions[id] = &importSession{
		ownerID:   owner,
		kind:      kind,
		fileName:  strings.TrimSpace(fileName),
		content:   append([]byte(nil), content...),
		headers:   head,
		createdAt: u.now(),
	}
	u.mu.Unlock()

	return ImportPreview{
		SessionID:      id,
		Kind:           kind,
		FileName:       strings.TrimSpace(fileName),
		Headers:        head.headers,
		Preview:        preview,
		Fields:         ImportFields(kind),
		RequiredFields: []string{FieldName},
	}, nil
}

// sweepLocked drops sessions nobody confirmed or cancelled. Caller holds u.mu.
func (u *ImportUseCase) sweepLocked() {
	cutoff := u.now().Add(-importSessionTTL)
	for id, s := range u.sessions {
		if s.createdAt.Before(cutoff) {
			delete(u.sessions, id)
		}
	}
}

func (u *ImportUseCase) session(owner, id string) (*importSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[strings.TrimSpace(id)]
	if !ok || s.ownerID != owner {
		return nil, &NotFoundError{Kind: "import session", ID: id}
	}
	return s, nil
}

// claim removes sess from the open sessions. Only one caller can win it.
func (u *ImportUseCase) claim(id string, sess *importSession) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	id = strings.TrimSpace(id)
	if u.sessions[id] != sess {
		return false
	}
	delete(u.sessions, id)
	return true
}

func (u *ImportUseCase) discard(id string) {
	u.mu.Lock()
	delete(u.sessions, strings.TrimSpace(id))
	u.mu.Unlock()
}

func (u *ImportUseCase) Cancel(ctx context.Context, sessionID string) error {
	owner, err := requireOwner(ctx)
	if err != nil {
		return err
	}
	if _, err := u.session(owner, sessionID); err != nil {
		return err
	}
	u.discard(sessionID)
	return nil
}

func validateMapping(kind entities.UploadKind, head csvTable, m ColumnMapping) error {
	allowed := map[string]bool{}
	for _, f := range ImportFields(kind) {
		allowed[f] = true
	}
	for field, header := range m {
		if !allowed[field] {
			return &ValidationError{Field: field, Reason: "not a field of a " + string(kind) + " import"}
		}
		if header != "" && !head.hasHeader(strings.TrimSpace(header)) {
			return &ValidationError{Field: field, Reason: "column " + header + " is not in the file"}
		}
	}
	if strings.TrimSpace(m[FieldName]) == "" {
		return &ValidationError{Field: FieldName, Reason: "a column must be mapped to name"}
	}
	return nil
}

// Confirm parses the whole file with the mapping and commits every row under
// one new batch id. A mapping error keeps the session so the user can retry;
// past that point the session is discarded whatever the outcome.
func (u *ImportUseCase) Confirm(ctx context.Context, sessionID string, mapping ColumnMapping) (ImportResult, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	sess, err := u.session(owner, sessionID)
	if err != nil {
		return ImportResult{}, err
	}
	m := make(ColumnMapping, len(mapping))
	for k, v := range mapping {
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := validateMapping(sess.kind, sess.headers, m); err != nil {
		return ImportResult{}, err
	}
	if !u.claim(sessionID, sess) {
		return ImportResult{}, &NotFoundError{Kind: "import session", ID: sessionID}
	}

	table, err := readCSV(sess.content, -1)
	if err != nil {
		u.logger.Warn("[import][usecase] parse failed", zap.String("file_name", sess.fileName), zap.Error(err))
		return ImportResult{}, err
	}

	batchID := u.batchIDs.Next()
	res := ImportResult{BatchID: batchID, Kind: sess.kind, FileName: sess.fileName}

	switch sess.kind {
	case entities.UploadKindCustomers:
		added, err := u.customers.AddMany(ctx, projectCustomers(table, m), batchID)
		if err != nil {
			return ImportResult{}, err
		}
		res.RowCount = len(added)
	case entities.UploadKindPricebook:
		added, err := u.pricebook.AddMany(ctx, projectPricebookEntries(table, m), batchID)
		if err != nil {
			return ImportResult{}, err
		}
		res.RowCount = len(added)
	}

	if res.RowCount > 0 {
		res.Upload = u.recordUpload(ctx, owner, sess, batchID, res.RowCount)
	}
	u.logger.Info("[import][usecase] import committed",
		zap.String("batch_id", batchID), zap.String("kind", string(sess.kind)),
		zap.String("file_name", sess.fileName), zap.Int("rows", res.RowCount))
	return res, nil
}

// recordUpload archives the file and writes the upload row. The records are
// already committed, so failures here are logged and not returned.
func (u *ImportUseCase) recordUpload(ctx context.Context, owner string, sess *importSession, batchID string, rows int) *entities.Upload {
	up := entities.Upload{ID: batchID, Kind: sess.kind, FileName: sess.fileName, RowCount: rows}
	if u.archive != nil {
		key, err := u.archive.Put(ctx, owner, batchID, sess.fileName, sess.content)
		if err != nil {
			u.logger.Warn("[import][usecase] archive upload failed", zap.String("batch_id", batchID), zap.Error(err))
		} else {
			up.ArchiveKey = key
		}
	}
	if u.uploads == nil {
		return nil
	}
	stored, err := u.uploads.Record(ctx, up)
	if err != nil {
		u.logger.Warn("[import][usecase] upload record failed", zap.String("batch_id", batchID), zap.Error(err))
		return nil
	}
	return &stored
}

func projectCustomers(t csvTable, m ColumnMapping) []entities.Customer {
	out := make([]entities.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		c := entities.Customer{
			Name:       t.cell(row, m[FieldName]),
			Email:      t.cell(row, m[FieldEmail]),
			Address:    t.cell(row, m[FieldAddress1]),
			City:       t.cell(row, m[FieldCity]),
			State:      t.cell(row, m[FieldState]),
			PostalCode: t.cell(row, m[FieldPostalCode]),
		}
		c.RefreshFullAddress()
		out = append(out, c)
	}
	return out
}

func projectPricebookEntries(t csvTable, m ColumnMapping) []entities.PricebookEntry {
	out := make([]entities.PricebookEntry, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, entities.PricebookEntry{
			Name:        t.cell(row, m[FieldName]),
			Price:       ParsePrice(t.cell(row, m[FieldPrice])),
			Description: t.cell(row, m[FieldDescription]),
		})
	}
	return out
}

var priceNoise = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "")

// ParsePrice reads a spreadsheet price such as "$1,250.00". Anything that is
// not a non-negative number becomes zero.
func ParsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(priceNoise.Replace(strings.TrimSpace(s)))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
